package controllers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"pizzahub/models"
	"pizzahub/serializers"

	"github.com/gin-gonic/gin"
)

// RestaurantPizzaRequest aceita price como número (inteiro ou fracionário,
// truncado) ou string com um inteiro.
type RestaurantPizzaRequest struct {
	Price        json.RawMessage `json:"price"`
	PizzaID      int64           `json:"pizza_id"`
	RestaurantID int64           `json:"restaurant_id"`
}

// ParsePrice converts the raw price. Absent, null, object or array prices are
// a generic validation error. Any other value that is not an integer string
// or a number gets the range message; numbers are truncated toward zero.
func (r RestaurantPizzaRequest) ParsePrice() (int, error) {
	raw := bytes.TrimSpace(r.Price)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || raw[0] == '{' || raw[0] == '[' {
		return 0, models.NewValidationError(models.MSG_VALIDATION_ERRORS)
	}

	var value float64
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, models.NewValidationError(models.MSG_PRICE_OUT_OF_RANGE)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, models.NewValidationError(models.MSG_PRICE_OUT_OF_RANGE)
		}
		value = float64(n)
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			// true/false
			return 0, models.NewValidationError(models.MSG_PRICE_OUT_OF_RANGE)
		}
		value = math.Trunc(f)
	}

	if value < models.PRICE_MIN || value > models.PRICE_MAX {
		return 0, models.NewValidationError(models.MSG_PRICE_OUT_OF_RANGE)
	}
	return int(value), nil
}

// GET /restaurant_pizzas
func GetRestaurantPizzas(c *gin.Context) {
	store, ok := Store(c)
	if !ok {
		return
	}

	links, err := store.ListRestaurantPizzas()
	if err != nil {
		RespondReadError(c, err)
		return
	}
	RespondSuccess(c, serializers.SerializeRestaurantPizzas(links))
}

// POST /restaurant_pizzas
func CreateRestaurantPizza(c *gin.Context) {
	var req RestaurantPizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWriteError(c, models.MalformedRequestError{Err: err})
		return
	}

	price, err := req.ParsePrice()
	if err != nil {
		RespondWriteError(c, err)
		return
	}

	store, ok := Store(c)
	if !ok {
		return
	}

	link, err := store.CreateRestaurantPizza(req.RestaurantID, req.PizzaID, price)
	if err != nil {
		RespondWriteError(c, err)
		return
	}
	RespondCreated(c, serializers.SerializeRestaurantPizzaWithRestaurantSummary(link))
}
