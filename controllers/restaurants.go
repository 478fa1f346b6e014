package controllers

import (
	"pizzahub/models"
	"pizzahub/serializers"

	"github.com/gin-gonic/gin"
)

type RestaurantRequest struct {
	Name    string `json:"name" form:"name"`
	Address string `json:"address" form:"address"`
}

// GET /restaurants
// Lista rasa: sem restaurant_pizzas.
func GetRestaurants(c *gin.Context) {
	store, ok := Store(c)
	if !ok {
		return
	}

	restaurants, err := store.ListRestaurants()
	if err != nil {
		RespondReadError(c, err)
		return
	}
	RespondSuccess(c, serializers.SerializeRestaurantsShallow(restaurants))
}

// GET /restaurants/:id
func GetRestaurantByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "Restaurant")
	if !ok {
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	restaurant, err := store.GetRestaurant(id)
	if err != nil {
		RespondReadError(c, err)
		return
	}
	RespondSuccess(c, serializers.SerializeRestaurantFull(restaurant))
}

// POST /restaurants
func CreateRestaurant(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWriteError(c, models.MalformedRequestError{Err: err})
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	restaurant := models.Restaurant{Name: req.Name, Address: req.Address}
	if err := store.CreateRestaurant(&restaurant); err != nil {
		RespondWriteError(c, err)
		return
	}
	RespondCreated(c, serializers.SerializeRestaurantFull(restaurant))
}

// DELETE /restaurants/:id
// Remove também os restaurant_pizzas do restaurante.
func DeleteRestaurant(c *gin.Context) {
	id, ok := ParamID(c, "id", "Restaurant")
	if !ok {
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	if err := store.DeleteRestaurant(id); err != nil {
		RespondWriteError(c, err)
		return
	}
	RespondNoContent(c)
}
