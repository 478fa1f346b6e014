package controllers

import (
	"pizzahub/models"
	"pizzahub/serializers"

	"github.com/gin-gonic/gin"
)

type PizzaRequest struct {
	Name        string `json:"name" form:"name"`
	Ingredients string `json:"ingredients" form:"ingredients"`
}

// GET /pizzas
func GetPizzas(c *gin.Context) {
	store, ok := Store(c)
	if !ok {
		return
	}

	pizzas, err := store.ListPizzas()
	if err != nil {
		RespondReadError(c, err)
		return
	}
	RespondSuccess(c, serializers.SerializePizzas(pizzas))
}

// GET /pizzas/:id
func GetPizzaByID(c *gin.Context) {
	id, ok := ParamID(c, "id", "Pizza")
	if !ok {
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	pizza, err := store.GetPizza(id)
	if err != nil {
		RespondReadError(c, err)
		return
	}
	RespondSuccess(c, serializers.SerializePizza(pizza))
}

// POST /pizzas
func CreatePizza(c *gin.Context) {
	var req PizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWriteError(c, models.MalformedRequestError{Err: err})
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	pizza := models.Pizza{Name: req.Name, Ingredients: req.Ingredients}
	if err := store.CreatePizza(&pizza); err != nil {
		RespondWriteError(c, err)
		return
	}
	RespondCreated(c, serializers.SerializePizza(pizza))
}

// DELETE /pizzas/:id
func DeletePizza(c *gin.Context) {
	id, ok := ParamID(c, "id", "Pizza")
	if !ok {
		return
	}
	store, ok := Store(c)
	if !ok {
		return
	}

	if err := store.DeletePizza(id); err != nil {
		RespondWriteError(c, err)
		return
	}
	RespondNoContent(c)
}
