package router

import (
	"net/http"

	"pizzahub/config"
	"pizzahub/controllers"
	"pizzahub/db"
	"pizzahub/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// resourcePaths pairs each primary collection path with its alias.
var resourcePaths = struct {
	restaurants      []string
	pizzas           []string
	restaurantPizzas []string
}{
	restaurants:      []string{"/restaurants", "/establishments"},
	pizzas:           []string{"/pizzas", "/catalog_items"},
	restaurantPizzas: []string{"/restaurant_pizzas", "/associations"},
}

// Initialize wires all routes and middlewares.
func Initialize(r *gin.Engine, cfg config.Configuration, store db.Repository) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.Metrics())
	r.Use(Logger())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	api := r.Group("")
	api.Use(db.SetStoreToContext(store))

	for _, base := range resourcePaths.restaurants {
		api.GET(base, controllers.GetRestaurants)
		api.POST(base, controllers.CreateRestaurant)
		api.GET(base+"/:id", controllers.GetRestaurantByID)
		api.DELETE(base+"/:id", controllers.DeleteRestaurant)
	}

	for _, base := range resourcePaths.pizzas {
		api.GET(base, controllers.GetPizzas)
		api.POST(base, controllers.CreatePizza)
		api.GET(base+"/:id", controllers.GetPizzaByID)
		api.DELETE(base+"/:id", controllers.DeletePizza)
	}

	for _, base := range resourcePaths.restaurantPizzas {
		api.GET(base, controllers.GetRestaurantPizzas)
		api.POST(base, controllers.CreateRestaurantPizza)
	}

	r.NoRoute(func(c *gin.Context) {
		controllers.RespondError(c, "not found", http.StatusNotFound)
	})

	logrus.Info("routes initialized")
}
