package db

import (
	"pizzahub/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var seedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

var seedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// seedPrices[i][j] is the price of pizza j at restaurant i; 0 means not sold.
var seedPrices = [][]int{
	{1, 0, 4},
	{0, 5, 0},
	{3, 2, 30},
}

// Seed loads sample data through the repository. It does nothing when
// restaurants already exist.
func Seed(store Repository) error {
	existing, err := store.ListRestaurants()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logrus.WithField("restaurants", len(existing)).Info("seed skipped, database not empty")
		return nil
	}

	restaurantIDs := make([]int64, 0, len(seedRestaurants))
	for _, r := range seedRestaurants {
		r := r
		if err := store.CreateRestaurant(&r); err != nil {
			return errors.Wrapf(err, "seed restaurant %q", r.Name)
		}
		restaurantIDs = append(restaurantIDs, r.ID)
	}

	pizzaIDs := make([]int64, 0, len(seedPizzas))
	for _, p := range seedPizzas {
		p := p
		if err := store.CreatePizza(&p); err != nil {
			return errors.Wrapf(err, "seed pizza %q", p.Name)
		}
		pizzaIDs = append(pizzaIDs, p.ID)
	}

	links := 0
	for i, prices := range seedPrices {
		for j, price := range prices {
			if price == 0 {
				continue
			}
			if _, err := store.CreateRestaurantPizza(restaurantIDs[i], pizzaIDs[j], price); err != nil {
				return errors.Wrapf(err, "seed restaurant pizza %d/%d", i, j)
			}
			links++
		}
	}

	logrus.WithFields(logrus.Fields{
		"restaurants":       len(restaurantIDs),
		"pizzas":            len(pizzaIDs),
		"restaurant_pizzas": links,
	}).Info("seed done")
	return nil
}
