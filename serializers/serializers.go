// Package serializers renders models as JSON views. Each shape is its own
// struct, so a link listed under a restaurant has no field that could lead
// back to that restaurant.
package serializers

import "pizzahub/models"

type PizzaView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantShallow is the list view: no restaurant_pizzas key.
type RestaurantShallow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type RestaurantFull struct {
	ID               int64                            `json:"id"`
	Name             string                           `json:"name"`
	Address          string                           `json:"address"`
	RestaurantPizzas []RestaurantPizzaUnderRestaurant `json:"restaurant_pizzas"`
}

// RestaurantSummary is the restaurant embedded in a link's create response.
type RestaurantSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RestaurantPizzaUnderRestaurant omits the back-reference to the owner.
type RestaurantPizzaUnderRestaurant struct {
	ID           int64     `json:"id"`
	Price        int       `json:"price"`
	PizzaID      int64     `json:"pizza_id"`
	RestaurantID int64     `json:"restaurant_id"`
	Pizza        PizzaView `json:"pizza"`
}

type RestaurantPizzaWithRestaurantSummary struct {
	ID           int64             `json:"id"`
	Price        int               `json:"price"`
	PizzaID      int64             `json:"pizza_id"`
	RestaurantID int64             `json:"restaurant_id"`
	Pizza        PizzaView         `json:"pizza"`
	Restaurant   RestaurantSummary `json:"restaurant"`
}

func SerializePizza(p models.Pizza) PizzaView {
	return PizzaView{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}

func SerializePizzas(pizzas []models.Pizza) []PizzaView {
	out := make([]PizzaView, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, SerializePizza(p))
	}
	return out
}

func SerializeRestaurantShallow(r models.Restaurant) RestaurantShallow {
	return RestaurantShallow{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

func SerializeRestaurantsShallow(restaurants []models.Restaurant) []RestaurantShallow {
	out := make([]RestaurantShallow, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, SerializeRestaurantShallow(r))
	}
	return out
}

// SerializeRestaurantFull expects r.RestaurantPizzas with Pizza loaded.
func SerializeRestaurantFull(r models.Restaurant) RestaurantFull {
	links := make([]RestaurantPizzaUnderRestaurant, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		links = append(links, SerializeRestaurantPizzaWithoutRestaurant(rp))
	}
	return RestaurantFull{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: links,
	}
}

func SerializeRestaurantPizzaWithoutRestaurant(rp models.RestaurantPizza) RestaurantPizzaUnderRestaurant {
	return RestaurantPizzaUnderRestaurant{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        SerializePizza(rp.Pizza),
	}
}

// SerializeRestaurantPizzaWithRestaurantSummary expects Pizza and Restaurant loaded.
func SerializeRestaurantPizzaWithRestaurantSummary(rp models.RestaurantPizza) RestaurantPizzaWithRestaurantSummary {
	return RestaurantPizzaWithRestaurantSummary{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        SerializePizza(rp.Pizza),
		Restaurant: RestaurantSummary{
			ID:   rp.Restaurant.ID,
			Name: rp.Restaurant.Name,
		},
	}
}

func SerializeRestaurantPizzas(links []models.RestaurantPizza) []RestaurantPizzaWithRestaurantSummary {
	out := make([]RestaurantPizzaWithRestaurantSummary, 0, len(links))
	for _, rp := range links {
		out = append(out, SerializeRestaurantPizzaWithRestaurantSummary(rp))
	}
	return out
}
