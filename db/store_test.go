package db

import (
	"testing"

	"pizzahub/config"
	"pizzahub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := Connect(config.Configuration{DbURI: "sqlite://", AutoMigrate: true})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewStore(database)
}

func seedOne(t *testing.T, store *Store) (models.Restaurant, models.Pizza) {
	t.Helper()

	restaurant := models.Restaurant{Name: "Dough Bros", Address: "1 Main St"}
	require.NoError(t, store.CreateRestaurant(&restaurant))

	pizza := models.Pizza{Name: "Margherita", Ingredients: "Tomato,Cheese"}
	require.NoError(t, store.CreatePizza(&pizza))

	return restaurant, pizza
}

func TestCreateAssignsIDs(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	assert.Equal(t, int64(1), restaurant.ID)
	assert.Equal(t, int64(1), pizza.ID)
}

func TestCreateRestaurantValidation(t *testing.T) {
	store := newTestStore(t)

	err := store.CreateRestaurant(&models.Restaurant{Address: "nowhere"})
	assert.True(t, models.IsValidation(err))

	err = store.CreatePizza(&models.Pizza{Name: "Plain"})
	assert.True(t, models.IsValidation(err))

	restaurants, err := store.ListRestaurants()
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestCreateRestaurantPizzaLoadsRelations(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	link, err := store.CreateRestaurantPizza(restaurant.ID, pizza.ID, 12)
	require.NoError(t, err)

	assert.NotZero(t, link.ID)
	assert.Equal(t, 12, link.Price)
	assert.Equal(t, pizza.ID, link.Pizza.ID)
	assert.Equal(t, "Margherita", link.Pizza.Name)
	assert.Equal(t, "Tomato,Cheese", link.Pizza.Ingredients)
	assert.Equal(t, restaurant.ID, link.Restaurant.ID)
	assert.Equal(t, "Dough Bros", link.Restaurant.Name)
}

func TestCreateRestaurantPizzaRejectsBadPrice(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	for _, price := range []int{-1, 0, 31, 100} {
		_, err := store.CreateRestaurantPizza(restaurant.ID, pizza.ID, price)
		require.Error(t, err)
		assert.True(t, models.IsValidation(err), "price %d", price)
	}

	links, err := store.ListRestaurantPizzas()
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCreateRestaurantPizzaRejectsUnknownReferences(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	_, err := store.CreateRestaurantPizza(999, pizza.ID, 10)
	assert.True(t, models.IsValidation(err))

	_, err = store.CreateRestaurantPizza(restaurant.ID, 999, 10)
	assert.True(t, models.IsValidation(err))

	_, err = store.CreateRestaurantPizza(0, pizza.ID, 10)
	assert.True(t, models.IsValidation(err))

	links, err := store.ListRestaurantPizzas()
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestGetRestaurant(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	other := models.Pizza{Name: "Pepperoni", Ingredients: "Tomato,Cheese,Pepperoni"}
	require.NoError(t, store.CreatePizza(&other))

	_, err := store.CreateRestaurantPizza(restaurant.ID, pizza.ID, 10)
	require.NoError(t, err)
	_, err = store.CreateRestaurantPizza(restaurant.ID, other.ID, 14)
	require.NoError(t, err)

	got, err := store.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, got.RestaurantPizzas, 2)
	assert.Equal(t, "Margherita", got.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, "Pepperoni", got.RestaurantPizzas[1].Pizza.Name)
	assert.Equal(t, 14, got.RestaurantPizzas[1].Price)

	_, err = store.GetRestaurant(42)
	assert.True(t, models.IsNotFound(err))
	assert.EqualError(t, err, "Restaurant not found")
}

func TestDeleteRestaurantCascades(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	keep := models.Restaurant{Name: "Crust Co", Address: "2 Side St"}
	require.NoError(t, store.CreateRestaurant(&keep))

	_, err := store.CreateRestaurantPizza(restaurant.ID, pizza.ID, 12)
	require.NoError(t, err)
	kept, err := store.CreateRestaurantPizza(keep.ID, pizza.ID, 9)
	require.NoError(t, err)

	require.NoError(t, store.DeleteRestaurant(restaurant.ID))

	_, err = store.GetRestaurant(restaurant.ID)
	assert.True(t, models.IsNotFound(err))

	links, err := store.ListRestaurantPizzas()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, kept.ID, links[0].ID)
	for _, l := range links {
		assert.NotEqual(t, restaurant.ID, l.RestaurantID)
	}

	// pizza survives the restaurant
	_, err = store.GetPizza(pizza.ID)
	assert.NoError(t, err)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteRestaurant(999)
	assert.True(t, models.IsNotFound(err))
}

func TestDeletePizzaCascades(t *testing.T) {
	store := newTestStore(t)
	restaurant, pizza := seedOne(t, store)

	_, err := store.CreateRestaurantPizza(restaurant.ID, pizza.ID, 12)
	require.NoError(t, err)

	require.NoError(t, store.DeletePizza(pizza.ID))

	got, err := store.GetRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, got.RestaurantPizzas)

	pizzas, err := store.ListPizzas()
	require.NoError(t, err)
	assert.Empty(t, pizzas)

	assert.True(t, models.IsNotFound(store.DeletePizza(pizza.ID)))
}

func TestSeed(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, Seed(store))

	restaurants, err := store.ListRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, len(seedRestaurants))

	pizzas, err := store.ListPizzas()
	require.NoError(t, err)
	assert.Len(t, pizzas, len(seedPizzas))

	links, err := store.ListRestaurantPizzas()
	require.NoError(t, err)
	assert.Len(t, links, 6)

	// second run is a no-op
	require.NoError(t, Seed(store))
	restaurants, err = store.ListRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, len(seedRestaurants))
}

func TestConnectWithoutAutoMigrateLeavesSchemaEmpty(t *testing.T) {
	database, err := Connect(config.Configuration{DbURI: "sqlite://"})
	require.NoError(t, err)
	defer database.Close()

	assert.False(t, database.HasTable(&models.Restaurant{}))
	_, err = NewStore(database).ListRestaurants()
	assert.Error(t, err)

	require.NoError(t, Migrate(database))
	for _, table := range []interface{}{&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}} {
		assert.True(t, database.HasTable(table))
	}

	restaurants, err := NewStore(database).ListRestaurants()
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}
