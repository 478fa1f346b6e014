package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price   int
		wantErr bool
	}{
		{price: -5, wantErr: true},
		{price: 0, wantErr: true},
		{price: 1},
		{price: 12},
		{price: 30},
		{price: 31, wantErr: true},
		{price: 1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("price=%d", tt.price), func(t *testing.T) {
			err := ValidatePrice(tt.price)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, []string{MSG_PRICE_OUT_OF_RANGE}, ve.Messages)
		})
	}
}

func TestRestaurantPizzaValidate(t *testing.T) {
	ok := RestaurantPizza{Price: 5, RestaurantID: 1, PizzaID: 2}
	assert.NoError(t, ok.Validate())

	badPrice := RestaurantPizza{Price: 31, RestaurantID: 1, PizzaID: 2}
	assert.True(t, IsValidation(badPrice.Validate()))

	noRestaurant := RestaurantPizza{Price: 5, PizzaID: 2}
	err := noRestaurant.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), MSG_VALIDATION_ERRORS)

	noPizza := RestaurantPizza{Price: 5, RestaurantID: 1, PizzaID: -1}
	assert.True(t, IsValidation(noPizza.Validate()))
}

func TestMissingFields(t *testing.T) {
	assert.Equal(t, "name", Restaurant{Address: "1 Main St"}.MissingFields())
	assert.Equal(t, "address", Restaurant{Name: "Dough Bros", Address: "  "}.MissingFields())
	assert.Equal(t, "", Restaurant{Name: "Dough Bros", Address: "1 Main St"}.MissingFields())

	assert.Equal(t, "name", Pizza{Ingredients: "Tomato"}.MissingFields())
	assert.Equal(t, "ingredients", Pizza{Name: "Margherita"}.MissingFields())

	err := Pizza{Name: "Margherita"}.Validate()
	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Missing field ingredients"}, ve.Messages)
}

func TestErrorKinds(t *testing.T) {
	nf := NotFoundError{Resource: "Restaurant"}
	assert.Equal(t, "Restaurant not found", nf.Error())
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", nf)))
	assert.False(t, IsValidation(nf))

	inner := errors.New("unexpected EOF")
	mr := MalformedRequestError{Err: inner}
	assert.ErrorIs(t, mr, inner)
	assert.Equal(t, "not found", NotFoundError{}.Error())
}
