package models

import "time"

/************************************************
/**** MARK: PRICE LIMITS ****/
/************************************************/
const PRICE_MIN = 1
const PRICE_MAX = 30

const MSG_PRICE_OUT_OF_RANGE = "Price must be between 1 and 30"
const MSG_VALIDATION_ERRORS = "Validation errors"

// RestaurantPizza liga pizzas a restaurantes (N:N) com o preço praticado.
type RestaurantPizza struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Price        int        `gorm:"not null" json:"price"`
	RestaurantID int64      `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      int64      `gorm:"not null;index" json:"pizza_id"`
	CreatedAt    *time.Time `json:"-"`
	UpdatedAt    *time.Time `json:"-"`

	Restaurant Restaurant `gorm:"foreignkey:RestaurantID;association_autoupdate:false;association_autocreate:false;association_save_reference:false" json:"-"`
	Pizza      Pizza      `gorm:"foreignkey:PizzaID;association_autoupdate:false;association_autocreate:false;association_save_reference:false" json:"-"`
}

// ValidatePrice enforces PRICE_MIN <= price <= PRICE_MAX.
func ValidatePrice(price int) error {
	if price < PRICE_MIN || price > PRICE_MAX {
		return NewValidationError(MSG_PRICE_OUT_OF_RANGE)
	}
	return nil
}

// ValidateReferences rejects ids that can never match a stored row.
func ValidateReferences(restaurantID, pizzaID int64) error {
	if restaurantID <= 0 || pizzaID <= 0 {
		return NewValidationError(MSG_VALIDATION_ERRORS)
	}
	return nil
}

// Validate runs every write-time check for a new link.
func (rp RestaurantPizza) Validate() error {
	if err := ValidatePrice(rp.Price); err != nil {
		return err
	}
	return ValidateReferences(rp.RestaurantID, rp.PizzaID)
}
