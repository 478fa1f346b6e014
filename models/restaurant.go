package models

import (
	"strings"
	"time"
)

// Restaurant representa um estabelecimento que vende pizzas com preço próprio.
type Restaurant struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Address   string     `gorm:"not null;default:''" json:"address" form:"address"`
	CreatedAt *time.Time `json:"-"`
	UpdatedAt *time.Time `json:"-"`

	RestaurantPizzas []RestaurantPizza `gorm:"foreignkey:RestaurantID;association_autoupdate:false;association_autocreate:false" json:"-"`
}

// MissingFields returns the name of the first required field left blank.
func (r Restaurant) MissingFields() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name"
	} else if strings.TrimSpace(r.Address) == "" {
		return "address"
	}
	return ""
}

// Validate checks a restaurant before it is written.
func (r Restaurant) Validate() error {
	if missing := r.MissingFields(); missing != "" {
		return NewValidationError("Missing field " + missing)
	}
	return nil
}
