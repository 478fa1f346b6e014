package models

import (
	"strings"
	"time"
)

// Pizza representa um item do catálogo, vendido por vários restaurantes.
type Pizza struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string     `gorm:"not null" json:"name" form:"name"`
	Ingredients string     `gorm:"type:text" json:"ingredients" form:"ingredients"`
	CreatedAt   *time.Time `json:"-"`
	UpdatedAt   *time.Time `json:"-"`

	RestaurantPizzas []RestaurantPizza `gorm:"foreignkey:PizzaID;association_autoupdate:false;association_autocreate:false" json:"-"`
}

func (p Pizza) MissingFields() string {
	if strings.TrimSpace(p.Name) == "" {
		return "name"
	} else if strings.TrimSpace(p.Ingredients) == "" {
		return "ingredients"
	}
	return ""
}

func (p Pizza) Validate() error {
	if missing := p.MissingFields(); missing != "" {
		return NewValidationError("Missing field " + missing)
	}
	return nil
}
