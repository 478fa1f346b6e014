package db

import (
	"pizzahub/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

func (s *Store) ListRestaurantPizzas() ([]models.RestaurantPizza, error) {
	links := []models.RestaurantPizza{}
	err := s.db.
		Preload("Pizza").
		Preload("Restaurant").
		Order("id asc").
		Find(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "list restaurant pizzas")
	}
	return links, nil
}

// CreateRestaurantPizza validates price and references, then inserts the link
// and returns it with Pizza and Restaurant loaded. Unknown ids are a
// ValidationError, the same kind a foreign key rejection would be.
func (s *Store) CreateRestaurantPizza(restaurantID, pizzaID int64, price int) (models.RestaurantPizza, error) {
	link := models.RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}
	if err := link.Validate(); err != nil {
		return models.RestaurantPizza{}, err
	}

	err := s.inTransaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Restaurant{}, restaurantID)
		if err != nil {
			return errors.Wrapf(err, "check restaurant %d", restaurantID)
		}
		if !found {
			return models.NewValidationError(models.MSG_VALIDATION_ERRORS)
		}

		found, err = exists(tx, &models.Pizza{}, pizzaID)
		if err != nil {
			return errors.Wrapf(err, "check pizza %d", pizzaID)
		}
		if !found {
			return models.NewValidationError(models.MSG_VALIDATION_ERRORS)
		}

		if err := tx.Create(&link).Error; err != nil {
			return errors.Wrap(err, "create restaurant pizza")
		}

		if err := tx.Preload("Pizza").Preload("Restaurant").First(&link, link.ID).Error; err != nil {
			return errors.Wrapf(err, "reload restaurant pizza %d", link.ID)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return link, nil
}
