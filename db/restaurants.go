package db

import (
	"pizzahub/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var errRestaurantNotFound = models.NotFoundError{Resource: "Restaurant"}

func (s *Store) ListRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.Order("id asc").Find(&restaurants).Error; err != nil {
		return nil, errors.Wrap(err, "list restaurants")
	}
	return restaurants, nil
}

// GetRestaurant loads the restaurant with its pizza links, each with its pizza.
func (s *Store) GetRestaurant(id int64) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
			return db.Order("restaurant_pizzas.id asc")
		}).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Restaurant{}, errRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, errors.Wrapf(err, "get restaurant %d", id)
	}
	return restaurant, nil
}

func (s *Store) CreateRestaurant(restaurant *models.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}
	restaurant.ID = 0

	return s.inTransaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return errors.Wrap(err, "create restaurant")
		}
		return nil
	})
}

// DeleteRestaurant removes the restaurant and every pizza link pointing at it.
func (s *Store) DeleteRestaurant(id int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		err := tx.First(&restaurant, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return errRestaurantNotFound
		}
		if err != nil {
			return errors.Wrapf(err, "find restaurant %d", id)
		}

		// links primeiro, depois o restaurante
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return errors.Wrapf(err, "delete pizza links of restaurant %d", id)
		}
		if err := tx.Delete(&restaurant).Error; err != nil {
			return errors.Wrapf(err, "delete restaurant %d", id)
		}
		return nil
	})
}
