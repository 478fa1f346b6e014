package db

import (
	"pizzahub/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

var errPizzaNotFound = models.NotFoundError{Resource: "Pizza"}

func (s *Store) ListPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Order("id asc").Find(&pizzas).Error; err != nil {
		return nil, errors.Wrap(err, "list pizzas")
	}
	return pizzas, nil
}

func (s *Store) GetPizza(id int64) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.First(&pizza, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Pizza{}, errPizzaNotFound
	}
	if err != nil {
		return models.Pizza{}, errors.Wrapf(err, "get pizza %d", id)
	}
	return pizza, nil
}

func (s *Store) CreatePizza(pizza *models.Pizza) error {
	if err := pizza.Validate(); err != nil {
		return err
	}
	pizza.ID = 0

	return s.inTransaction(func(tx *gorm.DB) error {
		if err := tx.Create(pizza).Error; err != nil {
			return errors.Wrap(err, "create pizza")
		}
		return nil
	})
}

// DeletePizza removes the pizza and every restaurant link pointing at it.
func (s *Store) DeletePizza(id int64) error {
	return s.inTransaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		err := tx.First(&pizza, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return errPizzaNotFound
		}
		if err != nil {
			return errors.Wrapf(err, "find pizza %d", id)
		}

		if err := tx.Where("pizza_id = ?", pizza.ID).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return errors.Wrapf(err, "delete restaurant links of pizza %d", id)
		}
		if err := tx.Delete(&pizza).Error; err != nil {
			return errors.Wrapf(err, "delete pizza %d", id)
		}
		return nil
	})
}
