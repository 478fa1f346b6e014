package db

import (
	"pizzahub/models"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Repository is the typed CRUD surface the handlers use.
type Repository interface {
	ListRestaurants() ([]models.Restaurant, error)
	GetRestaurant(id int64) (models.Restaurant, error)
	CreateRestaurant(restaurant *models.Restaurant) error
	DeleteRestaurant(id int64) error

	ListPizzas() ([]models.Pizza, error)
	GetPizza(id int64) (models.Pizza, error)
	CreatePizza(pizza *models.Pizza) error
	DeletePizza(id int64) error

	ListRestaurantPizzas() ([]models.RestaurantPizza, error)
	CreateRestaurantPizza(restaurantID, pizzaID int64, price int) (models.RestaurantPizza, error)
}

// Store implements Repository on top of gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// inTransaction runs fn inside one transaction, committing only when fn succeeds.
func (s *Store) inTransaction(fn func(tx *gorm.DB) error) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// exists reports whether a row of model's table has the given primary key.
func exists(tx *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
