package db

import (
	"os"
	"path/filepath"

	"pizzahub/config"
	"pizzahub/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Connect abre conexão com o banco apontado por DbURI (sqlite3 por padrão).
// Para rodar o automigrate no serve, exporte AUTOMIGRATE=1.
func Connect(conf config.Configuration) (*gorm.DB, error) {
	dialect, dsn, err := config.ParseDatabaseURI(conf.DbURI)
	if err != nil {
		return nil, err
	}

	if dialect == "sqlite3" && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, errors.Wrap(err, "create sqlite dir")
		}
	}

	logrus.WithField("dialect", dialect).Info("connecting to database")

	db, err := Open(dialect, dsn)
	if err != nil {
		logrus.WithError(err).Error("got error when connecting to database")
		return nil, err
	}

	if conf.Debug {
		db.SetLogger(logrus.StandardLogger())
		db.LogMode(true)
	}

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Open connects with an explicit dialect. SQLite is held to one connection:
// writers are serialized anyway and ":memory:" databases live per connection.
func Open(dialect string, args ...interface{}) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dialect)
	}
	if dialect == "sqlite3" {
		db.DB().SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or extends the three tables. On postgres it also adds the
// foreign keys with ON DELETE CASCADE; sqlite cannot add constraints after
// creation, so there the cascade is done by the store only.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Pizza{},
		&models.RestaurantPizza{},
	).Error; err != nil {
		return errors.Wrap(err, "automigrate")
	}

	if db.Dialect().GetName() == "postgres" {
		link := db.Model(&models.RestaurantPizza{})
		if err := link.AddForeignKey("restaurant_id", "restaurants(id)", "CASCADE", "RESTRICT").Error; err != nil {
			logrus.WithError(err).Warn("restaurant_id foreign key not added")
		}
		if err := link.AddForeignKey("pizza_id", "pizzas(id)", "CASCADE", "RESTRICT").Error; err != nil {
			logrus.WithError(err).Warn("pizza_id foreign key not added")
		}
	}

	logrus.Info("schema migrated")
	return nil
}
