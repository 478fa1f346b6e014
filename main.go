package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"pizzahub/config"
	"pizzahub/db"
	"pizzahub/logger"
	"pizzahub/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =====================
// ENV esperadas
// =====================
//
// - PORT                  (default 5555)
// - DB_URI                (vazio = sqlite em db/app.db; "sqlite:///path", "sqlite://" ou "postgres://...")
// - AUTOMIGRATE           (default false: o serve NÃO cria tabelas; rode
//                          `pizzahub migrate` antes, ou AUTOMIGRATE=1)
// - LOG_LEVEL, LOG_PATH, DEBUG
// - CORS_ALLOWED_ORIGINS  (lista separada por vírgula, default "*")
//
// =====================

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:           "pizzahub",
		Short:         "Restaurants, pizzas and their prices over a JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (optional)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Load sample restaurants and pizzas into an empty database",
			RunE:  runSeed,
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads config and logging, then opens the database.
func setup() (config.Configuration, *gorm.DB, func(), error) {
	conf, err := config.Get(cfgFile)
	if err != nil {
		return conf, nil, nil, err
	}

	closeLog, err := logger.Setup(conf)
	if err != nil {
		return conf, nil, nil, err
	}

	database, err := db.Connect(conf)
	if err != nil {
		closeLog()
		return conf, nil, nil, err
	}

	cleanup := func() {
		database.Close()
		closeLog()
	}
	return conf, database, cleanup, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	conf, database, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if !conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	router.Initialize(r, conf, db.NewStore(database))

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.WithField("port", conf.ApiPort).Info("pizzahub listening")
	return srv.ListenAndServe()
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, database, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	return db.Migrate(database)
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, database, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := db.Migrate(database); err != nil {
		return err
	}
	return db.Seed(db.NewStore(database))
}
