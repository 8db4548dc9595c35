package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bcheng/portfolio-backend/api"
	"github.com/bcheng/portfolio-backend/auth"
	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/database"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.Load()

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	log.Info().Str("env", cfg.Env).Str("dbType", cfg.DBType).Msg("Initializing app...")

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	if err := currentDB.AutoMigrate(); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	// Seed demo content and exit, for a fresh local setup.
	if cfg.SeedDB {
		log.Info().Msg("Seeding database...")
		if err := currentDB.Seed(); err != nil {
			log.Fatal().Err(err).Msg("Error seeding database")
		}
		log.Info().Msg("Database seeded")
		return
	}

	sessions, err := auth.NewSessions(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing sessions")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server := api.NewServer(cfg, currentDB, sessions)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects per DB_TYPE: a local sqlite file by default, or
// postgres when configured.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.DBType {
	case "postgres":
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseURL), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to
// the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
