package postgres

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxOpen  int
	MaxIdle  int
}

func ConfigFromEnv() Config {
	cfg := Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     getEnv("DB_NAME", "yourmoment"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		MaxOpen:  25,
		MaxIdle:  5,
	}

	if v, err := strconv.Atoi(os.Getenv("DB_MAX_OPEN_CONNS")); err == nil && v > 0 {
		cfg.MaxOpen = v
	}
	if v, err := strconv.Atoi(os.Getenv("DB_MAX_IDLE_CONNS")); err == nil && v > 0 {
		cfg.MaxIdle = v
	}

	return cfg
}

func FormatDSN(cfg Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
}

// New connects using the DB_* environment variables and applies pending
// migrations when DB_AUTO_MIGRATE is "true".
func New() (*sqlx.DB, error) {
	cfg := ConfigFromEnv()

	logrus.Infof("Connecting to PostgreSQL at %s:%s/%s...", cfg.Host, cfg.Port, cfg.Name)

	db, err := sqlx.Connect("postgres", FormatDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(30 * time.Minute)

	if os.Getenv("DB_AUTO_MIGRATE") == "true" {
		if err := RunMigrations(db); err != nil {
			db.Close()
			return nil, err
		}
		logrus.Info("Database migrations applied")
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
