package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Upstream commerce backend that owns the catalog and the orders.
	CommerceAPIURL   string
	CommerceAPIToken string

	SecretKey string

	// Whether adding a product already in the cart merges quantities into
	// the existing line or always creates a new line.
	CartMergeOnAdd bool

	// How often the order watcher re-fetches the order list while active.
	OrderPollInterval time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           os.Getenv("APP_PORT"),
		AppEnv:            os.Getenv("APP_ENV"),
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		CommerceAPIURL:    os.Getenv("COMMERCE_API_URL"),
		CommerceAPIToken:  os.Getenv("COMMERCE_API_TOKEN"),
		SecretKey:         os.Getenv("SECRET_KEY"),
		CartMergeOnAdd:    envBool("CART_MERGE_ON_ADD", true),
		OrderPollInterval: envDuration("ORDER_POLL_INTERVAL", 30*time.Second),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.CommerceAPIURL == "" {
		log.Fatal("COMMERCE_API_URL is required")
	}

	return cfg
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
