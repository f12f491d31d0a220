package db

import (
	"database/sql"
	"fmt"
	"log"

	"storefront/internal/config"

	_ "github.com/lib/pq"
)

func InitDB(cfg *config.Config) *sql.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	log.Println("Database connection established")
	return db
}

// EnsureSchema creates the storefront-owned tables if they do not exist.
// The service only owns cart lines and wishlist entries; orders and the
// catalog live in the upstream commerce backend.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS cart_lines (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			product_id TEXT NOT NULL,
			name TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			original_price NUMERIC(12,2),
			quantity INT NOT NULL CHECK (quantity >= 1),
			selected_color TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure cart_lines table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS wishlist_items (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			product_id TEXT NOT NULL,
			name TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			selected_color TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure wishlist_items table: %w", err)
	}

	return nil
}
