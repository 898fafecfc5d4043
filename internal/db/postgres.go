package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		// -------------------------------
		// USERS & STORES
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			ustatus INT NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS stores (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			status INT NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// -------------------------------
		// CATALOG
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS subcategories (
			id SERIAL PRIMARY KEY,
			category_id INT REFERENCES categories(id),
			name VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			store_id INT NOT NULL REFERENCES stores(id),
			subcategory_id INT REFERENCES subcategories(id),
			title VARCHAR(255) NOT NULL,
			description TEXT,
			image VARCHAR(500) DEFAULT '',
			status INT NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS product_attributes (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			store_id INT NOT NULL REFERENCES stores(id),
			title VARCHAR(500) DEFAULT '',
			normal_price NUMERIC(10,2),
			discount NUMERIC(5,2) DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS product_options (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			option_name VARCHAR(255) NOT NULL,
			option_values JSONB NOT NULL,
			is_required BOOLEAN NOT NULL DEFAULT FALSE,
			max_selections INT NOT NULL DEFAULT 1,
			status INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS product_addons (
			id SERIAL PRIMARY KEY,
			product_id INT NOT NULL REFERENCES products(id),
			addon_name VARCHAR(255) NOT NULL,
			addon_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			addon_category VARCHAR(255),
			is_required BOOLEAN NOT NULL DEFAULT FALSE,
			status INT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS menu_questions (
			id SERIAL PRIMARY KEY,
			item_id INT NOT NULL REFERENCES products(id),
			question_text TEXT NOT NULL,
			question_type VARCHAR(50) NOT NULL,
			required BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INT NOT NULL DEFAULT 0
		)`,

		// -------------------------------
		// CART
		// -------------------------------
		`CREATE TABLE IF NOT EXISTS cart_data (
			id SERIAL PRIMARY KEY,
			uid INT NOT NULL,
			store_id INT NOT NULL,
			product_id INT NOT NULL,
			attribute_id INT NOT NULL DEFAULT 0,
			quantity INT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			product_title VARCHAR(255) NOT NULL,
			product_img VARCHAR(500) DEFAULT '',
			cart_type VARCHAR(50) NOT NULL DEFAULT 'normal',
			variation JSONB,
			visible INT NOT NULL DEFAULT 1,
			subscription_data JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
