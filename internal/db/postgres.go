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

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'CUSTOMER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOPS (addons holds the shop-level add-on groups as stored JSON)
	// -------------------------------
	shopTableSQL := `
		CREATE TABLE IF NOT EXISTS shops (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			category VARCHAR(50) NOT NULL,
			governorate VARCHAR(255),
			city VARCHAR(255),
			logo_url VARCHAR(500),
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			addons JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, shopTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOP GALLERY
	// -------------------------------
	gallerySQL := `
		CREATE TABLE IF NOT EXISTS shop_gallery (
			id UUID PRIMARY KEY,
			shop_id UUID NOT NULL REFERENCES shops(id),
			url VARCHAR(500) NOT NULL,
			media_type VARCHAR(20) NOT NULL DEFAULT 'IMAGE',
			caption TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, gallerySQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS (variant dimensions kept as stored JSON, normalized on read)
	// -------------------------------
	productTableSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id TEXT PRIMARY KEY,
			shop_id UUID NOT NULL REFERENCES shops(id),
			name VARCHAR(255) NOT NULL,
			price NUMERIC(12,2) NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			image_url VARCHAR(500),
			unit VARCHAR(50),
			menu_variants JSONB,
			colors JSONB,
			sizes JSONB,
			pack_options JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, productTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// OFFERS
	// -------------------------------
	offerTableSQL := `
		CREATE TABLE IF NOT EXISTS offers (
			id UUID PRIMARY KEY,
			shop_id UUID NOT NULL REFERENCES shops(id),
			product_id TEXT NOT NULL REFERENCES products(id),
			title VARCHAR(255) NOT NULL DEFAULT '',
			discount NUMERIC(5,2) NOT NULL DEFAULT 0,
			old_price NUMERIC(12,2),
			new_price NUMERIC(12,2),
			expires_at TIMESTAMP,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, offerTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// CART LINES (committed snapshots, append + quantity update only)
	// -------------------------------
	cartTableSQL := `
		CREATE TABLE IF NOT EXISTS cart_lines (
			id TEXT NOT NULL,
			owner_id UUID NOT NULL REFERENCES users(id),
			product_id TEXT NOT NULL,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			quantity INT NOT NULL,
			variant_selection JSONB,
			addons JSONB,
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id, owner_id)
		)
	`
	if _, err := db.Exec(ctx, cartTableSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
