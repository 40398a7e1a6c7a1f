package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/halcyonworks/QuarterLife_Go/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 5, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump player saves
	fmt.Println("--- Player Saves ---")
	rows, err := dbPool.Query(ctx, "SELECT user_id, money, schema_version, updated_at FROM player_saves ORDER BY user_id")
	if err != nil {
		log.Printf("Failed to query player saves: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var userID string
			var money int64
			var schemaVersion int
			var updatedAt time.Time
			if err := rows.Scan(&userID, &money, &schemaVersion, &updatedAt); err != nil {
				log.Printf("Failed to scan player save: %v", err)
				continue
			}
			fmt.Printf("ID: %s, Money: %d, Version: %d, UpdatedAt: %v\n", userID, money, schemaVersion, updatedAt)
		}
	}

	// Dump education saves
	fmt.Println("\n--- Education Saves ---")
	rows, err = dbPool.Query(ctx, "SELECT user_id, state, schema_version, updated_at FROM education_saves ORDER BY user_id")
	if err != nil {
		log.Printf("Failed to query education saves: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var userID string
			var state []byte
			var schemaVersion int
			var updatedAt time.Time
			if err := rows.Scan(&userID, &state, &schemaVersion, &updatedAt); err != nil {
				log.Printf("Failed to scan education save: %v", err)
				continue
			}
			fmt.Printf("ID: %s, Version: %d, UpdatedAt: %v\nState: %s\n", userID, schemaVersion, updatedAt, state)
		}
	}
}
