package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Wipes all inspection data and reseeds a minimal fleet for local testing.
func main() {
	fmt.Println("========================================")
	fmt.Println("   Reset Database for Testing")
	fmt.Println("========================================")
	fmt.Println()
	fmt.Println("WARNING: This will DELETE ALL DATA!")
	fmt.Println()
	fmt.Println("This will:")
	fmt.Println("  - Delete all inspections and results")
	fmt.Println("  - Delete all forklifts, users and checklist items")
	fmt.Println("  - Reset all ID sequences")
	fmt.Println("  - Seed a default supervisor and checklist catalog")
	fmt.Println()
	fmt.Print("Type 'yes' to confirm: ")

	var confirm string
	fmt.Scanln(&confirm)

	if confirm != "yes" {
		fmt.Println("Reset cancelled.")
		return
	}

	godotenv.Load()

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "forklift_db")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	fmt.Println()
	fmt.Println("Resetting database...")

	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v\n", err)
	}
	defer tx.Rollback(ctx)

	// Children first so foreign keys stay satisfied
	tables := []string{
		"inspection_results",
		"daily_inspections",
		"checklist_items",
		"forklifts",
		"users",
	}

	for _, table := range tables {
		if _, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			log.Fatalf("Failed to truncate %s: %v\n", table, err)
		}
		fmt.Printf("  Cleared %s\n", table)
	}

	sequences := []string{
		"users_id_seq",
		"forklifts_id_seq",
		"checklist_items_id_seq",
		"daily_inspections_id_seq",
		"inspection_results_id_seq",
	}

	for _, seq := range sequences {
		if _, err = tx.Exec(ctx, fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH 1", seq)); err != nil {
			log.Printf("Warning: Failed to reset sequence %s: %v\n", seq, err)
		}
	}
	fmt.Println("  Reset ID sequences")

	// Seed a supervisor so the app is usable right after a reset
	_, err = tx.Exec(ctx,
		`INSERT INTO users (username, full_name, role) VALUES ('supervisor', 'Default Supervisor', 'supervisor')`)
	if err != nil {
		log.Fatalf("Failed to seed supervisor: %v\n", err)
	}

	// Standard daily checklist catalog
	items := []struct {
		category string
		name     string
	}{
		{"safety", "Seatbelt"},
		{"safety", "Horn"},
		{"safety", "Lights"},
		{"safety", "Backup alarm"},
		{"mechanical", "Brakes"},
		{"mechanical", "Steering"},
		{"mechanical", "Forks and mast"},
		{"mechanical", "Tires"},
		{"fluids", "Hydraulic fluid level"},
		{"fluids", "Engine oil level"},
		{"fluids", "Fuel or battery charge"},
	}

	for _, item := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO checklist_items (category, item_name, is_active) VALUES ($1, $2, true)`,
			item.category, item.name)
		if err != nil {
			log.Fatalf("Failed to seed checklist item %s: %v\n", item.name, err)
		}
	}
	fmt.Printf("  Seeded supervisor and %d checklist items\n", len(items))

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Database reset complete.")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
