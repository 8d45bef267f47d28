package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"design-service/internal/config"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const schemaPath = "database/schema.sql"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("=== Setting Up Database ===")
	fmt.Println()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Connected to database")
	fmt.Println()

	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatalf("❌ Failed to read schema file: %v", err)
	}

	fmt.Println("Executing schema...")
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatalf("❌ Failed to execute schema: %v", err)
	}

	fmt.Println("✅ Schema executed successfully")
	fmt.Println()

	fmt.Println("=== Verifying Tables ===")
	tables := []string{"projects", "spaces", "images", "custom_prompts", "usage_counters"}

	for _, table := range tables {
		var exists bool
		query := `SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)`
		if err := db.QueryRow(query, table).Scan(&exists); err != nil {
			log.Fatalf("❌ Failed to verify table %s: %v", table, err)
		}

		if !exists {
			log.Fatalf("❌ Table %s is missing", table)
		}

		fmt.Printf("✅ Table %s exists\n", table)
	}

	fmt.Println()
	fmt.Println("=== Database Setup Complete ===")
}
