package main

import (
	"log"

	"newsdesk/internal/db"
	"newsdesk/internal/seed"

	"github.com/joho/godotenv"
)

// Rebuilds the schema and loads the development fixture set. Destructive:
// every table is dropped first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(gdb, seed.DevData()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
