package main

import (
	"log"
	"os"

	"newsdesk/internal/db"
	"newsdesk/internal/router"
	"newsdesk/internal/seed"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := seed.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	r := gin.Default()
	router.Register(r, gdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("newsdesk server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
