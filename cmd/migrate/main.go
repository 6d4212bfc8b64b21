package main

import (
	"flag"
	"log"

	"github.com/rjsdud322727/smart-store/config"
	"github.com/rjsdud322727/smart-store/database"
)

func main() {
	var (
		check = flag.Bool("check", false, "Only check the database connection")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}
	log.Println("Database connection OK")

	if *check {
		return
	}

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration completed successfully")
}
