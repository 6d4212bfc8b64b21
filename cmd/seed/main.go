package main

import (
	"flag"
	"log"

	"github.com/rjsdud322727/smart-store/config"
	"github.com/rjsdud322727/smart-store/database"
	"github.com/rjsdud322727/smart-store/models"
)

func main() {
	var (
		migrate = flag.Bool("migrate", false, "Run migration before seeding")
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

	if *migrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	if err := database.SeedData(database.DB); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	var products, sales int64
	database.DB.Model(&models.Product{}).Count(&products)
	database.DB.Model(&models.Sale{}).Count(&sales)
	log.Printf("Database now holds %d products and %d sale events", products, sales)
}
