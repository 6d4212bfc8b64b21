package database

import (
	"fmt"
	"log"

	"github.com/rjsdud322727/smart-store/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	// Create indexes
	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CheckConnection verifies the database connection
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

// CreateIndexes creates performance indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_products_expiration", "CREATE INDEX IF NOT EXISTS idx_products_expiration ON products(expiration_date)"},
		{"idx_products_quantity", "CREATE INDEX IF NOT EXISTS idx_products_quantity ON products(quantity)"},
		{"idx_sales_date", "CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date)"},
		{"idx_sales_barcode", "CREATE INDEX IF NOT EXISTS idx_sales_barcode ON sales(barcode)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Printf("  ⚠ Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("  ✓ Created index: %s", idx.name)
		}
	}

	return nil
}
