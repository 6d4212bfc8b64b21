package database

import (
	"fmt"
	"log"
	"time"

	"github.com/rjsdud322727/smart-store/barcodes"
	"github.com/rjsdud322727/smart-store/models"
	"gorm.io/gorm"
)

// SeedData seeds initial data into empty tables
func SeedData(db *gorm.DB) error {
	log.Println("Checking if database needs seeding...")

	// Check if data already exists
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	log.Println("Database is empty. Starting seed process...")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		products, err := seedProducts(tx)
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		if err := seedSaleHistory(tx, products); err != nil {
			return fmt.Errorf("failed to seed sale history: %w", err)
		}

		log.Printf("Seed completed: %d products", len(products))
		return nil
	})
}

// seedProducts creates a set of typical convenience store items
func seedProducts(tx *gorm.DB) ([]models.Product, error) {
	today := time.Now()
	expires := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}

	items := []struct {
		code     string // 12 digits, checksum appended below
		name     string
		days     int
		quantity int
		price    int
	}{
		{"880123456789", "Triangle Kimbap Tuna", 2, 12, 1500},
		{"880123456790", "Banana Milk 240ml", 5, 24, 1700},
		{"880123456791", "Shin Ramyun Cup", 180, 30, 1200},
		{"880123456792", "Choco Pie 6-pack", 60, 8, 4800},
		{"880123456793", "Ham & Cheese Sandwich", 1, 6, 3200},
		{"880123456794", "Americano Can 275ml", 90, 18, 1900},
		{"880123456795", "Plain Yogurt 4-pack", 3, 10, 3600},
		{"880123456796", "Mineral Water 2L", 365, 40, 1100},
	}

	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		code, err := barcodes.Complete(it.code)
		if err != nil {
			return nil, fmt.Errorf("seed barcode %q: %w", it.code, err)
		}
		products = append(products, models.Product{
			Barcode:        code,
			ProductName:    it.name,
			ExpirationDate: expires(it.days),
			Quantity:       it.quantity,
			Price:          it.price,
		})
	}

	if err := tx.Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// seedSaleHistory writes a trailing week of sale events so the
// velocity analyzer has something to chew on from a fresh database.
func seedSaleHistory(tx *gorm.DB, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	now := time.Now()
	var sales []models.Sale
	for day := 6; day >= 0; day-- {
		for i, p := range products {
			// Vary which products sell on which days
			if (day+i)%3 == 0 {
				continue
			}
			qty := 1 + (day+i)%3
			sales = append(sales, models.Sale{
				Barcode:        p.Barcode,
				ProductName:    p.ProductName,
				ExpirationDate: p.ExpirationDate,
				Quantity:       qty,
				Price:          p.Price,
				SaleDate:       now.AddDate(0, 0, -day),
			})
		}
	}

	return tx.Create(&sales).Error
}
