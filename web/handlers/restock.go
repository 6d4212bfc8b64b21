package handlers

import (
	"math/rand"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rjsdud322727/smart-store/analytics"
	"github.com/rjsdud322727/smart-store/barcodes"
	"github.com/rjsdud322727/smart-store/database"
	"github.com/rjsdud322727/smart-store/exports"
	"github.com/rjsdud322727/smart-store/models"
)

const restockFileName = "restock_needed.xlsx"

// RestockList lists unexpired products that are out of stock, each
// with the default order quantity
func RestockList(c *fiber.Ctx) error {
	db := database.GetDB()

	var products []models.Product
	err := db.
		Where("quantity = 0 AND expiration_date >= ?", time.Now()).
		Find(&products).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load restock list",
		})
	}

	type restockItem struct {
		Name     string `json:"name"`
		Price    int    `json:"price"`
		Quantity int    `json:"quantity"`
	}
	result := make([]restockItem, 0, len(products))
	for _, p := range products {
		result = append(result, restockItem{Name: p.ProductName, Price: p.Price, Quantity: 20})
	}
	return c.JSON(result)
}

// GenerateRestockExcel exports depleted and expired products to a
// spreadsheet in the export directory
func GenerateRestockExcel(exportDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db := database.GetDB()

		var products []models.Product
		err := db.
			Where("quantity <= 0 OR expiration_date < ?", time.Now()).
			Find(&products).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load products",
			})
		}

		if len(products) == 0 {
			return c.JSON(fiber.Map{"message": "no products need restocking"})
		}

		rows := make([]exports.Row, 0, len(products))
		for _, p := range products {
			row := exports.Row{Barcode: p.Barcode, Name: p.ProductName}
			if p.ExpirationDate != nil {
				row.ExpirationDate = p.ExpirationDate.Format("2006-01-02")
			}
			rows = append(rows, row)
		}

		path := filepath.Join(exportDir, restockFileName)
		if err := exports.WriteRestock(path, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to write spreadsheet",
			})
		}

		return c.JSON(fiber.Map{
			"message": "restock spreadsheet generated",
			"file":    path,
		})
	}
}

// customRestockItem is one caller-supplied restock line; missing
// barcodes and expiration dates are filled in
type customRestockItem struct {
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Quantity       int    `json:"quantity"`
	Price          int    `json:"price"`
}

// CustomRestockExcel exports a caller-supplied restock order,
// generating barcodes and default expiration dates where absent
func CustomRestockExcel(exportDir string, rng *rand.Rand) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Products []customRestockItem `json:"products"`
		}
		if err := c.BodyParser(&req); err != nil || len(req.Products) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no products to restock",
			})
		}

		rows := make([]exports.Row, 0, len(req.Products))
		for _, item := range req.Products {
			if item.Barcode == "" {
				item.Barcode = barcodes.Random(rng)
			}
			if item.ExpirationDate == "" {
				item.ExpirationDate = time.Now().AddDate(0, 0, 30).Format("2006-01-02")
			}
			rows = append(rows, exports.Row{
				Barcode:        item.Barcode,
				Name:           item.Name,
				ExpirationDate: item.ExpirationDate,
				Quantity:       item.Quantity,
				Price:          item.Price,
			})
		}

		path := filepath.Join(exportDir, restockFileName)
		if err := exports.WriteRestock(path, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to write spreadsheet",
			})
		}

		return c.JSON(fiber.Map{
			"message": "restock spreadsheet generated",
			"file":    path,
		})
	}
}

// BestSellers returns restock recommendations with an explanation
func BestSellers(analyzer *analytics.Analyzer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recommendations, err := analyzer.Recommendations()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute recommendations",
			})
		}
		if recommendations == nil {
			recommendations = []analytics.Recommendation{}
		}

		return c.JSON(fiber.Map{
			"recommendations": recommendations,
			"explanation":     analytics.Explain(recommendations),
		})
	}
}
