package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rjsdud322727/smart-store/analytics"
	"github.com/rjsdud322727/smart-store/database"
	"github.com/rjsdud322727/smart-store/models"
)

// SellProduct records a sale for a scanned barcode
func SellProduct(c *fiber.Ctx) error {
	var req struct {
		Barcode  string `json:"barcode"`
		Quantity int    `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Barcode == "" || req.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "barcode and a positive quantity are required",
		})
	}

	db := database.GetDB()

	var product models.Product
	err := db.First(&product, "barcode = ?", req.Barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load product",
		})
	}

	sale := models.Sale{
		Barcode:        product.Barcode,
		ProductName:    product.ProductName,
		ExpirationDate: product.ExpirationDate,
		Quantity:       req.Quantity,
		Price:          product.Price,
		SaleDate:       time.Now(),
	}
	if err := db.Create(&sale).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record sale",
		})
	}

	return c.JSON(fiber.Map{"message": "sale recorded"})
}

// DailySales reports revenue per day over the trailing month
func DailySales(analyzer *analytics.Analyzer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		revenues, err := analyzer.DailyRevenues()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute daily sales",
			})
		}
		return c.JSON(revenues)
	}
}

// MonthlySales reports quantity and average price per month this year
func MonthlySales(analyzer *analytics.Analyzer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		monthly, err := analyzer.MonthlySalesThisYear()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute monthly sales",
			})
		}
		return c.JSON(monthly)
	}
}
