package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rjsdud322727/smart-store/barcodes"
	"github.com/rjsdud322727/smart-store/database"
	"github.com/rjsdud322727/smart-store/exports"
	"github.com/rjsdud322727/smart-store/models"
	"github.com/rjsdud322727/smart-store/pricing"
)

// productResponse is the JSON shape for product listings, with the
// expiration date rendered as a plain date.
type productResponse struct {
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Quantity       int    `json:"quantity"`
	Price          int    `json:"price"`
}

func toProductResponse(p models.Product) productResponse {
	r := productResponse{
		Barcode:  p.Barcode,
		Name:     p.ProductName,
		Quantity: p.Quantity,
		Price:    p.Price,
	}
	if p.ExpirationDate != nil {
		r.ExpirationDate = p.ExpirationDate.Format("2006-01-02")
	}
	return r
}

// ProductList returns all products
func ProductList(c *fiber.Ctx) error {
	db := database.GetDB()

	var products []models.Product
	if err := db.Order("product_name").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load products",
		})
	}

	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return c.JSON(result)
}

// ProductByBarcode returns a single product
func ProductByBarcode(c *fiber.Ctx) error {
	db := database.GetDB()
	barcode := c.Params("barcode")

	var product models.Product
	err := db.First(&product, "barcode = ?", barcode).Error
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

	return c.JSON(toProductResponse(product))
}

// createProductRequest is the payload for registering a product
type createProductRequest struct {
	Barcode    string `json:"barcode"`
	Name       string `json:"name"`
	Expiration string `json:"expiration"`
	Quantity   int    `json:"quantity"`
	Price      int    `json:"price"`
}

// ProductCreate registers a product and renders its barcode image
func ProductCreate(barcodeDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createProductRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.Barcode == "" || req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "barcode and name are required",
			})
		}
		if req.Quantity < 0 || req.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "quantity and price must not be negative",
			})
		}

		product := models.Product{
			Barcode:     req.Barcode,
			ProductName: req.Name,
			Quantity:    req.Quantity,
			Price:       req.Price,
		}
		if req.Expiration != "" {
			expiration, err := time.Parse("2006-01-02", req.Expiration)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "expiration must be YYYY-MM-DD",
				})
			}
			product.ExpirationDate = &expiration
		}

		db := database.GetDB()
		if err := db.Create(&product).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create product",
			})
		}

		imagePath, err := barcodes.SaveImage(product.Barcode, barcodeDir)
		if err != nil {
			// The product row exists either way; report the render failure
			log.Printf("barcode image for %s: %v", product.Barcode, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "product created but barcode image failed",
			})
		}

		return c.JSON(fiber.Map{
			"message":       "product and barcode created",
			"barcode_image": imagePath,
		})
	}
}

// ProductImport imports products from an uploaded spreadsheet.
// Malformed rows are skipped; the rest of the batch continues.
func ProductImport(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not open uploaded file",
		})
	}
	defer file.Close()

	products, rowErrors, err := exports.ReadProducts(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not read spreadsheet: " + err.Error(),
		})
	}

	db := database.GetDB()
	imported := 0
	skipped := len(rowErrors)
	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			// Per-row isolation: a duplicate or constraint failure
			// skips the row, not the batch
			log.Printf("import skipped barcode %s: %v", product.Barcode, err)
			skipped++
			continue
		}
		imported++
	}
	for _, re := range rowErrors {
		log.Printf("import %v", re)
	}

	return c.JSON(fiber.Map{
		"message":  "spreadsheet import finished",
		"imported": imported,
		"skipped":  skipped,
	})
}

// ProductDiscard deletes a single product
func ProductDiscard(c *fiber.Ctx) error {
	db := database.GetDB()
	barcode := c.Params("barcode")

	res := db.Delete(&models.Product{}, "barcode = ?", barcode)
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to discard product",
		})
	}
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
		})
	}

	return c.JSON(fiber.Map{"message": "product discarded"})
}

// ProductsDiscard deletes products by barcode list
func ProductsDiscard(c *fiber.Ctx) error {
	var req struct {
		Barcodes []string `json:"barcodes"`
	}
	if err := c.BodyParser(&req); err != nil || len(req.Barcodes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no barcodes to discard",
		})
	}

	db := database.GetDB()
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, "barcode IN ?", req.Barcodes)
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to discard products",
		})
	}

	return c.JSON(fiber.Map{
		"message": "products discarded",
		"deleted": deleted,
	})
}

// alertProduct is a product close to expiry with its markdown applied
type alertProduct struct {
	productResponse
	Discount string `json:"discount"`
}

// AlertProducts lists stocked products expiring within three days,
// with markdown pricing applied
func AlertProducts(c *fiber.Ctx) error {
	db := database.GetDB()
	now := time.Now()

	var products []models.Product
	err := db.
		Where("expiration_date <= ? AND quantity > 0", now.AddDate(0, 0, 3)).
		Find(&products).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load alert products",
		})
	}

	result := make([]alertProduct, 0, len(products))
	for _, p := range products {
		price, label := pricing.Apply(p.Price, p.ExpirationDate, now)
		item := alertProduct{productResponse: toProductResponse(p), Discount: label}
		item.Price = price
		result = append(result, item)
	}
	return c.JSON(result)
}

// expiredProduct identifies a product that should leave the shelf
type expiredProduct struct {
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
}

// ExpiredProducts lists products that are expired or out of stock
func ExpiredProducts(c *fiber.Ctx) error {
	db := database.GetDB()

	var products []models.Product
	err := db.
		Where("expiration_date < ? OR quantity <= 0", time.Now()).
		Find(&products).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load expired products",
		})
	}

	result := make([]expiredProduct, 0, len(products))
	for _, p := range products {
		item := expiredProduct{Barcode: p.Barcode, Name: p.ProductName}
		if p.ExpirationDate != nil {
			item.ExpirationDate = p.ExpirationDate.Format("2006-01-02")
		}
		result = append(result, item)
	}
	return c.JSON(result)
}
