package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rjsdud322727/smart-store/barcodes"
)

// GenerateBarcode renders a barcode image for a given number
func GenerateBarcode(barcodeDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Barcode string `json:"barcode"`
		}
		if err := c.BodyParser(&req); err != nil || req.Barcode == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "barcode number is required",
			})
		}

		if err := barcodes.Validate(req.Barcode); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid barcode: " + err.Error(),
			})
		}

		if _, err := barcodes.SaveImage(req.Barcode, barcodeDir); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to generate barcode image",
			})
		}

		return c.JSON(fiber.Map{
			"message":  "barcode generated",
			"filename": "/static/barcodes/" + req.Barcode + ".png",
		})
	}
}
