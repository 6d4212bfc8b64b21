package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rjsdud322727/smart-store/database"
)

// IndexPage renders the scan/registration page
func IndexPage(c *fiber.Ctx) error {
	return c.Render("pages/index", fiber.Map{
		"Title":  "Smart Store",
		"Active": "home",
	}, "layouts/base")
}

// BarcodePage renders the barcode list page
func BarcodePage(c *fiber.Ctx) error {
	return c.Render("pages/barcode", fiber.Map{
		"Title":  "Barcodes",
		"Active": "barcode",
	}, "layouts/base")
}

// ReceiptsPage renders the receipts page
func ReceiptsPage(c *fiber.Ctx) error {
	return c.Render("pages/receipts", fiber.Map{
		"Title":  "Receipts",
		"Active": "receipts",
	}, "layouts/base")
}

// RestockPage renders the restock list page
func RestockPage(c *fiber.Ctx) error {
	return c.Render("pages/restock", fiber.Map{
		"Title":  "Restock List",
		"Active": "restock",
	}, "layouts/base")
}

// StatisticsPage renders the sales statistics page
func StatisticsPage(c *fiber.Ctx) error {
	return c.Render("pages/statistics", fiber.Map{
		"Title":  "Sales Statistics",
		"Active": "statistics",
	}, "layouts/base")
}

// GetSQLLogs returns the recent SQL query log
func GetSQLLogs(c *fiber.Ctx) error {
	return c.JSON(database.SQLLogger.GetQueries())
}

// ClearSQLLogs clears the SQL query log
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{"message": "query log cleared"})
}
