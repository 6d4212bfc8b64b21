package web

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/rjsdud322727/smart-store/analytics"
	"github.com/rjsdud322727/smart-store/simulation"
	"github.com/rjsdud322727/smart-store/web/handlers"
	"github.com/rjsdud322727/smart-store/web/middleware"
)

// Deps carries the services the route handlers need.
type Deps struct {
	Analyzer   *analytics.Analyzer
	Simulator  *simulation.Simulator
	Recent     *simulation.RecentBuffer
	BarcodeDir string
	ExportDir  string
}

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(deps Deps) *Server {
	// Initialize template engine
	engine := html.New("./web/templates", ".html")

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	})
	engine.AddFunc("formatPrice", func(price int) string {
		return fmt.Sprintf("%d KRW", price)
	})

	// Create Fiber app with template engine
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Log error details once at the boundary
			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			if c.Get("Content-Type") == "application/json" {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title": "Error",
				"Error": err.Error(),
				"Code":  code,
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	// Custom middleware to inject SQL logs into context
	app.Use(middleware.SQLDebugMiddleware())

	// Static files, including generated barcode images
	app.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(app, deps)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app, for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, deps Deps) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Pages
	app.Get("/", handlers.IndexPage)
	app.Get("/barcode", handlers.BarcodePage)
	app.Get("/receipts", handlers.ReceiptsPage)
	app.Get("/restock_list", handlers.RestockPage)
	app.Get("/sales_statistics", handlers.StatisticsPage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	// Expiry alerts and expired stock
	app.Get("/products/alerts", handlers.AlertProducts)
	app.Get("/products/expired", handlers.ExpiredProducts)

	// Barcode image generation
	app.Post("/generate_barcode", handlers.GenerateBarcode(deps.BarcodeDir))

	// API endpoints
	api := app.Group("/api")

	// Product management
	api.Get("/products", handlers.ProductList)
	api.Get("/products/:barcode", handlers.ProductByBarcode)
	api.Post("/add_product", handlers.ProductCreate(deps.BarcodeDir))
	api.Post("/upload_excel", handlers.ProductImport)
	api.Delete("/discard_product/:barcode", handlers.ProductDiscard)
	api.Post("/discard_products", handlers.ProductsDiscard)

	// Sales
	api.Post("/sell_product", handlers.SellProduct)
	api.Get("/daily_sales", handlers.DailySales(deps.Analyzer))
	api.Get("/monthly_sales", handlers.MonthlySales(deps.Analyzer))

	// Purchase simulation
	api.Get("/recent_purchases", handlers.RecentPurchases(deps.Recent))
	api.Post("/ai_purchase", handlers.TriggerPurchase(deps.Simulator))

	// Restock
	api.Get("/get_restock_list", handlers.RestockList)
	api.Post("/generate_restock_excel", handlers.GenerateRestockExcel(deps.ExportDir))
	api.Post("/check_and_generate_restock_excel", handlers.CustomRestockExcel(deps.ExportDir, rng))
	api.Get("/daily_best_sellers", handlers.BestSellers(deps.Analyzer))
}
