package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rjsdud322727/smart-store/config"
	"github.com/rjsdud322727/smart-store/database"
	"github.com/rjsdud322727/smart-store/models"
	"github.com/rjsdud322727/smart-store/simulation"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	var (
		runs       = flag.Int("runs", 1, "Number of purchase simulation passes")
		delay      = flag.Duration("delay", 0, "Delay between passes")
		noQueryLog = flag.Bool("no-query-log", false, "Disable query logging during simulation")
	)
	flag.Parse()

	if *runs < 1 {
		log.Fatalf("runs must be at least 1")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if err := database.InitializeWithOptions(&cfg.Database, *noQueryLog); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()
	log.Println("Connected to database successfully")

	recent := simulation.NewRecentBuffer(cfg.Simulator.RecentLimit)
	simulator := simulation.NewSimulator(db, recent)

	total := 0
	for i := 0; i < *runs; i++ {
		if i > 0 && *delay > 0 {
			time.Sleep(*delay)
		}

		bought, err := simulator.Run()
		if err != nil {
			log.Fatalf("Simulation pass %d failed: %v", i+1, err)
		}
		log.Printf("Pass %d: bought %d unit(s)", i+1, bought)
		total += bought
	}

	log.Printf("Simulation completed: %d unit(s) bought over %d pass(es)", total, *runs)
	printSummary(db, recent)
}

// printSummary prints the purchases from this run and current stock
func printSummary(db *gorm.DB, recent *simulation.RecentBuffer) {
	purchases := recent.List()
	if len(purchases) == 0 {
		fmt.Println("\nNo purchases were made (no products in stock).")
		return
	}

	fmt.Println("\nPURCHASES THIS RUN")
	for _, p := range purchases {
		fmt.Printf("  %s  %-30s %6d KRW  %s\n",
			p.Barcode, p.Name, p.Price, p.PurchasedAt.Format("15:04:05"))
	}

	var lowStock []models.Product
	db.Where("quantity <= 3").Order("quantity").Find(&lowStock)
	if len(lowStock) > 0 {
		fmt.Println("\nLOW STOCK AFTER SIMULATION")
		for _, p := range lowStock {
			fmt.Printf("  %-30s qty %d\n", p.ProductName, p.Quantity)
		}
	}
}
