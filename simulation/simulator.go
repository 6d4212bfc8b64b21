package simulation

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rjsdud322727/smart-store/models"
)

// At most this many distinct products are bought per run.
const maxPurchasesPerRun = 3

// Simulator randomly buys products to emulate background demand. Each
// run decrements stock and appends sale events in a single
// transaction: either the whole batch commits or none of it does.
type Simulator struct {
	db     *gorm.DB
	recent *RecentBuffer
	rng    *rand.Rand
	now    func() time.Time
}

// NewSimulator creates a simulator writing to db and feeding recent.
func NewSimulator(db *gorm.DB, recent *RecentBuffer) *Simulator {
	return &Simulator{
		db:     db,
		recent: recent,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// WithRand overrides the random source, for tests.
func (s *Simulator) WithRand(rng *rand.Rand) *Simulator {
	s.rng = rng
	return s
}

// WithClock overrides the simulator's clock, for tests.
func (s *Simulator) WithClock(now func() time.Time) *Simulator {
	s.now = now
	return s
}

// Run performs one purchase pass and returns how many units were
// bought. With no stocked products it is a logged no-op. The recent
// feed is only updated after the transaction commits.
func (s *Simulator) Run() (int, error) {
	runID := uuid.NewString()

	var purchased []Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Where("quantity > 0").Find(&products).Error; err != nil {
			return fmt.Errorf("load stocked products: %w", err)
		}

		if len(products) == 0 {
			log.Printf("simulation %s: no products in stock, nothing to buy", runID)
			return nil
		}

		// Uniform k in [1,3], then k distinct products without
		// replacement via shuffle.
		k := s.rng.Intn(maxPurchasesPerRun) + 1
		if k > len(products) {
			k = len(products)
		}
		s.rng.Shuffle(len(products), func(i, j int) {
			products[i], products[j] = products[j], products[i]
		})

		now := s.now()
		for _, p := range products[:k] {
			// Guard against concurrent sales draining the row
			res := tx.Model(&models.Product{}).
				Where("barcode = ? AND quantity > 0", p.Barcode).
				UpdateColumn("quantity", gorm.Expr("quantity - 1"))
			if res.Error != nil {
				return fmt.Errorf("decrement %s: %w", p.Barcode, res.Error)
			}
			if res.RowsAffected == 0 {
				continue
			}

			sale := models.Sale{
				Barcode:        p.Barcode,
				ProductName:    p.ProductName,
				ExpirationDate: p.ExpirationDate,
				Quantity:       1,
				Price:          p.Price,
				SaleDate:       now,
			}
			if err := tx.Create(&sale).Error; err != nil {
				return fmt.Errorf("record sale for %s: %w", p.Barcode, err)
			}

			purchased = append(purchased, Purchase{
				Barcode:     p.Barcode,
				Name:        p.ProductName,
				Price:       p.Price,
				PurchasedAt: now,
			})
			log.Printf("simulation %s: bought %s (%s)", runID, p.ProductName, p.Barcode)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("purchase simulation %s: %w", runID, err)
	}

	for _, p := range purchased {
		s.recent.Add(p)
	}
	return len(purchased), nil
}
