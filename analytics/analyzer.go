package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/rjsdud322727/smart-store/models"
	"gorm.io/gorm"
)

// Window lengths used by the reporting endpoints, in days.
const (
	VelocityWindowDays = 7
	RevenueWindowDays  = 30
)

// Analyzer answers sales questions against the store.
type Analyzer struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalyzer creates an analyzer bound to db.
func NewAnalyzer(db *gorm.DB) *Analyzer {
	return &Analyzer{db: db, now: time.Now}
}

// WithClock overrides the analyzer's clock, for tests.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WindowSales returns sale events from the trailing window, oldest id
// first so aggregation order is stable.
func (a *Analyzer) WindowSales(days int) ([]models.Sale, error) {
	start := midnight(a.now()).AddDate(0, 0, -days)

	var sales []models.Sale
	err := a.db.
		Where("sale_date >= ?", start).
		Order("id").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("query sale window: %w", err)
	}
	return sales, nil
}

// StockLevels maps product name to current quantity for products whose
// expiration date is still in the future. Expired rows and rows
// without an expiration date are excluded from the lookup.
func (a *Analyzer) StockLevels() (map[string]int, error) {
	var rows []struct {
		ProductName string
		Quantity    int
	}
	err := a.db.Model(&models.Product{}).
		Select("product_name, quantity").
		Where("expiration_date >= ?", a.now()).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query stock levels: %w", err)
	}

	stock := make(map[string]int, len(rows))
	for _, r := range rows {
		stock[r.ProductName] = r.Quantity
	}
	return stock, nil
}

// Recommendations runs the full velocity-to-restock pipeline.
func (a *Analyzer) Recommendations() ([]Recommendation, error) {
	sales, err := a.WindowSales(VelocityWindowDays)
	if err != nil {
		return nil, err
	}

	stock, err := a.StockLevels()
	if err != nil {
		return nil, err
	}

	return Recommend(AggregateSales(sales), stock), nil
}

// DailyRevenue is one day's total revenue.
type DailyRevenue struct {
	SaleDate     string `json:"sale_date"`
	TotalRevenue int    `json:"total_revenue"`
}

// DailyRevenues sums quantity*price per calendar day over the trailing
// revenue window, ordered by date ascending.
func (a *Analyzer) DailyRevenues() ([]DailyRevenue, error) {
	sales, err := a.WindowSales(RevenueWindowDays)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, s := range sales {
		totals[s.SaleDate.Format("2006-01-02")] += s.Quantity * s.Price
	}

	result := make([]DailyRevenue, 0, len(totals))
	for day, revenue := range totals {
		result = append(result, DailyRevenue{SaleDate: day, TotalRevenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SaleDate < result[j].SaleDate })
	return result, nil
}

// MonthlySales is one month's sold quantity and mean price.
type MonthlySales struct {
	Month         string  `json:"month"`
	TotalQuantity int     `json:"total_quantity"`
	Price         float64 `json:"price"`
}

// MonthlySalesThisYear groups the current year's sale events by month.
func (a *Analyzer) MonthlySalesThisYear() ([]MonthlySales, error) {
	now := a.now()
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	var sales []models.Sale
	err := a.db.
		Where("sale_date >= ?", yearStart).
		Order("id").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("query yearly sales: %w", err)
	}

	type acc struct {
		quantity int
		priceSum int
		events   int
	}
	byMonth := make(map[string]*acc)
	for _, s := range sales {
		month := s.SaleDate.Format("2006-01")
		m, ok := byMonth[month]
		if !ok {
			m = &acc{}
			byMonth[month] = m
		}
		m.quantity += s.Quantity
		m.priceSum += s.Price
		m.events++
	}

	result := make([]MonthlySales, 0, len(byMonth))
	for month, m := range byMonth {
		result = append(result, MonthlySales{
			Month:         month,
			TotalQuantity: m.quantity,
			Price:         float64(m.priceSum) / float64(m.events),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}
