// Package analytics aggregates the sale log into sales velocity,
// revenue statistics and restock recommendations.
package analytics

import (
	"sort"

	"github.com/rjsdud322727/smart-store/models"
)

// ProductSales summarizes one product's sales inside the trailing window.
type ProductSales struct {
	Name      string
	TotalSold int
	AvgPrice  float64
	DaysSold  int
	DailyAvg  float64
}

// AggregateSales groups sale events by product name and computes total
// units sold, mean event price, the count of distinct calendar dates
// with at least one sale, and the per-day average. The result is
// ordered by total sold descending; ties keep first-seen order, which
// is not load-bearing.
func AggregateSales(sales []models.Sale) []ProductSales {
	type acc struct {
		total    int
		priceSum int
		events   int
		days     map[string]struct{}
	}

	byName := make(map[string]*acc)
	var order []string

	for _, s := range sales {
		a, ok := byName[s.ProductName]
		if !ok {
			a = &acc{days: make(map[string]struct{})}
			byName[s.ProductName] = a
			order = append(order, s.ProductName)
		}
		a.total += s.Quantity
		a.priceSum += s.Price
		a.events++
		a.days[s.SaleDate.Format("2006-01-02")] = struct{}{}
	}

	result := make([]ProductSales, 0, len(order))
	for _, name := range order {
		a := byName[name]
		ps := ProductSales{
			Name:      name,
			TotalSold: a.total,
			AvgPrice:  float64(a.priceSum) / float64(a.events),
			DaysSold:  len(a.days),
		}
		if ps.DaysSold > 0 {
			ps.DailyAvg = float64(ps.TotalSold) / float64(ps.DaysSold)
		}
		result = append(result, ps)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSold > result[j].TotalSold
	})
	return result
}
