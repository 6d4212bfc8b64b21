package analytics

import (
	"fmt"
	"math"
	"strings"
)

// Minimum units suggested per restock order.
const minRestockQuantity = 20

// Recommendation is one restock suggestion derived from sales velocity.
type Recommendation struct {
	Name                string  `json:"name"`
	CurrentStock        int     `json:"current_stock"`
	DailyAvgSales       float64 `json:"daily_avg_sales"`
	RecommendedQuantity int     `json:"recommended_quantity"`
	AvgPrice            int     `json:"avg_price"`
}

// Recommend suggests restocks for products whose current stock would
// not cover three days of sales at the observed rate. Products absent
// from the stock map count as stock 0. Ordering follows the analyzer
// output, so the biggest sellers come first.
func Recommend(sales []ProductSales, stock map[string]int) []Recommendation {
	var recommendations []Recommendation
	for _, ps := range sales {
		currentStock := stock[ps.Name]
		threshold := ps.DailyAvg * 3
		if float64(currentStock) >= threshold {
			continue
		}

		quantity := int(threshold - float64(currentStock))
		if quantity < minRestockQuantity {
			quantity = minRestockQuantity
		}

		recommendations = append(recommendations, Recommendation{
			Name:                ps.Name,
			CurrentStock:        currentStock,
			DailyAvgSales:       math.RoundToEven(ps.DailyAvg*10) / 10,
			RecommendedQuantity: quantity,
			AvgPrice:            int(math.RoundToEven(ps.AvgPrice)),
		})
	}
	return recommendations
}

// Explain renders the recommendation list as a human-readable report.
func Explain(recommendations []Recommendation) string {
	if len(recommendations) == 0 {
		return "No products currently need restocking."
	}

	var b strings.Builder
	b.WriteString("Restock recommendation analysis:\n\n")

	for _, item := range recommendations {
		fmt.Fprintf(&b, "• %s:\n", item.Name)
		fmt.Fprintf(&b, "  - Current stock: %d\n", item.CurrentStock)
		fmt.Fprintf(&b, "  - Daily average sales: %g\n", item.DailyAvgSales)
		fmt.Fprintf(&b, "  - Recommended quantity: %d\n", item.RecommendedQuantity)
		b.WriteString("  - Reason: current stock does not cover three days of sales.\n\n")
	}

	b.WriteString("\nNotes for ordering:\n")
	b.WriteString("1. Recommended quantities are at least 20 units.\n")
	b.WriteString("2. Stock targets are based on three days of sales.\n")
	b.WriteString("3. Consider seasonality and special events before ordering.")

	return b.String()
}
