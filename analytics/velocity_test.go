package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsdud322727/smart-store/models"
)

func saleOn(name string, qty, price int, day time.Time) models.Sale {
	return models.Sale{
		Barcode:     "8801234567893",
		ProductName: name,
		Quantity:    qty,
		Price:       price,
		SaleDate:    day,
	}
}

func TestAggregateSales_Empty(t *testing.T) {
	assert.Empty(t, AggregateSales(nil))
}

func TestAggregateSales_DailyAverage(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	// Sold on three distinct days with quantities 2, 3 and 4
	sales := []models.Sale{
		saleOn("Banana Milk 240ml", 2, 1700, base),
		saleOn("Banana Milk 240ml", 3, 1700, base.AddDate(0, 0, 1)),
		saleOn("Banana Milk 240ml", 4, 1700, base.AddDate(0, 0, 2)),
	}

	result := AggregateSales(sales)
	require.Len(t, result, 1)
	assert.Equal(t, 9, result[0].TotalSold)
	assert.Equal(t, 3, result[0].DaysSold)
	assert.Equal(t, 3.0, result[0].DailyAvg)
	assert.Equal(t, 1700.0, result[0].AvgPrice)
}

func TestAggregateSales_CountsDistinctDaysOnce(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

	// Two sales on the same calendar day are one sale day
	sales := []models.Sale{
		saleOn("Shin Ramyun Cup", 1, 1200, base),
		saleOn("Shin Ramyun Cup", 5, 1200, base.Add(8*time.Hour)),
	}

	result := AggregateSales(sales)
	require.Len(t, result, 1)
	assert.Equal(t, 6, result[0].TotalSold)
	assert.Equal(t, 1, result[0].DaysSold)
	assert.Equal(t, 6.0, result[0].DailyAvg)
}

func TestAggregateSales_OrdersByTotalSold(t *testing.T) {
	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

	sales := []models.Sale{
		saleOn("Slow Seller", 1, 1000, day),
		saleOn("Best Seller", 7, 1500, day),
		saleOn("Mid Seller", 3, 2000, day),
	}

	result := AggregateSales(sales)
	require.Len(t, result, 3)
	assert.Equal(t, "Best Seller", result[0].Name)
	assert.Equal(t, "Mid Seller", result[1].Name)
	assert.Equal(t, "Slow Seller", result[2].Name)
}

func TestAggregateSales_TiesKeepFirstSeenOrder(t *testing.T) {
	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

	sales := []models.Sale{
		saleOn("First", 2, 1000, day),
		saleOn("Second", 2, 1000, day),
	}

	result := AggregateSales(sales)
	require.Len(t, result, 2)
	assert.Equal(t, "First", result[0].Name)
	assert.Equal(t, "Second", result[1].Name)
}

func TestAggregateSales_AvgPriceIsMeanOfEvents(t *testing.T) {
	day := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)

	// Event prices 1000 and 2000 average to 1500 regardless of quantity
	sales := []models.Sale{
		saleOn("Choco Pie 6-pack", 5, 1000, day),
		saleOn("Choco Pie 6-pack", 1, 2000, day.AddDate(0, 0, 1)),
	}

	result := AggregateSales(sales)
	require.Len(t, result, 1)
	assert.Equal(t, 1500.0, result[0].AvgPrice)
}
