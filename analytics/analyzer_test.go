package analytics

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rjsdud322727/smart-store/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func TestAnalyzer_WindowSalesExcludesOldEvents(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	analyzer := NewAnalyzer(db).WithClock(func() time.Time { return now })

	inWindow := saleOn("Fresh", 2, 1000, now.AddDate(0, 0, -2))
	outOfWindow := saleOn("Stale", 1, 1000, now.AddDate(0, 0, -9))
	require.NoError(t, db.Create(&inWindow).Error)
	require.NoError(t, db.Create(&outOfWindow).Error)

	sales, err := analyzer.WindowSales(VelocityWindowDays)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Fresh", sales[0].ProductName)
}

func TestAnalyzer_StockLevelsSkipExpired(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	analyzer := NewAnalyzer(db).WithClock(func() time.Time { return now })

	future := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)
	require.NoError(t, db.Create(&[]models.Product{
		{Barcode: "8801234567893", ProductName: "Valid", ExpirationDate: &future, Quantity: 7, Price: 1000},
		{Barcode: "8801234567909", ProductName: "Expired", ExpirationDate: &past, Quantity: 5, Price: 1000},
		{Barcode: "8801234567916", ProductName: "No Expiry", Quantity: 3, Price: 1000},
	}).Error)

	stock, err := analyzer.StockLevels()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Valid": 7}, stock)
}

func TestAnalyzer_Recommendations(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	analyzer := NewAnalyzer(db).WithClock(func() time.Time { return now })

	future := now.AddDate(0, 0, 30)
	require.NoError(t, db.Create(&models.Product{
		Barcode: "8801234567893", ProductName: "Banana Milk 240ml",
		ExpirationDate: &future, Quantity: 5, Price: 1700,
	}).Error)

	// 3 units/day over three days, stock 5 < 9
	for i := 1; i <= 3; i++ {
		s := saleOn("Banana Milk 240ml", 3, 1700, now.AddDate(0, 0, -i))
		require.NoError(t, db.Create(&s).Error)
	}

	recommendations, err := analyzer.Recommendations()
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
	assert.Equal(t, 5, recommendations[0].CurrentStock)
	assert.Equal(t, 3.0, recommendations[0].DailyAvgSales)
	assert.Equal(t, 20, recommendations[0].RecommendedQuantity)
}

func TestAnalyzer_DailyRevenues(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	analyzer := NewAnalyzer(db).WithClock(func() time.Time { return now })

	day1 := now.AddDate(0, 0, -1)
	sales := []models.Sale{
		saleOn("A", 2, 1000, day1),
		saleOn("B", 1, 500, day1),
		saleOn("A", 1, 1000, now),
	}
	require.NoError(t, db.Create(&sales).Error)

	revenues, err := analyzer.DailyRevenues()
	require.NoError(t, err)
	require.Len(t, revenues, 2)
	assert.Equal(t, day1.Format("2006-01-02"), revenues[0].SaleDate)
	assert.Equal(t, 2500, revenues[0].TotalRevenue)
	assert.Equal(t, 1000, revenues[1].TotalRevenue)
}

func TestAnalyzer_MonthlySalesThisYear(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	analyzer := NewAnalyzer(db).WithClock(func() time.Time { return now })

	feb := time.Date(2025, 2, 5, 12, 0, 0, 0, time.Local)
	lastYear := time.Date(2024, 12, 20, 12, 0, 0, 0, time.Local)
	sales := []models.Sale{
		saleOn("A", 2, 1000, feb),
		saleOn("A", 3, 2000, feb.AddDate(0, 0, 1)),
		saleOn("A", 9, 9000, lastYear), // outside the current year
	}
	require.NoError(t, db.Create(&sales).Error)

	monthly, err := analyzer.MonthlySalesThisYear()
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, "2025-02", monthly[0].Month)
	assert.Equal(t, 5, monthly[0].TotalQuantity)
	assert.Equal(t, 1500.0, monthly[0].Price)
}
