package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestApply_MarkdownTable(t *testing.T) {
	today := date(2025, 3, 10)

	tests := []struct {
		name      string
		daysAhead int
		price     int
		wantPrice int
		wantLabel string
	}{
		{"three days left", 3, 1000, 900, "10%"},
		{"two days left", 2, 1000, 800, "20%"},
		{"one day left", 1, 1000, 700, "30%"},
		{"expires today", 0, 1000, 1000, "none"},
		{"already expired", -2, 1000, 1000, "none"},
		{"far future", 30, 1000, 1000, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := today.AddDate(0, 0, tt.daysAhead)
			price, label := Apply(tt.price, &exp, today)
			assert.Equal(t, tt.wantPrice, price)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestApply_NoExpirationDate(t *testing.T) {
	price, label := Apply(2500, nil, date(2025, 3, 10))
	assert.Equal(t, 2500, price)
	assert.Equal(t, LabelNone, label)
}

func TestApply_IgnoresTimeOfDay(t *testing.T) {
	// Expiration late in the evening two days out still counts as two days
	exp := time.Date(2025, 3, 12, 23, 59, 0, 0, time.Local)
	today := time.Date(2025, 3, 10, 8, 15, 0, 0, time.Local)

	price, label := Apply(10000, &exp, today)
	assert.Equal(t, 8000, price)
	assert.Equal(t, "20%", label)
}

func TestApply_Idempotent(t *testing.T) {
	exp := date(2025, 3, 13)
	today := date(2025, 3, 10)

	p1, l1 := Apply(1999, &exp, today)
	p2, l2 := Apply(1999, &exp, today)
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
}

func TestApply_RoundsHalfToEven(t *testing.T) {
	exp := date(2025, 3, 13) // three days out, factor 0.9
	today := date(2025, 3, 10)

	// 15 * 0.9 = 13.5 rounds to 14, 25 * 0.9 = 22.5 rounds to 22
	price, _ := Apply(15, &exp, today)
	assert.Equal(t, 14, price)
	price, _ = Apply(25, &exp, today)
	assert.Equal(t, 22, price)
}

func TestDaysLeft_Negative(t *testing.T) {
	assert.Equal(t, -3, DaysLeft(date(2025, 3, 7), date(2025, 3, 10)))
}
