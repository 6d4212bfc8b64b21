// Package pricing applies the expiry-based markdown policy.
package pricing

import (
	"math"
	"time"
)

// LabelNone marks a product with no active markdown.
const LabelNone = "none"

// DaysLeft returns the whole number of calendar days between today and
// the expiration date. Time of day is ignored on both sides; the
// result is negative for already expired products.
func DaysLeft(expiration, today time.Time) int {
	e := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// Apply returns the discounted price and label for a product given its
// expiration date, evaluated against today. Products without an
// expiration date are never discounted. Pure: same inputs, same output.
func Apply(price int, expiration *time.Time, today time.Time) (int, string) {
	if expiration == nil {
		return price, LabelNone
	}

	switch DaysLeft(*expiration, today) {
	case 3:
		return discounted(price, 0.9), "10%"
	case 2:
		return discounted(price, 0.8), "20%"
	case 1:
		return discounted(price, 0.7), "30%"
	default:
		return price, LabelNone
	}
}

// discounted multiplies and rounds half to even, matching round().
func discounted(price int, factor float64) int {
	return int(math.RoundToEven(float64(price) * factor))
}
