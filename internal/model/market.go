package model

import "time"

// MarketOpen reports whether the US stock market is plausibly open at
// the given instant: Monday through Friday, 9 AM to 4 PM. This is an
// approximation for display purposes, not an exchange calendar.
func MarketOpen(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	h := now.Hour()
	return h >= 9 && h <= 16
}
