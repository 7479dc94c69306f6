// Package format provides display formatting for numbers, dates, and
// semantic categories. All functions are pure and total: malformed
// input degrades to a best-effort string, never an error.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/marketdash/market-dashboard-backend/internal/model"
)

// Currency formats an amount as US dollars with two decimals and comma
// grouping, e.g. 1234.5 -> "$1,234.56". The minus sign precedes the
// currency symbol for negative amounts.
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + group(fmt.Sprintf("%.2f", amount))
}

// group inserts comma separators into the integer part of a formatted
// decimal string.
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	n := len(intPart)
	for i, r := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + frac
}

// LargeNumber scales a value to a K/M/B/T suffix with two decimals.
// Values below one thousand fall back to plain currency formatting.
func LargeNumber(n float64) string {
	switch {
	case n >= 1e12:
		return fmt.Sprintf("$%.2fT", n/1e12)
	case n >= 1e9:
		return fmt.Sprintf("$%.2fB", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("$%.2fM", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("$%.2fK", n/1e3)
	}
	return Currency(n)
}

// Percentage formats with two decimals and an explicit sign. Zero is
// treated as non-negative and gets "+".
func Percentage(p float64) string {
	if p >= 0 {
		return fmt.Sprintf("+%.2f%%", p)
	}
	return fmt.Sprintf("%.2f%%", p)
}

// Date renders an ISO instant as short month, day, and hour:minute,
// e.g. "Jan 2, 03:04 PM". Unparseable input is returned unchanged.
func Date(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 03:04 PM")
}

// Time renders an epoch-millisecond timestamp as hour:minute only.
func Time(epochMillis int64) string {
	return time.UnixMilli(epochMillis).UTC().Format("03:04 PM")
}

// Direction is the tri-state semantic category of a change value.
type Direction int

const (
	Neutral Direction = iota
	Positive
	Negative
)

// ChangeDirection classifies a change value. Neutral only for exactly
// zero.
func ChangeDirection(change float64) Direction {
	switch {
	case change > 0:
		return Positive
	case change < 0:
		return Negative
	}
	return Neutral
}

// ChangeClass maps a change value to the frontend's text color class.
func ChangeClass(change float64) string {
	switch ChangeDirection(change) {
	case Positive:
		return "text-green-600"
	case Negative:
		return "text-red-600"
	}
	return "text-gray-600"
}

// ChangeBackgroundClass maps a change value to the frontend's
// background color class.
func ChangeBackgroundClass(change float64) string {
	switch ChangeDirection(change) {
	case Positive:
		return "bg-green-100"
	case Negative:
		return "bg-red-100"
	}
	return "bg-gray-100"
}

// aqiClasses maps each air-quality level to its display class.
var aqiClasses = map[model.AirQualityLevel]string{
	model.AirQualityGood:     "aqi-good",
	model.AirQualityFair:     "aqi-fair",
	model.AirQualityModerate: "aqi-moderate",
	model.AirQualityPoor:     "aqi-poor",
	model.AirQualityVeryPoor: "aqi-very-poor",
}

// AQICategory maps an AQI tier to its display label and class.
func AQICategory(aqi int) (model.AirQualityLevel, string) {
	level, _ := model.AirQualityInfo(aqi)
	return level, aqiClasses[level]
}

// RoundTemp rounds a temperature to the nearest whole degree, matching
// the display contract for weather snapshots.
func RoundTemp(t float64) int {
	return int(math.Round(t))
}
