package pricing

import (
	"math"
	"time"
)

// Quote is the estimated cost of a rental period.
type Quote struct {
	Days  int     `json:"days"`
	Total float64 `json:"total"`
}

// ForDates computes a quote for the given period at a daily rate. Either
// date missing yields a zero quote. Periods shorter than a day, including
// same-day rentals, bill as one day; partial days round up.
func ForDates(pickup, ret *time.Time, pricePerDay float64) Quote {
	if pickup == nil || ret == nil {
		return Quote{}
	}

	hours := ret.Sub(*pickup).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}

	return Quote{
		Days:  days,
		Total: float64(days) * pricePerDay,
	}
}
