package filter

import (
	"strings"

	"atlascars/pkg/model"
)

// All is the wildcard value accepted by every criterion.
const All = "all"

// Price range identifiers, in display order. Each band is half-open:
// a car priced exactly at a boundary belongs to the upper band.
const (
	PriceRangeBudget  = "0-400"
	PriceRangeMid     = "400-700"
	PriceRangeUpper   = "700-1000"
	PriceRangePremium = "1000+"
)

type priceBand struct {
	low  float64
	high float64 // exclusive, 0 means unbounded
}

var priceBands = map[string]priceBand{
	PriceRangeBudget:  {low: 0, high: 400},
	PriceRangeMid:     {low: 400, high: 700},
	PriceRangeUpper:   {low: 700, high: 1000},
	PriceRangePremium: {low: 1000, high: 0},
}

// PriceRanges lists the selectable bands in display order.
func PriceRanges() []string {
	return []string{PriceRangeBudget, PriceRangeMid, PriceRangeUpper, PriceRangePremium}
}

// Criteria is one visitor filter selection. Zero values and "all" both
// mean "no constraint" for their criterion.
type Criteria struct {
	Search       string `json:"search"`
	PriceRange   string `json:"price_range"`
	Transmission string `json:"transmission"`
	Category     string `json:"category"`
}

func (c Criteria) matchesSearch(car *model.Car) bool {
	query := strings.ToLower(strings.TrimSpace(c.Search))
	if query == "" {
		return true
	}

	// Brand and model are matched independently so a query cannot
	// straddle the boundary between them.
	return strings.Contains(strings.ToLower(car.Brand), query) ||
		strings.Contains(strings.ToLower(car.Model), query)
}

func (c Criteria) matchesPrice(car *model.Car) bool {
	if c.PriceRange == "" || c.PriceRange == All {
		return true
	}

	band, ok := priceBands[c.PriceRange]
	if !ok {
		return true
	}

	if car.PricePerDay < band.low {
		return false
	}
	if band.high > 0 && car.PricePerDay >= band.high {
		return false
	}
	return true
}

func (c Criteria) matchesTransmission(car *model.Car) bool {
	if c.Transmission == "" || c.Transmission == All {
		return true
	}
	return car.Transmission == c.Transmission
}

func (c Criteria) matchesCategory(car *model.Car) bool {
	if c.Category == "" || c.Category == All {
		return true
	}
	return car.Category == c.Category
}

// Matches reports whether a car satisfies every criterion.
func (c Criteria) Matches(car *model.Car) bool {
	return c.matchesSearch(car) &&
		c.matchesPrice(car) &&
		c.matchesTransmission(car) &&
		c.matchesCategory(car)
}

// Apply returns the cars matching the criteria, preserving input order.
func Apply(cars []model.Car, criteria Criteria) []model.Car {
	result := []model.Car{}
	for i := range cars {
		if criteria.Matches(&cars[i]) {
			result = append(result, cars[i])
		}
	}
	return result
}

// Categories returns the distinct categories present in the fleet, in
// first-seen order.
func Categories(cars []model.Car) []string {
	seen := map[string]bool{}
	var categories []string
	for i := range cars {
		if cars[i].Category == "" || seen[cars[i].Category] {
			continue
		}
		seen[cars[i].Category] = true
		categories = append(categories, cars[i].Category)
	}
	return categories
}
