package aggregation

import "github.com/shopspring/decimal"

// RatingPlaces is the rounding precision for reported averages.
const RatingPlaces = 2

// Mean accumulates a running total and count with exact arithmetic.
type Mean struct {
	Total decimal.Decimal
	Count int
}

// Add folds one value into the mean.
func (m *Mean) Add(v decimal.Decimal) {
	m.Total = m.Total.Add(v)
	m.Count++
}

// Value returns Total/Count rounded half away from zero to places.
// An empty mean is zero.
func (m Mean) Value(places int32) decimal.Decimal {
	if m.Count == 0 {
		return decimal.Zero
	}
	return m.Total.Div(decimal.NewFromInt(int64(m.Count))).Round(places)
}
