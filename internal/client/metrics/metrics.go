// Package metrics derives secondary financial indicators from a property's
// raw fields. All functions are pure: they never mutate the input and are
// recomputed on read, so a re-fetched property can never serve stale numbers.
//
// Absence is a defined state, not an error. A nil pointer in Metrics means
// the server did not supply enough data; views must render it as
// "insufficient data", never as zero.
package metrics

import (
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// Band is the three-tier classification of the server's profitability score.
// It governs every visual treatment of the score, in list and detail views
// alike.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Metrics holds the derived indicators for one property snapshot.
// Values are kept at full precision; rounding happens at display time only.
type Metrics struct {
	// PricePerSqft is price divided by size. Nil when size is not positive.
	PricePerSqft *float64

	// AnnualIncome is the estimated monthly rent annualized. Nil when the
	// rent estimate is absent.
	AnnualIncome *float64

	// PriceToRent is price divided by monthly rent. Nil when the rent
	// estimate is absent.
	PriceToRent *float64

	// YearOneROI is the first-year return on investment in percent
	// (annual income / price * 100). Nil when rent or price is unusable.
	YearOneROI *float64

	// ScoreBand classifies the server-computed profitability score.
	ScoreBand Band
}

// Derive computes the metrics for p.
//
// A rent estimate that is present but not positive is treated as absent:
// the server uses zero-or-missing interchangeably for "no rental data", and
// a zero rent would otherwise divide the price-to-rent ratio by zero.
func Derive(p models.Property) Metrics {
	m := Metrics{ScoreBand: ScoreBand(p.ProfitabilityScore)}

	if p.SizeSqft > 0 {
		v := p.Price / float64(p.SizeSqft)
		m.PricePerSqft = &v
	}

	if p.EstimatedRent == nil || *p.EstimatedRent <= 0 {
		return m
	}
	rent := *p.EstimatedRent

	annual := rent * 12
	m.AnnualIncome = &annual

	ratio := p.Price / rent
	m.PriceToRent = &ratio

	if p.Price > 0 {
		roi := annual / p.Price * 100
		m.YearOneROI = &roi
	}
	return m
}

// ScoreBand classifies a profitability score: 80 and above is high, 60 up to
// but excluding 80 is medium, anything below 60 is low.
func ScoreBand(score float64) Band {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}
