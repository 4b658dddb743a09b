package cli

import (
	"fmt"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/metrics"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// bandMarker maps a score band to its terminal decoration. The banding rules
// themselves live in the metrics package; this is presentation only.
func bandMarker(b metrics.Band) string {
	switch b {
	case metrics.BandHigh:
		return "+++"
	case metrics.BandMedium:
		return " ++"
	default:
		return "  +"
	}
}

// renderListRow prints one search-result line:
// id, address, price, layout, score with band marker, favorite flag.
func (a *App) renderListRow(p models.Property) {
	fav := " "
	if a.reconciler.IsFavorited(p.ID) {
		fav = "*"
	}
	fmt.Printf("%s [%4d] %-40s $%-10.0f %db/%.1fba  score %5.1f %s\n",
		fav, p.ID, fmt.Sprintf("%s, %s %s %s", p.Address, p.City, p.State, p.ZipCode),
		p.Price, p.Bedrooms, p.Bathrooms, p.ProfitabilityScore, bandMarker(metrics.ScoreBand(p.ProfitabilityScore)))
}

// renderDetail prints the full property view with the derived financials.
// Metrics that cannot be computed are rendered as "n/a": absence means
// insufficient data, never zero.
func (a *App) renderDetail(p models.Property, m metrics.Metrics) {
	fmt.Printf("%s\n%s, %s %s\n", p.Address, p.City, p.State, p.ZipCode)
	fmt.Printf("Price: $%.0f   Size: %d sqft   %d bed / %.1f bath   Type: %s\n",
		p.Price, p.SizeSqft, p.Bedrooms, p.Bathrooms, p.PropertyType)
	if p.YearBuilt != nil {
		fmt.Printf("Year built: %d\n", *p.YearBuilt)
	}

	fmt.Printf("Profitability score: %.1f (%s)\n", p.ProfitabilityScore, m.ScoreBand)

	fmt.Printf("Price per sqft:      %s\n", money(m.PricePerSqft))
	fmt.Printf("Est. monthly rent:   %s\n", money(p.EstimatedRent))
	fmt.Printf("Est. annual income:  %s\n", money(m.AnnualIncome))
	fmt.Printf("Price-to-rent ratio: %s\n", number(m.PriceToRent))
	fmt.Printf("Year-one ROI:        %s\n", percent(m.YearOneROI))

	if a.reconciler.IsFavorited(p.ID) {
		fmt.Println("In your favorites. Type 'fav", p.ID, "' to remove.")
	} else {
		fmt.Println("Type 'fav", p.ID, "' to add to favorites.")
	}
}

func money(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func number(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *v)
}
