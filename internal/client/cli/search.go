package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/search"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/services"
)

// Search prompts for the filter criteria and shows the first page of results.
// Every prompt accepts an empty answer meaning "no constraint"; submitting
// all of them empty runs the unfiltered listing.
func (a *App) Search(ctx context.Context) error {
	criteria, err := a.promptCriteria()
	if err != nil {
		return err
	}

	a.lastCriteria = criteria
	a.page = services.Page{Limit: services.DefaultPageSize}

	return a.runSearch(ctx)
}

// NextPage advances the last search by one page.
func (a *App) NextPage(ctx context.Context) error {
	if a.lastResults == nil {
		fmt.Println("Run 'search' first.")
		return nil
	}
	a.page.Skip += a.page.Limit
	return a.runSearch(ctx)
}

// PrevPage steps the last search back by one page, stopping at the first.
func (a *App) PrevPage(ctx context.Context) error {
	if a.lastResults == nil {
		fmt.Println("Run 'search' first.")
		return nil
	}
	if a.page.Skip == 0 {
		fmt.Println("Already on the first page.")
		return nil
	}
	a.page.Skip -= a.page.Limit
	if a.page.Skip < 0 {
		a.page.Skip = 0
	}
	return a.runSearch(ctx)
}

func (a *App) runSearch(ctx context.Context) error {
	props, err := a.properties.Search(ctx, a.lastCriteria, a.page)
	if err != nil {
		// Keep the previous results on failure; the user can retry.
		return err
	}

	a.lastResults = props
	for _, p := range props {
		a.reconciler.Track(p)
	}

	if len(props) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	for _, p := range props {
		a.renderListRow(p)
	}
	fmt.Printf("Showing %d result(s), offset %d. Type 'next' for more, 'show <id>' for details.\n", len(props), a.page.Skip)
	return nil
}

// promptCriteria collects the sparse filter record interactively.
func (a *App) promptCriteria() (search.Criteria, error) {
	c := search.Reset()

	prompts := []struct {
		label string
		field *string
	}{
		{"Zip code", &c.ZipCode},
		{"Min price", &c.MinPrice},
		{"Max price", &c.MaxPrice},
		{"Min size (sqft)", &c.MinSize},
		{"Max size (sqft)", &c.MaxSize},
		{"Min bedrooms", &c.Bedrooms},
		{"Min bathrooms", &c.Bathrooms},
		{"Property type (single_family/townhouse/condo/multi_family)", &c.PropertyType},
		{"Search radius (miles)", &c.RadiusMiles},
		{"Min profitability score", &c.MinScore},
	}

	fmt.Println("Leave any filter empty for no constraint.")
	for _, p := range prompts {
		value, err := getSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			return c, err
		}
		*p.field = value
	}
	return c, nil
}
