// Package search normalizes sparse filter criteria into the query contract
// of the listing endpoint. The server is the sole authority on type coercion
// and bounds validation, so values travel as strings, untouched.
package search

import "net/url"

// Criteria is the sparse filter record backing the search form. An empty
// string means "no constraint"; empty fields are never transmitted.
type Criteria struct {
	ZipCode      string
	MinPrice     string
	MaxPrice     string
	MinSize      string
	MaxSize      string
	Bedrooms     string
	Bathrooms    string
	PropertyType string
	RadiusMiles  string
	MinScore     string
}

// Reset returns the all-empty criteria record used as the initial state and
// as the result of "clear filters". Searching with it is valid and yields
// the unfiltered listing.
func Reset() Criteria {
	return Criteria{}
}

// Normalize converts the criteria into query parameters, dropping every
// empty field and passing non-empty values through unchanged. The
// transformation is pure and idempotent: no key with an empty value ever
// appears in the output, regardless of ordering or repeated calls.
func (c Criteria) Normalize() url.Values {
	query := url.Values{}

	fields := []struct {
		key   string
		value string
	}{
		{"zip_code", c.ZipCode},
		{"min_price", c.MinPrice},
		{"max_price", c.MaxPrice},
		{"min_size", c.MinSize},
		{"max_size", c.MaxSize},
		{"bedrooms", c.Bedrooms},
		{"bathrooms", c.Bathrooms},
		{"property_type", c.PropertyType},
		{"radius_miles", c.RadiusMiles},
		{"min_score", c.MinScore},
	}

	for _, f := range fields {
		if f.value != "" {
			query.Set(f.key, f.value)
		}
	}
	return query
}
