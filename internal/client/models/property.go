// Package models defines the wire-level data structures exchanged with the
// RentIQ server. Field names and JSON tags follow the server's snake_case
// contract. Records are immutable snapshots: a re-fetch supersedes a value,
// nothing mutates one in place.
package models

import "time"

// PropertyType enumerates the listing categories the server reports.
type PropertyType string

const (
	SingleFamily PropertyType = "single_family"
	Townhouse    PropertyType = "townhouse"
	Condo        PropertyType = "condo"
	MultiFamily  PropertyType = "multi_family"
)

// Property is a single listing as returned by GET /properties.
//
// ProfitabilityScore is computed by the server (0–100) and opaque to the
// client. EstimatedRent and YearBuilt are optional; absence means the server
// has insufficient data, not zero. IsFavorited reflects the server's view at
// fetch time; live favorite state is tracked by the favorites reconciler.
type Property struct {
	ID                 int64        `json:"id"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	ZipCode            string       `json:"zip_code"`
	Price              float64      `json:"price"`
	SizeSqft           int          `json:"size_sqft"`
	Bedrooms           int          `json:"bedrooms"`
	Bathrooms          float64      `json:"bathrooms"`
	PropertyType       PropertyType `json:"property_type"`
	YearBuilt          *int         `json:"year_built,omitempty"`
	Lat                *float64     `json:"lat,omitempty"`
	Lng                *float64     `json:"lng,omitempty"`
	EstimatedRent      *float64     `json:"estimated_rent,omitempty"`
	ProfitabilityScore float64      `json:"profitability_score"`
	IsFavorited        bool         `json:"is_favorited"`
	CreatedAt          time.Time    `json:"created_at"`
}
