package models

import "encoding/json"

// TourPackage is a sellable product: a multi-day hotel package, a land-only
// package, or a daily tour / shore excursion. Pricing is stored as the raw
// JSON blob the admin editor writes; its shape depends on PackageType and is
// interpreted by the pricing package.
type TourPackage struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Destination  string          `json:"destination"`
	PackageType  string          `json:"packageType"`
	DurationDays int             `json:"durationDays"`
	Summary      string          `json:"summary"`
	Pricing      json.RawMessage `json:"pricing,omitempty"`

	// Resolved at load time, never stored.
	DisplayPrice float64 `json:"displayPrice"`
	PricingShape string  `json:"pricingShape,omitempty"`
}

// Destination is a browsable region/city grouping packages.
type Destination struct {
	ID           int64  `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	Summary      string `json:"summary"`
	PackageCount int    `json:"packageCount"`
}
