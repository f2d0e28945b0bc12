// Package model defines the core domain types shared across the application.
package model

import "fmt"

// CatalogItem represents a single gift in the catalog. Items are immutable
// for the lifetime of the process; everything derived from them (prices,
// scores, descriptions) is request-scoped.
type CatalogItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	BaseDescription string   `json:"base_description"`
	BasePrice       float64  `json:"base_price"`
}

// Validate ensures the CatalogItem has valid data.
func (i *CatalogItem) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("catalog item id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("catalog item %q: name is required", i.ID)
	}
	if i.BasePrice <= 0 {
		return fmt.Errorf("catalog item %q: base price must be positive, got %.2f", i.ID, i.BasePrice)
	}
	return nil
}

// PricedCandidate is a catalog item under consideration for one request,
// carrying the price generated for that request.
type PricedCandidate struct {
	CatalogItem
	Price float64 `json:"price"`
}
