// Package catalog provides the read-only gift catalog the pipeline draws
// candidates from.
package catalog

import (
	"fmt"

	"github.com/giftai/giftai/internal/common"
	"github.com/giftai/giftai/internal/model"
)

// Store holds an immutable set of catalog items. It is safe for
// unsynchronized concurrent reads; nothing mutates it after construction.
type Store struct {
	byID  map[string]model.CatalogItem
	items []model.CatalogItem
}

// NewStore validates the given items and builds a Store. Item order is
// preserved; it defines the tie-break order for equal final scores.
func NewStore(items []model.CatalogItem) (*Store, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: must contain at least one item", common.ErrEmptyCatalog)
	}

	byID := make(map[string]model.CatalogItem, len(items))
	copied := make([]model.CatalogItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item at index %d: %v", common.ErrInvalidCatalog, i, err)
		}
		if _, exists := byID[item.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate catalog item id %q", common.ErrInvalidCatalog, item.ID)
		}
		byID[item.ID] = item
		copied[i] = item
	}

	return &Store{items: copied, byID: byID}, nil
}

// Items returns all catalog items in catalog order. Callers must treat the
// returned slice as read-only.
func (s *Store) Items() []model.CatalogItem {
	return s.items
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (model.CatalogItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Len returns the number of items in the catalog.
func (s *Store) Len() int {
	return len(s.items)
}
