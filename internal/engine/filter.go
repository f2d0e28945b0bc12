package engine

import (
	"github.com/giftai/giftai/internal/model"
	"github.com/giftai/giftai/internal/pricing"
)

// Slack factors widening the eligible price band, so near-budget items are
// not dropped solely because of price-generation noise.
const (
	budgetMinSlack = 0.6
	budgetMaxSlack = 1.4
)

// filterByBudget prices every item and keeps those plausibly within the
// requested budget. A zero bound means "no bound". If the band excludes
// everything, the whole catalog is re-priced and returned: the system
// prefers returning something over an empty result.
func filterByBudget(items []model.CatalogItem, pricer *pricing.Generator, budgetMin, budgetMax float64) []model.PricedCandidate {
	candidates := make([]model.PricedCandidate, 0, len(items))
	for _, item := range items {
		price := pricer.Generate(item.BasePrice)
		if budgetMin > 0 && price < budgetMin*budgetMinSlack {
			continue
		}
		if budgetMax > 0 && price > budgetMax*budgetMaxSlack {
			continue
		}
		candidates = append(candidates, model.PricedCandidate{CatalogItem: item, Price: price})
	}

	if len(candidates) == 0 {
		for _, item := range items {
			candidates = append(candidates, model.PricedCandidate{
				CatalogItem: item,
				Price:       pricer.Generate(item.BasePrice),
			})
		}
	}

	return candidates
}
