// Package engine implements the scoring-and-ranking pipeline: budget
// filtering, weight computation, score aggregation, and the final ranked
// shortlist.
package engine

import (
	"context"
	"log/slog"
	"sort"

	"github.com/giftai/giftai/internal/catalog"
	"github.com/giftai/giftai/internal/model"
	"github.com/giftai/giftai/internal/pricing"
)

// Scorer supplies relevance scores for a candidate set. Implementations
// must return a complete mapping (every candidate id present) and must not
// fail; scoring degradation is the scorer's concern, not the pipeline's.
type Scorer interface {
	Score(ctx context.Context, req model.RecommendRequest, candidates []model.PricedCandidate) map[string]model.ScoreBlock
}

// Recommender runs the recommendation pipeline. All dependencies are
// injected; the Recommender itself holds no per-request state and is safe
// for concurrent use.
type Recommender struct {
	catalog *catalog.Store
	pricer  *pricing.Generator
	scorer  Scorer
	logger  *slog.Logger
}

// New creates a Recommender.
func New(store *catalog.Store, pricer *pricing.Generator, scorer Scorer, logger *slog.Logger) *Recommender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommender{
		catalog: store,
		pricer:  pricer,
		scorer:  scorer,
		logger:  logger,
	}
}

// Recommend produces the ranked shortlist for one request. It never fails
// for a non-empty catalog: scoring errors degrade to neutral scores and an
// over-restrictive budget falls back to the full catalog.
func (r *Recommender) Recommend(ctx context.Context, req model.RecommendRequest) []model.GiftResult {
	topN := req.ClampedTopN()

	candidates := filterByBudget(r.catalog.Items(), r.pricer, req.BudgetMin, req.BudgetMax)
	scores := r.scorer.Score(ctx, req, candidates)
	weights := ComputeWeights(req)

	results := make([]model.GiftResult, len(candidates))
	for i, c := range candidates {
		block := scores[c.ID]

		results[i] = model.GiftResult{
			Name:        c.Name,
			Description: Describe(c.CatalogItem, req),
			Price:       c.Price,
			Scores:      block,
			FinalScore: block.InterestScore*weights.Interest +
				block.EmotionScore*weights.Emotion +
				block.BudgetScore*weights.Budget,
		}
	}

	// Stable sort: ties keep catalog order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	if len(results) > topN {
		results = results[:topN]
	}

	top := make([]string, len(results))
	for i, res := range results {
		top[i] = res.Name
	}
	r.logger.Info("recommendation produced",
		"purpose", req.Purpose,
		"relationship", req.Recipient.Relationship,
		"risk", req.RiskLevel,
		"urgency", req.Urgency,
		"top_n", topN,
		"results", top)

	return results
}
