package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/giftai/giftai/internal/model"
)

// NeutralScore is substituted for every dimension of a candidate whose
// real judgment is unavailable. The pipeline fails open, so an unscored
// candidate reads as mildly positive rather than zero.
const NeutralScore = 0.7

// DefaultTimeout bounds a single scoring call. A timeout triggers the
// neutral fallback exactly like any other failure.
const DefaultTimeout = 8 * time.Second

// NeutralScoreBlock returns the fixed fallback scores.
func NeutralScoreBlock() model.ScoreBlock {
	return model.ScoreBlock{
		InterestScore: NeutralScore,
		EmotionScore:  NeutralScore,
		BudgetScore:   NeutralScore,
	}
}

// Scorer obtains per-candidate relevance scores from an external judgment
// source, degrading to neutral scores on any failure. A nil client means
// the source is not configured; the Scorer then always falls back.
type Scorer struct {
	client  Client
	logger  *slog.Logger
	timeout time.Duration
}

// NewScorer creates a Scorer. client may be nil when no judgment source is
// configured. A non-positive timeout falls back to DefaultTimeout.
func NewScorer(client Client, logger *slog.Logger, timeout time.Duration) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scorer{client: client, logger: logger, timeout: timeout}
}

// Score judges every candidate against the request and returns a complete
// mapping from item id to scores. It never fails: candidates the external
// source could not judge, for whatever reason, receive NeutralScoreBlock.
// A single attempt is made per request; there are no retries.
func (s *Scorer) Score(ctx context.Context, req model.RecommendRequest, candidates []model.PricedCandidate) map[string]model.ScoreBlock {
	scores := make(map[string]model.ScoreBlock, len(candidates))
	for _, c := range candidates {
		scores[c.ID] = NeutralScoreBlock()
	}

	if s.client == nil {
		s.logger.Warn("no scoring source configured, using neutral fallback scores",
			"candidates", len(candidates))
		return scores
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	judged, err := s.client.ScoreGifts(ctx, BuildScoringInput(req, candidates))
	if err != nil {
		s.logger.Warn("scoring call failed, using neutral fallback scores",
			"error", err,
			"candidates", len(candidates))
		return scores
	}

	applied := 0
	for _, item := range judged {
		if _, known := scores[item.ID]; !known {
			// The judge invented an id; ignore it.
			continue
		}

		block, ok := toScoreBlock(item)
		if !ok {
			s.logger.Warn("malformed score entry, keeping neutral fallback",
				"item_id", item.ID)
			continue
		}

		scores[item.ID] = block
		applied++
	}

	if applied < len(candidates) {
		s.logger.Info("partial scoring response, unfilled candidates use neutral fallback",
			"scored", applied,
			"candidates", len(candidates))
	}

	return scores
}

// toScoreBlock validates one judged entry. Every sub-score must be present
// and within [0, 1]; anything else keeps the item on the neutral fallback.
func toScoreBlock(item ItemScore) (model.ScoreBlock, bool) {
	for _, p := range []*float64{item.InterestScore, item.EmotionScore, item.BudgetScore} {
		if p == nil || *p < 0.0 || *p > 1.0 {
			return model.ScoreBlock{}, false
		}
	}

	return model.ScoreBlock{
		InterestScore: *item.InterestScore,
		EmotionScore:  *item.EmotionScore,
		BudgetScore:   *item.BudgetScore,
	}, true
}
