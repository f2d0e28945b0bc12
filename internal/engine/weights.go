package engine

import "github.com/giftai/giftai/internal/model"

// Weights are the aggregation weights for the three score dimensions,
// normalized to sum to 1.
type Weights struct {
	Interest float64
	Emotion  float64
	Budget   float64
}

// Base weights before contextual adjustment.
const (
	baseInterestWeight = 0.4
	baseEmotionWeight  = 0.4
	baseBudgetWeight   = 0.2
)

// ComputeWeights derives aggregation weights from the request context.
// Adjustments are additive and can stack (e.g. romantic + bold); the
// result is renormalized by its sum. Intermediate weights may go negative
// and are not clamped; normalization is the only correction step. Should
// the adjustments ever drive the sum to zero or below, the base weights
// are used instead.
func ComputeWeights(req model.RecommendRequest) Weights {
	w := Weights{
		Interest: baseInterestWeight,
		Emotion:  baseEmotionWeight,
		Budget:   baseBudgetWeight,
	}

	if req.Purpose == model.PurposeRomantic || req.Recipient.Relationship == model.RelationshipPartner {
		w.Emotion += 0.15
		w.Budget -= 0.10
	}

	if req.Purpose == model.PurposeCorporate || req.Recipient.Relationship == model.RelationshipColleague {
		w.Budget += 0.15
		w.Emotion -= 0.10
	}

	switch req.RiskLevel {
	case model.RiskBold:
		w.Interest += 0.05
		w.Emotion += 0.05
		w.Budget -= 0.10
	case model.RiskSafe:
		w.Budget += 0.10
		w.Emotion -= 0.05
	}

	total := w.Interest + w.Emotion + w.Budget
	if total <= 0 {
		// Unreachable with the shipped constants; guarded so a future
		// parameter change cannot divide by zero or flip every sign.
		return Weights{
			Interest: baseInterestWeight,
			Emotion:  baseEmotionWeight,
			Budget:   baseBudgetWeight,
		}
	}

	return Weights{
		Interest: w.Interest / total,
		Emotion:  w.Emotion / total,
		Budget:   w.Budget / total,
	}
}
