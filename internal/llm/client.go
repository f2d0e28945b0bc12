package llm

import (
	"context"

	"github.com/giftai/giftai/internal/model"
)

// Client defines the interface to the external gift-judgment source.
type Client interface {
	// ScoreGifts asks the external source to judge every product in the
	// input against the profile. The returned slice may cover a subset of
	// the products; callers resolve missing or malformed entries.
	ScoreGifts(ctx context.Context, input ScoringInput) ([]ItemScore, error)
}

// ScoringProfile is the recipient-and-context view sent to the judge.
type ScoringProfile struct {
	Gender       string             `json:"gender,omitempty"`
	Relationship model.Relationship `json:"relationship,omitempty"`
	Purpose      model.Purpose      `json:"purpose"`
	RiskLevel    model.RiskLevel    `json:"risk_level"`
	Urgency      model.Urgency      `json:"urgency"`
	FreeText     string             `json:"free_text,omitempty"`
	Hobbies      []string           `json:"hobbies,omitempty"`
	StyleTags    []string           `json:"style_tags,omitempty"`
	Age          int                `json:"age,omitempty"`
	BudgetMin    float64            `json:"budget_min,omitempty"`
	BudgetMax    float64            `json:"budget_max,omitempty"`
}

// ScoringProduct is the candidate view sent to the judge. It carries the
// base price, never the generated display price or composed description.
type ScoringProduct struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	BasePrice float64  `json:"base_price"`
}

// ScoringInput is the full payload for one scoring call.
type ScoringInput struct {
	Profile  ScoringProfile   `json:"profile"`
	Products []ScoringProduct `json:"products"`
}

// ItemScore is one judged product in the external response. Pointer fields
// distinguish an absent sub-score from an explicit zero.
type ItemScore struct {
	InterestScore *float64 `json:"interest_score"`
	EmotionScore  *float64 `json:"emotion_score"`
	BudgetScore   *float64 `json:"budget_score"`
	ID            string   `json:"id"`
}

// BuildScoringInput assembles the judge payload for a request and its
// candidate set.
func BuildScoringInput(req model.RecommendRequest, candidates []model.PricedCandidate) ScoringInput {
	products := make([]ScoringProduct, len(candidates))
	for i, c := range candidates {
		products[i] = ScoringProduct{
			ID:        c.ID,
			Name:      c.Name,
			Category:  c.Category,
			Tags:      c.Tags,
			BasePrice: c.BasePrice,
		}
	}

	return ScoringInput{
		Profile: ScoringProfile{
			Age:          req.Recipient.Age,
			Gender:       req.Recipient.Gender,
			Relationship: req.Recipient.Relationship,
			Purpose:      req.Purpose,
			RiskLevel:    req.RiskLevel,
			Urgency:      req.Urgency,
			Hobbies:      req.Recipient.Hobbies,
			StyleTags:    req.Recipient.StyleTags,
			FreeText:     req.FreeText,
			BudgetMin:    req.BudgetMin,
			BudgetMax:    req.BudgetMax,
		},
		Products: products,
	}
}
