package model

import "fmt"

// ScoreBlock holds the three independently judged relevance dimensions for
// one candidate in one request. All scores are expected in [0, 1].
type ScoreBlock struct {
	InterestScore float64 `json:"interest_score"`
	EmotionScore  float64 `json:"emotion_score"`
	BudgetScore   float64 `json:"budget_score"`
}

// Validate ensures every sub-score lies in [0, 1].
func (s *ScoreBlock) Validate() error {
	for _, v := range []struct {
		name  string
		score float64
	}{
		{"interest_score", s.InterestScore},
		{"emotion_score", s.EmotionScore},
		{"budget_score", s.BudgetScore},
	} {
		if v.score < 0.0 || v.score > 1.0 {
			return fmt.Errorf("%s must be between 0.0 and 1.0, got %.2f", v.name, v.score)
		}
	}
	return nil
}

// GiftResult is one ranked recommendation returned to the caller.
type GiftResult struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Scores      ScoreBlock `json:"scores"`
	FinalScore  float64    `json:"final_score"`
}
