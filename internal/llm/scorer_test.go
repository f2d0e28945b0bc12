package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/giftai/giftai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient returns canned scores or an error.
type mockClient struct {
	err    error
	scores []ItemScore
	delay  time.Duration
}

func (m *mockClient) ScoreGifts(ctx context.Context, _ ScoringInput) ([]ItemScore, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.scores, nil
}

func ptr(v float64) *float64 { return &v }

func testCandidates() []model.PricedCandidate {
	return []model.PricedCandidate{
		{CatalogItem: model.CatalogItem{ID: "a", Name: "A", Category: "tech", BasePrice: 100}, Price: 110},
		{CatalogItem: model.CatalogItem{ID: "b", Name: "B", Category: "home", BasePrice: 200}, Price: 190},
		{CatalogItem: model.CatalogItem{ID: "c", Name: "C", Category: "photo", BasePrice: 300}, Price: 310},
	}
}

func testRequest() model.RecommendRequest {
	return model.RecommendRequest{
		Purpose:   model.PurposeBirthday,
		RiskLevel: model.RiskNormal,
		Urgency:   model.UrgencyFlexible,
		TopN:      3,
	}
}

func TestScoreNilClientFallsBack(t *testing.T) {
	scorer := NewScorer(nil, slog.Default(), 0)

	scores := scorer.Score(context.Background(), testRequest(), testCandidates())

	require.Len(t, scores, 3)
	for id, block := range scores {
		assert.Equal(t, NeutralScoreBlock(), block, "item %s", id)
	}
}

func TestScoreClientErrorFallsBack(t *testing.T) {
	scorer := NewScorer(&mockClient{err: errors.New("boom")}, slog.Default(), 0)

	scores := scorer.Score(context.Background(), testRequest(), testCandidates())

	require.Len(t, scores, 3)
	for _, block := range scores {
		assert.Equal(t, NeutralScoreBlock(), block)
	}
}

func TestScoreAppliesRealScores(t *testing.T) {
	client := &mockClient{scores: []ItemScore{
		{ID: "a", InterestScore: ptr(0.9), EmotionScore: ptr(0.8), BudgetScore: ptr(0.7)},
		{ID: "b", InterestScore: ptr(0.2), EmotionScore: ptr(0.3), BudgetScore: ptr(0.4)},
		{ID: "c", InterestScore: ptr(0.5), EmotionScore: ptr(0.6), BudgetScore: ptr(0.1)},
	}}
	scorer := NewScorer(client, slog.Default(), 0)

	scores := scorer.Score(context.Background(), testRequest(), testCandidates())

	require.Len(t, scores, 3)
	assert.Equal(t, model.ScoreBlock{InterestScore: 0.9, EmotionScore: 0.8, BudgetScore: 0.7}, scores["a"])
	assert.Equal(t, model.ScoreBlock{InterestScore: 0.2, EmotionScore: 0.3, BudgetScore: 0.4}, scores["b"])
}

func TestScorePartialResponse(t *testing.T) {
	tests := []struct {
		name        string
		judged      []ItemScore
		wantReal    []string
		wantNeutral []string
	}{
		{
			name: "missing candidate",
			judged: []ItemScore{
				{ID: "a", InterestScore: ptr(0.9), EmotionScore: ptr(0.8), BudgetScore: ptr(0.7)},
			},
			wantReal:    []string{"a"},
			wantNeutral: []string{"b", "c"},
		},
		{
			name: "missing sub-score",
			judged: []ItemScore{
				{ID: "a", InterestScore: ptr(0.9), EmotionScore: ptr(0.8), BudgetScore: ptr(0.7)},
				{ID: "b", InterestScore: ptr(0.5), EmotionScore: nil, BudgetScore: ptr(0.5)},
			},
			wantReal:    []string{"a"},
			wantNeutral: []string{"b", "c"},
		},
		{
			name: "out-of-range sub-score",
			judged: []ItemScore{
				{ID: "a", InterestScore: ptr(1.7), EmotionScore: ptr(0.8), BudgetScore: ptr(0.7)},
				{ID: "b", InterestScore: ptr(0.5), EmotionScore: ptr(-0.1), BudgetScore: ptr(0.5)},
				{ID: "c", InterestScore: ptr(0.5), EmotionScore: ptr(0.6), BudgetScore: ptr(0.7)},
			},
			wantReal:    []string{"c"},
			wantNeutral: []string{"a", "b"},
		},
		{
			name: "unknown id ignored",
			judged: []ItemScore{
				{ID: "ghost", InterestScore: ptr(0.9), EmotionScore: ptr(0.9), BudgetScore: ptr(0.9)},
			},
			wantNeutral: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(&mockClient{scores: tt.judged}, slog.Default(), 0)
			scores := scorer.Score(context.Background(), testRequest(), testCandidates())

			require.Len(t, scores, 3)
			for _, id := range tt.wantReal {
				assert.NotEqual(t, NeutralScoreBlock(), scores[id], "item %s should keep real scores", id)
			}
			for _, id := range tt.wantNeutral {
				assert.Equal(t, NeutralScoreBlock(), scores[id], "item %s should be neutral", id)
			}
		})
	}
}

func TestScoreTimeoutFallsBack(t *testing.T) {
	client := &mockClient{
		delay: 200 * time.Millisecond,
		scores: []ItemScore{
			{ID: "a", InterestScore: ptr(0.9), EmotionScore: ptr(0.9), BudgetScore: ptr(0.9)},
		},
	}
	scorer := NewScorer(client, slog.Default(), 10*time.Millisecond)

	scores := scorer.Score(context.Background(), testRequest(), testCandidates())

	require.Len(t, scores, 3)
	for _, block := range scores {
		assert.Equal(t, NeutralScoreBlock(), block)
	}
}
