package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/giftai/giftai/internal/catalog"
	"github.com/giftai/giftai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecommender records the last request and returns canned results.
type stubRecommender struct {
	lastReq model.RecommendRequest
	results []model.GiftResult
}

func (s *stubRecommender) Recommend(_ context.Context, req model.RecommendRequest) []model.GiftResult {
	s.lastReq = req
	return s.results
}

func newTestRouter(t *testing.T, rec Recommender) http.Handler {
	t.Helper()
	srv := New(rec, catalog.Default(), slog.Default())
	return srv.Router(Config{})
}

func TestHandleRecommend(t *testing.T) {
	rec := &stubRecommender{results: []model.GiftResult{
		{
			Name:        "Couples Spa and Massage Day",
			Description: "A romantic pick.",
			Price:       3200,
			Scores:      model.ScoreBlock{InterestScore: 0.7, EmotionScore: 0.7, BudgetScore: 0.7},
			FinalScore:  0.7,
		},
	}}
	router := newTestRouter(t, rec)

	body := `{
		"recipient": {"relationship": "partner", "hobbies": ["yoga"]},
		"purpose": "romantic",
		"risk_level": "normal",
		"urgency": "flexible",
		"budget_min": 1000,
		"budget_max": 4000,
		"top_n": 2
	}`

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Results []model.GiftResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Couples Spa and Massage Day", resp.Results[0].Name)
	assert.InDelta(t, 0.7, resp.Results[0].FinalScore, 1e-9)

	// The decoded request must reach the pipeline intact.
	assert.Equal(t, model.RelationshipPartner, rec.lastReq.Recipient.Relationship)
	assert.Equal(t, model.PurposeRomantic, rec.lastReq.Purpose)
	assert.Equal(t, 2, rec.lastReq.TopN)
}

func TestHandleRecommendValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"purpose": `,
			wantErr: "invalid request body",
		},
		{
			name:    "unknown purpose",
			body:    `{"purpose":"wedding","risk_level":"normal","urgency":"flexible","top_n":3}`,
			wantErr: "invalid purpose",
		},
		{
			name:    "unknown risk level",
			body:    `{"purpose":"birthday","risk_level":"wild","urgency":"flexible","top_n":3}`,
			wantErr: "invalid risk_level",
		},
		{
			name:    "negative budget",
			body:    `{"purpose":"birthday","risk_level":"normal","urgency":"flexible","budget_min":-5,"top_n":3}`,
			wantErr: "budget_min",
		},
	}

	router := newTestRouter(t, &stubRecommender{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestHandleCatalog(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []model.CatalogItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, catalog.Default().Len())
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", nil)
	req.Header.Set("Origin", "https://gifts.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://gifts.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigin(t *testing.T) {
	srv := New(&stubRecommender{}, catalog.Default(), slog.Default())
	router := srv.Router(Config{CORSOrigins: []string{"https://allowed.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
