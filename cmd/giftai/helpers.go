package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/giftai/giftai/internal/catalog"
	"github.com/giftai/giftai/internal/engine"
	"github.com/giftai/giftai/internal/llm"
	"github.com/giftai/giftai/internal/pricing"
	"github.com/spf13/viper"
)

// newScoringClient builds the OpenAI scoring client from configuration.
// A missing API key is not an error: recommendations then run on neutral
// fallback scores. This function is shared by the serve and recommend
// commands.
func newScoringClient(logger *slog.Logger) llm.Client {
	apiKey := viper.GetString("llm.openai_api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		logger.Warn("no OpenAI API key configured, scoring will use neutral fallback scores")
		return nil
	}

	client, err := llm.NewOpenAIClient(llm.Config{
		APIKey:      apiKey,
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	})
	if err != nil {
		logger.Warn("failed to create scoring client, using neutral fallback scores", "error", err)
		return nil
	}

	logger.Info("scoring client configured", "model", viper.GetString("llm.model"))
	return client
}

// loadCatalog returns the SQLite-backed catalog when configured, otherwise
// the built-in one.
func loadCatalog(ctx context.Context) (*catalog.Store, error) {
	dbPath := viper.GetString("catalog.db")
	if dbPath == "" {
		return catalog.Default(), nil
	}

	store, err := catalog.LoadSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", dbPath, err)
	}
	slog.Info("catalog loaded", "path", dbPath, "items", store.Len())
	return store, nil
}

// buildRecommender wires the full pipeline from configuration.
func buildRecommender(ctx context.Context) (*engine.Recommender, *catalog.Store, error) {
	logger := slog.Default()

	store, err := loadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	scorer := llm.NewScorer(newScoringClient(logger), logger, viper.GetDuration("llm.timeout"))
	rec := engine.New(store, pricing.NewGenerator(), scorer, logger)
	return rec, store, nil
}
