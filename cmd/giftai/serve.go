package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/giftai/giftai/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recommendation HTTP service",
		Long: `Start the HTTP front end exposing the recommendation pipeline:

  POST /api/v1/recommend   ranked gift shortlist for a request
  GET  /api/v1/catalog     the active catalog
  GET  /healthz            liveness probe`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().StringSlice("cors-origins", []string{"*"}, "Allowed CORS origins")
	cmd.Flags().Duration("request-timeout", 30*time.Second, "Per-request timeout")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.cors_origins", cmd.Flags().Lookup("cors-origins"))
	_ = viper.BindPFlag("server.request_timeout", cmd.Flags().Lookup("request-timeout"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	rec, store, err := buildRecommender(ctx)
	if err != nil {
		return fmt.Errorf("failed to build recommender: %w", err)
	}

	srv := server.New(rec, store, slog.Default())
	return srv.ListenAndServe(ctx, server.Config{
		Addr:           viper.GetString("server.addr"),
		CORSOrigins:    viper.GetStringSlice("server.cors_origins"),
		RequestTimeout: viper.GetDuration("server.request_timeout"),
	})
}
