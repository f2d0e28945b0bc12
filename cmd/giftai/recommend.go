package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/giftai/giftai/internal/cli"
	"github.com/giftai/giftai/internal/common"
	"github.com/giftai/giftai/internal/model"
	"github.com/spf13/cobra"
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get a ranked gift shortlist",
		Long: `Run the recommendation pipeline once, either from flags or through an
interactive questionnaire (-i).`,
		RunE: runRecommend,
	}

	cmd.Flags().BoolP("interactive", "i", false, "Collect the request interactively")
	cmd.Flags().String("relationship", "", "Recipient relationship (partner, friend, parent, sibling, colleague, other)")
	cmd.Flags().String("purpose", string(model.PurposeBirthday), "Occasion (birthday, romantic, new-beginning, apology, corporate, spontaneous)")
	cmd.Flags().String("risk", string(model.RiskNormal), "Risk appetite (safe, normal, bold)")
	cmd.Flags().String("urgency", string(model.UrgencyFlexible), "Urgency (flexible, few-days, same-day)")
	cmd.Flags().Float64("budget-min", 0, "Minimum budget (0 for none)")
	cmd.Flags().Float64("budget-max", 0, "Maximum budget (0 for none)")
	cmd.Flags().StringSlice("hobbies", nil, "Recipient hobbies")
	cmd.Flags().StringSlice("style-tags", nil, "Recipient style keywords")
	cmd.Flags().String("free-text", "", "Free-form notes passed to the scorer")
	cmd.Flags().Int("top-n", 3, "Number of suggestions (1-5)")
	cmd.Flags().String("format", "table", "Output format (table, json)")

	return cmd
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	interactive, _ := cmd.Flags().GetBool("interactive")
	format, _ := cmd.Flags().GetString("format")

	var req model.RecommendRequest
	if interactive {
		var err error
		req, err = cli.NewPrompter(os.Stdin, os.Stdout).PromptRequest()
		if err != nil {
			return err
		}
	} else {
		req = requestFromFlags(cmd)
	}

	if err := req.Validate(); err != nil {
		return common.NewUserError("invalid request", err)
	}

	rec, _, err := buildRecommender(ctx)
	if err != nil {
		return fmt.Errorf("failed to build recommender: %w", err)
	}

	// Spin while the scoring call is in flight; it is the only slow step.
	done := make(chan struct{})
	if format == "table" {
		spinner := cli.NewSpinner("Scoring candidates...")
		go func() {
			for {
				select {
				case <-done:
					_ = spinner.Finish()
					return
				case <-time.After(100 * time.Millisecond):
					_ = spinner.Add(1)
				}
			}
		}()
	}

	results := rec.Recommend(ctx, req)
	close(done)

	switch format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(map[string]any{"results": results})
	default:
		fmt.Println(cli.FormatTitle("Your gift shortlist"))
		fmt.Println(cli.RenderResults(results))
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d suggestion(s) ready", len(results))))
		return nil
	}
}

func requestFromFlags(cmd *cobra.Command) model.RecommendRequest {
	relationship, _ := cmd.Flags().GetString("relationship")
	purpose, _ := cmd.Flags().GetString("purpose")
	risk, _ := cmd.Flags().GetString("risk")
	urgency, _ := cmd.Flags().GetString("urgency")
	budgetMin, _ := cmd.Flags().GetFloat64("budget-min")
	budgetMax, _ := cmd.Flags().GetFloat64("budget-max")
	hobbies, _ := cmd.Flags().GetStringSlice("hobbies")
	styleTags, _ := cmd.Flags().GetStringSlice("style-tags")
	freeText, _ := cmd.Flags().GetString("free-text")
	topN, _ := cmd.Flags().GetInt("top-n")

	return model.RecommendRequest{
		Recipient: model.Recipient{
			Relationship: model.Relationship(relationship),
			Hobbies:      hobbies,
			StyleTags:    styleTags,
		},
		Purpose:   model.Purpose(purpose),
		RiskLevel: model.RiskLevel(risk),
		Urgency:   model.Urgency(urgency),
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
		FreeText:  freeText,
		TopN:      topN,
	}
}
