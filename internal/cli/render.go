package cli

import (
	"fmt"
	"strings"

	"github.com/giftai/giftai/internal/model"
)

const scoreBarWidth = 10

// RenderResults renders a ranked result list as bordered cards.
func RenderResults(results []model.GiftResult) string {
	if len(results) == 0 {
		return WarningStyle.Render("No recommendations produced.")
	}

	cards := make([]string, len(results))
	for i, res := range results {
		cards[i] = renderCard(i+1, res)
	}
	return strings.Join(cards, "\n")
}

func renderCard(rank int, res model.GiftResult) string {
	var b strings.Builder

	b.WriteString(BoldStyle.Render(fmt.Sprintf("#%d %s", rank, res.Name)))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("  ~%.0f", res.Price)))
	b.WriteString("\n")
	b.WriteString(res.Description)
	b.WriteString("\n\n")
	b.WriteString(scoreBar("interest", res.Scores.InterestScore))
	b.WriteString("\n")
	b.WriteString(scoreBar("emotion ", res.Scores.EmotionScore))
	b.WriteString("\n")
	b.WriteString(scoreBar("budget  ", res.Scores.BudgetScore))
	b.WriteString("\n")
	b.WriteString(BoldStyle.Render(fmt.Sprintf("final    %.2f", res.FinalScore)))

	return CardStyle.Render(b.String())
}

// scoreBar renders one sub-score as a fixed-width bar, e.g.
// "interest ████████░░ 0.80".
func scoreBar(label string, score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	filled := int(score*scoreBarWidth + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
	return fmt.Sprintf("%s %s %.2f", label, ScoreStyle.Render(bar), score)
}
