package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/giftai/giftai/internal/model"
)

// Prompter collects a RecommendRequest interactively.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a Prompter. Nil reader/writer fall back to stdin and
// stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{reader: bufio.NewReader(reader), writer: writer}
}

// PromptRequest walks the user through all request fields. Empty answers
// take the shown default.
func (p *Prompter) PromptRequest() (model.RecommendRequest, error) {
	fmt.Fprintln(p.writer, FormatTitle("Let's find a gift"))

	relationship, err := p.selectOption("Who is the gift for?", []string{
		string(model.RelationshipPartner), string(model.RelationshipFriend),
		string(model.RelationshipParent), string(model.RelationshipSibling),
		string(model.RelationshipColleague), string(model.RelationshipOther),
	}, string(model.RelationshipFriend))
	if err != nil {
		return model.RecommendRequest{}, err
	}

	purpose, err := p.selectOption("What's the occasion?", []string{
		string(model.PurposeBirthday), string(model.PurposeRomantic),
		string(model.PurposeNewBeginning), string(model.PurposeApology),
		string(model.PurposeCorporate), string(model.PurposeSpontaneous),
	}, string(model.PurposeBirthday))
	if err != nil {
		return model.RecommendRequest{}, err
	}

	risk, err := p.selectOption("How adventurous should the gift be?", []string{
		string(model.RiskSafe), string(model.RiskNormal), string(model.RiskBold),
	}, string(model.RiskNormal))
	if err != nil {
		return model.RecommendRequest{}, err
	}

	urgency, err := p.selectOption("How soon do you need it?", []string{
		string(model.UrgencyFlexible), string(model.UrgencyFewDays), string(model.UrgencySameDay),
	}, string(model.UrgencyFlexible))
	if err != nil {
		return model.RecommendRequest{}, err
	}

	budgetMin, err := p.promptFloat("Minimum budget (0 for none)", 0)
	if err != nil {
		return model.RecommendRequest{}, err
	}
	budgetMax, err := p.promptFloat("Maximum budget (0 for none)", 0)
	if err != nil {
		return model.RecommendRequest{}, err
	}

	hobbies, err := p.promptList("Hobbies (comma separated, optional)")
	if err != nil {
		return model.RecommendRequest{}, err
	}
	styleTags, err := p.promptList("Style keywords (comma separated, optional)")
	if err != nil {
		return model.RecommendRequest{}, err
	}

	freeText, err := p.promptLine("Anything else we should know? (optional)")
	if err != nil {
		return model.RecommendRequest{}, err
	}

	topN, err := p.promptInt(fmt.Sprintf("How many suggestions? (%d-%d)", model.MinTopN, model.MaxTopN), 3)
	if err != nil {
		return model.RecommendRequest{}, err
	}

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
	}, nil
}

// selectOption presents numbered options and accepts a number, an exact
// option name, or an empty answer for the default.
func (p *Prompter) selectOption(question string, options []string, defaultOption string) (string, error) {
	fmt.Fprintln(p.writer, PromptStyle.Render(question))
	for i, opt := range options {
		marker := " "
		if opt == defaultOption {
			marker = "*"
		}
		fmt.Fprintf(p.writer, " %s %d) %s\n", marker, i+1, opt)
	}

	answer, err := p.promptLine("Choice")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultOption, nil
	}

	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	for _, opt := range options {
		if strings.EqualFold(answer, opt) {
			return opt, nil
		}
	}

	fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("Unrecognized choice %q, using %s", answer, defaultOption)))
	return defaultOption, nil
}

func (p *Prompter) promptLine(question string) (string, error) {
	fmt.Fprintf(p.writer, "%s ", PromptStyle.Render(question+":"))

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) promptFloat(question string, defaultValue float64) (float64, error) {
	answer, err := p.promptLine(question)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(answer, 64)
	if err != nil || value < 0 {
		fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("Invalid amount %q, using %.0f", answer, defaultValue)))
		return defaultValue, nil
	}
	return value, nil
}

func (p *Prompter) promptInt(question string, defaultValue int) (int, error) {
	answer, err := p.promptLine(question)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintln(p.writer, FormatWarning(fmt.Sprintf("Invalid number %q, using %d", answer, defaultValue)))
		return defaultValue, nil
	}
	return value, nil
}

func (p *Prompter) promptList(question string) ([]string, error) {
	answer, err := p.promptLine(question)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}

	parts := strings.Split(answer, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}
