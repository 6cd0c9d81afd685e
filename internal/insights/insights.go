// Package insights generates short advisory text about the business from
// the monthly figures.
package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/report"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("insights are not enabled on this server")

// Summary is the input for an advisory request.
type Summary struct {
	Months        []report.MonthlyStat `json:"months"`
	TotalIncome   decimal.Decimal      `json:"totalIncome"`
	TotalExpenses decimal.Decimal      `json:"totalExpenses"`
	TenantCount   int                  `json:"tenantCount"`
	DueTodayCount int                  `json:"dueTodayCount"`
}

// Service wraps the OpenAI client. With a nil client the feature is disabled.
type Service struct {
	client *openai.Client
}

// NewService creates the service. Pass an empty apiKey to disable calls.
func NewService(apiKey string) *Service {
	if apiKey == "" {
		return &Service{client: nil}
	}
	c := openai.NewClient(option.WithAPIKey(apiKey))
	return &Service{client: &c}
}

// Enabled reports whether advisory requests can be served.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Advise asks the model for a short analysis of the figures.
func (s *Service) Advise(ctx context.Context, summary Summary) (string, error) {
	if s.client == nil {
		return "", ErrDisabled
	}

	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a bookkeeping assistant for a small rental property business in the Philippines. Answer in at most four short sentences of plain text."),
			openai.UserMessage(Prompt(summary)),
		},
	}

	resp, err := s.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Prompt renders the figures into the request text sent to the model.
func Prompt(summary Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tenants: %d, due today: %d.\n", summary.TenantCount, summary.DueTodayCount)
	fmt.Fprintf(&b, "Total income %s, total expenses %s.\n", summary.TotalIncome, summary.TotalExpenses)
	b.WriteString("Recent months (income, expenses, net):\n")

	for _, m := range summary.Months {
		fmt.Fprintf(&b, "%s: %s, %s, %s\n", m.Month, m.Income, m.Expenses, m.Net)
	}

	b.WriteString("Point out trends and one concrete suggestion.")
	return b.String()
}
