package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"claritymeet.app/api-server/internal/model"
)

const systemPrompt = "You are an assistant for a meeting accountability tracker. " +
	"Respond with JSON only, no prose and no code fences."

// OpenAI is the LLM-backed suggester. Output is untrusted input: everything
// it proposes still passes through normal service validation before being
// persisted.
type OpenAI struct {
	client openai.Client
	model  string
}

var _ Service = &OpenAI{}

func NewOpenAI(apiKey, model string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (s *OpenAI) SuggestAgenda(ctx context.Context, title string) ([]AgendaSuggestion, error) {
	prompt := fmt.Sprintf(
		`Suggest 3 agenda items for a meeting titled %q. `+
			`Return a JSON array of {"topic": string, "time_allocation": minutes}.`, title)

	var suggestions []AgendaSuggestion
	if err := s.complete(ctx, prompt, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *OpenAI) SuggestActions(ctx context.Context, title string, agendaTopics []string) ([]ActionSuggestion, error) {
	prompt := fmt.Sprintf(
		`Suggest follow-up action items for a meeting titled %q with agenda topics: %s. `+
			`Return a JSON array of {"description": string, "owner": string, "deadline": "YYYY-MM-DD"}; `+
			`owner and deadline may be empty strings.`, title, strings.Join(agendaTopics, "; "))

	var suggestions []ActionSuggestion
	if err := s.complete(ctx, prompt, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *OpenAI) SummarizeReview(ctx context.Context, title string, actionItems []model.ActionItem) (*ReviewDraft, error) {
	var lines []string
	for _, item := range actionItems {
		lines = append(lines, fmt.Sprintf("- %s (%s)", item.Description, item.Status))
	}
	prompt := fmt.Sprintf(
		`Draft a short review summary for a meeting titled %q with these action items:
%s
Return a JSON object {"summary": string, "suggested_rating": 1-5}.`, title, strings.Join(lines, "\n"))

	var draft ReviewDraft
	if err := s.complete(ctx, prompt, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *OpenAI) complete(ctx context.Context, prompt string, out any) error {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return fmt.Errorf("chat completion returned no choices")
	}

	content := stripFences(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("parsing suggestion payload: %w", err)
	}
	return nil
}

// stripFences tolerates models that wrap JSON in a markdown code fence
// despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
