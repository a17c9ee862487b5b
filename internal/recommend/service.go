package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/mkorpela/liftplan/internal/errors"
)

// Service produces program recommendations. With an API key it asks
// the LLM first; without one, or on any LLM failure, it answers from
// the deterministic fallback. Recommend never returns an error.
type Service struct {
	client  openai.Client
	haveKey bool
	logger  *slog.Logger
}

// NewService creates a recommendation service. An empty apiKey
// disables the LLM and makes every call use the fallback.
func NewService(apiKey string, logger *slog.Logger) *Service {
	return &Service{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		haveKey: apiKey != "",
		logger:  logger,
	}
}

// Recommend returns a program recommendation for the given profile.
func (s *Service) Recommend(ctx context.Context, in Input) Recommendation {
	if in.AvailableDays <= 0 {
		in.AvailableDays = 4
	}
	if !s.haveKey {
		return fallbackRecommendation(in)
	}
	rec, err := s.analyze(ctx, in)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "goal analysis failed, using fallback recommendation",
			errors.SlogError(err))
		return fallbackRecommendation(in)
	}
	return rec
}

func (s *Service) analyze(ctx context.Context, in Input) (Recommendation, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt(in.AvailableDays)),
			openai.UserMessage(buildPrompt(in)),
		},
	}

	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Recommendation{}, errors.Wrap(err, "chat completion")
	}
	if len(completion.Choices) == 0 {
		return Recommendation{}, errors.New("chat completion returned no choices")
	}
	content := completion.Choices[0].Message.Content

	var rec Recommendation
	if err := json.Unmarshal([]byte(extractJSON(content)), &rec); err != nil {
		return Recommendation{}, errors.Wrap(err, "parse recommendation",
			slog.String("content", content))
	}
	plan, ok := planByID(rec.Plan)
	if !ok {
		return Recommendation{}, fmt.Errorf("model recommended unknown plan %q", rec.Plan)
	}
	if rec.Reason == "" {
		rec.Reason = plan.Science
	}
	return rec, nil
}

// extractJSON strips markdown code fences the model sometimes wraps
// its JSON answer in.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if after, found := strings.CutPrefix(content, "```json"); found {
		content = after
	} else if after, found := strings.CutPrefix(content, "```"); found {
		content = after
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

func systemPrompt(availableDays int) string {
	var b strings.Builder
	b.WriteString("You are an expert strength coach. Recommend exactly one training plan from this catalog:\n\n")
	for _, plan := range planCatalog {
		fmt.Fprintf(&b, "- %s (%s, %d days/week): %s\n", plan.ID, plan.Name, plan.DaysPerWeek, plan.Science)
	}
	fmt.Fprintf(&b, "\nThe client can train at most %d days per week; never recommend a plan that needs more.\n", availableDays)
	b.WriteString(`
Respond with JSON only, no prose, in this exact shape:
{"plan": "<catalog id>", "reason": "<2-3 sentences addressed to the client>", "frequency": "<e.g. 4 days per week>", "duration": "<e.g. 45-60 minutes>", "focus": "<short phrase>"}`)
	return b.String()
}

func buildPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goals: %s\n", in.Goals)
	fmt.Fprintf(&b, "Experience: %s\n", in.Experience)
	fmt.Fprintf(&b, "Available training days per week: %d\n", in.AvailableDays)
	if in.GenderLabel != "" {
		fmt.Fprintf(&b, "Gender: %s\n", in.GenderLabel)
	}
	if in.BodyweightKg > 0 {
		fmt.Fprintf(&b, "Bodyweight: %.1f kg\n", in.BodyweightKg)
	}
	if in.Bench1RMKg != nil {
		fmt.Fprintf(&b, "Bench press 1RM: %.1f kg\n", *in.Bench1RMKg)
	}
	if in.Squat1RMKg != nil {
		fmt.Fprintf(&b, "Squat 1RM: %.1f kg\n", *in.Squat1RMKg)
	}
	if in.Deadlift1RMKg != nil {
		fmt.Fprintf(&b, "Deadlift 1RM: %.1f kg\n", *in.Deadlift1RMKg)
	}
	return b.String()
}
