package recommend

import (
	"context"
	"testing"

	"github.com/mkorpela/liftplan/internal/testhelpers"
)

func TestFallbackRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		wantPlan string
	}{
		{
			name:     "running goals pick hyrox",
			input:    Input{Goals: "I want to run a marathon next year", AvailableDays: 5},
			wantPlan: "hyrox",
		},
		{
			name:     "strength keyword picks 531",
			input:    Input{Goals: "raw strength", Experience: "intermediate", AvailableDays: 4},
			wantPlan: "531",
		},
		{
			name:     "advanced lifter picks 531 without keywords",
			input:    Input{Goals: "keep progressing", Experience: "advanced", AvailableDays: 4},
			wantPlan: "531",
		},
		{
			name:     "beginner experience picks full body",
			input:    Input{Goals: "get fit", Experience: "beginner", AvailableDays: 3},
			wantPlan: "fullbody",
		},
		{
			name:     "mass goals with six days pick ppl",
			input:    Input{Goals: "build mass", Experience: "intermediate", AvailableDays: 6},
			wantPlan: "ppl",
		},
		{
			name:     "mass goals with five days step down to pplul",
			input:    Input{Goals: "bodybuilding physique", Experience: "intermediate", AvailableDays: 5},
			wantPlan: "pplul",
		},
		{
			name:     "mass goals with four days step down to upper lower",
			input:    Input{Goals: "more size", Experience: "intermediate", AvailableDays: 4},
			wantPlan: "ul",
		},
		{
			name:     "mass goals with two days step down to full body",
			input:    Input{Goals: "more size", Experience: "intermediate", AvailableDays: 2},
			wantPlan: "fullbody",
		},
		{
			name:     "no signal defaults to upper lower",
			input:    Input{Goals: "look better naked", Experience: "intermediate", AvailableDays: 4},
			wantPlan: "ul",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackRecommendation(tt.input)
			if got.Plan != tt.wantPlan {
				t.Errorf("plan = %q, want %q", got.Plan, tt.wantPlan)
			}
			if got.Reason == "" || got.Frequency == "" || got.Duration == "" || got.Focus == "" {
				t.Errorf("incomplete recommendation %+v", got)
			}
			if _, ok := planByID(got.Plan); !ok {
				t.Errorf("plan %q not in catalog", got.Plan)
			}
		})
	}
}

func TestRecommendWithoutAPIKeyUsesFallback(t *testing.T) {
	service := NewService("", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	got := service.Recommend(context.Background(), Input{Goals: "strength", Experience: "intermediate"})
	if got.Plan != "531" {
		t.Errorf("plan = %q, want 531", got.Plan)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bare json", content: `{"plan":"ul"}`, want: `{"plan":"ul"}`},
		{name: "json fence", content: "```json\n{\"plan\":\"ul\"}\n```", want: `{"plan":"ul"}`},
		{name: "plain fence", content: "```\n{\"plan\":\"ul\"}\n```", want: `{"plan":"ul"}`},
		{name: "surrounding whitespace", content: "  {\"plan\":\"ul\"}\n", want: `{"plan":"ul"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.content); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestPlanCatalog(t *testing.T) {
	if len(Plans()) != 8 {
		t.Fatalf("catalog has %d plans, want 8", len(Plans()))
	}
	seen := map[string]bool{}
	for _, plan := range Plans() {
		if seen[plan.ID] {
			t.Errorf("duplicate plan id %q", plan.ID)
		}
		seen[plan.ID] = true
		if plan.Name == "" || plan.Science == "" || plan.DaysPerWeek < 3 || plan.DaysPerWeek > 6 {
			t.Errorf("malformed catalog entry %+v", plan)
		}
	}
}
