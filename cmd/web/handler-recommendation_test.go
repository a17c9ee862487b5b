package main

import (
	"net/http"
	"testing"
)

type recommendationDTO struct {
	Plan      string `json:"plan"`
	Reason    string `json:"reason"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Focus     string `json:"focus"`
}

// Without an API key the server answers from the deterministic
// fallback, which makes the responses assertable.
func TestRecommendationFromProfile(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	if err := client.PutJSON(ctx, "/api/profile", map[string]any{
		"goals":         "raw strength and a big bench",
		"experience":    "intermediate",
		"availableDays": 4,
	}, http.StatusOK, nil); err != nil {
		t.Fatalf("PUT /api/profile: %v", err)
	}

	var got recommendationDTO
	if err := client.PostJSON(ctx, "/api/recommendation", nil, http.StatusOK, &got); err != nil {
		t.Fatalf("POST /api/recommendation: %v", err)
	}
	if got.Plan != "531" {
		t.Errorf("plan = %q, want 531", got.Plan)
	}
	if got.Reason == "" || got.Frequency == "" {
		t.Errorf("incomplete recommendation: %+v", got)
	}
}

func TestRecommendationBodyOverridesProfile(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	if err := client.PutJSON(ctx, "/api/profile", map[string]any{
		"goals":      "raw strength",
		"experience": "intermediate",
	}, http.StatusOK, nil); err != nil {
		t.Fatalf("PUT /api/profile: %v", err)
	}

	var got recommendationDTO
	if err := client.PostJSON(ctx, "/api/recommendation", map[string]any{
		"goals": "I want to run a marathon",
	}, http.StatusOK, &got); err != nil {
		t.Fatalf("POST /api/recommendation: %v", err)
	}
	if got.Plan != "hyrox" {
		t.Errorf("plan = %q, want hyrox", got.Plan)
	}
}
