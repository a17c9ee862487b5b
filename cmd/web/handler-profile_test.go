package main

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type profileDTO struct {
	Gender        string   `json:"gender"`
	BodyweightKg  float64  `json:"bodyweightKg"`
	HeightCm      float64  `json:"heightCm"`
	Age           int      `json:"age"`
	ActivityLevel string   `json:"activityLevel"`
	Experience    string   `json:"experience"`
	Program       string   `json:"program"`
	Goals         string   `json:"goals"`
	AvailableDays int      `json:"availableDays"`
	Bench1RMKg    *float64 `json:"bench1RMKg"`
	Bench8RMKg    *float64 `json:"bench8RMKg"`
	Squat1RMKg    *float64 `json:"squat1RMKg"`
	Deadlift1RMKg *float64 `json:"deadlift1RMKg"`
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	// A fresh session starts with an empty profile.
	var initial profileDTO
	if err := client.GetJSON(ctx, "/api/profile", http.StatusOK, &initial); err != nil {
		t.Fatalf("GET /api/profile: %v", err)
	}
	if diff := cmp.Diff(profileDTO{}, initial); diff != "" {
		t.Errorf("fresh profile not empty (-want +got):\n%s", diff)
	}

	bench := 87.5
	want := profileDTO{
		Gender:        "male",
		BodyweightKg:  80,
		HeightCm:      180,
		Age:           30,
		ActivityLevel: "moderate",
		Experience:    "intermediate",
		Program:       "ul",
		Goals:         "bench 100kg",
		AvailableDays: 4,
		Bench1RMKg:    &bench,
	}
	var updated profileDTO
	if err := client.PutJSON(ctx, "/api/profile", want, http.StatusOK, &updated); err != nil {
		t.Fatalf("PUT /api/profile: %v", err)
	}
	if diff := cmp.Diff(want, updated); diff != "" {
		t.Errorf("PUT response (-want +got):\n%s", diff)
	}

	// The same session sees the stored profile on the next request.
	var stored profileDTO
	if err := client.GetJSON(ctx, "/api/profile", http.StatusOK, &stored); err != nil {
		t.Fatalf("GET /api/profile after PUT: %v", err)
	}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored profile (-want +got):\n%s", diff)
	}
}

func TestProfilePartialUpdateMerges(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	if err := client.PutJSON(ctx, "/api/profile",
		map[string]any{"gender": "female", "bodyweightKg": 60}, http.StatusOK, nil); err != nil {
		t.Fatalf("first PUT: %v", err)
	}
	var got profileDTO
	if err := client.PutJSON(ctx, "/api/profile",
		map[string]any{"bench8RMKg": 40}, http.StatusOK, &got); err != nil {
		t.Fatalf("second PUT: %v", err)
	}

	if got.Gender != "female" || got.BodyweightKg != 60 {
		t.Errorf("earlier fields lost: %+v", got)
	}
	if got.Bench8RMKg == nil || *got.Bench8RMKg != 40 {
		t.Errorf("Bench8RMKg = %v, want 40", got.Bench8RMKg)
	}
}

func TestProfileRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	err := server.Client().PutJSON(t.Context(), "/api/profile",
		map[string]any{"bodywightKg": 80}, http.StatusBadRequest, nil)
	if err != nil {
		t.Fatalf("PUT with typo field: %v", err)
	}
}
