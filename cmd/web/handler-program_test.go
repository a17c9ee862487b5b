package main

import (
	"net/http"
	"strings"
	"testing"
)

func TestProgramOverview(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	var got struct {
		Metadata struct {
			Name            string `json:"name"`
			TotalWeeks      int    `json:"totalWeeks"`
			SessionsPerWeek int    `json:"sessionsPerWeek"`
		} `json:"metadata"`
		Phases []struct {
			Phase string `json:"phase"`
			Weeks string `json:"weeks"`
		} `json:"phases"`
		RPEScale []struct {
			RPE         float64 `json:"rpe"`
			Description string  `json:"description"`
		} `json:"rpeScale"`
		DescriptionHTML string `json:"descriptionHtml"`
	}
	if err := server.Client().GetJSON(t.Context(), "/api/program", http.StatusOK, &got); err != nil {
		t.Fatalf("GET /api/program: %v", err)
	}

	if got.Metadata.TotalWeeks != 12 || got.Metadata.SessionsPerWeek != 3 {
		t.Errorf("metadata = %+v", got.Metadata)
	}
	if len(got.Phases) == 0 || len(got.RPEScale) == 0 {
		t.Errorf("phases/rpeScale empty: %d/%d", len(got.Phases), len(got.RPEScale))
	}
	if !strings.Contains(got.DescriptionHTML, "<h1>") {
		t.Errorf("descriptionHtml not rendered: %.80q", got.DescriptionHTML)
	}
}

func TestProgramWeekLookup(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)
	ctx := t.Context()
	client := server.Client()

	var week struct {
		Week   int    `json:"week"`
		Phase  string `json:"phase"`
		Deload bool   `json:"deload"`
		Days   []struct {
			Weekday string `json:"weekday"`
		} `json:"days"`
	}
	if err := client.GetJSON(ctx, "/api/program/weeks/4", http.StatusOK, &week); err != nil {
		t.Fatalf("GET /api/program/weeks/4: %v", err)
	}
	if week.Week != 4 || !week.Deload || week.Phase != "Deload" {
		t.Errorf("week 4 = %+v, want deload", week)
	}
	if len(week.Days) != 3 {
		t.Errorf("days = %d, want 3", len(week.Days))
	}

	for _, path := range []string{"/api/program/weeks/0", "/api/program/weeks/13", "/api/program/weeks/monday"} {
		if err := client.GetJSON(ctx, path, http.StatusNotFound, nil); err != nil {
			t.Errorf("GET %s: %v", path, err)
		}
	}
}
