package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mkorpela/liftplan/internal/e2etest"
	"github.com/mkorpela/liftplan/internal/logging"
	"github.com/mkorpela/liftplan/internal/testhelpers"
)

// testAPI walks through the core user flow: read the program, fill in a
// profile and resolve the first workout against it.
func testAPI(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	var overview struct {
		Metadata struct {
			TotalWeeks int `json:"totalWeeks"`
		} `json:"metadata"`
	}
	if err := client.GetJSON(ctx, "/api/program", http.StatusOK, &overview); err != nil {
		return fmt.Errorf("fetch program: %w", err)
	}
	if overview.Metadata.TotalWeeks != 12 { //nolint:mnd // program length
		return fmt.Errorf("unexpected program length: %d weeks", overview.Metadata.TotalWeeks)
	}

	if err := client.PutJSON(ctx, "/api/profile",
		map[string]any{"bench1RMKg": 100}, http.StatusOK, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	var workout struct {
		Week    int `json:"week"`
		Workout int `json:"workout"`
	}
	if err := client.GetJSON(ctx, "/api/workouts/current", http.StatusOK, &workout); err != nil {
		return fmt.Errorf("fetch current workout: %w", err)
	}
	if workout.Week == 0 || workout.Workout == 0 {
		return fmt.Errorf("current workout has no position: %+v", workout)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = testAPI(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing API", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
