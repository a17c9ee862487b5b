package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mkorpela/liftplan/internal/e2etest"
	"github.com/mkorpela/liftplan/internal/logging"
	"github.com/mkorpela/liftplan/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentOperations = 20
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
	numUsers                = 50
	baseBodyweightKg        = 70.0
	bodyweightSpreadKg      = 30
	baseBench1RMKg          = 60.0
	benchSpreadKg           = 40
)

// lifterScenario walks one simulated lifter through the core flow: fill
// in a profile, resolve the current workout, complete it, and read the
// nutrition plan. Each lifter gets their own client so sessions stay
// isolated.
func lifterScenario(ctx context.Context, url string, lifterIndex int, logger *slog.Logger) error {
	client, err := e2etest.NewClient(url)
	if err != nil {
		return fmt.Errorf("create client for lifter %d: %w", lifterIndex, err)
	}

	profile := map[string]any{
		"gender":        "male",
		"bodyweightKg":  baseBodyweightKg + float64(lifterIndex%bodyweightSpreadKg),
		"heightCm":      180,
		"age":           30,
		"activityLevel": "moderate",
		"experience":    "intermediate",
		"goals":         "bigger bench",
		"bench1RMKg":    baseBench1RMKg + float64(lifterIndex%benchSpreadKg),
	}
	if err = client.PutJSON(ctx, "/api/profile", profile, http.StatusOK, nil); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	var workout struct {
		Week    int `json:"week"`
		Workout int `json:"workout"`
	}
	if err = client.GetJSON(ctx, "/api/workouts/current", http.StatusOK, &workout); err != nil {
		return fmt.Errorf("fetch current workout: %w", err)
	}

	if err = client.PostJSON(ctx, "/api/workouts/complete", nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("complete workout: %w", err)
	}

	if err = client.GetJSON(ctx, "/api/nutrition", http.StatusOK, nil); err != nil {
		return fmt.Errorf("fetch nutrition plan: %w", err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "scenario completed",
		slog.Int("lifter_index", lifterIndex),
		slog.Int("week", workout.Week),
		slog.Int("workout", workout.Workout))
	return nil
}

// runLoadTest runs the lifter scenario for every simulated user with
// bounded concurrency and fails when the success rate drops below the
// threshold.
func runLoadTest(ctx context.Context, url string, logger *slog.Logger) error {
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_users", numUsers))

	var successCount, failureCount int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for i := range numUsers {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			if err := lifterScenario(scenarioCtx, url, i, logger); err != nil {
				atomic.AddInt64(&failureCount, 1)
				// Log individual failures but don't stop the entire test.
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.Int("lifter_index", i),
					slog.Any("error", err))
				return nil
			}

			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount) / float64(numUsers) * percentageMultiplier

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount),
		slog.Int64("failed", failureCount),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}

	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		start    = time.Now()
	)

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}

	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	if err = runLoadTest(ctx, url, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)))
}
