package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/program"
	"github.com/mkorpela/liftplan/internal/sqlite"
)

// ErrNotFound is returned when a profile has never been saved.
var ErrNotFound = errors.NewSentinel("profile not found")

// Service handles the business logic for profiles and training
// progress.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a new profile service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
	}
}

// Get retrieves the profile. A lifter who has never saved anything
// gets an empty profile rather than an error.
func (s *Service) Get(ctx context.Context, id string) (Profile, error) {
	profile, err := s.repo.get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Profile{ID: id}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// Update loads the profile, applies mutate to it and saves the result.
// The updated profile is returned.
func (s *Service) Update(ctx context.Context, id string, mutate func(*Profile)) (Profile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	mutate(&profile)
	profile.ID = id
	if err = s.repo.upsert(ctx, profile); err != nil {
		return Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// Progress returns the lifter's position in the program.
func (s *Service) Progress(ctx context.Context, id string) (program.Progress, error) {
	progress, err := s.repo.progress(ctx, id)
	if err != nil {
		return program.Progress{}, fmt.Errorf("get progress: %w", err)
	}
	return progress, nil
}

// CompleteWorkout marks the current workout as done and advances the
// progress pointer. It returns the completed position and the next
// one, which are equal once the whole program is finished.
func (s *Service) CompleteWorkout(ctx context.Context, id string) (completed, next program.Progress, err error) {
	completed, err = s.repo.progress(ctx, id)
	if err != nil {
		return program.Progress{}, program.Progress{}, fmt.Errorf("get progress: %w", err)
	}
	next = completed.Advance()
	if err = s.repo.completeWorkout(ctx, id, completed, next); err != nil {
		return program.Progress{}, program.Progress{}, fmt.Errorf("complete workout: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "workout completed",
		slog.Int("week", completed.Week),
		slog.Int("workout", completed.Workout))
	return completed, next, nil
}

// Completions lists the lifter's finished workouts, oldest first.
func (s *Service) Completions(ctx context.Context, id string) ([]Completion, error) {
	completions, err := s.repo.completions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return completions, nil
}
