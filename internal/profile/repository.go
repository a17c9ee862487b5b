package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkorpela/liftplan/internal/program"
	"github.com/mkorpela/liftplan/internal/sqlite"
)

// sqliteRepository handles database operations for profiles and
// training progress.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// get retrieves a profile by ID. Returns ErrNotFound when the profile
// has never been saved.
func (r *sqliteRepository) get(ctx context.Context, id string) (Profile, error) {
	profile := Profile{ID: id}
	var (
		bodyweight sql.NullFloat64
		height     sql.NullFloat64
		age        sql.NullInt64
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT gender, bodyweight_kg, height_cm, age, activity_level, experience,
		       program, goals, available_days,
		       bench_one_rep_max_kg, bench_eight_rep_max_kg,
		       squat_one_rep_max_kg, deadlift_one_rep_max_kg
		FROM profiles
		WHERE id = ?`, id).Scan(
		&profile.Gender,
		&bodyweight,
		&height,
		&age,
		&profile.ActivityLevel,
		&profile.Experience,
		&profile.Program,
		&profile.Goals,
		&profile.AvailableDays,
		&profile.Bench1RMKg,
		&profile.Bench8RMKg,
		&profile.Squat1RMKg,
		&profile.Deadlift1RMKg,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("query profile: %w", err)
	}
	profile.BodyweightKg = bodyweight.Float64
	profile.HeightCm = height.Float64
	profile.Age = int(age.Int64)
	return profile, nil
}

// upsert saves the profile, creating the row on first write.
func (r *sqliteRepository) upsert(ctx context.Context, profile Profile) error {
	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (
			id, gender, bodyweight_kg, height_cm, age, activity_level, experience,
			program, goals, available_days,
			bench_one_rep_max_kg, bench_eight_rep_max_kg,
			squat_one_rep_max_kg, deadlift_one_rep_max_kg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			gender = excluded.gender,
			bodyweight_kg = excluded.bodyweight_kg,
			height_cm = excluded.height_cm,
			age = excluded.age,
			activity_level = excluded.activity_level,
			experience = excluded.experience,
			program = excluded.program,
			goals = excluded.goals,
			available_days = excluded.available_days,
			bench_one_rep_max_kg = excluded.bench_one_rep_max_kg,
			bench_eight_rep_max_kg = excluded.bench_eight_rep_max_kg,
			squat_one_rep_max_kg = excluded.squat_one_rep_max_kg,
			deadlift_one_rep_max_kg = excluded.deadlift_one_rep_max_kg,
			updated_at = CURRENT_TIMESTAMP`,
		profile.ID,
		profile.Gender,
		nullableFloat(profile.BodyweightKg),
		nullableFloat(profile.HeightCm),
		nullableInt(profile.Age),
		profile.ActivityLevel,
		profile.Experience,
		profile.Program,
		profile.Goals,
		profile.AvailableDays,
		profile.Bench1RMKg,
		profile.Bench8RMKg,
		profile.Squat1RMKg,
		profile.Deadlift1RMKg,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// progress returns the lifter's position in the program. A lifter who
// has never trained starts at week 1, workout 1.
func (r *sqliteRepository) progress(ctx context.Context, id string) (program.Progress, error) {
	progress := program.Progress{Week: 1, Workout: 1}
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT week, workout
		FROM training_progress
		WHERE profile_id = ?`, id).Scan(&progress.Week, &progress.Workout)
	if errors.Is(err, sql.ErrNoRows) {
		return program.Progress{Week: 1, Workout: 1}, nil
	}
	if err != nil {
		return program.Progress{}, fmt.Errorf("query training progress: %w", err)
	}
	return progress, nil
}

// completeWorkout records the completion and moves the progress pointer
// in a single transaction.
func (r *sqliteRepository) completeWorkout(
	ctx context.Context,
	id string,
	completed program.Progress,
	next program.Progress,
) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		err = tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", err))
		}
	}(tx)

	// Repeating a workout is allowed; only the first completion is kept.
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO completed_workouts (profile_id, week, workout)
		VALUES (?, ?, ?)
		ON CONFLICT (profile_id, week, workout) DO NOTHING`,
		id, completed.Week, completed.Workout); err != nil {
		return fmt.Errorf("record completed workout: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO training_progress (profile_id, week, workout)
		VALUES (?, ?, ?)
		ON CONFLICT (profile_id) DO UPDATE SET
			week = excluded.week,
			workout = excluded.workout,
			updated_at = CURRENT_TIMESTAMP`,
		id, next.Week, next.Workout); err != nil {
		return fmt.Errorf("save training progress: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// completions lists the lifter's finished workouts, oldest first.
func (r *sqliteRepository) completions(ctx context.Context, id string) ([]Completion, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT week, workout, completed_at
		FROM completed_workouts
		WHERE profile_id = ?
		ORDER BY completed_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("query completed workouts: %w", err)
	}
	defer rows.Close()

	var results []Completion
	for rows.Next() {
		var (
			completion  Completion
			completedAt time.Time
		)
		if err = rows.Scan(&completion.Week, &completion.Workout, &completedAt); err != nil {
			return nil, fmt.Errorf("scan completed workout: %w", err)
		}
		completion.CompletedAt = completedAt
		results = append(results, completion)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return results, nil
}

func nullableFloat(v float64) any {
	if v <= 0 {
		return nil
	}
	return v
}

func nullableInt(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}
