package program

import (
	"log/slog"
	"math"

	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/ptr"
)

// ErrNotFound is returned when a week or workout is outside the
// program.
var ErrNotFound = errors.NewSentinel("not found")

// plateIncrementKg is the smallest loadable jump on a barbell with
// standard 1.25 kg plates on both sides.
const plateIncrementKg = 2.5

// oneRepMaxFactor converts an 8RM to an estimated 1RM (Epley-style
// approximation for an 8-rep set).
const oneRepMaxFactor = 1.25

// LookupWeek returns the schedule for the given week (1-12).
func LookupWeek(week int) (Week, error) {
	if week < 1 || week > TotalWeeks {
		return Week{}, errors.Wrap(ErrNotFound, "lookup week", slog.Int("week", week))
	}
	return schedule[week-1], nil
}

// LookupDay returns a training day. Workout 1 is Monday, 2 is
// Wednesday and 3 is Friday.
func LookupDay(week, workout int) (TrainingDay, error) {
	scheduleWeek, err := LookupWeek(week)
	if err != nil {
		return TrainingDay{}, err
	}
	if workout < 1 || workout > len(scheduleWeek.Days) {
		return TrainingDay{}, errors.Wrap(ErrNotFound, "lookup day",
			slog.Int("week", week), slog.Int("workout", workout))
	}
	return scheduleWeek.Days[workout-1], nil
}

// EstimateOneRepMax estimates a 1RM from a tested 8RM, rounded to the
// nearest kilogram.
func EstimateOneRepMax(eightRepMax float64) float64 {
	return math.Round(eightRepMax * oneRepMaxFactor)
}

// ResolveTargetWeight converts an intensity prescription into a
// loadable barbell weight, rounded half-up to the nearest 2.5 kg.
// RPE-only work has no computable target and resolves to nil.
func ResolveTargetWeight(intensity Intensity, oneRepMax float64) *float64 {
	percent, ok := intensity.Percent()
	if !ok {
		return nil
	}
	exact := oneRepMax * percent / 100
	rounded := math.Floor(exact/plateIncrementKg+0.5) * plateIncrementKg
	return ptr.Ref(rounded)
}

// WorkoutExercise is an exercise prescription with its resolved
// target weight. TargetWeightKg is nil for RPE-only work.
type WorkoutExercise struct {
	Exercise
	TargetWeightKg *float64 `json:"targetWeightKg"`
}

// Workout is a training day resolved against a lifter's 1RM.
type Workout struct {
	Week            int               `json:"week"`
	Workout         int               `json:"workout"`
	Phase           Phase             `json:"phase"`
	Deload          bool              `json:"deload"`
	Weekday         Weekday           `json:"weekday"`
	SessionType     SessionType       `json:"sessionType"`
	RPETarget       float64           `json:"rpeTarget"`
	DurationMinutes int               `json:"durationMinutes"`
	Notes           string            `json:"notes"`
	Exercises       []WorkoutExercise `json:"exercises"`
}

// ResolveWorkout resolves the given training day against oneRepMax.
func ResolveWorkout(week, workout int, oneRepMax float64) (Workout, error) {
	scheduleWeek, err := LookupWeek(week)
	if err != nil {
		return Workout{}, err
	}
	day, err := LookupDay(week, workout)
	if err != nil {
		return Workout{}, err
	}
	resolved := Workout{
		Week:            week,
		Workout:         workout,
		Phase:           scheduleWeek.Phase,
		Deload:          scheduleWeek.Deload,
		Weekday:         day.Weekday,
		SessionType:     day.SessionType,
		RPETarget:       day.RPETarget,
		DurationMinutes: day.DurationMinutes,
		Notes:           scheduleWeek.Notes,
		Exercises:       make([]WorkoutExercise, 0, len(day.Exercises)),
	}
	for _, exercise := range day.Exercises {
		resolved.Exercises = append(resolved.Exercises, WorkoutExercise{
			Exercise:       exercise,
			TargetWeightKg: ResolveTargetWeight(exercise.Intensity, oneRepMax),
		})
	}
	return resolved, nil
}

// Advance moves to the next workout. The program does not wrap:
// advancing past the final workout of week 12 is a no-op.
func (p Progress) Advance() Progress {
	if p.Workout < WorkoutsPerWeek {
		p.Workout++
		return p
	}
	if p.Week < TotalWeeks {
		p.Week++
		p.Workout = 1
		return p
	}
	return p
}

// Completed reports whether the progress points at the final workout
// of the program.
func (p Progress) Completed() bool {
	return p.Week == TotalWeeks && p.Workout == WorkoutsPerWeek
}
