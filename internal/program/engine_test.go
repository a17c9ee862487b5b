package program_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/program"
)

func TestLookupDay(t *testing.T) {
	for week := 1; week <= 12; week++ {
		for workout := 1; workout <= 3; workout++ {
			day, err := program.LookupDay(week, workout)
			if err != nil {
				t.Errorf("LookupDay(%d, %d) unexpected error: %v", week, workout, err)
				continue
			}
			if len(day.Exercises) == 0 {
				t.Errorf("LookupDay(%d, %d) returned day without exercises", week, workout)
			}
		}
	}
}

func TestLookupDayOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		week    int
		workout int
	}{
		{name: "week zero", week: 0, workout: 1},
		{name: "week thirteen", week: 13, workout: 1},
		{name: "workout zero", week: 1, workout: 0},
		{name: "workout four", week: 1, workout: 4},
		{name: "negative week", week: -1, workout: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := program.LookupDay(tt.week, tt.workout); !errors.Is(err, program.ErrNotFound) {
				t.Errorf("LookupDay(%d, %d) = %v, want ErrNotFound", tt.week, tt.workout, err)
			}
		})
	}
}

func TestResolveTargetWeight(t *testing.T) {
	tests := []struct {
		name      string
		intensity program.Intensity
		oneRepMax float64
		want      float64
	}{
		{name: "week 9 heavy triples", intensity: program.PercentOf1RM(87), oneRepMax: 100, want: 87.5},
		{name: "exact multiple", intensity: program.PercentOf1RM(75), oneRepMax: 100, want: 75},
		{name: "rounds to nearest", intensity: program.PercentOf1RM(67), oneRepMax: 100, want: 67.5},
		{name: "half rounds up", intensity: program.PercentOf1RM(75), oneRepMax: 105, want: 80},
		{name: "odd one rep max", intensity: program.PercentOf1RM(80), oneRepMax: 92.5, want: 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := program.ResolveTargetWeight(tt.intensity, tt.oneRepMax)
			if got == nil {
				t.Fatalf("ResolveTargetWeight() = nil, want %v", tt.want)
			}
			if *got != tt.want {
				t.Errorf("ResolveTargetWeight() = %v, want %v", *got, tt.want)
			}
		})
	}
}

func TestResolveTargetWeightRPEOnly(t *testing.T) {
	if got := program.ResolveTargetWeight(program.RPEOnly(), 100); got != nil {
		t.Errorf("ResolveTargetWeight(RPEOnly) = %v, want nil", *got)
	}
}

func TestResolveTargetWeightPlateIncrement(t *testing.T) {
	// Whatever the 1RM, the resolved weight must be loadable with
	// 1.25 kg plates.
	for _, oneRepMax := range []float64{60, 77.5, 92.5, 100, 103, 141.3} {
		for week := 1; week <= 12; week++ {
			for workout := 1; workout <= 3; workout++ {
				resolved, err := program.ResolveWorkout(week, workout, oneRepMax)
				if err != nil {
					t.Fatalf("ResolveWorkout(%d, %d, %v): %v", week, workout, oneRepMax, err)
				}
				for _, exercise := range resolved.Exercises {
					if exercise.TargetWeightKg == nil {
						continue
					}
					remainder := math.Mod(*exercise.TargetWeightKg, 2.5)
					if remainder > 1e-9 && remainder < 2.5-1e-9 {
						t.Errorf("week %d workout %d %q: %v kg not a 2.5 kg multiple",
							week, workout, exercise.Name, *exercise.TargetWeightKg)
					}
				}
			}
		}
	}
}

func TestResolveWorkout(t *testing.T) {
	resolved, err := program.ResolveWorkout(9, 3, 100)
	if err != nil {
		t.Fatalf("ResolveWorkout: %v", err)
	}
	if resolved.Phase != program.PhaseIntensification {
		t.Errorf("Phase = %v, want %v", resolved.Phase, program.PhaseIntensification)
	}
	if resolved.SessionType != program.SessionHeavy {
		t.Errorf("SessionType = %v, want heavy", resolved.SessionType)
	}
	first := resolved.Exercises[0]
	if first.Name != "Barbell Bench Press" {
		t.Errorf("first exercise = %q, want Barbell Bench Press", first.Name)
	}
	if first.TargetWeightKg == nil || *first.TargetWeightKg != 87.5 {
		t.Errorf("first target weight = %v, want 87.5", first.TargetWeightKg)
	}
}

func TestEstimateOneRepMax(t *testing.T) {
	tests := []struct {
		eightRepMax float64
		want        float64
	}{
		{eightRepMax: 100, want: 125},
		{eightRepMax: 80, want: 100},
		{eightRepMax: 82.5, want: 103},
		{eightRepMax: 0, want: 0},
	}
	for _, tt := range tests {
		if got := program.EstimateOneRepMax(tt.eightRepMax); got != tt.want {
			t.Errorf("EstimateOneRepMax(%v) = %v, want %v", tt.eightRepMax, got, tt.want)
		}
	}
}

func TestProgressAdvance(t *testing.T) {
	tests := []struct {
		name string
		from program.Progress
		want program.Progress
	}{
		{name: "within week", from: program.Progress{Week: 1, Workout: 1}, want: program.Progress{Week: 1, Workout: 2}},
		{name: "week rollover", from: program.Progress{Week: 1, Workout: 3}, want: program.Progress{Week: 2, Workout: 1}},
		{name: "into final week", from: program.Progress{Week: 11, Workout: 3}, want: program.Progress{Week: 12, Workout: 1}},
		{name: "capped at program end", from: program.Progress{Week: 12, Workout: 3}, want: program.Progress{Week: 12, Workout: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.from.Advance()); diff != "" {
				t.Errorf("Advance() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProgressCompleted(t *testing.T) {
	if (program.Progress{Week: 12, Workout: 2}).Completed() {
		t.Error("Completed() = true before final workout")
	}
	if !(program.Progress{Week: 12, Workout: 3}).Completed() {
		t.Error("Completed() = false at final workout")
	}
}

func TestMeta(t *testing.T) {
	meta := program.Meta()
	if meta.TotalWeeks != 12 || meta.SessionsPerWeek != 3 {
		t.Errorf("Meta() = %d weeks %d sessions, want 12 and 3", meta.TotalWeeks, meta.SessionsPerWeek)
	}
	if len(program.Phases()) != 6 {
		t.Errorf("Phases() returned %d summaries, want 6", len(program.Phases()))
	}
	if len(program.RPEScale()) != 9 {
		t.Errorf("RPEScale() returned %d entries, want 9", len(program.RPEScale()))
	}
}
