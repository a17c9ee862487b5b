// Package program contains the 12-week bench press progression and the
// pure functions that resolve it against a lifter's one rep max. The
// package never touches storage; persisting progress is the caller's
// job.
package program

import (
	"encoding/json"
	"fmt"
)

// Phase is a block of the 12-week periodization.
type Phase string

const (
	PhaseAdaptation      Phase = "Anatomical Adaptation"
	PhaseHypertrophy     Phase = "Hypertrophy Accumulation"
	PhaseIntensification Phase = "Strength Intensification"
	PhasePeaking         Phase = "Peaking"
	PhaseDeload          Phase = "Deload"
)

// SessionType classifies a training day by its loading.
type SessionType string

const (
	SessionHeavy    SessionType = "heavy"
	SessionModerate SessionType = "moderate"
	SessionLight    SessionType = "light"
)

// Weekday is the calendar day a session is prescribed on. The program
// trains Monday, Wednesday and Friday.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Wednesday Weekday = "Wednesday"
	Friday    Weekday = "Friday"
)

// Intensity is either a percentage of the lifter's 1RM or RPE-only,
// meaning the load is autoregulated and no target weight can be
// computed (accessory work with dumbbells, bodyweight movements).
type Intensity struct {
	percent float64
	rpeOnly bool
}

// PercentOf1RM returns an intensity prescribed as a percentage of 1RM.
func PercentOf1RM(percent float64) Intensity {
	return Intensity{percent: percent}
}

// RPEOnly returns an intensity with no percentage prescription.
func RPEOnly() Intensity {
	return Intensity{rpeOnly: true}
}

// Percent returns the prescribed percentage and whether one exists.
func (i Intensity) Percent() (float64, bool) {
	return i.percent, !i.rpeOnly
}

// MarshalJSON emits the percentage as a number, or the string "N/A"
// for RPE-only work.
func (i Intensity) MarshalJSON() ([]byte, error) {
	if i.rpeOnly {
		return json.Marshal("N/A")
	}
	data, err := json.Marshal(i.percent)
	if err != nil {
		return nil, fmt.Errorf("marshal intensity: %w", err)
	}
	return data, nil
}

// RepRange is a repetition prescription. Min equals Max for a fixed
// rep count; a spread like 15-20 leaves the exact count to the lifter.
type RepRange struct {
	Min int
	Max int
}

// Reps returns a fixed rep prescription.
func Reps(count int) RepRange {
	return RepRange{Min: count, Max: count}
}

// RepsBetween returns a spread rep prescription.
func RepsBetween(minReps, maxReps int) RepRange {
	return RepRange{Min: minReps, Max: maxReps}
}

func (r RepRange) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("%d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// MarshalJSON emits a bare number for fixed reps and a "min-max"
// string for spreads, mirroring how lifters read a program card.
func (r RepRange) MarshalJSON() ([]byte, error) {
	if r.Min == r.Max {
		return json.Marshal(r.Min)
	}
	return json.Marshal(r.String())
}

// Exercise is a single movement prescription within a training day.
type Exercise struct {
	Name        string    `json:"name"`
	Sets        int       `json:"sets"`
	Reps        RepRange  `json:"reps"`
	Intensity   Intensity `json:"intensity"`
	RestSeconds int       `json:"restSeconds"`
	Tempo       string    `json:"tempo,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// TrainingDay is one of the three weekly sessions.
type TrainingDay struct {
	Weekday         Weekday     `json:"weekday"`
	SessionType     SessionType `json:"sessionType"`
	RPETarget       float64     `json:"rpeTarget"`
	DurationMinutes int         `json:"durationMinutes"`
	Exercises       []Exercise  `json:"exercises"`
}

// Week is one week of the schedule with its three training days in
// workout order (1 = Monday, 2 = Wednesday, 3 = Friday).
type Week struct {
	Number int           `json:"week"`
	Phase  Phase         `json:"phase"`
	Deload bool          `json:"deload"`
	Notes  string        `json:"notes"`
	Days   []TrainingDay `json:"days"`
}

// Progress is a lifter's position in the program.
type Progress struct {
	Week    int `json:"week"`
	Workout int `json:"workout"`
}
