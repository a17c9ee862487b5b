// Package profile stores lifter profiles and their progress through
// the training program. A profile is keyed by an opaque ID held in the
// caller's session, there are no user accounts.
package profile

import (
	"time"

	"github.com/mkorpela/liftplan/internal/program"
)

// Profile holds everything the nutrition and program engines need to
// know about a lifter. Zero values mean "not provided yet".
type Profile struct {
	ID            string   `json:"-"`
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

// BenchOneRepMax returns the bench 1RM to prescribe from: a tested max
// when recorded, otherwise an estimate from the 8RM. The second return
// is false when neither is available.
func (p Profile) BenchOneRepMax() (float64, bool) {
	if p.Bench1RMKg != nil && *p.Bench1RMKg > 0 {
		return *p.Bench1RMKg, true
	}
	if p.Bench8RMKg != nil && *p.Bench8RMKg > 0 {
		return program.EstimateOneRepMax(*p.Bench8RMKg), true
	}
	return 0, false
}

// Completion is a finished workout in the lifter's history.
type Completion struct {
	Week        int       `json:"week"`
	Workout     int       `json:"workout"`
	CompletedAt time.Time `json:"completedAt"`
}
