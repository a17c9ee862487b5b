package recommend

import "strings"

// Input carries the profile fields the recommendation is based on.
type Input struct {
	Goals         string
	Experience    string
	AvailableDays int
	GenderLabel   string
	BodyweightKg  float64
	Bench1RMKg    *float64
	Squat1RMKg    *float64
	Deadlift1RMKg *float64
}

// Recommendation is the advice returned to the client.
type Recommendation struct {
	Plan      string `json:"plan"`
	Reason    string `json:"reason"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
	Focus     string `json:"focus"`
}

// fallbackRecommendation picks a plan with keyword rules. It is used
// whenever the LLM is unavailable or returns something unusable, so it
// must always produce a sensible answer.
func fallbackRecommendation(in Input) Recommendation {
	goals := strings.ToLower(in.Goals)
	experience := strings.ToLower(in.Experience)

	switch {
	case strings.Contains(goals, "marathon") || strings.Contains(goals, "run") || strings.Contains(goals, "hyrox"):
		return Recommendation{
			Plan:      "hyrox",
			Reason:    "Your endurance and functional fitness goals align perfectly with Hyrox-style training.",
			Frequency: "5-6 days per week",
			Duration:  "45-75 minutes",
			Focus:     "Endurance and functional fitness",
		}
	case strings.Contains(goals, "strength") || strings.Contains(goals, "power") || experience == "advanced":
		return Recommendation{
			Plan:      "531",
			Reason:    "For serious strength goals, 5/3/1 provides proven progression and measurable results.",
			Frequency: "4 days per week",
			Duration:  "45-60 minutes",
			Focus:     "Maximal strength development",
		}
	case strings.Contains(goals, "beginner") || experience == "beginner":
		return Recommendation{
			Plan:      "fullbody",
			Reason:    "Full body training 3x/week is perfect for beginners to build a foundation and practice movements frequently.",
			Frequency: "3 days per week",
			Duration:  "45-60 minutes",
			Focus:     "Foundation building and strength",
		}
	case strings.Contains(goals, "size") || strings.Contains(goals, "mass") || strings.Contains(goals, "bodybuilding"):
		return reconcileDays(in.AvailableDays, Recommendation{
			Plan:      "ppl",
			Reason:    "Push/Pull/Legs offers the frequency and volume needed for maximum muscle growth.",
			Frequency: "6 days per week",
			Duration:  "60-75 minutes",
			Focus:     "Muscle hypertrophy",
		})
	default:
		return Recommendation{
			Plan:      "ul",
			Reason:    "Upper/Lower split offers the perfect balance of frequency and recovery for consistent progress.",
			Frequency: "4 days per week",
			Duration:  "45-60 minutes",
			Focus:     "Balanced strength and hypertrophy",
		}
	}
}

// reconcileDays steps a hypertrophy pick down to a lower-frequency
// split when the lifter can't train often enough for it.
func reconcileDays(availableDays int, rec Recommendation) Recommendation {
	if availableDays <= 0 {
		return rec
	}
	plan, ok := planByID(rec.Plan)
	if !ok || plan.DaysPerWeek <= availableDays {
		return rec
	}
	switch {
	case availableDays >= 5:
		rec.Plan = "pplul"
		rec.Frequency = "5 days per week"
	case availableDays >= 4:
		rec.Plan = "ul"
		rec.Frequency = "4 days per week"
	default:
		rec.Plan = "fullbody"
		rec.Frequency = "3 days per week"
	}
	return rec
}
