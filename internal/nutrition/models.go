// Package nutrition generates evidence-based nutrition plans from a
// lifter's profile. All functions are pure; the package owns no
// storage and performs no IO.
package nutrition

// Goal is the primary nutrition objective.
type Goal string

const (
	GoalMuscleGain    Goal = "muscle_gain"
	GoalStrength      Goal = "strength"
	GoalFatLoss       Goal = "fat_loss"
	GoalEndurance     Goal = "endurance"
	GoalGeneralHealth Goal = "general_health"
)

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Gender is used by the Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Priority ranks a supplement recommendation.
type Priority string

const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// Input is everything the plan generation needs from a profile.
type Input struct {
	Gender       Gender
	BodyweightKg float64
	HeightCm     float64
	Age          int
	Activity     ActivityLevel
	Program      string
	Goals        string
}

// MacroTargets are daily macronutrient targets. Calories is always the
// exact sum of the macros (4 kcal/g protein and carbs, 9 kcal/g fat).
type MacroTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Supplement is a single supplement recommendation.
type Supplement struct {
	Name     string   `json:"name"`
	Dose     string   `json:"dose"`
	Timing   string   `json:"timing"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// MealTiming describes how to distribute food around training.
type MealTiming struct {
	MealsPerDay         int    `json:"meals_per_day"`
	PreWorkout          string `json:"pre_workout"`
	PostWorkout         string `json:"post_workout"`
	ProteinDistribution string `json:"protein_distribution"`
	BeforeSleep         string `json:"before_sleep"`
}

// Plan is a complete nutrition plan.
type Plan struct {
	Goal                 Goal         `json:"goal"`
	GoalLabel            string       `json:"goal_label"`
	BMR                  int          `json:"bmr"`
	TDEE                 int          `json:"tdee"`
	Targets              MacroTargets `json:"targets"`
	ProteinPerKg         float64      `json:"protein_per_kg"`
	CalorieAdjustmentPct int          `json:"calorie_adjustment_percent"`
	HydrationMl          int          `json:"hydration_ml"`
	Supplements          []Supplement `json:"supplements"`
	MealTiming           MealTiming   `json:"meal_timing"`
	Tips                 []string     `json:"tips"`
	Summary              string       `json:"summary"`
}
