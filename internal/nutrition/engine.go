package nutrition

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/mkorpela/liftplan/internal/errors"
)

// ErrIncompleteProfile is returned when bodyweight, height or age is
// missing and no plan can be computed.
var ErrIncompleteProfile = errors.NewSentinel("profile is missing bodyweight, height or age")

// Free-text goal keywords. User intent beats the program default.
var (
	fatLossKeywords = regexp.MustCompile(`\b(lose|cut|lean|shred|fat loss|weight loss|slim|drop)\b`)
	healthKeywords  = regexp.MustCompile(`\b(health|mental|wellness|feel better|anxiety|depression|longevity)\b`)
)

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// equation. For "other" the male and female offsets are averaged.
func CalculateBMR(gender Gender, weightKg, heightCm float64, age int) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		return int(math.Round(base + 5))
	case GenderFemale:
		return int(math.Round(base - 161))
	default:
		return int(math.Round(base + (5-161)/2))
	}
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels
// fall back to moderate.
func CalculateTDEE(bmr int, activity ActivityLevel) int {
	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	return int(math.Round(float64(bmr) * multiplier))
}

// DetermineGoal infers the nutrition goal from the training program
// and the optional free-text goals.
func DetermineGoal(program, goalsText string) Goal {
	text := strings.ToLower(goalsText)
	if fatLossKeywords.MatchString(text) {
		return GoalFatLoss
	}
	if healthKeywords.MatchString(text) {
		return GoalGeneralHealth
	}
	if goal, ok := programToGoal[program]; ok {
		return goal
	}
	return GoalMuscleGain
}

// CalculateMacros derives daily macro targets from TDEE, goal and
// bodyweight. Protein comes from bodyweight, fat from the calorie
// budget, and carbs fill the remainder. The returned calories are
// recomputed from the macros so that the sum is always exact.
func CalculateMacros(tdee int, goal Goal, bodyweightKg float64) MacroTargets {
	params := goalParamsByGoal[goal]

	calories := int(math.Round(float64(tdee) * params.calorieMultiplier))
	if params.maxDeficitKcal > 0 && calories < tdee-params.maxDeficitKcal {
		calories = tdee - params.maxDeficitKcal
	}

	proteinG := int(math.Round(bodyweightKg * params.proteinGPerKg))
	fatG := int(math.Round(float64(calories) * params.fatPct / 9))

	carbsG := int(math.Round(float64(calories-proteinG*4-fatG*9) / 4))
	if carbsG < 0 {
		carbsG = 0
	}

	return MacroTargets{
		Calories: proteinG*4 + carbsG*4 + fatG*9,
		ProteinG: proteinG,
		CarbsG:   carbsG,
		FatG:     fatG,
	}
}

// CalculateHydration returns the daily hydration target in
// milliliters, 35 ml per kg of bodyweight.
func CalculateHydration(bodyweightKg float64) int {
	return int(math.Round(bodyweightKg * 35))
}

// Summary renders a one-paragraph description of the plan.
func Summary(goal Goal, program string, targets MacroTargets) string {
	planName, ok := programNames[program]
	if !ok {
		planName = program
	}
	protein := fmt.Sprintf("%dg protein", targets.ProteinG)

	switch goal {
	case GoalMuscleGain:
		return fmt.Sprintf("Your %s program needs a calorie surplus and high protein to fuel muscle "+
			"growth. Aim for %d kcal/day with %s spread across 4 meals.",
			planName, targets.Calories, protein)
	case GoalStrength:
		return fmt.Sprintf("Your %s program demands adequate fuel for heavy lifts. A moderate surplus "+
			"of %d kcal/day with %s and plenty of carbs (%dg) will maximize strength gains.",
			planName, targets.Calories, protein, targets.CarbsG)
	case GoalFatLoss:
		return fmt.Sprintf("To lose fat while preserving muscle, eat %d kcal/day with elevated protein "+
			"(%s). Keep training hard — resistance exercise is what tells your body to hold on to muscle.",
			targets.Calories, protein)
	case GoalEndurance:
		return fmt.Sprintf("Your %s training needs carbs for fuel. %d kcal/day with %dg carbs will keep "+
			"glycogen stores topped up. Don't neglect %s for recovery.",
			planName, targets.Calories, targets.CarbsG, protein)
	default:
		return fmt.Sprintf("For balanced health and wellbeing, maintain %d kcal/day with %s. Focus on "+
			"whole foods, omega-3 rich fish, vegetables, and fiber. Quality matters more than quantity.",
			targets.Calories, protein)
	}
}

// GeneratePlan builds a complete nutrition plan from the input.
// Returns ErrIncompleteProfile when bodyweight, height or age is
// missing.
func GeneratePlan(input Input) (Plan, error) {
	if input.BodyweightKg <= 0 || input.HeightCm <= 0 || input.Age <= 0 {
		return Plan{}, ErrIncompleteProfile
	}

	bmr := CalculateBMR(input.Gender, input.BodyweightKg, input.HeightCm, input.Age)
	tdee := CalculateTDEE(bmr, input.Activity)
	goal := DetermineGoal(input.Program, input.Goals)
	targets := CalculateMacros(tdee, goal, input.BodyweightKg)
	params := goalParamsByGoal[goal]

	return Plan{
		Goal:                 goal,
		GoalLabel:            Label(goal),
		BMR:                  bmr,
		TDEE:                 tdee,
		Targets:              targets,
		ProteinPerKg:         params.proteinGPerKg,
		CalorieAdjustmentPct: int(math.Round((params.calorieMultiplier - 1) * 100)),
		HydrationMl:          CalculateHydration(input.BodyweightKg),
		Supplements:          SupplementsFor(goal),
		MealTiming:           MealTimingFor(goal),
		Tips:                 TipsFor(goal),
		Summary:              Summary(goal, input.Program, targets),
	}, nil
}
