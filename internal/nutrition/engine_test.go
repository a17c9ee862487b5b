package nutrition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/nutrition"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		gender   nutrition.Gender
		weightKg float64
		heightCm float64
		age      int
		want     int
	}{
		{name: "male", gender: nutrition.GenderMale, weightKg: 80, heightCm: 180, age: 30, want: 1780},
		{name: "female", gender: nutrition.GenderFemale, weightKg: 60, heightCm: 165, age: 28, want: 1330},
		{name: "other averages offsets", gender: nutrition.GenderOther, weightKg: 80, heightCm: 180, age: 30, want: 1697},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nutrition.CalculateBMR(tt.gender, tt.weightKg, tt.heightCm, tt.age)
			if got != tt.want {
				t.Errorf("CalculateBMR() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		name     string
		bmr      int
		activity nutrition.ActivityLevel
		want     int
	}{
		{name: "sedentary", bmr: 1780, activity: nutrition.ActivitySedentary, want: 2136},
		{name: "moderate", bmr: 1780, activity: nutrition.ActivityModerate, want: 2759},
		{name: "very active", bmr: 1780, activity: nutrition.ActivityVeryActive, want: 3382},
		{name: "unknown falls back to moderate", bmr: 1780, activity: "couch", want: 2759},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nutrition.CalculateTDEE(tt.bmr, tt.activity); got != tt.want {
				t.Errorf("CalculateTDEE() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDetermineGoal(t *testing.T) {
	tests := []struct {
		name    string
		program string
		goals   string
		want    nutrition.Goal
	}{
		{name: "free text beats program default", program: "ppl", goals: "I want to lose fat", want: nutrition.GoalFatLoss},
		{name: "health keywords", program: "ppl", goals: "improve my mental wellness", want: nutrition.GoalGeneralHealth},
		{name: "program default", program: "531", goals: "", want: nutrition.GoalStrength},
		{name: "hyrox is endurance", program: "hyrox", goals: "", want: nutrition.GoalEndurance},
		{name: "unknown program defaults to muscle gain", program: "phat", goals: "", want: nutrition.GoalMuscleGain},
		{name: "keyword needs word boundary", program: "ul", goals: "I love cutlery", want: nutrition.GoalMuscleGain},
		{name: "no goals text", program: "ul", goals: "", want: nutrition.GoalMuscleGain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nutrition.DetermineGoal(tt.program, tt.goals); got != tt.want {
				t.Errorf("DetermineGoal(%q, %q) = %v, want %v", tt.program, tt.goals, got, tt.want)
			}
		})
	}
}

func TestCalculateMacros(t *testing.T) {
	got := nutrition.CalculateMacros(2759, nutrition.GoalMuscleGain, 80)
	want := nutrition.MacroTargets{Calories: 3172, ProteinG: 160, CarbsG: 435, FatG: 88}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CalculateMacros() mismatch (-want +got):\n%s", diff)
	}
}

// The reported calories must equal the exact macro sum for every goal
// and input.
func TestCalculateMacrosSumInvariant(t *testing.T) {
	goals := []nutrition.Goal{
		nutrition.GoalMuscleGain,
		nutrition.GoalStrength,
		nutrition.GoalFatLoss,
		nutrition.GoalEndurance,
		nutrition.GoalGeneralHealth,
	}
	for _, goal := range goals {
		for _, tdee := range []int{1200, 1800, 2400, 2759, 3500, 4200} {
			for _, bodyweight := range []float64{45, 62.5, 80, 110, 150} {
				targets := nutrition.CalculateMacros(tdee, goal, bodyweight)
				sum := targets.ProteinG*4 + targets.CarbsG*4 + targets.FatG*9
				if sum != targets.Calories {
					t.Errorf("%s tdee=%d bw=%v: macro sum %d != calories %d",
						goal, tdee, bodyweight, sum, targets.Calories)
				}
				if targets.CarbsG < 0 {
					t.Errorf("%s tdee=%d bw=%v: negative carbs %d", goal, tdee, bodyweight, targets.CarbsG)
				}
			}
		}
	}
}

func TestCalculateMacrosCarbsClampedAtZero(t *testing.T) {
	// A heavy lifter with a tiny calorie budget: protein and fat alone
	// exceed the budget and carbs must clamp to zero.
	targets := nutrition.CalculateMacros(800, nutrition.GoalFatLoss, 150)
	if targets.CarbsG != 0 {
		t.Errorf("CarbsG = %d, want 0", targets.CarbsG)
	}
	if got, want := targets.Calories, targets.ProteinG*4+targets.FatG*9; got != want {
		t.Errorf("Calories = %d, want %d", got, want)
	}
}

func TestCalculateMacrosFatLossDeficitCap(t *testing.T) {
	// With TDEE 3000 the 0.8 multiplier would cut 600 kcal; the cap
	// floors the budget at TDEE-500.
	targets := nutrition.CalculateMacros(3000, nutrition.GoalFatLoss, 80)
	if targets.Calories < 3000-500-2 {
		t.Errorf("Calories = %d, want at least %d (minus carb rounding)", targets.Calories, 2500)
	}

	// The cap must hold across the board, allowing 2 kcal of carb
	// rounding drift in the recomputed total.
	for _, tdee := range []int{2000, 2600, 3000, 4000} {
		targets := nutrition.CalculateMacros(tdee, nutrition.GoalFatLoss, 80)
		if targets.Calories < tdee-502 {
			t.Errorf("tdee=%d: calories %d below deficit cap", tdee, targets.Calories)
		}
	}
}

func TestCalculateHydration(t *testing.T) {
	if got := nutrition.CalculateHydration(80); got != 2800 {
		t.Errorf("CalculateHydration(80) = %d, want 2800", got)
	}
	if got := nutrition.CalculateHydration(62.3); got != 2181 {
		t.Errorf("CalculateHydration(62.3) = %d, want 2181", got)
	}
}

func TestGeneratePlan(t *testing.T) {
	plan, err := nutrition.GeneratePlan(nutrition.Input{
		Gender:       nutrition.GenderMale,
		BodyweightKg: 80,
		HeightCm:     180,
		Age:          30,
		Activity:     nutrition.ActivityModerate,
		Program:      "ul",
	})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.Goal != nutrition.GoalMuscleGain {
		t.Errorf("Goal = %v, want muscle_gain", plan.Goal)
	}
	if plan.BMR != 1780 {
		t.Errorf("BMR = %d, want 1780", plan.BMR)
	}
	if plan.TDEE != 2759 {
		t.Errorf("TDEE = %d, want 2759", plan.TDEE)
	}
	wantTargets := nutrition.MacroTargets{Calories: 3172, ProteinG: 160, CarbsG: 435, FatG: 88}
	if diff := cmp.Diff(wantTargets, plan.Targets); diff != "" {
		t.Errorf("Targets mismatch (-want +got):\n%s", diff)
	}
	if plan.ProteinPerKg != 2.0 {
		t.Errorf("ProteinPerKg = %v, want 2.0", plan.ProteinPerKg)
	}
	if plan.CalorieAdjustmentPct != 15 {
		t.Errorf("CalorieAdjustmentPct = %d, want 15", plan.CalorieAdjustmentPct)
	}
	if plan.HydrationMl != 2800 {
		t.Errorf("HydrationMl = %d, want 2800", plan.HydrationMl)
	}
	if len(plan.Supplements) == 0 || plan.Supplements[0].Name != "Creatine Monohydrate" {
		t.Errorf("Supplements = %v, want creatine first", plan.Supplements)
	}
	if plan.MealTiming.MealsPerDay != 4 {
		t.Errorf("MealsPerDay = %d, want 4", plan.MealTiming.MealsPerDay)
	}
	if plan.Summary == "" || plan.GoalLabel != "Muscle Gain" {
		t.Errorf("summary %q / label %q incomplete", plan.Summary, plan.GoalLabel)
	}
}

func TestGeneratePlanIncompleteProfile(t *testing.T) {
	tests := []struct {
		name  string
		input nutrition.Input
	}{
		{name: "missing height", input: nutrition.Input{Gender: nutrition.GenderMale, BodyweightKg: 80, Age: 30, Activity: nutrition.ActivityModerate, Program: "ul"}},
		{name: "missing bodyweight", input: nutrition.Input{Gender: nutrition.GenderMale, HeightCm: 180, Age: 30, Activity: nutrition.ActivityModerate, Program: "ul"}},
		{name: "missing age", input: nutrition.Input{Gender: nutrition.GenderMale, BodyweightKg: 80, HeightCm: 180, Activity: nutrition.ActivityModerate, Program: "ul"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := nutrition.GeneratePlan(tt.input); !errors.Is(err, nutrition.ErrIncompleteProfile) {
				t.Errorf("GeneratePlan() error = %v, want ErrIncompleteProfile", err)
			}
		})
	}
}
