package nutrition

// activityMultipliers are the standard TDEE tiers.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalLabels = map[Goal]string{
	GoalMuscleGain:    "Muscle Gain",
	GoalStrength:      "Strength",
	GoalFatLoss:       "Fat Loss",
	GoalEndurance:     "Endurance",
	GoalGeneralHealth: "General Health",
}

// programToGoal maps training program ids to their default nutrition
// goal. Free-text goals can override this.
var programToGoal = map[string]Goal{
	"fullbody": GoalMuscleGain,
	"ul":       GoalMuscleGain,
	"ppl":      GoalMuscleGain,
	"pplul":    GoalMuscleGain,
	"bro":      GoalMuscleGain,
	"gvt":      GoalMuscleGain,
	"531":      GoalStrength,
	"hyrox":    GoalEndurance,
}

var programNames = map[string]string{
	"fullbody": "Full Body",
	"ul":       "Upper/Lower",
	"ppl":      "Push/Pull/Legs",
	"pplul":    "PPLUL",
	"bro":      "Bro Split",
	"gvt":      "German Volume Training",
	"531":      "5/3/1 Strength",
	"hyrox":    "Hyrox",
}

// goalParams drive the macro calculation. maxDeficitKcal caps how far
// below TDEE a fat loss plan may go (0 means no cap).
type goalParams struct {
	calorieMultiplier float64
	proteinGPerKg     float64
	fatPct            float64
	maxDeficitKcal    int
}

var goalParamsByGoal = map[Goal]goalParams{
	GoalMuscleGain:    {calorieMultiplier: 1.15, proteinGPerKg: 2.0, fatPct: 0.25},
	GoalStrength:      {calorieMultiplier: 1.1, proteinGPerKg: 2.0, fatPct: 0.3},
	GoalFatLoss:       {calorieMultiplier: 0.8, proteinGPerKg: 2.2, fatPct: 0.25, maxDeficitKcal: 500},
	GoalEndurance:     {calorieMultiplier: 1.05, proteinGPerKg: 1.8, fatPct: 0.25},
	GoalGeneralHealth: {calorieMultiplier: 1.0, proteinGPerKg: 1.4, fatPct: 0.3},
}

var allSupplements = map[string]Supplement{
	"creatine": {
		Name:     "Creatine Monohydrate",
		Dose:     "5g daily",
		Timing:   "Any time of day — consistency matters more than timing",
		Priority: PriorityEssential,
		Reason:   "Most researched supplement in sports nutrition. Increases strength, power, and lean mass.",
	},
	"caffeine": {
		Name:     "Caffeine",
		Dose:     "3-6 mg/kg bodyweight",
		Timing:   "60 minutes before training. Cut off 6+ hours before sleep.",
		Priority: PriorityRecommended,
		Reason:   "Improves strength, endurance, and reduces perceived exertion.",
	},
	"vitamin_d": {
		Name:     "Vitamin D3",
		Dose:     "2000 IU daily",
		Timing:   "With a meal containing fat for absorption",
		Priority: PriorityEssential,
		Reason:   "Supports muscle function, immune health, and bone density. Most people are deficient.",
	},
	"omega_3": {
		Name:     "Omega-3 (Fish Oil)",
		Dose:     "1000-2000mg EPA+DHA daily",
		Timing:   "With meals",
		Priority: PriorityRecommended,
		Reason:   "Reduces inflammation, supports heart and brain health, may improve recovery.",
	},
	"magnesium": {
		Name:     "Magnesium Glycinate",
		Dose:     "200-400mg daily",
		Timing:   "Evening / before bed",
		Priority: PriorityOptional,
		Reason:   "Supports sleep quality, muscle function, and stress reduction. Many athletes are deficient.",
	},
	"protein_powder": {
		Name:     "Whey/Plant Protein",
		Dose:     "20-40g per serving",
		Timing:   "Post-workout or to fill protein gaps between meals",
		Priority: PriorityRecommended,
		Reason:   "Convenient way to hit daily protein targets. Not magic — whole food is equally effective.",
	},
}

// goalSupplements orders supplements by relevance per goal.
var goalSupplements = map[Goal][]string{
	GoalMuscleGain:    {"creatine", "protein_powder", "vitamin_d", "omega_3", "magnesium"},
	GoalStrength:      {"creatine", "caffeine", "vitamin_d", "protein_powder", "magnesium"},
	GoalFatLoss:       {"protein_powder", "caffeine", "omega_3", "vitamin_d", "magnesium"},
	GoalEndurance:     {"caffeine", "creatine", "omega_3", "magnesium", "vitamin_d"},
	GoalGeneralHealth: {"omega_3", "vitamin_d", "magnesium", "creatine"},
}

var mealTimingByGoal = map[Goal]MealTiming{
	GoalMuscleGain: {
		MealsPerDay:         4,
		PreWorkout:          "20-40g protein + 0.5-1g/kg carbs, 1-2 hours before training",
		PostWorkout:         "20-40g protein + moderate carbs within 2 hours after training",
		ProteinDistribution: "Spread protein across 4 meals (~0.4g/kg per meal) every 3-4 hours",
		BeforeSleep:         "30-40g casein protein or cottage cheese 30 min before bed for overnight recovery",
	},
	GoalStrength: {
		MealsPerDay:         4,
		PreWorkout:          "Carb-rich meal (40-60g carbs + 20-30g protein) 2 hours before heavy lifts",
		PostWorkout:         "30-40g protein + carbs to replenish glycogen within 2 hours",
		ProteinDistribution: "Spread protein across 4 meals, prioritize pre and post workout meals",
		BeforeSleep:         "Casein protein or Greek yogurt before bed for sustained amino acid delivery",
	},
	GoalFatLoss: {
		MealsPerDay:         3,
		PreWorkout:          "20-30g protein + small carb source 1-2 hours before training",
		PostWorkout:         "30-40g protein — prioritize protein over carbs during a cut",
		ProteinDistribution: "High protein at every meal (40-50g). Protein keeps you full and preserves muscle.",
		BeforeSleep:         "Casein protein if hungry — protein is the most satiating macronutrient",
	},
	GoalEndurance: {
		MealsPerDay:         4,
		PreWorkout:          "Carb-focused meal (60-100g carbs) 2-3 hours before long sessions",
		PostWorkout:         "3:1 carb-to-protein ratio within 30 min for glycogen-depleting sessions",
		ProteinDistribution: "4 meals with protein, emphasize carbs around training windows",
		BeforeSleep:         "Light protein + complex carbs for next-day glycogen stores",
	},
	GoalGeneralHealth: {
		MealsPerDay:         3,
		PreWorkout:          "Balanced meal 1-2 hours before exercise — nothing complicated needed",
		PostWorkout:         "Normal balanced meal within a couple hours — no rush",
		ProteinDistribution: "Include protein at each meal. Aim for variety and whole food sources.",
		BeforeSleep:         "Avoid heavy meals close to bedtime. Herbal tea and light protein if hungry.",
	},
}

var tipsByGoal = map[Goal][]string{
	GoalMuscleGain: {
		"You can't build muscle without enough calories. A 10-20% surplus is the sweet spot — more just adds fat.",
		"Distribute protein across 4+ meals for maximum muscle protein synthesis throughout the day.",
		"Creatine monohydrate (5g/day) is the most proven supplement for muscle and strength gains.",
		"Sleep 7-9 hours. Growth hormone peaks during deep sleep — this is when you actually grow.",
		"Track your bodyweight weekly. Aim for 0.25-0.5% bodyweight gain per week.",
		"Post-workout protein is helpful but not magic. Total daily protein matters far more than timing.",
		"Carbs are not the enemy — they fuel your training and help with recovery.",
		"Stay hydrated. Even 2% dehydration impairs strength and performance.",
		"Don't skip meals. Consistency beats perfection. A missed meal is a missed growth opportunity.",
		"If you're not gaining weight, you're not eating enough. It's that simple.",
		"Whole eggs > egg whites. The yolk contains healthy fats, vitamins, and half the protein.",
		"Aim for 10-20 sets per muscle group per week for optimal hypertrophy stimulus.",
	},
	GoalStrength: {
		"Carbs are rocket fuel for heavy lifts. Don't cut carbs when chasing strength PRs.",
		"Caffeine (3-6mg/kg) taken 60 min before training reliably improves max strength.",
		"A moderate surplus (+5-15%) fuels strength gains without excessive fat gain.",
		"Creatine increases your phosphocreatine stores — directly powering your 1-5 rep sets.",
		"Pre-workout meal matters more for strength than hypertrophy. Eat 2 hours before.",
		"Progressive overload requires adequate recovery. Eat enough to recover from heavy sessions.",
		"Protein timing matters less than you think. Just hit your daily 2g/kg target.",
		"Deload weeks are when adaptation happens. Don't cut calories during deloads.",
		"Bodyweight fluctuations are normal. Track weekly averages, not daily weigh-ins.",
		"Vitamin D deficiency is linked to reduced strength. Supplement 2000 IU/day year-round.",
	},
	GoalFatLoss: {
		"A deficit of 500 kcal/day loses ~0.5kg/week. Larger deficits sacrifice muscle. Be patient.",
		"Keep protein HIGH during a cut (2.0-2.4g/kg). This is the #1 rule for preserving muscle.",
		"Resistance training during a cut is non-negotiable. It signals your body to keep muscle.",
		"High-volume, low-calorie foods (vegetables, lean proteins) keep you full on fewer calories.",
		"Don't eliminate any food group. Sustainability beats perfection every time.",
		"Diet breaks (1-2 weeks at maintenance) every 6-8 weeks reduce metabolic adaptation.",
		"Caffeine suppresses appetite and boosts metabolism slightly. Use it strategically.",
		"Sleep deprivation increases hunger hormones. Prioritize 7-9 hours during a cut.",
		"Weigh yourself daily but look at weekly averages. Water weight masks true fat loss.",
		"Protein is the most satiating macronutrient. Front-load your protein earlier in the day.",
		"A slower cut (-20% TDEE) preserves more muscle than a crash diet. Play the long game.",
		"If strength drops more than 10%, you're cutting too aggressively. Ease off.",
	},
	GoalEndurance: {
		"Carbs are your primary fuel for endurance. 5-8g/kg/day for serious training.",
		"Carb-load 24-36 hours before race day (6-8g/kg). Start the race with full glycogen stores.",
		"During sessions >90 min, consume 30-60g carbs per hour (gels, drinks, bananas).",
		"Post-session: 3:1 carb-to-protein ratio within 30 min for glycogen-depleting workouts.",
		"Hydration impacts endurance more than strength. Drink 5-7ml/kg 2-4 hours before exercise.",
		"Electrolytes matter for sessions >60 min. Add sodium (500-700mg/L) to your drink.",
		"Don't experiment with new foods on race day. Practice your nutrition strategy in training.",
		"Iron deficiency is common in endurance athletes. Get tested if performance plateaus.",
		"Caffeine (3-6mg/kg) improves endurance performance by 2-4%. Time it 60 min pre-race.",
		"Recovery nutrition is where endurance athletes often fail. Don't skip post-workout fueling.",
	},
	GoalGeneralHealth: {
		"A Mediterranean-style diet reduces depression risk by 32-45%. Eat fish, olive oil, vegetables.",
		"Omega-3 fatty acids (EPA+DHA) support brain health and reduce inflammation. Aim for 1-2g/day.",
		"Fiber (25-35g/day) from whole grains, vegetables, and legumes supports gut health and mood.",
		"Magnesium supports 300+ enzymatic reactions. Most people don't get enough from food alone.",
		"Limit ultra-processed foods. They're linked to worse mental and physical health outcomes.",
		"Hydration affects cognition. Even mild dehydration impairs focus and mood.",
		"Eating regular meals at consistent times supports circadian rhythm and sleep quality.",
		"Vitamin D supports immune function. Deficiency is linked to fatigue and low mood.",
		"Alcohol impairs sleep quality, recovery, and muscle protein synthesis. Moderate or avoid.",
		"Whole foods over supplements. Get your nutrients from real food first, supplement gaps.",
		"Social eating matters. Shared meals improve mental health and adherence to good nutrition.",
	},
}

// Label returns the display label for a goal.
func Label(goal Goal) string {
	return goalLabels[goal]
}

// SupplementsFor returns the ordered supplement stack for a goal.
func SupplementsFor(goal Goal) []Supplement {
	keys := goalSupplements[goal]
	supplements := make([]Supplement, 0, len(keys))
	for _, key := range keys {
		if supplement, ok := allSupplements[key]; ok {
			supplements = append(supplements, supplement)
		}
	}
	return supplements
}

// MealTimingFor returns the meal timing guidance for a goal.
func MealTimingFor(goal Goal) MealTiming {
	return mealTimingByGoal[goal]
}

// TipsFor returns the nutrition tips for a goal.
func TipsFor(goal Goal) []string {
	return tipsByGoal[goal]
}
