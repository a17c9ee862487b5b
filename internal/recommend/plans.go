// Package recommend suggests a training program from free-text goals.
// It asks an LLM when an API key is configured and always has a
// deterministic keyword-based fallback, so the endpoint keeps working
// when the model is unreachable.
package recommend

// Plan is a catalog entry for a training program.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DaysPerWeek int    `json:"daysPerWeek"`
	Science     string `json:"science"`
}

// planCatalog holds the selectable programs in presentation order.
var planCatalog = []Plan{
	{
		ID: "fullbody", Name: "Full Body", DaysPerWeek: 3,
		Science: "Best for beginners. Full body 3x/week produces faster technique improvement than " +
			"1x/week. Delivers 9-12 working sets per muscle per week.",
	},
	{
		ID: "ul", Name: "Upper/Lower", DaysPerWeek: 4,
		Science: "Upper/Lower produces ~85% of 5-day program gains with less time investment. Most " +
			"efficient structure for intermediates.",
	},
	{
		ID: "pplul", Name: "PPLUL", DaysPerWeek: 5,
		Science: "PPLUL scores 9.0/10 on predictive hypertrophy modeling — highest of any 5-day " +
			"format. Perfect middle ground.",
	},
	{
		ID: "ppl", Name: "Push/Pull/Legs", DaysPerWeek: 6,
		Science: "6-day PPL provides twice-weekly frequency at high volume. Only works if all 6 " +
			"sessions are completed consistently.",
	},
	{
		ID: "bro", Name: "Bro Split", DaysPerWeek: 5,
		Science: "Bro split provides high per-session intensity. Research favors 2x/week frequency, " +
			"but intensity partially compensates.",
	},
	{
		ID: "gvt", Name: "German Volume Training", DaysPerWeek: 3,
		Science: "German Volume Training: 10 sets of 10 at 60% 1RM. Extreme volume for breaking " +
			"plateaus. Use as 6-8 week block only.",
	},
	{
		ID: "hyrox", Name: "Hyrox", DaysPerWeek: 5,
		Science: "Hyrox is fundamentally a running race (51 min avg vs 33 min on stations). VO₂max " +
			"and running volume correlate strongest with finish times.",
	},
	{
		ID: "531", Name: "5/3/1 Strength", DaysPerWeek: 4,
		Science: "5/3/1: Simple percentage-based progression. Gold standard for pure strength " +
			"development with proven long-term results.",
	},
}

// Plans returns the program catalog.
func Plans() []Plan {
	return planCatalog
}

func planByID(id string) (Plan, bool) {
	for _, plan := range planCatalog {
		if plan.ID == id {
			return plan, true
		}
	}
	return Plan{}, false
}
