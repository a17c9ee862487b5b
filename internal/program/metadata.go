package program

// Metadata describes the program as a whole.
type Metadata struct {
	Name               string   `json:"name"`
	Goal               string   `json:"goal"`
	TotalWeeks         int      `json:"totalWeeks"`
	SessionsPerWeek    int      `json:"sessionsPerWeek"`
	PeriodizationModel string   `json:"periodizationModel"`
	TargetLift         string   `json:"targetLift"`
	Prerequisites      []string `json:"prerequisites"`
	EquipmentNeeded    []string `json:"equipmentNeeded"`
	EvidenceSummary    string   `json:"evidenceSummary"`
}

// PhaseSummary describes one block of the program.
type PhaseSummary struct {
	Phase           Phase  `json:"phase"`
	Weeks           string `json:"weeks"`
	Goal            string `json:"goal"`
	WeeklyBenchSets string `json:"weeklyBenchSets"`
	IntensityRange  string `json:"intensityRange"`
	KeyPrinciple    string `json:"keyPrinciple"`
}

// RPEGuideline maps a rating of perceived exertion to reps in reserve.
type RPEGuideline struct {
	RPE           float64 `json:"rpe"`
	Description   string  `json:"description"`
	RepsInReserve float64 `json:"repsInReserve"`
}

// Meta returns the program metadata.
func Meta() Metadata {
	return Metadata{
		Name:               "Evidence-Based 12-Week Bench Press Builder",
		Goal:               "Increase bench press 1RM through daily undulating periodization with progressive overload",
		TotalWeeks:         TotalWeeks,
		SessionsPerWeek:    WorkoutsPerWeek,
		PeriodizationModel: "Daily Undulating Periodization (DUP) with Block Overlay",
		TargetLift:         "Barbell Bench Press",
		Prerequisites: []string{
			"Minimum 6 months of consistent bench press training",
			"Able to bench press at least 1.0x bodyweight",
			"No current shoulder, elbow, or wrist injuries",
			"Knowledge of RPE/RIR scale",
			"Known or recently tested bench press 1RM",
		},
		EquipmentNeeded: []string{
			"Barbell and bench press station",
			"Dumbbells",
			"Weight plates (increments of 2.5 lbs / 1.25 kg minimum)",
			"Optional: resistance bands, chains for accommodating resistance",
		},
		EvidenceSummary: "This program synthesizes findings from 10 peer-reviewed studies and " +
			"meta-analyses. It uses daily undulating periodization (Rhea 2002, Grgic 2022), trains " +
			"the bench press 3x/week (Grgic 2018), accumulates 9 hard sets per week (Ralston 2017), " +
			"employs heavy loading at 70-90% 1RM (Schoenfeld 2016, 2017), prescribes 3-5 minute rest " +
			"for heavy sets (Schoenfeld 2016, Janicijevic 2023), and incorporates RPE-based " +
			"autoregulation (Helms 2018). Deload weeks are placed every 4th week to manage fatigue.",
	}
}

// Phases returns the phase summaries in program order.
func Phases() []PhaseSummary {
	return []PhaseSummary{
		{
			Phase: PhaseAdaptation, Weeks: "1-3",
			Goal:            "Build work capacity, establish movement patterns, calibrate RPE",
			WeeklyBenchSets: "9", IntensityRange: "60-80% 1RM",
			KeyPrinciple: "Start conservatively. The best predictor of long-term strength gain is " +
				"consistency, and consistency requires avoiding early burnout or injury.",
		},
		{
			Phase: PhaseDeload, Weeks: "4",
			Goal:            "Dissipate fatigue, allow supercompensation",
			WeeklyBenchSets: "6", IntensityRange: "55-67% 1RM",
			KeyPrinciple: "Reduce volume by 40-50% and intensity by 10%. Maintain frequency. The " +
				"strength gains from weeks 1-3 are realized during this recovery period.",
		},
		{
			Phase: PhaseHypertrophy, Weeks: "5-7",
			Goal:            "Build pressing muscle mass to support future heavy loads",
			WeeklyBenchSets: "11", IntensityRange: "65-85% 1RM",
			KeyPrinciple: "Higher total volume with moderate loads. The muscle built here provides " +
				"the structural foundation for the heavy loads in the intensification phase.",
		},
		{
			Phase: PhaseDeload, Weeks: "8",
			Goal:            "Recover before the most demanding phase",
			WeeklyBenchSets: "6", IntensityRange: "60-75% 1RM",
			KeyPrinciple: "Critical recovery point. The intensification phase demands a fresh, " +
				"recovered state. Do not skip or shortchange this deload.",
		},
		{
			Phase: PhaseIntensification, Weeks: "9-11",
			Goal:            "Convert accumulated work into maximal strength via heavy loading",
			WeeklyBenchSets: "8-10", IntensityRange: "68-93% 1RM",
			KeyPrinciple: "Intensity is king for 1RM strength (Schoenfeld 2016, 2017). Volume " +
				"decreases as intensity climbs. Heavy singles and doubles build neural drive and " +
				"skill under maximal loads.",
		},
		{
			Phase: PhasePeaking, Weeks: "12",
			Goal:            "Express accumulated strength in a 1RM test",
			WeeklyBenchSets: "4-5", IntensityRange: "55-103% 1RM",
			KeyPrinciple: "Minimal fatigue, maximal readiness. Monday is openers, Wednesday is " +
				"optional light work, Friday is test day. You are not building strength this week; " +
				"you are expressing what you have built.",
		},
	}
}

// RPEScale returns the RPE to reps-in-reserve mapping used throughout
// the program.
func RPEScale() []RPEGuideline {
	return []RPEGuideline{
		{RPE: 10, Description: "Maximum effort. No reps left in reserve. True 1RM or absolute failure.", RepsInReserve: 0},
		{RPE: 9.5, Description: "Could maybe do 1 more rep but not confident.", RepsInReserve: 0.5},
		{RPE: 9, Description: "Could definitely do 1 more rep. Last rep was hard but controlled.", RepsInReserve: 1},
		{RPE: 8.5, Description: "Could definitely do 1, maybe 2 more reps.", RepsInReserve: 1.5},
		{RPE: 8, Description: "Could do 2 more reps. Weight is challenging but manageable.", RepsInReserve: 2},
		{RPE: 7, Description: "Could do 3 more reps. Moving well with good bar speed.", RepsInReserve: 3},
		{RPE: 6, Description: "Could do 4 more reps. Feels like a solid warm-up weight.", RepsInReserve: 4},
		{RPE: 5, Description: "Could do 5+ more reps. Light speed work or technique focus.", RepsInReserve: 5},
		{RPE: 4, Description: "Very light. Deload-appropriate effort. Primarily for blood flow and recovery.", RepsInReserve: 6},
	}
}

// OverviewMarkdown renders the program description as markdown for
// clients that want formatted text.
func OverviewMarkdown() string {
	meta := Meta()
	md := "# " + meta.Name + "\n\n" + meta.Goal + ".\n\n" + meta.EvidenceSummary + "\n\n## Phases\n\n"
	for _, phase := range Phases() {
		md += "- **" + string(phase.Phase) + "** (weeks " + phase.Weeks + ", " +
			phase.IntensityRange + "): " + phase.Goal + ".\n"
	}
	return md
}
