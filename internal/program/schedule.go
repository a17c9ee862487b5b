package program

// The schedule below follows a daily undulating periodization model
// with a block overlay: anatomical adaptation (weeks 1-3), deload
// (week 4), hypertrophy accumulation (weeks 5-7), deload (week 8),
// strength intensification (weeks 9-11) and a peaking/test week (12).
// Percentages refer to the lifter's 1RM at the start of the program;
// RPE targets are the primary autoregulation tool.

// TotalWeeks is the length of the program.
const TotalWeeks = 12

// WorkoutsPerWeek is the number of sessions per week.
const WorkoutsPerWeek = 3

var schedule = []Week{
	{
		Number: 1,
		Phase:  PhaseAdaptation,
		Notes: "Introduction week. Focus on bar speed and technique. All sets should feel controlled. " +
			"Use this week to calibrate RPE accuracy.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 6, DurationMinutes: 55,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(67),
						RestSeconds: 180, Notes: "Focus on consistent bar path and tight setup"},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(58),
						RestSeconds: 120, Notes: "Tricep emphasis; elbows tucked"},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120, Notes: "Moderate load; upper pec development"},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 5, DurationMinutes: 45,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(60),
						RestSeconds: 150, Notes: "Technique day; pause 1 second on chest each rep"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90, Notes: "Full ROM; controlled eccentric"},
					{Name: "Push-Ups (Weighted or Bodyweight)", Sets: 3, Reps: RepsBetween(15, 20), Intensity: RPEOnly(),
						RestSeconds: 60, Notes: "Pump work for recovery and blood flow"},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 7, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(75),
						RestSeconds: 210, Notes: "Heavier but still manageable; build confidence under load"},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(6), Intensity: PercentOf1RM(68),
						RestSeconds: 150, Notes: "Strengthens the bottom position"},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90, Notes: "Isolation work for pec development"},
				},
			},
		},
	},
	{
		Number: 2,
		Phase:  PhaseAdaptation,
		Notes: "Small increase in intensity. Maintain form quality. Begin tracking bar speed mentally " +
			"or with a velocity tracker if available.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 7, DurationMinutes: 55,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(70),
						RestSeconds: 180, Notes: "Slight load increase from week 1"},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(60),
						RestSeconds: 120},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 45,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(62),
						RestSeconds: 150, Notes: "Paused reps; focus on explosive drive off chest"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Push-Ups (Weighted or Bodyweight)", Sets: 3, Reps: RepsBetween(15, 20), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 7, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(77),
						RestSeconds: 210},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(6), Intensity: PercentOf1RM(70),
						RestSeconds: 150},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
		},
	},
	{
		Number: 3,
		Phase:  PhaseAdaptation,
		Notes:  "Peak of the adaptation phase. Push RPE slightly. Last hard week before the first deload.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 7, DurationMinutes: 55,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(72),
						RestSeconds: 180},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(63),
						RestSeconds: 120, Notes: "Dropped to 8 reps; slight intensity increase"},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 45,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(63),
						RestSeconds: 150},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Push-Ups (Weighted or Bodyweight)", Sets: 3, Reps: RepsBetween(15, 20), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 8, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(80),
						RestSeconds: 240},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(72),
						RestSeconds: 150},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
		},
	},
	{
		Number: 4,
		Phase:  PhaseDeload,
		Deload: true,
		Notes: "Reduce volume by ~40% and intensity by ~10%. Maintain frequency. Focus on recovery, " +
			"mobility, and technique refinement. This is NOT an off week.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionLight, RPETarget: 4, DurationMinutes: 35,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(8), Intensity: PercentOf1RM(60),
						RestSeconds: 150, Notes: "Smooth and fast; focus on perfect technique"},
					{Name: "Dumbbell Incline Press", Sets: 2, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 4, DurationMinutes: 30,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(6), Intensity: PercentOf1RM(62),
						RestSeconds: 150},
					{Name: "Push-Ups (Bodyweight)", Sets: 2, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionLight, RPETarget: 5, DurationMinutes: 35,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(5), Intensity: PercentOf1RM(67),
						RestSeconds: 180, Notes: "Keep the nervous system primed for heavy work next week"},
					{Name: "Close-Grip Bench Press", Sets: 2, Reps: Reps(8), Intensity: PercentOf1RM(55),
						RestSeconds: 120},
				},
			},
		},
	},
	{
		Number: 5,
		Phase:  PhaseHypertrophy,
		Notes: "Increased volume across the week. Moderate loads with more total reps. This phase " +
			"builds the structural base for the heavy work ahead.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 7, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(6), Intensity: PercentOf1RM(75),
						RestSeconds: 180, Notes: "Volume increase: 4 sets. Moderate weight, quality reps."},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(65),
						RestSeconds: 120},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 50,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(65),
						RestSeconds: 150, Tempo: "3-1-2", Notes: "Paused reps; controlled tempo 3-1-2"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Cable Flye or Pec Deck", Sets: 3, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60, Notes: "High rep pump work for pec hypertrophy"},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 8, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(4), Intensity: PercentOf1RM(82),
						RestSeconds: 240, Notes: "Heavy day; 4 sets of 4. Accumulate quality heavy volume."},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(73),
						RestSeconds: 180},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
		},
	},
	{
		Number: 6,
		Phase:  PhaseHypertrophy,
		Notes: "Progressive overload via small intensity increase across all sessions. Weekly bench " +
			"volume remains at ~11 hard sets.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 7, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(6), Intensity: PercentOf1RM(77),
						RestSeconds: 180},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(67),
						RestSeconds: 120},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 7, DurationMinutes: 50,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(10), Intensity: PercentOf1RM(67),
						RestSeconds: 150, Tempo: "3-1-2"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Cable Flye or Pec Deck", Sets: 3, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 8, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(4), Intensity: PercentOf1RM(84),
						RestSeconds: 270},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(75),
						RestSeconds: 180},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
		},
	},
	{
		Number: 7,
		Phase:  PhaseHypertrophy,
		Notes: "Final hard week of the accumulation phase. Push intensity slightly. This is the " +
			"highest volume week in the program.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 8, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(6), Intensity: PercentOf1RM(78),
						RestSeconds: 180},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(68),
						RestSeconds: 120},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 7, DurationMinutes: 50,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(70),
						RestSeconds: 150, Notes: "Paused reps; rep range drops from 10 to 8 as intensity rises"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Cable Flye or Pec Deck", Sets: 3, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 8, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(3), Intensity: PercentOf1RM(85),
						RestSeconds: 270, Notes: "Triples at 85%; approach with confidence"},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(4), Intensity: PercentOf1RM(76),
						RestSeconds: 180},
					{Name: "Dumbbell Flye or Cable Flye", Sets: 3, Reps: Reps(12), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
		},
	},
	{
		Number: 8,
		Phase:  PhaseDeload,
		Deload: true,
		Notes: "Critical deload before the intensification phase. Reduce volume by ~50% and intensity " +
			"by ~10%. Sleep and nutrition are paramount this week.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionLight, RPETarget: 4, DurationMinutes: 30,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(6), Intensity: PercentOf1RM(65),
						RestSeconds: 150},
					{Name: "Dumbbell Incline Press", Sets: 2, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 4, DurationMinutes: 25,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(5), Intensity: PercentOf1RM(68),
						RestSeconds: 150},
					{Name: "Push-Ups (Bodyweight)", Sets: 2, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionLight, RPETarget: 5, DurationMinutes: 30,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(3), Intensity: PercentOf1RM(75),
						RestSeconds: 210, Notes: "Brief heavy exposure to maintain neural readiness"},
					{Name: "Close-Grip Bench Press", Sets: 2, Reps: Reps(6), Intensity: PercentOf1RM(60),
						RestSeconds: 120},
				},
			},
		},
	},
	{
		Number: 9,
		Phase:  PhaseIntensification,
		Notes: "Intensity ramps up. Volume per session decreases but load increases. Heavy day " +
			"approaches competition-like intensity. Rest periods lengthen.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 8, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(5), Intensity: PercentOf1RM(80),
						RestSeconds: 210, Notes: "Fives at 80%; strong and controlled"},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(6), Intensity: PercentOf1RM(70),
						RestSeconds: 150},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(8), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 45,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(8), Intensity: PercentOf1RM(68),
						RestSeconds: 150, Notes: "Active recovery day; technique focus with paused reps"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
					{Name: "Cable Flye or Pec Deck", Sets: 2, Reps: Reps(15), Intensity: RPEOnly(),
						RestSeconds: 60},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 9, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 5, Reps: Reps(3), Intensity: PercentOf1RM(87),
						RestSeconds: 300, Notes: "Heavy triples; 5 sets. Full 5-minute rest between sets. RPE 9 target."},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(3), Intensity: PercentOf1RM(78),
						RestSeconds: 210},
				},
			},
		},
	},
	{
		Number: 10,
		Phase:  PhaseIntensification,
		Notes: "Intensity continues climbing. Doubles introduced on heavy day. Total weekly bench " +
			"sets: 10-12 (with accessories).",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 8, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 4, Reps: Reps(4), Intensity: PercentOf1RM(83),
						RestSeconds: 240},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(73),
						RestSeconds: 150},
					{Name: "Dumbbell Incline Press", Sets: 3, Reps: Reps(8), Intensity: RPEOnly(),
						RestSeconds: 120},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 40,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(6), Intensity: PercentOf1RM(70),
						RestSeconds: 150, Notes: "Moderate recovery session; speed emphasis"},
					{Name: "Dumbbell Flat Press", Sets: 3, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 9, DurationMinutes: 65,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 5, Reps: Reps(2), Intensity: PercentOf1RM(90),
						RestSeconds: 300, Notes: "Heavy doubles at 90%. Full rest. Focus on maximal intent each rep."},
					{Name: "Spoto Press (Pause 1 inch off chest)", Sets: 3, Reps: Reps(3), Intensity: PercentOf1RM(80),
						RestSeconds: 210},
				},
			},
		},
	},
	{
		Number: 11,
		Phase:  PhaseIntensification,
		Notes: "Peak intensity week. Singles introduced. This is the hardest week of the program. " +
			"Manage fatigue carefully via RPE; if RPE exceeds targets, reduce load.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionModerate, RPETarget: 8, DurationMinutes: 55,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(4), Intensity: PercentOf1RM(85),
						RestSeconds: 240},
					{Name: "Close-Grip Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(75),
						RestSeconds: 150},
					{Name: "Dumbbell Incline Press", Sets: 2, Reps: Reps(8), Intensity: RPEOnly(),
						RestSeconds: 120, Notes: "Reduced accessory volume to manage fatigue"},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 6, DurationMinutes: 35,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(5), Intensity: PercentOf1RM(72),
						RestSeconds: 150, Notes: "Recovery session; smooth and fast"},
					{Name: "Dumbbell Flat Press", Sets: 2, Reps: Reps(10), Intensity: RPEOnly(),
						RestSeconds: 90},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 9, DurationMinutes: 60,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 3, Reps: Reps(1), Intensity: PercentOf1RM(93),
						RestSeconds: 300, Notes: "Heavy singles at 93%. Three singles with full rest. RPE 9 " +
							"(1 rep in reserve). Do NOT exceed RPE 9.5."},
					{Name: "Barbell Bench Press (Back-off)", Sets: 2, Reps: Reps(3), Intensity: PercentOf1RM(83),
						RestSeconds: 240, Notes: "Back-off sets to accumulate a few more quality reps"},
				},
			},
		},
	},
	{
		Number: 12,
		Phase:  PhasePeaking,
		Notes: "Peaking week. Monday is a light opener session. Wednesday is off or very light. Friday " +
			"is test day. Get adequate sleep all week. Eat at maintenance or slight surplus. Hydrate well.",
		Days: []TrainingDay{
			{
				Weekday: Monday, SessionType: SessionLight, RPETarget: 5, DurationMinutes: 30,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(3), Intensity: PercentOf1RM(75),
						RestSeconds: 180, Notes: "Opener session; light and fast. Reinforce confidence and bar path."},
					{Name: "Barbell Bench Press (Singles)", Sets: 2, Reps: Reps(1), Intensity: PercentOf1RM(82),
						RestSeconds: 180, Notes: "Two easy singles to feel heavy weight without fatigue"},
				},
			},
			{
				Weekday: Wednesday, SessionType: SessionLight, RPETarget: 3, DurationMinutes: 20,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press", Sets: 2, Reps: Reps(5), Intensity: PercentOf1RM(55),
						RestSeconds: 120, Notes: "Optional session. Bar work only. If feeling any residual " +
							"fatigue, skip entirely and rest."},
				},
			},
			{
				Weekday: Friday, SessionType: SessionHeavy, RPETarget: 10, DurationMinutes: 45,
				Exercises: []Exercise{
					{Name: "Barbell Bench Press (Warm-up to 1RM Attempt)", Sets: 1, Reps: Reps(1),
						Intensity: PercentOf1RM(100), RestSeconds: 300,
						Notes: "1RM TEST DAY. Warm-up protocol: empty bar x10, 40% x5, 55% x3, 70% x2, " +
							"80% x1, 87% x1, 93% x1, then attempt new 1RM at 100-103%. Take 3-5 minutes " +
							"between warm-up singles. You get up to 3 max attempts."},
				},
			},
		},
	},
}
