package workoutplan

import "github.com/ayursutra/backend/internal/knowledge"

// Input is the profile slice the workout engine needs.
type Input struct {
	DaysAvailable int      `json:"days_available"`
	Goal          string   `json:"goal"`
	Equipment     []string `json:"equipment"`
	Conditions    []string `json:"conditions"`
}

// Intensity holds the per-day set/rep/rest prescription.
type Intensity struct {
	Sets        int `json:"sets"`
	Reps        int `json:"reps"`
	RestSeconds int `json:"rest_seconds"`
}

// Exercise is one prescribed exercise within a day.
type Exercise struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
}

// Day is one entry of the weekly schedule.
type Day struct {
	Name      string     `json:"name"`
	Focus     string     `json:"focus"` // segment name or "Rest"
	Rest      bool       `json:"rest"`
	Exercises []Exercise `json:"exercises,omitempty"`
}

// Plan is the generated weekly workout plan.
type Plan struct {
	SplitType     string          `json:"split_type"`
	DominantDosha knowledge.Dosha `json:"dominant_dosha"`
	Intensity     Intensity       `json:"intensity"`
	Week          []Day           `json:"week"`
	Style         string          `json:"workout_style"`
	Recommended   []string        `json:"recommended_activities"`
	Avoid         []string        `json:"activities_to_avoid"`
	YogaSequence  []string        `json:"yoga_sequence"`
	WarmUp        string          `json:"warm_up"`
	CoolDown      string          `json:"cool_down"`
}

type doshaWorkoutGuidance struct {
	style       string
	recommended []string
	avoid       []string
	yoga        []string
}

var doshaWorkoutTable = map[knowledge.Dosha]doshaWorkoutGuidance{
	knowledge.Vata: {
		style:       "Gentle, grounding, and calming",
		recommended: []string{"Hatha Yoga", "Tai Chi", "Swimming", "Walking", "Light strength training"},
		avoid:       []string{"Intense cardio", "Excessive jumping", "Overly competitive sports"},
		yoga: []string{
			"Mountain Pose (Tadasana) - 2 min",
			"Cat-Cow Stretch - 3 min",
			"Child's Pose - 3 min",
			"Seated Forward Bend - 3 min",
			"Legs Up the Wall - 5 min",
			"Corpse Pose (Savasana) - 5 min",
		},
	},
	knowledge.Pitta: {
		style:       "Moderate intensity, cooling, and non-competitive",
		recommended: []string{"Swimming", "Cycling", "Moderate yoga", "Hiking", "Team sports (non-competitive)"},
		avoid:       []string{"Hot yoga", "Intense competition", "Excessive heat"},
		yoga: []string{
			"Moon Salutation - 5 min",
			"Standing Forward Bend - 3 min",
			"Seated Twist - 3 min each side",
			"Bridge Pose - 3 min",
			"Fish Pose - 2 min",
			"Corpse Pose - 5 min",
		},
	},
	knowledge.Kapha: {
		style:       "Vigorous, stimulating, and energizing",
		recommended: []string{"Running", "HIIT", "Ashtanga Yoga", "Dance", "Martial arts", "Weight training"},
		avoid:       []string{"Excessive rest", "Slow movements"},
		yoga: []string{
			"Sun Salutation A - 10 min",
			"Warrior Sequence - 5 min",
			"Triangle Pose - 2 min each side",
			"Boat Pose - 3 min",
			"Bow Pose - 3 min",
			"Corpse Pose - 3 min",
		},
	},
}
