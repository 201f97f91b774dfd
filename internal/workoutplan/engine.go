package workoutplan

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/knowledge"
)

const (
	SplitFullBody     = "Full Body"
	SplitUpperLower   = "Upper / Lower"
	SplitPushPullLegs = "Push / Pull / Legs"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// segment pairs a label with the muscle groups trained that day.
type segment struct {
	name   string
	groups []string
}

var splitSegments = map[string][]segment{
	SplitFullBody: {
		{"Full Body", []string{"chest", "back", "quads", "core"}},
	},
	SplitUpperLower: {
		{"Upper", []string{"chest", "back", "shoulders", "biceps", "triceps"}},
		{"Lower", []string{"quads", "hamstrings", "glutes", "calves", "core"}},
	},
	SplitPushPullLegs: {
		{"Push", []string{"chest", "shoulders", "triceps"}},
		{"Pull", []string{"back", "biceps", "core"}},
		{"Legs", []string{"quads", "hamstrings", "glutes", "calves"}},
	},
}

// Per (dosha, goal) set/rep/rest lookup. The empty goal key is the
// dosha default.
var intensityTable = map[knowledge.Dosha]map[string]Intensity{
	knowledge.Vata: {
		"":            {Sets: 3, Reps: 10, RestSeconds: 90},
		"strength":    {Sets: 4, Reps: 6, RestSeconds: 120},
		"endurance":   {Sets: 2, Reps: 15, RestSeconds: 60},
		"weight loss": {Sets: 3, Reps: 12, RestSeconds: 60},
	},
	knowledge.Pitta: {
		"":            {Sets: 3, Reps: 12, RestSeconds: 60},
		"strength":    {Sets: 4, Reps: 6, RestSeconds: 120},
		"endurance":   {Sets: 3, Reps: 15, RestSeconds: 45},
		"weight loss": {Sets: 3, Reps: 15, RestSeconds: 45},
	},
	knowledge.Kapha: {
		"":            {Sets: 4, Reps: 12, RestSeconds: 45},
		"strength":    {Sets: 5, Reps: 6, RestSeconds: 90},
		"endurance":   {Sets: 3, Reps: 20, RestSeconds: 30},
		"weight loss": {Sets: 4, Reps: 15, RestSeconds: 30},
	},
}

// Engine generates weekly workout plans from the static exercise table.
type Engine struct {
	exercises []knowledge.ExerciseItem
	rng       *rand.Rand
}

// NewEngine creates an engine over the given exercise table. A nil rng gets
// a time-seeded source.
func NewEngine(exercises []knowledge.ExerciseItem, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{exercises: exercises, rng: rng}
}

// SplitFor maps days available to a weekly split type. Pure function:
// 1-3 days Full Body, 4 days Upper / Lower, 5-7 days Push / Pull / Legs.
func SplitFor(daysAvailable int) string {
	switch {
	case daysAvailable <= 3:
		return SplitFullBody
	case daysAvailable == 4:
		return SplitUpperLower
	default:
		return SplitPushPullLegs
	}
}

func intensityFor(dosha knowledge.Dosha, goal string) Intensity {
	byGoal, ok := intensityTable[dosha]
	if !ok {
		byGoal = intensityTable[knowledge.Vata]
	}
	if in, ok := byGoal[strings.ToLower(strings.TrimSpace(goal))]; ok {
		return in
	}
	return byGoal[""]
}

// Generate builds a weekly plan for the given profile and dosha percentages.
// Exercise selection is randomized; split type, intensity and the weekly
// structure are deterministic for a given input.
func (e *Engine) Generate(in Input, doshas map[knowledge.Dosha]int) Plan {
	days := in.DaysAvailable
	if days < 1 {
		days = 3
	}
	if days > 7 {
		days = 7
	}

	dominant := knowledge.DominantDosha(doshas)
	split := SplitFor(days)
	segments := splitSegments[split]
	intensity := intensityFor(dominant, in.Goal)
	pool := e.filterExercises(in.Equipment, in.Conditions)

	week := make([]Day, 0, len(weekdays))
	trained := 0
	for _, weekday := range weekdays {
		if trained >= days {
			week = append(week, Day{Name: weekday, Focus: "Rest", Rest: true})
			continue
		}
		seg := segments[trained%len(segments)]
		week = append(week, Day{
			Name:      weekday,
			Focus:     seg.name,
			Exercises: e.pickExercises(pool, seg.groups, intensity),
		})
		trained++
	}

	guidance := doshaWorkoutTable[dominant]

	return Plan{
		SplitType:     split,
		DominantDosha: dominant,
		Intensity:     intensity,
		Week:          week,
		Style:         guidance.style,
		Recommended:   guidance.recommended,
		Avoid:         guidance.avoid,
		YogaSequence:  guidance.yoga,
		WarmUp:        "Start with 5-10 minutes of light cardio and dynamic stretching",
		CoolDown:      "End with 5-10 minutes of static stretching and deep breathing",
	}
}

// filterExercises drops items the user has no equipment for and, when the
// conditions call for it, everything above low impact.
func (e *Engine) filterExercises(equipment, conditions []string) []knowledge.ExerciseItem {
	lowImpactOnly := false
	for _, c := range conditions {
		switch strings.ToLower(strings.TrimSpace(c)) {
		case "arthritis", "hypertension":
			lowImpactOnly = true
		}
	}

	available := make(map[string]bool, len(equipment))
	for _, eq := range equipment {
		available[strings.ToLower(strings.TrimSpace(eq))] = true
	}

	pool := make([]knowledge.ExerciseItem, 0, len(e.exercises))
	for _, ex := range e.exercises {
		// Bodyweight work needs no equipment.
		if ex.Equipment != "none" && !available[ex.Equipment] {
			continue
		}
		if lowImpactOnly && ex.Impact != knowledge.ImpactLow {
			continue
		}
		pool = append(pool, ex)
	}
	return pool
}

// pickExercises selects one random exercise per target muscle group.
// An empty group yields a placeholder rather than failing the plan.
func (e *Engine) pickExercises(pool []knowledge.ExerciseItem, groups []string, intensity Intensity) []Exercise {
	picked := make([]Exercise, 0, len(groups))
	for _, group := range groups {
		var options []knowledge.ExerciseItem
		for _, ex := range pool {
			if ex.MuscleGroup == group {
				options = append(options, ex)
			}
		}
		if len(options) == 0 {
			picked = append(picked, Exercise{
				Name:        fmt.Sprintf("(no suitable exercise for %s)", group),
				MuscleGroup: group,
			})
			continue
		}
		choice := options[e.rng.Intn(len(options))]
		picked = append(picked, Exercise{
			Name:        choice.Name,
			MuscleGroup: group,
			Sets:        intensity.Sets,
			Reps:        intensity.Reps,
			RestSeconds: intensity.RestSeconds,
		})
	}
	return picked
}
