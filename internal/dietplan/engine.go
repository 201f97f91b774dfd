package dietplan

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/knowledge"
)

const (
	defaultWeightKg      = 70
	defaultHeightCm      = 170
	defaultAge           = 30
	defaultActivityLevel = "moderately active"

	// Items at or above this glycemic index are excluded for diabetic users.
	highGlycemicIndex = 70
)

var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
	"extremely active":  1.9,
}

// macroRatio is the (protein, carbs, fat) calorie share for a goal.
type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

var goalMacroRatios = map[string]macroRatio{
	"weight loss":     {0.40, 0.30, 0.30},
	"muscle building": {0.30, 0.45, 0.25},
}

var defaultMacroRatio = macroRatio{0.30, 0.40, 0.30}

// Engine generates personalized diet plans from the static food table.
// The food table is read-only after construction; the injected random source
// drives meal item selection so tests can pin it.
type Engine struct {
	foods []knowledge.FoodItem
	rng   *rand.Rand
}

// NewEngine creates an engine over the given food table. A nil rng gets a
// time-seeded source.
func NewEngine(foods []knowledge.FoodItem, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{foods: foods, rng: rng}
}

// BMR computes the Harris-Benedict (revised) basal metabolic rate.
// Any gender other than "female" uses the male coefficients.
func BMR(gender string, weightKg, heightCm float64, age int) float64 {
	if strings.EqualFold(strings.TrimSpace(gender), "female") {
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
}

// TDEE multiplies BMR by the activity-level coefficient.
// Unknown levels fall back to moderately active.
func TDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(activityLevel))]
	if !ok {
		mult = activityMultipliers[defaultActivityLevel]
	}
	return bmr * mult
}

// TargetCalories adjusts TDEE by goal: -20% for weight loss, +10% for muscle
// building, unchanged otherwise.
func TargetCalories(tdee float64, goal string) int {
	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "weight loss":
		return int(math.Round(tdee * 0.8))
	case "muscle building":
		return int(math.Round(tdee * 1.1))
	default:
		return int(math.Round(tdee))
	}
}

// MacroSplit converts target calories into protein/carb/fat grams using the
// fixed per-goal ratios (4 kcal/g protein and carbs, 9 kcal/g fat).
func MacroSplit(targetCalories int, goal string) Macros {
	ratio, ok := goalMacroRatios[strings.ToLower(strings.TrimSpace(goal))]
	if !ok {
		ratio = defaultMacroRatio
	}
	t := float64(targetCalories)
	return Macros{
		ProteinG: int(math.Round(t * ratio.protein / 4)),
		CarbsG:   int(math.Round(t * ratio.carbs / 4)),
		FatG:     int(math.Round(t * ratio.fat / 9)),
	}
}

// Generate builds a diet plan for the given profile and dosha percentages.
// Meal item selection is randomized; numeric fields and the four-slot
// structure are deterministic for a given input.
func (e *Engine) Generate(in Input, doshas map[knowledge.Dosha]int) Plan {
	in = applyDefaults(in)

	heightM := in.HeightCm / 100
	bmi := in.WeightKg / (heightM * heightM)

	bmr := BMR(in.Gender, in.WeightKg, in.HeightCm, in.Age)
	tdee := TDEE(bmr, in.ActivityLevel)
	target := TargetCalories(tdee, in.Goal)

	dominant := knowledge.DominantDosha(doshas)
	pool := e.filterFoods(dominant, in.Restrictions, in.Conditions)

	meals := make([]Meal, 0, len(mealSlots))
	for _, slot := range mealSlots {
		meals = append(meals, Meal{
			Slot:     slot.name,
			Items:    e.pickMealItems(pool),
			Calories: int(math.Round(float64(target) * slot.share)),
			Timing:   slot.timing,
		})
	}

	guidance := doshaFoodGuidance[dominant]

	return Plan{
		BMI:             math.Round(bmi*10) / 10,
		BMR:             int(math.Round(bmr)),
		TDEE:            int(math.Round(tdee)),
		TargetCalories:  target,
		DominantDosha:   dominant,
		Macros:          MacroSplit(target, in.Goal),
		Meals:           meals,
		FoodsToFavor:    guidance.favor,
		FoodsToAvoid:    guidance.avoid,
		Spices:          guidance.spices,
		HydrationLitres: math.Round(in.WeightKg*0.033*10) / 10,
	}
}

func applyDefaults(in Input) Input {
	if in.WeightKg <= 0 {
		in.WeightKg = defaultWeightKg
	}
	if in.HeightCm <= 0 {
		in.HeightCm = defaultHeightCm
	}
	if in.Age <= 0 {
		in.Age = defaultAge
	}
	if strings.TrimSpace(in.ActivityLevel) == "" {
		in.ActivityLevel = defaultActivityLevel
	}
	return in
}

// filterFoods drops items whose dosha impact is bad for the dominant dosha,
// whose tags conflict with dietary restrictions, or whose tags conflict with
// medical conditions.
func (e *Engine) filterFoods(dominant knowledge.Dosha, restrictions, conditions []string) []knowledge.FoodItem {
	pool := make([]knowledge.FoodItem, 0, len(e.foods))
	for _, f := range e.foods {
		if f.DoshaImpact[dominant] == knowledge.ImpactBad {
			continue
		}
		if conflictsWithRestrictions(f, restrictions) {
			continue
		}
		if conflictsWithConditions(f, conditions) {
			continue
		}
		pool = append(pool, f)
	}
	return pool
}

func conflictsWithRestrictions(f knowledge.FoodItem, restrictions []string) bool {
	for _, r := range restrictions {
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "vegetarian":
			if f.HasTag("meat") || f.HasTag("fish") {
				return true
			}
		case "vegan":
			if f.HasTag("meat") || f.HasTag("fish") || f.HasTag("dairy") || f.HasTag("egg") {
				return true
			}
		case "keto":
			if f.CarbsG > 10 {
				return true
			}
		case "gluten-free", "gluten free":
			if f.HasTag("gluten") {
				return true
			}
		}
	}
	return false
}

func conflictsWithConditions(f knowledge.FoodItem, conditions []string) bool {
	for _, c := range conditions {
		switch strings.ToLower(strings.TrimSpace(c)) {
		case "diabetes", "diabetic":
			if f.GlycemicIndex >= highGlycemicIndex || f.HasTag("sweet") {
				return true
			}
		}
	}
	return false
}

// pickMealItems selects one random item per category from the filtered pool.
// An empty category yields a placeholder naming it rather than failing.
func (e *Engine) pickMealItems(pool []knowledge.FoodItem) []string {
	items := make([]string, 0, len(knowledge.FoodCategories))
	for _, cat := range knowledge.FoodCategories {
		var options []knowledge.FoodItem
		for _, f := range pool {
			if f.Category == cat {
				options = append(options, f)
			}
		}
		if len(options) == 0 {
			items = append(items, fmt.Sprintf("(no suitable %s option)", cat))
			continue
		}
		items = append(items, options[e.rng.Intn(len(options))].Name)
	}
	return items
}
