package knowledge

// Dosha is one of the three Ayurvedic constitutional categories.
// Used purely as a categorical tag for filtering food and exercise items.
type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas lists all doshas in canonical order.
var Doshas = []Dosha{Vata, Pitta, Kapha}

// Impact describes how a food item affects a given dosha.
type Impact string

const (
	ImpactGood    Impact = "good"
	ImpactNeutral Impact = "neutral"
	ImpactBad     Impact = "bad"
)

// FoodCategory is the meal-building slot a food item fills.
type FoodCategory string

const (
	CategoryProtein FoodCategory = "protein"
	CategoryCarb    FoodCategory = "carb"
	CategoryVeggie  FoodCategory = "veggie"
	CategoryFat     FoodCategory = "fat"
	CategoryFruit   FoodCategory = "fruit"
)

// FoodCategories lists meal-building categories in slot order.
var FoodCategories = []FoodCategory{CategoryProtein, CategoryCarb, CategoryVeggie, CategoryFat, CategoryFruit}

// FoodItem describes one entry of the static food table.
// All nutritional values are per 100g. Items are immutable after process start.
type FoodItem struct {
	Name          string
	Category      FoodCategory
	Calories      float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	GlycemicIndex int
	DoshaImpact   map[Dosha]Impact
	Tags          []string
}

// HasTag reports whether the item carries the given tag.
func (f FoodItem) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MovementType classifies an exercise for split assignment.
type MovementType string

const (
	MovementPush   MovementType = "push"
	MovementPull   MovementType = "pull"
	MovementLegs   MovementType = "legs"
	MovementCardio MovementType = "cardio"
)

// ImpactLevel is the joint-impact rating of an exercise.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "low"
	ImpactModerate ImpactLevel = "moderate"
	ImpactHigh     ImpactLevel = "high"
)

// ExerciseItem describes one entry of the static exercise table. Immutable.
type ExerciseItem struct {
	Name        string
	Movement    MovementType
	MuscleGroup string
	Difficulty  string // beginner | intermediate | advanced
	Equipment   string // none | dumbbells | barbell | machine | band
	Impact      ImpactLevel
}

// DominantDosha returns the dosha with the highest percentage.
// Ties resolve in canonical vata, pitta, kapha order. An empty or zero
// map defaults to vata.
func DominantDosha(percentages map[Dosha]int) Dosha {
	dominant := Vata
	best := -1
	for _, d := range Doshas {
		if percentages[d] > best {
			dominant = d
			best = percentages[d]
		}
	}
	return dominant
}
