package dietplan

import "github.com/ayursutra/backend/internal/knowledge"

// Input is the profile slice the nutritional engine needs. Zero values are
// replaced with the documented defaults (70kg, 170cm, 30y, moderately active).
type Input struct {
	WeightKg      float64  `json:"weight_kg"`
	HeightCm      float64  `json:"height_cm"`
	Age           int      `json:"age"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	Restrictions  []string `json:"restrictions"`
	Conditions    []string `json:"conditions"`
}

// Macros holds the daily macro targets in grams.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Meal is one of the four daily meal slots.
type Meal struct {
	Slot     string   `json:"slot"`
	Items    []string `json:"items"`
	Calories int      `json:"calories"`
	Timing   string   `json:"timing"`
}

// Plan is the generated diet plan.
type Plan struct {
	BMI             float64         `json:"bmi"`
	BMR             int             `json:"bmr"`
	TDEE            int             `json:"tdee"`
	TargetCalories  int             `json:"target_calories"`
	DominantDosha   knowledge.Dosha `json:"dominant_dosha"`
	Macros          Macros          `json:"macros"`
	Meals           []Meal          `json:"meals"`
	FoodsToFavor    []string        `json:"foods_to_favor"`
	FoodsToAvoid    []string        `json:"foods_to_avoid"`
	Spices          []string        `json:"recommended_spices"`
	HydrationLitres float64         `json:"hydration_litres"`
}

// mealSlot pairs a slot name with its share of target calories and timing.
type mealSlot struct {
	name   string
	share  float64
	timing string
}

// Calorie shares per slot: 25/35/30/10.
var mealSlots = []mealSlot{
	{"breakfast", 0.25, "7:00-8:00 AM"},
	{"lunch", 0.35, "12:00-1:00 PM"},
	{"dinner", 0.30, "6:00-7:00 PM"},
	{"snacks", 0.10, "Mid-morning or evening"},
}

type doshaGuidance struct {
	favor  []string
	avoid  []string
	spices []string
}

var doshaFoodGuidance = map[knowledge.Dosha]doshaGuidance{
	knowledge.Vata: {
		favor:  []string{"Warm cooked foods", "Sweet fruits", "Cooked vegetables", "Whole grains (rice, oats)", "Nuts and seeds", "Ghee and oils", "Warm milk", "Root vegetables"},
		avoid:  []string{"Cold foods", "Raw vegetables", "Dry foods", "Caffeine", "Beans (except mung)"},
		spices: []string{"Ginger", "Cinnamon", "Cardamom", "Cumin", "Black pepper"},
	},
	knowledge.Pitta: {
		favor:  []string{"Cool foods", "Sweet fruits (melons, grapes)", "Leafy greens", "Cucumber", "Coconut", "Milk", "Whole grains", "Legumes"},
		avoid:  []string{"Spicy foods", "Sour fruits", "Tomatoes", "Garlic", "Onions", "Red meat", "Alcohol"},
		spices: []string{"Coriander", "Fennel", "Cardamom", "Turmeric", "Mint"},
	},
	knowledge.Kapha: {
		favor:  []string{"Light foods", "Pungent vegetables", "Leafy greens", "Apples", "Pears", "Legumes", "Spices", "Honey"},
		avoid:  []string{"Heavy foods", "Dairy", "Fried foods", "Sweet foods", "Cold foods", "Excessive salt"},
		spices: []string{"Ginger", "Black pepper", "Cayenne", "Turmeric", "Mustard"},
	},
}
