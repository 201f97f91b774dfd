package knowledge

// Foods is the static food knowledge table. Values are per 100g and follow
// common Ayurvedic kitchen staples; dosha impact encodes the classical
// pacifying/aggravating qualities of each item.
var Foods = []FoodItem{
	// Proteins
	{Name: "Mung Dal", Category: CategoryProtein, Calories: 105, ProteinG: 7.0, CarbsG: 19.0, FatG: 0.4, GlycemicIndex: 29,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"legume"}},
	{Name: "Toor Dal", Category: CategoryProtein, Calories: 121, ProteinG: 7.2, CarbsG: 21.0, FatG: 0.6, GlycemicIndex: 32,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactNeutral, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"legume"}},
	{Name: "Chickpeas", Category: CategoryProtein, Calories: 164, ProteinG: 8.9, CarbsG: 27.0, FatG: 2.6, GlycemicIndex: 28,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"legume"}},
	{Name: "Paneer", Category: CategoryProtein, Calories: 265, ProteinG: 18.3, CarbsG: 1.2, FatG: 20.8, GlycemicIndex: 27,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactBad}, Tags: []string{"dairy"}},
	{Name: "Greek Yogurt", Category: CategoryProtein, Calories: 59, ProteinG: 10.0, CarbsG: 3.6, FatG: 0.4, GlycemicIndex: 11,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactBad}, Tags: []string{"dairy"}},
	{Name: "Eggs", Category: CategoryProtein, Calories: 155, ProteinG: 13.0, CarbsG: 1.1, FatG: 11.0, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactNeutral}, Tags: []string{"egg"}},
	{Name: "Chicken Breast", Category: CategoryProtein, Calories: 165, ProteinG: 31.0, CarbsG: 0, FatG: 3.6, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactGood}, Tags: []string{"meat"}},
	{Name: "River Fish", Category: CategoryProtein, Calories: 128, ProteinG: 22.0, CarbsG: 0, FatG: 4.0, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactNeutral}, Tags: []string{"fish"}},
	{Name: "Tofu", Category: CategoryProtein, Calories: 76, ProteinG: 8.0, CarbsG: 1.9, FatG: 4.8, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactNeutral, Pitta: ImpactGood, Kapha: ImpactNeutral}, Tags: []string{"legume"}},

	// Carbs
	{Name: "Basmati Rice", Category: CategoryCarb, Calories: 130, ProteinG: 2.7, CarbsG: 28.0, FatG: 0.3, GlycemicIndex: 58,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactNeutral}, Tags: []string{"grain"}},
	{Name: "Oats", Category: CategoryCarb, Calories: 389, ProteinG: 16.9, CarbsG: 66.0, FatG: 6.9, GlycemicIndex: 55,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{"grain", "gluten"}},
	{Name: "Whole Wheat Roti", Category: CategoryCarb, Calories: 264, ProteinG: 9.6, CarbsG: 55.0, FatG: 1.5, GlycemicIndex: 62,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{"grain", "gluten"}},
	{Name: "Millet", Category: CategoryCarb, Calories: 119, ProteinG: 3.5, CarbsG: 23.7, FatG: 1.0, GlycemicIndex: 54,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactNeutral, Kapha: ImpactGood}, Tags: []string{"grain"}},
	{Name: "Quinoa", Category: CategoryCarb, Calories: 120, ProteinG: 4.4, CarbsG: 21.3, FatG: 1.9, GlycemicIndex: 53,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"grain"}},
	{Name: "Sweet Potato", Category: CategoryCarb, Calories: 86, ProteinG: 1.6, CarbsG: 20.1, FatG: 0.1, GlycemicIndex: 70,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{"root"}},
	{Name: "White Bread", Category: CategoryCarb, Calories: 265, ProteinG: 9.0, CarbsG: 49.0, FatG: 3.2, GlycemicIndex: 75,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactNeutral, Pitta: ImpactNeutral, Kapha: ImpactBad}, Tags: []string{"grain", "gluten", "processed"}},
	{Name: "Poha", Category: CategoryCarb, Calories: 110, ProteinG: 2.3, CarbsG: 24.0, FatG: 0.2, GlycemicIndex: 64,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactGood}, Tags: []string{"grain"}},

	// Veggies
	{Name: "Spinach", Category: CategoryVeggie, Calories: 23, ProteinG: 2.9, CarbsG: 3.6, FatG: 0.4, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactNeutral, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"leafy"}},
	{Name: "Bottle Gourd", Category: CategoryVeggie, Calories: 14, ProteinG: 0.6, CarbsG: 3.4, FatG: 0.0, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"cooked"}},
	{Name: "Cucumber", Category: CategoryVeggie, Calories: 16, ProteinG: 0.7, CarbsG: 3.6, FatG: 0.1, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactNeutral}, Tags: []string{"raw", "cold"}},
	{Name: "Carrot", Category: CategoryVeggie, Calories: 41, ProteinG: 0.9, CarbsG: 9.6, FatG: 0.2, GlycemicIndex: 39,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactGood}, Tags: []string{"root"}},
	{Name: "Beetroot", Category: CategoryVeggie, Calories: 43, ProteinG: 1.6, CarbsG: 9.6, FatG: 0.2, GlycemicIndex: 61,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactNeutral}, Tags: []string{"root"}},
	{Name: "Bitter Gourd", Category: CategoryVeggie, Calories: 17, ProteinG: 1.0, CarbsG: 3.7, FatG: 0.2, GlycemicIndex: 18,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"cooked"}},
	{Name: "Broccoli", Category: CategoryVeggie, Calories: 34, ProteinG: 2.8, CarbsG: 6.6, FatG: 0.4, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"cooked"}},
	{Name: "Pumpkin", Category: CategoryVeggie, Calories: 26, ProteinG: 1.0, CarbsG: 6.5, FatG: 0.1, GlycemicIndex: 75,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactNeutral}, Tags: []string{"cooked"}},

	// Fats
	{Name: "Ghee", Category: CategoryFat, Calories: 900, ProteinG: 0, CarbsG: 0, FatG: 100.0, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{"dairy"}},
	{Name: "Coconut Oil", Category: CategoryFat, Calories: 892, ProteinG: 0, CarbsG: 0, FatG: 99.1, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{}},
	{Name: "Almonds", Category: CategoryFat, Calories: 579, ProteinG: 21.2, CarbsG: 21.6, FatG: 49.9, GlycemicIndex: 15,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactBad}, Tags: []string{"nut"}},
	{Name: "Sesame Seeds", Category: CategoryFat, Calories: 573, ProteinG: 17.7, CarbsG: 23.4, FatG: 49.7, GlycemicIndex: 35,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactNeutral}, Tags: []string{"seed"}},
	{Name: "Flax Seeds", Category: CategoryFat, Calories: 534, ProteinG: 18.3, CarbsG: 28.9, FatG: 42.2, GlycemicIndex: 35,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactGood}, Tags: []string{"seed"}},
	{Name: "Mustard Oil", Category: CategoryFat, Calories: 884, ProteinG: 0, CarbsG: 0, FatG: 100.0, GlycemicIndex: 0,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactGood}, Tags: []string{}},

	// Fruits
	{Name: "Banana", Category: CategoryFruit, Calories: 89, ProteinG: 1.1, CarbsG: 22.8, FatG: 0.3, GlycemicIndex: 51,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactBad}, Tags: []string{"sweet"}},
	{Name: "Apple", Category: CategoryFruit, Calories: 52, ProteinG: 0.3, CarbsG: 13.8, FatG: 0.2, GlycemicIndex: 36,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{"raw"}},
	{Name: "Pomegranate", Category: CategoryFruit, Calories: 83, ProteinG: 1.7, CarbsG: 18.7, FatG: 1.2, GlycemicIndex: 35,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactNeutral, Pitta: ImpactGood, Kapha: ImpactGood}, Tags: []string{}},
	{Name: "Mango", Category: CategoryFruit, Calories: 60, ProteinG: 0.8, CarbsG: 15.0, FatG: 0.4, GlycemicIndex: 56,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactNeutral, Kapha: ImpactBad}, Tags: []string{"sweet"}},
	{Name: "Watermelon", Category: CategoryFruit, Calories: 30, ProteinG: 0.6, CarbsG: 7.6, FatG: 0.2, GlycemicIndex: 76,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactBad, Pitta: ImpactGood, Kapha: ImpactNeutral}, Tags: []string{"sweet", "cold"}},
	{Name: "Dates", Category: CategoryFruit, Calories: 277, ProteinG: 1.8, CarbsG: 75.0, FatG: 0.2, GlycemicIndex: 42,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactGood, Kapha: ImpactBad}, Tags: []string{"sweet"}},
	{Name: "Papaya", Category: CategoryFruit, Calories: 43, ProteinG: 0.5, CarbsG: 10.8, FatG: 0.3, GlycemicIndex: 60,
		DoshaImpact: map[Dosha]Impact{Vata: ImpactGood, Pitta: ImpactBad, Kapha: ImpactGood}, Tags: []string{}},
}
