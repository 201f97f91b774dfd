package knowledge

import "testing"

func TestFoodNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Foods {
		if seen[f.Name] {
			t.Errorf("duplicate food name %q", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestFoodsCoverAllCategories(t *testing.T) {
	counts := make(map[FoodCategory]int)
	for _, f := range Foods {
		counts[f.Category]++
	}
	for _, c := range FoodCategories {
		if counts[c] == 0 {
			t.Errorf("no foods in category %q", c)
		}
	}
}

func TestFoodsHaveFullDoshaImpact(t *testing.T) {
	for _, f := range Foods {
		for _, d := range Doshas {
			if _, ok := f.DoshaImpact[d]; !ok {
				t.Errorf("food %q missing impact for %s", f.Name, d)
			}
		}
	}
}

func TestExerciseNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Exercises {
		if seen[e.Name] {
			t.Errorf("duplicate exercise name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestDominantDosha(t *testing.T) {
	tests := []struct {
		name string
		in   map[Dosha]int
		want Dosha
	}{
		{"pitta dominant", map[Dosha]int{Vata: 20, Pitta: 50, Kapha: 30}, Pitta},
		{"kapha dominant", map[Dosha]int{Vata: 10, Pitta: 30, Kapha: 60}, Kapha},
		{"vata wins tie", map[Dosha]int{Vata: 40, Pitta: 40, Kapha: 20}, Vata},
		{"empty defaults to vata", map[Dosha]int{}, Vata},
		{"nil defaults to vata", nil, Vata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantDosha(tt.in); got != tt.want {
				t.Errorf("DominantDosha() = %v, want %v", got, tt.want)
			}
		})
	}
}
