package assistant

import (
	"reflect"
	"testing"
)

func TestExtractWeightHeightAge(t *testing.T) {
	var p Profile
	ExtractFacts("I weigh 82.5 kg, I'm 176 cm tall and 34 years old", &p)

	if p.WeightKg != 82.5 {
		t.Errorf("weight = %f, want 82.5", p.WeightKg)
	}
	if p.HeightCm != 176 {
		t.Errorf("height = %f, want 176", p.HeightCm)
	}
	if p.Age != 34 {
		t.Errorf("age = %d, want 34", p.Age)
	}
}

func TestExtractAgeIsForm(t *testing.T) {
	var p Profile
	ExtractFacts("my age is 52", &p)
	if p.Age != 52 {
		t.Errorf("age = %d, want 52", p.Age)
	}
}

func TestExtractGender(t *testing.T) {
	var p Profile
	ExtractFacts("I am a woman", &p)
	if p.Gender != "female" {
		t.Errorf("gender = %q, want female", p.Gender)
	}

	p = Profile{}
	ExtractFacts("I'm male, 40 years old", &p)
	if p.Gender != "male" || p.Age != 40 {
		t.Errorf("got gender=%q age=%d, want male/40", p.Gender, p.Age)
	}
}

func TestExtractGoal(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I want to lose weight", "weight loss"},
		{"help me build muscle", "muscle building"},
		{"I just want to maintain weight", "maintenance"},
	}
	for _, tt := range tests {
		var p Profile
		ExtractFacts(tt.text, &p)
		if p.DietaryGoal != tt.want {
			t.Errorf("ExtractFacts(%q) goal = %q, want %q", tt.text, p.DietaryGoal, tt.want)
		}
	}
}

func TestExtractRestrictionsAndConditions(t *testing.T) {
	var p Profile
	ExtractFacts("I'm vegetarian and diabetic", &p)

	if !reflect.DeepEqual(p.Restrictions, []string{"vegetarian"}) {
		t.Errorf("restrictions = %v, want [vegetarian]", p.Restrictions)
	}
	if !reflect.DeepEqual(p.Conditions, []string{"diabetes"}) {
		t.Errorf("conditions = %v, want [diabetes]", p.Conditions)
	}
}

func TestExtractGlutenFreeVariants(t *testing.T) {
	for _, text := range []string{"I eat gluten-free", "I eat gluten free"} {
		var p Profile
		ExtractFacts(text, &p)
		if !reflect.DeepEqual(p.Restrictions, []string{"gluten-free"}) {
			t.Errorf("ExtractFacts(%q) restrictions = %v, want [gluten-free]", text, p.Restrictions)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	var p Profile
	ExtractFacts("I'm vegan", &p)
	ExtractFacts("I'm vegan", &p)
	if len(p.Restrictions) != 1 {
		t.Errorf("restrictions = %v, want single entry", p.Restrictions)
	}
}

func TestExtractLeavesUnmentionedFieldsAlone(t *testing.T) {
	p := Profile{WeightKg: 70, Age: 30}
	ExtractFacts("Remind me to drink water every 2 hours", &p)
	if p.WeightKg != 70 || p.Age != 30 {
		t.Errorf("profile mutated by unrelated text: %+v", p)
	}
}
