package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// factRule binds one extraction pattern to the profile field it fills.
// Rules are applied in order; keeping them in a table (rather than inline
// conditionals) lets each rule be unit-tested on its own.
type factRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(p *Profile, match []string)
}

var factRules = []factRule{
	{
		name:    "weight_kg",
		pattern: regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:kg|kgs|kilograms?)\b`),
		apply: func(p *Profile, match []string) {
			if v, err := strconv.ParseFloat(match[1], 64); err == nil && v > 0 {
				p.WeightKg = v
			}
		},
	},
	{
		name:    "height_cm",
		pattern: regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:cm|centimeters?)\b`),
		apply: func(p *Profile, match []string) {
			if v, err := strconv.ParseFloat(match[1], 64); err == nil && v > 0 {
				p.HeightCm = v
			}
		},
	},
	{
		name:    "age_years",
		pattern: regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:years?\s+old|yrs?\s+old|years?\b)`),
		apply: func(p *Profile, match []string) {
			if v, err := strconv.Atoi(match[1]); err == nil && v > 0 && v < 130 {
				p.Age = v
			}
		},
	},
	{
		name:    "age_is",
		pattern: regexp.MustCompile(`(?i)\bage\s*(?:is)?\s*(\d{1,3})\b`),
		apply: func(p *Profile, match []string) {
			if v, err := strconv.Atoi(match[1]); err == nil && v > 0 && v < 130 {
				p.Age = v
			}
		},
	},
	{
		name:    "gender",
		pattern: regexp.MustCompile(`(?i)\b(male|female|man|woman)\b`),
		apply: func(p *Profile, match []string) {
			switch strings.ToLower(match[1]) {
			case "female", "woman":
				p.Gender = "female"
			default:
				p.Gender = "male"
			}
		},
	},
	{
		name:    "goal",
		pattern: regexp.MustCompile(`(?i)\b(lose weight|weight loss|build muscle|muscle building|gain muscle|maintain(?:\s+weight)?|maintenance)\b`),
		apply: func(p *Profile, match []string) {
			switch strings.ToLower(match[1]) {
			case "lose weight", "weight loss":
				p.DietaryGoal = "weight loss"
			case "build muscle", "muscle building", "gain muscle":
				p.DietaryGoal = "muscle building"
			default:
				p.DietaryGoal = "maintenance"
			}
		},
	},
	{
		name:    "restriction",
		pattern: regexp.MustCompile(`(?i)\b(vegetarian|vegan|keto|gluten[- ]free)\b`),
		apply: func(p *Profile, match []string) {
			value := strings.ToLower(strings.ReplaceAll(match[1], " ", "-"))
			p.Restrictions = appendUnique(p.Restrictions, value)
		},
	},
	{
		name:    "condition",
		pattern: regexp.MustCompile(`(?i)\b(diabetes|diabetic|hypertension|arthritis|thyroid|pcos|asthma)\b`),
		apply: func(p *Profile, match []string) {
			value := strings.ToLower(match[1])
			if value == "diabetic" {
				value = "diabetes"
			}
			p.Conditions = appendUnique(p.Conditions, value)
		},
	},
}

// ExtractFacts scans free text with the fact-rule table and merges every
// match into the profile in place.
func ExtractFacts(text string, p *Profile) {
	for _, rule := range factRules {
		if match := rule.pattern.FindStringSubmatch(text); match != nil {
			rule.apply(p, match)
		}
	}
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
