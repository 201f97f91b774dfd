package assistant

import (
	"regexp"
	"sort"
	"strings"
)

// Category is the classifier verdict.
type Category string

const (
	CategoryMedical   Category = "medical"
	CategoryAyurvedic Category = "ayurvedic"
	CategoryHybrid    Category = "hybrid"
	CategoryGeneral   Category = "general"
)

// Classification is the result of routing one query. Computed fresh per
// query and never persisted.
type Classification struct {
	Category        Category `json:"category"`
	Confidence      float64  `json:"confidence"`
	MatchedMedical  []string `json:"matched_medical,omitempty"`
	MatchedAyurveda []string `json:"matched_ayurvedic,omitempty"`
	MedicalScore    int      `json:"medical_score"`
	AyurvedicScore  int      `json:"ayurvedic_score"`
}

// Classifier scores free-text queries against the medical and Ayurvedic
// vocabularies. Read-only after construction, safe for concurrent use.
type Classifier struct {
	medicalPattern   *regexp.Regexp
	ayurvedicPattern *regexp.Regexp
}

func NewClassifier() *Classifier {
	return &Classifier{
		medicalPattern:   compileKeywordPattern(medicalKeywords),
		ayurvedicPattern: compileKeywordPattern(ayurvedicKeywords),
	}
}

// compileKeywordPattern builds a case-insensitive word-boundary alternation,
// longest keyword first so multi-word phrases match before their substrings.
func compileKeywordPattern(keywords []string) *regexp.Regexp {
	sorted := make([]string, len(keywords))
	copy(sorted, keywords)
	sort.Slice(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	escaped := make([]string, 0, len(sorted))
	for _, kw := range sorted {
		escaped = append(escaped, regexp.QuoteMeta(kw))
	}

	return regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

// Classify routes a query. Decision rule: the set with more matches wins at
// confidence min(0.95, 0.6 + 0.1*count); equal nonzero counts are "hybrid"
// at a fixed 0.8; no matches at all is "general" at 0.5.
//
// Exact keyword matching only: no stemming, and no negation handling, so "I
// don't have diabetes" still counts as a diabetes match.
func (c *Classifier) Classify(query string) Classification {
	lowered := strings.ToLower(query)

	medicalMatches := c.medicalPattern.FindAllString(lowered, -1)
	ayurvedicMatches := c.ayurvedicPattern.FindAllString(lowered, -1)

	medicalScore := len(medicalMatches)
	ayurvedicScore := len(ayurvedicMatches)

	switch {
	case medicalScore > ayurvedicScore:
		return Classification{
			Category:       CategoryMedical,
			Confidence:     confidenceFor(medicalScore),
			MatchedMedical: topMatches(medicalMatches, 5),
			MedicalScore:   medicalScore,
			AyurvedicScore: ayurvedicScore,
		}
	case ayurvedicScore > medicalScore:
		return Classification{
			Category:        CategoryAyurvedic,
			Confidence:      confidenceFor(ayurvedicScore),
			MatchedAyurveda: topMatches(ayurvedicMatches, 5),
			MedicalScore:    medicalScore,
			AyurvedicScore:  ayurvedicScore,
		}
	case medicalScore > 0:
		// Equal nonzero counts. Fixed confidence regardless of match count.
		return Classification{
			Category:        CategoryHybrid,
			Confidence:      0.8,
			MatchedMedical:  topMatches(medicalMatches, 3),
			MatchedAyurveda: topMatches(ayurvedicMatches, 3),
			MedicalScore:    medicalScore,
			AyurvedicScore:  ayurvedicScore,
		}
	default:
		return Classification{
			Category:   CategoryGeneral,
			Confidence: 0.5,
		}
	}
}

func confidenceFor(score int) float64 {
	confidence := 0.6 + 0.1*float64(score)
	if confidence > 0.95 {
		return 0.95
	}
	return confidence
}

func topMatches(matches []string, n int) []string {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
