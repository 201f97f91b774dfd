package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ayursutra/backend/internal/ai"
	"github.com/ayursutra/backend/internal/dietplan"
	"github.com/ayursutra/backend/internal/workoutplan"
)

// Fallback text when the external generator is unavailable or fails.
const generationFallback = "I can help you with that. I've also suggested some actions for you below."

var (
	dietWords      = []string{"diet", "food", "eat", "nutrition", "meal"}
	workoutWords   = []string{"workout", "exercise", "gym", "fitness", "training", "yoga"}
	actionWords    = []string{"plan", "routine", "schedule", "recommend", "suggest", "create", "generate", "give me"}
	hydrationWords = []string{"water", "hydrate", "drink"}
	weightWords    = []string{"weight", "fat", "lose", "slim", "exercise", "workout"}
	doctorWords    = []string{"doctor", "pain", "sick", "ill", "fever", "appointment", "consult"}

	clarificationTriggers = []string{"diet plan", "meal plan", "nutrition plan", "workout plan", "exercise plan", "fitness plan"}
	dietTriggers          = []string{"diet plan", "meal plan", "nutrition plan"}

	dietPattern    = wordPattern(dietWords)
	workoutPattern = wordPattern(workoutWords)
	actionPattern  = wordPattern(actionWords)
)

// wordPattern matches any of the words on whole-word boundaries, so "eat"
// does not fire inside "create".
func wordPattern(words []string) *regexp.Regexp {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
}

// Service is the conversational orchestrator. It holds no per-conversation
// state: each call re-derives everything from the supplied message, profile
// and history. All fields are read-only after construction, so a single
// instance is safe under concurrent request handling.
type Service struct {
	classifier *Classifier
	diet       *dietplan.Engine
	workout    *workoutplan.Engine
	generator  ai.Generator
}

func NewService(classifier *Classifier, diet *dietplan.Engine, workout *workoutplan.Engine, generator ai.Generator) *Service {
	return &Service{
		classifier: classifier,
		diet:       diet,
		workout:    workout,
		generator:  generator,
	}
}

// Respond runs the full pipeline for one message: fact extraction,
// clarification check, intent scan, and plan generation or conversational
// reply. It never returns an error: every branch ends in usable text, and
// internal degradation is reported via Response.SoftFailure only.
func (s *Service) Respond(ctx context.Context, req Request) Response {
	profile := req.Profile
	ExtractFacts(req.Message, &profile)

	lowered := strings.ToLower(req.Message)

	// Clarification short-circuits the rest of the pipeline: no intents,
	// no engines.
	if questions := clarificationQuestions(lowered, profile); len(questions) > 0 {
		return Response{
			Type:           TypeClarification,
			Message:        clarificationMessage(questions),
			Actions:        []Action{},
			ConversationID: req.ConversationID,
			Profile:        profile,
		}
	}

	actions := detectIntents(lowered)

	// Diet intent is checked first: a query naming both plans gets the
	// diet plan.
	switch {
	case wantsDietPlan(lowered):
		plan := s.diet.Generate(dietplan.Input{
			WeightKg:      profile.WeightKg,
			HeightCm:      profile.HeightCm,
			Age:           profile.Age,
			Gender:        profile.Gender,
			ActivityLevel: profile.ActivityLevel,
			Goal:          profile.DietaryGoal,
			Restrictions:  profile.Restrictions,
			Conditions:    profile.Conditions,
		}, req.Doshas)
		return Response{
			Type:           TypeDietPlan,
			Message:        formatDietPlan(plan),
			Data:           plan,
			Actions:        actions,
			ConversationID: req.ConversationID,
			Profile:        profile,
		}

	case wantsWorkoutPlan(lowered):
		plan := s.workout.Generate(workoutplan.Input{
			DaysAvailable: profile.DaysAvailable,
			Goal:          profile.FitnessGoal,
			Equipment:     profile.Equipment,
			Conditions:    profile.Conditions,
		}, req.Doshas)
		return Response{
			Type:           TypeWorkoutPlan,
			Message:        formatWorkoutPlan(plan),
			Data:           plan,
			Actions:        actions,
			ConversationID: req.ConversationID,
			Profile:        profile,
		}

	default:
		text, softFailure := s.converse(ctx, req.Message, actions)
		return Response{
			Type:           TypeConversation,
			Message:        text,
			Actions:        actions,
			ConversationID: req.ConversationID,
			Profile:        profile,
			SoftFailure:    softFailure,
		}
	}
}

// clarificationQuestions returns up to two missing-field questions when the
// message contains a plan trigger phrase. Age is always required; weight is
// additionally required for diet-related triggers.
func clarificationQuestions(lowered string, profile Profile) []string {
	triggered := false
	dietRelated := false
	for _, phrase := range clarificationTriggers {
		if strings.Contains(lowered, phrase) {
			triggered = true
		}
	}
	if !triggered {
		return nil
	}
	for _, phrase := range dietTriggers {
		if strings.Contains(lowered, phrase) {
			dietRelated = true
		}
	}

	var questions []string
	if profile.Age <= 0 {
		questions = append(questions, "What is your age?")
	}
	if dietRelated && profile.WeightKg <= 0 {
		questions = append(questions, "What is your current weight (in kg)?")
	}
	if dietRelated && profile.HeightCm <= 0 {
		questions = append(questions, "What is your height (in cm)?")
	}
	if len(questions) > 2 {
		questions = questions[:2]
	}
	return questions
}

func clarificationMessage(questions []string) string {
	var b strings.Builder
	b.WriteString("I'd love to help! First, a couple of quick questions:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return b.String()
}

// detectIntents scans for independent intents by keyword presence. The scan
// is idempotent: the same keywords always produce the same action templates.
func detectIntents(lowered string) []Action {
	actions := []Action{}

	if containsAny(lowered, hydrationWords) {
		actions = append(actions, Action{
			Type:  ActionCreateReminder,
			Label: "Set Water Reminders (Every 2 hours)",
			Data: map[string]any{
				"title":     "Drink Water",
				"message":   "Time to hydrate! Drink a glass of water.",
				"frequency": "daily",
				"time":      "09:00,11:00,13:00,15:00,17:00,19:00",
			},
		})
	}

	if containsAny(lowered, weightWords) {
		actions = append(actions, Action{
			Type:  ActionCreateReminder,
			Label: "Set Daily Morning Workout (7:00 AM)",
			Data: map[string]any{
				"title":     "Morning Workout",
				"message":   "Time for your weight loss exercises!",
				"frequency": "daily",
				"time":      "07:00",
			},
		})
	}

	if containsAny(lowered, doctorWords) {
		specialization := "General"
		if strings.Contains(lowered, "pain") {
			specialization = "Specialist"
		}
		actions = append(actions, Action{
			Type:  ActionFindPractitioner,
			Label: "Find a Practitioner",
			Data: map[string]any{
				"specialization": specialization,
			},
		})
	}

	return actions
}

func wantsDietPlan(lowered string) bool {
	if strings.Contains(lowered, "lose weight") {
		return true
	}
	return dietPattern.MatchString(lowered) && actionPattern.MatchString(lowered)
}

func wantsWorkoutPlan(lowered string) bool {
	return workoutPattern.MatchString(lowered) && actionPattern.MatchString(lowered)
}

// converse routes through the classifier: medical queries get the template
// path, everything else goes to the external generator. Generator failure is
// absorbed into fallback text and reported as a soft failure.
func (s *Service) converse(ctx context.Context, message string, actions []Action) (string, string) {
	classification := s.classifier.Classify(message)

	if classification.Category == CategoryMedical {
		return medicalTemplateReply(classification), ""
	}

	text, err := s.generator.Generate(ctx, buildPrompt(message, actions))
	if err != nil {
		return generationFallback, fmt.Sprintf("generation failed: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return generationFallback, "generation returned empty text"
	}
	return text, ""
}

func buildPrompt(message string, actions []Action) string {
	var b strings.Builder
	b.WriteString("The user asked: ")
	b.WriteString(message)
	b.WriteString(". ")
	if len(actions) > 0 {
		labels := make([]string, 0, len(actions))
		for _, a := range actions {
			labels = append(labels, a.Label)
		}
		fmt.Fprintf(&b, "You have proposed these actions: %s. Explain why they are helpful.", strings.Join(labels, "; "))
	} else {
		b.WriteString("Provide helpful health advice.")
	}
	return b.String()
}

func medicalTemplateReply(classification Classification) string {
	topics := strings.Join(classification.MatchedMedical, ", ")
	if topics == "" {
		topics = "your symptoms"
	}
	return fmt.Sprintf(
		"I understand you're asking about %s. General guidance: monitor your symptoms, stay hydrated and rest well. "+
			"For a proper evaluation please consult a qualified practitioner. I can help you book an appointment.",
		topics,
	)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func formatDietPlan(plan dietplan.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is your personalized diet plan (balancing %s):\n", plan.DominantDosha)
	fmt.Fprintf(&b, "Daily target: %d kcal (BMR %d, TDEE %d).\n", plan.TargetCalories, plan.BMR, plan.TDEE)
	fmt.Fprintf(&b, "Macros: %dg protein / %dg carbs / %dg fat.\n", plan.Macros.ProteinG, plan.Macros.CarbsG, plan.Macros.FatG)
	for _, meal := range plan.Meals {
		fmt.Fprintf(&b, "- %s (%d kcal, %s): %s\n", meal.Slot, meal.Calories, meal.Timing, strings.Join(meal.Items, ", "))
	}
	fmt.Fprintf(&b, "Drink about %.1fL of water per day.", plan.HydrationLitres)
	return b.String()
}

func formatWorkoutPlan(plan workoutplan.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is your weekly %s workout plan (style: %s):\n", plan.SplitType, plan.Style)
	for _, day := range plan.Week {
		if day.Rest {
			fmt.Fprintf(&b, "- %s: Rest\n", day.Name)
			continue
		}
		names := make([]string, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			names = append(names, ex.Name)
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", day.Name, day.Focus, strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "%s. %s.", plan.WarmUp, plan.CoolDown)
	return b.String()
}
