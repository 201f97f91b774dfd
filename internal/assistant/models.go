package assistant

import "github.com/ayursutra/backend/internal/knowledge"

// Response types returned by the orchestrator.
const (
	TypeConversation  = "conversation"
	TypeClarification = "clarification"
	TypeDietPlan      = "diet_plan"
	TypeWorkoutPlan   = "workout_plan"
)

// Action types the orchestrator can propose.
const (
	ActionCreateReminder   = "create_reminder"
	ActionFindPractitioner = "find_practitioner"
)

// Profile is the transient per-request user profile. It is built from stored
// patient fields and mutated in place as facts are extracted from free text;
// it is not persisted by this package.
type Profile struct {
	WeightKg      float64  `json:"weight_kg,omitempty"`
	HeightCm      float64  `json:"height_cm,omitempty"`
	Age           int      `json:"age,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	DietaryGoal   string   `json:"dietary_goal,omitempty"`
	FitnessGoal   string   `json:"fitness_goal,omitempty"`
	DaysAvailable int      `json:"days_available,omitempty"`
	Equipment     []string `json:"equipment,omitempty"`
	Restrictions  []string `json:"restrictions,omitempty"`
	Conditions    []string `json:"conditions,omitempty"`
}

// Message is one prior conversation turn.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Action is a suggested follow-up the HTTP layer may materialize (for
// example into a Reminder record). Produced per response, never persisted
// by the orchestrator itself.
type Action struct {
	Type  string         `json:"type"`
	Label string         `json:"label"`
	Data  map[string]any `json:"data"`
}

// Request is one inbound chat turn plus the caller-supplied context.
type Request struct {
	Message        string
	Profile        Profile
	History        []Message
	Doshas         map[knowledge.Dosha]int
	ConversationID string
}

// Response is the orchestrator output. SoftFailure carries an internal
// degradation reason (for example a failed generation call) so the HTTP
// layer can log it; it is never surfaced to the end user, who always gets
// usable Message text.
type Response struct {
	Type           string   `json:"type"`
	Message        string   `json:"message"`
	Data           any      `json:"data,omitempty"`
	Actions        []Action `json:"actions"`
	ConversationID string   `json:"conversation_id"`
	Profile        Profile  `json:"-"`
	SoftFailure    string   `json:"-"`
}
