package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/users"
	"github.com/google/uuid"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrUnknownAction = errors.New("unknown action type")
)

const (
	historyLimit   = 20
	titleMaxRunes  = 60
	maxPractitions = 10
)

// ChatRequest is the POST /v1/agent/chat body.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// ConfirmActionRequest is the POST /v1/agent/actions/confirm body. Data is
// the Action.Data payload the client got from a previous chat response.
type ConfirmActionRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// PractitionerSummary is one match returned for a confirmed
// find_practitioner action.
type PractitionerSummary struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Specialization  string    `json:"specialization"`
	YearsExperience int       `json:"years_experience"`
}

// ReminderSummary describes a reminder created from a confirmed action.
type ReminderSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Frequency string    `json:"frequency"`
	Times     []string  `json:"times"`
}

// ConfirmResult is the action confirmation response.
type ConfirmResult struct {
	Type          string                `json:"type"`
	Reminder      *ReminderSummary      `json:"reminder,omitempty"`
	Practitioners []PractitionerSummary `json:"practitioners,omitempty"`
}

// ChatService glues the stateless orchestrator to stored conversations,
// patient profiles and confirmed actions.
type ChatService struct {
	service *Service
	store   storage.Store
	now     func() time.Time
}

func NewChatService(service *Service, store storage.Store) *ChatService {
	return &ChatService{service: service, store: store, now: time.Now}
}

// Chat runs one conversation turn. It loads or creates the conversation,
// feeds the stored profile and recent history to the orchestrator, persists
// both sides of the exchange and writes newly extracted facts back to the
// patient profile.
func (c *ChatService) Chat(ctx context.Context, userID uuid.UUID, req ChatRequest) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := c.loadOrCreateConversation(ctx, userID, req.ConversationID, message)
	if err != nil {
		return nil, err
	}

	stored, err := c.store.GetPatientProfile(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("load patient profile: %w", err)
	}

	history, err := c.loadHistory(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	orchReq := Request{
		Message:        message,
		Profile:        profileFromStorage(stored, c.now()),
		History:        history,
		ConversationID: conv.ID.String(),
	}
	if stored != nil {
		orchReq.Doshas = users.DoshaScores(stored)
	}

	resp := c.service.Respond(ctx, orchReq)
	resp.ConversationID = conv.ID.String()
	if resp.SoftFailure != "" {
		log.Printf("WARNING: agent degraded for conversation %s: %s", conv.ID, resp.SoftFailure)
	}

	if err := c.store.AppendMessage(ctx, &storage.ConversationMessage{
		ConversationID: conv.ID,
		Role:           "user",
		Content:        message,
	}); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}
	if err := c.store.AppendMessage(ctx, &storage.ConversationMessage{
		ConversationID: conv.ID,
		Role:           "assistant",
		Content:        resp.Message,
		ResponseType:   resp.Type,
	}); err != nil {
		return nil, fmt.Errorf("append assistant message: %w", err)
	}

	if err := c.persistFacts(ctx, userID, stored, resp.Profile); err != nil {
		// Fact write-back is best effort: the reply already exists.
		log.Printf("WARNING: failed to persist extracted facts for user %s: %v", userID, err)
	}

	return &resp, nil
}

// ConfirmAction materializes a previously suggested action.
func (c *ChatService) ConfirmAction(ctx context.Context, userID uuid.UUID, req ConfirmActionRequest) (*ConfirmResult, error) {
	switch req.Type {
	case ActionCreateReminder:
		return c.confirmReminder(ctx, userID, req.Data)
	case ActionFindPractitioner:
		return c.confirmFindPractitioner(ctx, req.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Type)
	}
}

// ListConversations returns the user's conversations, newest first.
func (c *ChatService) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]storage.Conversation, error) {
	return c.store.ListConversations(ctx, userID, limit, offset)
}

// ListMessages returns a conversation's messages, oldest first. Only the
// conversation owner can read them.
func (c *ChatService) ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]storage.ConversationMessage, error) {
	conv, err := c.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv.UserID != userID {
		return nil, storage.ErrNotFound
	}
	return c.store.ListMessages(ctx, conversationID, 0)
}

func (c *ChatService) loadOrCreateConversation(ctx context.Context, userID uuid.UUID, rawID, message string) (*storage.Conversation, error) {
	if rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad conversation id", storage.ErrNotFound)
		}
		conv, err := c.store.GetConversation(ctx, id)
		if err != nil {
			return nil, err
		}
		if conv.UserID != userID {
			return nil, storage.ErrNotFound
		}
		return conv, nil
	}

	conv := &storage.Conversation{
		UserID: userID,
		Title:  truncateTitle(message),
	}
	if err := c.store.CreateConversation(ctx, conv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (c *ChatService) loadHistory(ctx context.Context, conversationID uuid.UUID) ([]Message, error) {
	stored, err := c.store.ListMessages(ctx, conversationID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	history := make([]Message, 0, len(stored))
	for _, m := range stored {
		history = append(history, Message{Role: m.Role, Content: m.Content})
	}
	return history, nil
}

// persistFacts writes extracted facts back to the stored profile so the
// user does not have to repeat them next session. Only fields the user
// actually stated are written; age is skipped because the profile stores a
// date of birth, not an age.
func (c *ChatService) persistFacts(ctx context.Context, userID uuid.UUID, stored *storage.PatientProfile, extracted Profile) error {
	updated := storage.PatientProfile{UserID: userID}
	if stored != nil {
		updated = *stored
	}

	changed := false
	if extracted.WeightKg > 0 && extracted.WeightKg != updated.WeightKg {
		updated.WeightKg = extracted.WeightKg
		changed = true
	}
	if extracted.HeightCm > 0 && extracted.HeightCm != updated.HeightCm {
		updated.HeightCm = extracted.HeightCm
		changed = true
	}
	if extracted.Gender != "" && extracted.Gender != updated.Gender {
		updated.Gender = extracted.Gender
		changed = true
	}
	if extracted.ActivityLevel != "" && extracted.ActivityLevel != updated.ActivityLevel {
		updated.ActivityLevel = extracted.ActivityLevel
		changed = true
	}
	if extracted.DietaryGoal != "" && extracted.DietaryGoal != updated.DietaryGoal {
		updated.DietaryGoal = extracted.DietaryGoal
		changed = true
	}
	if extracted.FitnessGoal != "" && extracted.FitnessGoal != updated.FitnessGoal {
		updated.FitnessGoal = extracted.FitnessGoal
		changed = true
	}
	if extracted.DaysAvailable > 0 && extracted.DaysAvailable != updated.DaysAvailable {
		updated.DaysAvailable = extracted.DaysAvailable
		changed = true
	}
	if merged := mergeLists(updated.Restrictions, extracted.Restrictions); len(merged) != len(updated.Restrictions) {
		updated.Restrictions = merged
		changed = true
	}
	if merged := mergeLists(updated.Conditions, extracted.Conditions); len(merged) != len(updated.Conditions) {
		updated.Conditions = merged
		changed = true
	}
	if !changed {
		return nil
	}

	if stored == nil {
		return c.store.CreatePatientProfile(ctx, &updated)
	}
	return c.store.UpdatePatientProfile(ctx, &updated)
}

func (c *ChatService) confirmReminder(ctx context.Context, userID uuid.UUID, data map[string]any) (*ConfirmResult, error) {
	reminder := &storage.Reminder{
		UserID:    userID,
		Title:     stringField(data, "title", "Reminder"),
		Message:   stringField(data, "message", ""),
		Frequency: stringField(data, "frequency", "daily"),
		Times:     splitTimes(stringField(data, "time", "09:00")),
		IsActive:  true,
	}
	if err := c.store.CreateReminder(ctx, reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	return &ConfirmResult{
		Type: ActionCreateReminder,
		Reminder: &ReminderSummary{
			ID:        reminder.ID,
			Title:     reminder.Title,
			Frequency: reminder.Frequency,
			Times:     reminder.Times,
		},
	}, nil
}

func (c *ChatService) confirmFindPractitioner(ctx context.Context, data map[string]any) (*ConfirmResult, error) {
	specialization := stringField(data, "specialization", "")
	practitioners, err := c.store.ListPractitioners(ctx, specialization, maxPractitions, 0)
	if err != nil {
		return nil, fmt.Errorf("list practitioners: %w", err)
	}

	result := &ConfirmResult{
		Type:          ActionFindPractitioner,
		Practitioners: make([]PractitionerSummary, 0, len(practitioners)),
	}
	for _, p := range practitioners {
		summary := PractitionerSummary{
			ID:              p.ID,
			Specialization:  p.Specialization,
			YearsExperience: p.YearsExperience,
		}
		if user, err := c.store.GetUser(ctx, p.UserID); err == nil {
			summary.FullName = user.FullName
		}
		result.Practitioners = append(result.Practitioners, summary)
	}
	return result, nil
}

// profileFromStorage converts the stored patient profile to the transient
// orchestrator shape. Age is derived from the date of birth.
func profileFromStorage(p *storage.PatientProfile, now time.Time) Profile {
	if p == nil {
		return Profile{}
	}
	profile := Profile{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		DietaryGoal:   p.DietaryGoal,
		FitnessGoal:   p.FitnessGoal,
		DaysAvailable: p.DaysAvailable,
		Equipment:     p.Equipment,
		Restrictions:  p.Restrictions,
		Conditions:    p.Conditions,
	}
	if p.DateOfBirth != nil {
		profile.Age = ageAt(*p.DateOfBirth, now)
	}
	return profile
}

func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func mergeLists(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := append([]string(nil), existing...)
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}
	for _, v := range incoming {
		if !seen[strings.ToLower(v)] {
			merged = append(merged, v)
			seen[strings.ToLower(v)] = true
		}
	}
	return merged
}

func stringField(data map[string]any, key, fallback string) string {
	if v, ok := data[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitTimes(raw string) []string {
	parts := strings.Split(raw, ",")
	times := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			times = append(times, trimmed)
		}
	}
	return times
}

func truncateTitle(message string) string {
	runes := []rune(message)
	if len(runes) <= titleMaxRunes {
		return message
	}
	return string(runes[:titleMaxRunes])
}
