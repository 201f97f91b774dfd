package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func newTestChat(gen *stubGenerator) (*ChatService, *memory.Store) {
	store := memory.New()
	return NewChatService(newTestService(gen), store), store
}

func chatRequest(h http.HandlerFunc, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/agent/chat", bytes.NewBufferString(body))
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestChatPersistsConversation(t *testing.T) {
	gen := &stubGenerator{text: "Warm water in the morning helps digestion."}
	chat, store := newTestChat(gen)
	ctx := context.Background()
	userID := uuid.New()

	first, err := chat.Chat(ctx, userID, ChatRequest{Message: "Any morning routine tips?"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ConversationID == "" {
		t.Fatal("no conversation id assigned")
	}

	// Second turn continues the same conversation.
	second, err := chat.Chat(ctx, userID, ChatRequest{
		Message:        "What about evenings?",
		ConversationID: first.ConversationID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if second.ConversationID != first.ConversationID {
		t.Errorf("conversation id changed: %s -> %s", first.ConversationID, second.ConversationID)
	}

	convID := uuid.MustParse(first.ConversationID)
	messages, err := store.ListMessages(ctx, convID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 4 {
		t.Fatalf("stored %d messages, want 4", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Errorf("roles = %q, %q", messages[0].Role, messages[1].Role)
	}
	if messages[1].ResponseType != TypeConversation {
		t.Errorf("response type = %q, want conversation", messages[1].ResponseType)
	}

	conv, err := store.GetConversation(ctx, convID)
	if err != nil {
		t.Fatal(err)
	}
	if conv.Title != "Any morning routine tips?" {
		t.Errorf("title = %q", conv.Title)
	}
}

func TestChatRejectsForeignConversation(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, _ := newTestChat(gen)
	ctx := context.Background()

	owner := uuid.New()
	resp, err := chat.Chat(ctx, owner, ChatRequest{Message: "hello there"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = chat.Chat(ctx, uuid.New(), ChatRequest{
		Message:        "let me in",
		ConversationID: resp.ConversationID,
	})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestChatPersistsExtractedFacts(t *testing.T) {
	gen := &stubGenerator{text: "Noted."}
	chat, store := newTestChat(gen)
	ctx := context.Background()
	userID := uuid.New()

	_, err := chat.Chat(ctx, userID, ChatRequest{
		Message: "I weigh 80 kg and I am 175 cm tall",
	})
	if err != nil {
		t.Fatal(err)
	}

	profile, err := store.GetPatientProfile(ctx, userID)
	if err != nil {
		t.Fatalf("profile was not created: %v", err)
	}
	if profile.WeightKg != 80 {
		t.Errorf("weight = %v, want 80", profile.WeightKg)
	}
	if profile.HeightCm != 175 {
		t.Errorf("height = %v, want 175", profile.HeightCm)
	}
}

func TestChatHandlerValidation(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, _ := newTestChat(gen)
	h := NewHandler(chat)
	userID := uuid.New()

	rec := chatRequest(h.HandleChat, userID, `{"message":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message status = %d, want 400", rec.Code)
	}

	rec = chatRequest(h.HandleChat, userID, `{"message":"hi","conversation_id":"`+uuid.NewString()+`"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown conversation status = %d, want 404", rec.Code)
	}
}

func TestConfirmReminderAction(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, store := newTestChat(gen)
	ctx := context.Background()
	userID := uuid.New()

	result, err := chat.ConfirmAction(ctx, userID, ConfirmActionRequest{
		Type: ActionCreateReminder,
		Data: map[string]any{
			"title":     "Drink Water",
			"message":   "Time to hydrate! Drink a glass of water.",
			"frequency": "daily",
			"time":      "09:00,11:00,13:00",
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Reminder == nil {
		t.Fatal("no reminder in result")
	}
	if len(result.Reminder.Times) != 3 {
		t.Errorf("times = %v, want 3 entries", result.Reminder.Times)
	}

	stored, err := store.GetReminder(ctx, result.Reminder.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsActive {
		t.Error("reminder not active")
	}
	if stored.UserID != userID {
		t.Error("reminder owner mismatch")
	}
}

func TestConfirmFindPractitionerAction(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, store := newTestChat(gen)
	ctx := context.Background()

	practitionerUser := &storage.User{Email: "vaidya@clinic.example", FullName: "Dr. Asha Rao", Role: "practitioner"}
	if err := store.CreateUser(ctx, practitionerUser); err != nil {
		t.Fatal(err)
	}
	if err := store.CreatePractitioner(ctx, &storage.Practitioner{
		UserID: practitionerUser.ID, Specialization: "Panchakarma", Available: true,
	}); err != nil {
		t.Fatal(err)
	}

	result, err := chat.ConfirmAction(ctx, uuid.New(), ConfirmActionRequest{
		Type: ActionFindPractitioner,
		Data: map[string]any{"specialization": "Panchakarma"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Practitioners) != 1 {
		t.Fatalf("practitioners = %d, want 1", len(result.Practitioners))
	}
	if result.Practitioners[0].FullName != "Dr. Asha Rao" {
		t.Errorf("full name = %q", result.Practitioners[0].FullName)
	}
}

func TestConfirmUnknownAction(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, _ := newTestChat(gen)
	h := NewHandler(chat)

	rec := chatRequest(h.HandleConfirmAction, uuid.New(), `{"type":"launch_rocket","data":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListMessagesEndpoint(t *testing.T) {
	gen := &stubGenerator{text: "ok"}
	chat, _ := newTestChat(gen)
	h := NewHandler(chat)
	ctx := context.Background()
	userID := uuid.New()

	resp, err := chat.Chat(ctx, userID, ChatRequest{Message: "hello"})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/agent/conversations/"+resp.ConversationID+"/messages", nil)
	req.SetPathValue("id", resp.ConversationID)
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h.HandleListMessages(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Messages) != 2 {
		t.Errorf("messages = %d, want 2", len(body.Messages))
	}
}
