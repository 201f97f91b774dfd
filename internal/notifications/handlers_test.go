package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayursutra/backend/internal/auth"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/ayursutra/backend/internal/storage/memory"
	"github.com/google/uuid"
)

func seed(t *testing.T, store *memory.Store, userID uuid.UUID, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		notification := &storage.Notification{
			UserID: userID, Kind: "reminder", Title: fmt.Sprintf("note %d", i),
		}
		if err := store.CreateNotification(context.Background(), notification); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, notification.ID)
	}
	return ids
}

func do(h http.HandlerFunc, method, target string, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req = req.WithContext(auth.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestListAndMarkRead(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)
	userID := uuid.New()
	ids := seed(t, store, userID, 3)

	rec := do(h.HandleList, http.MethodGet, "/v1/notifications", userID, "")
	var resp ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Notifications) != 3 || resp.UnreadCount != 3 {
		t.Fatalf("got %d notifications, unread %d", len(resp.Notifications), resp.UnreadCount)
	}

	body := fmt.Sprintf(`{"ids":["%s"]}`, ids[0])
	rec = do(h.HandleMarkRead, http.MethodPost, "/v1/notifications/read", userID, body)
	var marked MarkReadResponse
	json.Unmarshal(rec.Body.Bytes(), &marked)
	if marked.Updated != 1 {
		t.Errorf("updated = %d, want 1", marked.Updated)
	}

	rec = do(h.HandleList, http.MethodGet, "/v1/notifications?unread=true", userID, "")
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Notifications) != 2 || resp.UnreadCount != 2 {
		t.Errorf("after mark: %d unread listed, count %d", len(resp.Notifications), resp.UnreadCount)
	}
}

func TestMarkReadIgnoresForeignIDs(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)
	owner := uuid.New()
	ids := seed(t, store, owner, 1)

	body := fmt.Sprintf(`{"ids":["%s"]}`, ids[0])
	rec := do(h.HandleMarkRead, http.MethodPost, "/v1/notifications/read", uuid.New(), body)
	var marked MarkReadResponse
	json.Unmarshal(rec.Body.Bytes(), &marked)
	if marked.Updated != 0 {
		t.Errorf("updated = %d, foreign ids must not count", marked.Updated)
	}
}

func TestMarkAllRead(t *testing.T) {
	store := memory.New()
	h := NewHandler(store)
	userID := uuid.New()
	seed(t, store, userID, 4)

	rec := do(h.HandleMarkRead, http.MethodPost, "/v1/notifications/read", userID, `{"all":true}`)
	var marked MarkReadResponse
	json.Unmarshal(rec.Body.Bytes(), &marked)
	if marked.Updated != 4 {
		t.Errorf("updated = %d, want 4", marked.Updated)
	}

	rec = do(h.HandleMarkRead, http.MethodPost, "/v1/notifications/read", userID, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty request status = %d, want 400", rec.Code)
	}
}
