package dialog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *LRUSessionStore, *recordingCommitter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, _, committer := newTestEngine()
	sessions, err := NewLRUSessionStore(16)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}

	h := NewHandler(engine, sessions)
	r := gin.New()
	r.POST("/api/v1/start-conversation", h.StartConversation)
	r.POST("/api/v1/chat", h.Chat)
	return r, sessions, committer
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, decoded
}

func startSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, body := postJSON(t, r, "/api/v1/start-conversation", gin.H{"user_id": 3, "store_id": 7})
	if w.Code != http.StatusOK {
		t.Fatalf("start returned %d: %s", w.Code, w.Body.String())
	}
	id, _ := body["session_id"].(string)
	if id == "" {
		t.Fatal("start returned no session_id")
	}
	return id
}

func TestStartConversationCreatesSession(t *testing.T) {
	r, sessions, _ := newTestRouter(t)

	id := startSession(t, r)
	state, ok := sessions.Get(id)
	if !ok {
		t.Fatal("session was not stored")
	}
	if state.Status != StatusCollecting {
		t.Errorf("stored status = %s, want %s", state.Status, StatusCollecting)
	}
}

func TestStartConversationRequiresIDs(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w, body := postJSON(t, r, "/api/v1/start-conversation", gin.H{"user_id": 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body["error"] == nil {
		t.Error("expected an error message")
	}
}

func TestChatRejectsUnknownSession(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w, _ := postJSON(t, r, "/api/v1/chat", gin.H{"session_id": "nope", "user_input": "hi"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestChatRequiresUserInputField(t *testing.T) {
	r, _, _ := newTestRouter(t)
	id := startSession(t, r)

	w, _ := postJSON(t, r, "/api/v1/chat", gin.H{"session_id": id})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without user_input, got %d", w.Code)
	}
}

func TestChatEmptyInputReturnsMenu(t *testing.T) {
	r, _, _ := newTestRouter(t)
	id := startSession(t, r)

	w, body := postJSON(t, r, "/api/v1/chat", gin.H{"session_id": id, "user_input": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["status"] != ReplyAwaitingSelection {
		t.Errorf("status = %v, want %s", body["status"], ReplyAwaitingSelection)
	}
	menu, ok := body["menu_items"].([]any)
	if !ok || len(menu) == 0 {
		t.Errorf("expected menu_items, got %v", body["menu_items"])
	}
}

func TestChatOrderFlowEndsSession(t *testing.T) {
	r, sessions, committer := newTestRouter(t)
	id := startSession(t, r)

	w, body := postJSON(t, r, "/api/v1/chat", gin.H{"session_id": id, "user_input": "2 cheese pizza and a coke"})
	if w.Code != http.StatusOK {
		t.Fatalf("order turn returned %d: %s", w.Code, w.Body.String())
	}
	if body["status"] != string(StatusPending) {
		t.Fatalf("status = %v, want %s", body["status"], StatusPending)
	}
	if body["summary"] == nil {
		t.Fatal("expected a summary in the confirmation turn")
	}

	w, body = postJSON(t, r, "/api/v1/chat", gin.H{"session_id": id, "user_input": "yes"})
	if w.Code != http.StatusOK {
		t.Fatalf("confirm turn returned %d: %s", w.Code, w.Body.String())
	}
	if body["status"] != ReplyOrderConfirmed {
		t.Errorf("status = %v, want %s", body["status"], ReplyOrderConfirmed)
	}
	if len(committer.commits) != 2 {
		t.Errorf("expected 2 cart commits, got %d", len(committer.commits))
	}
	if _, ok := sessions.Get(id); ok {
		t.Error("terminal session was not removed from the store")
	}
}
