package dialog

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the engine over the stateless request/response channel.
// Each turn loads the conversation, steps it once and stores it back.
type Handler struct {
	engine   *Engine
	sessions SessionStore
}

func NewHandler(engine *Engine, sessions SessionStore) *Handler {
	return &Handler{engine: engine, sessions: sessions}
}

// --------------------------------------------------
// START CONVERSATION
// --------------------------------------------------

func (h *Handler) StartConversation(c *gin.Context) {
	var req struct {
		UserID  int `json:"user_id"`
		StoreID int `json:"store_id"`
	}

	if err := c.BindJSON(&req); err != nil || req.UserID == 0 || req.StoreID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and store_id are required."})
		return
	}

	state, reply, err := h.engine.Start(c.Request.Context(), req.UserID, req.StoreID)
	if err != nil {
		log.Printf("dialog: start failed for user %d store %d: %v", req.UserID, req.StoreID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":             reply.Status,
			"assistant_response": reply.Message,
		})
		return
	}

	h.sessions.Put(state.ID, state)

	c.JSON(http.StatusOK, gin.H{
		"status":             "success",
		"session_id":         state.ID,
		"assistant_response": reply.Message,
	})
}

// --------------------------------------------------
// CHAT TURN
// --------------------------------------------------

func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		SessionID string  `json:"session_id"`
		UserInput *string `json:"user_input"`
	}

	if err := c.BindJSON(&req); err != nil || req.SessionID == "" || req.UserInput == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and user_input are required."})
		return
	}

	state, ok := h.sessions.Get(req.SessionID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired session_id."})
		return
	}

	reply, err := h.engine.Step(c.Request.Context(), state, *req.UserInput)
	if err != nil {
		// The turn aborted; the session stays live so the user can retry.
		log.Printf("dialog: turn failed for session %s: %v", req.SessionID, err)
		c.JSON(http.StatusInternalServerError, h.render(req.SessionID, reply))
		return
	}

	switch state.Status {
	case StatusConfirmed, StatusCancelled, StatusDeferred:
		h.sessions.Delete(req.SessionID)
	default:
		h.sessions.Put(req.SessionID, state)
	}

	c.JSON(http.StatusOK, h.render(req.SessionID, reply))
}

func (h *Handler) render(sessionID string, reply *Reply) gin.H {
	body := gin.H{
		"status":             reply.Status,
		"assistant_response": reply.Message,
		"session_id":         sessionID,
	}
	if len(reply.Options) > 0 {
		body["options"] = reply.Options
	}
	if len(reply.Menu) > 0 {
		body["menu_items"] = reply.Menu
	}
	if reply.Summary != nil {
		body["summary"] = reply.Summary
	}
	return body
}
