package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// MessagesHandler handles direct message endpoints.
type MessagesHandler struct {
	DB *sql.DB
}

type createMessageRequest struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Text   string `json:"text"`
}

type createMessageResponse struct {
	OK      bool           `json:"ok"`
	Message *model.Message `json:"message"`
}

type listMessagesResponse struct {
	OK       bool            `json:"ok"`
	Messages []model.Message `json:"messages"`
}

// List handles GET /api/messages, optionally filtered by ?userId= to
// messages sent or received by that user, oldest first.
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := store.ListMessages(r.Context(), h.DB, r.URL.Query().Get("userId"))
	if err != nil {
		slog.Error("listing messages failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if messages == nil {
		messages = []model.Message{}
	}
	jsonResponse(w, http.StatusOK, listMessagesResponse{OK: true, Messages: messages})
}

// Create handles POST /api/messages. The effective sender is the
// authenticated identity when present, falling back to the
// client-supplied from_id, else null. Returns the fresh row including
// the server-assigned timestamp.
func (h *MessagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	var fromID *string
	if id := UserID(r.Context()); id != "" {
		fromID = &id
	} else if req.FromID != "" {
		fromID = &req.FromID
	}

	var toID *string
	if req.ToID != "" {
		toID = &req.ToID
	}

	msg, err := store.CreateMessage(r.Context(), h.DB, fromID, toID, req.Text)
	if err != nil {
		slog.Error("creating message failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	jsonResponse(w, http.StatusOK, createMessageResponse{OK: true, Message: msg})
}
