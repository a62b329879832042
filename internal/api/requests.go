package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// RequestsHandler handles pickup request endpoints.
type RequestsHandler struct {
	DB *sql.DB
}

type createRequestRequest struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Items   string `json:"items"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

type createRequestResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type listRequestsResponse struct {
	OK       bool            `json:"ok"`
	Requests []model.Request `json:"requests"`
}

// List handles GET /api/requests, optionally filtered by ?userId=.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := store.ListRequests(r.Context(), h.DB, r.URL.Query().Get("userId"))
	if err != nil {
		slog.Error("listing requests failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if requests == nil {
		requests = []model.Request{}
	}
	jsonResponse(w, http.StatusOK, listRequestsResponse{OK: true, Requests: requests})
}

// Create handles POST /api/requests.
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	var userID *string
	if req.UserID != "" {
		userID = &req.UserID
	}

	created, err := store.CreateRequest(r.Context(), h.DB, userID, req.Type, req.Items, req.Address, req.Date)
	if err != nil {
		slog.Error("creating request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	jsonResponse(w, http.StatusOK, createRequestResponse{OK: true, ID: created.ID})
}
