package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// UsersHandler handles profile endpoints.
type UsersHandler struct {
	DB *sql.DB
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type userResponse struct {
	OK   bool        `json:"ok"`
	User *model.User `json:"user"`
}

// Get handles GET /api/users/{id}. Returns the bare sanitized user,
// without the envelope the session endpoints use.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := store.GetUser(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("getting user failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "Not found")
		return
	}
	jsonResponse(w, http.StatusOK, user)
}

// Me handles GET /api/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := store.GetUser(r.Context(), h.DB, UserID(r.Context()))
	if err != nil {
		slog.Error("getting current user failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "Not found")
		return
	}
	jsonResponse(w, http.StatusOK, userResponse{OK: true, User: user})
}

// UpdateMe handles PUT /api/me. Only the caller's own row is mutated,
// and only name, phone and address. Omitted fields are written as empty
// strings, matching the existing client's expectations.
func (h *UsersHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	userID := UserID(r.Context())
	if err := store.UpdateUserProfile(r.Context(), h.DB, userID, req.Name, req.Phone, req.Address); err != nil {
		slog.Error("updating profile failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user, err := store.GetUser(r.Context(), h.DB, userID)
	if err != nil {
		slog.Error("getting updated user failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "Not found")
		return
	}
	jsonResponse(w, http.StatusOK, userResponse{OK: true, User: user})
}
