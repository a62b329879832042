package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/jlcruzar/siklo/internal/auth"
	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type signupRequest struct {
	UserType string `json:"user_type"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

type sessionResponse struct {
	OK    bool        `json:"ok"`
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles POST /api/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	// Presence only: user_type is not checked against the known values,
	// any string is stored as-is.
	if req.UserType == "" || req.Name == "" || req.Email == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	existing, err := store.GetUserByEmail(r.Context(), h.DB, req.Email)
	if err != nil {
		slog.Error("signup lookup failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if existing != nil {
		jsonError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hashing password failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	user, err := store.CreateUser(r.Context(), h.DB, req.UserType, req.Name, req.Email, req.Phone, req.Address, string(hash))
	if err != nil {
		slog.Error("creating user failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID)
	if err != nil {
		slog.Error("generating token failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user signed up", "user", user.Name, "type", user.UserType)
	jsonResponse(w, http.StatusOK, sessionResponse{OK: true, User: user, Token: token})
}

// Login handles POST /api/login. Unknown identifiers and wrong
// passwords produce the same response so the two are
// indistinguishable to a caller.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	if req.EmailOrPhone == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user, err := store.GetUserByIdentifier(r.Context(), h.DB, req.EmailOrPhone)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if user == nil {
		jsonError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		slog.Warn("login failed", "identifier", req.EmailOrPhone, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID)
	if err != nil {
		slog.Error("generating token failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	slog.Info("user logged in", "user", user.Name)
	jsonResponse(w, http.StatusOK, sessionResponse{OK: true, User: user, Token: token})
}
