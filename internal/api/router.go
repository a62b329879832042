package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret, uploadsDir string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db, UploadsDir: uploadsDir}
	requestsHandler := &RequestsHandler{DB: db}
	messagesHandler := &MessagesHandler{DB: db}
	ratesHandler := &RatesHandler{DB: db}
	feedHandler := &FeedHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret)
	optionalMW := OptionalAuthMiddleware(jwtSecret)

	// Accounts and sessions.
	mux.HandleFunc("POST /api/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/users/{id}", usersHandler.Get)
	mux.Handle("GET /api/me", authMW(http.HandlerFunc(usersHandler.Me)))
	mux.Handle("PUT /api/me", authMW(http.HandlerFunc(usersHandler.UpdateMe)))

	// Listings. Creation is deliberately unauthenticated.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)

	// Pickup requests.
	mux.HandleFunc("GET /api/requests", requestsHandler.List)
	mux.HandleFunc("POST /api/requests", requestsHandler.Create)

	// Messages. Sender identity may come from the token or the body.
	mux.HandleFunc("GET /api/messages", messagesHandler.List)
	mux.Handle("POST /api/messages", optionalMW(http.HandlerFunc(messagesHandler.Create)))

	// Reference data and derived views.
	mux.HandleFunc("GET /api/rates", ratesHandler.List)
	mux.HandleFunc("GET /api/feed", feedHandler.List)
	mux.HandleFunc("POST /api/chatbot", ChatbotHandler)

	// Unmatched API routes get a JSON 404 instead of the default page.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "Not found")
	})

	return mux
}
