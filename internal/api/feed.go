package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// FeedHandler serves the merged community feed.
type FeedHandler struct {
	DB *sql.DB
}

type listFeedResponse struct {
	OK   bool              `json:"ok"`
	Feed []model.FeedEntry `json:"feed"`
}

// List handles GET /api/feed.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	feed, err := store.ListFeed(r.Context(), h.DB)
	if err != nil {
		slog.Error("listing feed failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if feed == nil {
		feed = []model.FeedEntry{}
	}
	jsonResponse(w, http.StatusOK, listFeedResponse{OK: true, Feed: feed})
}
