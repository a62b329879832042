package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// RatesHandler serves the read-only material rate table.
type RatesHandler struct {
	DB *sql.DB
}

// List handles GET /api/rates. Unlike the other list endpoints this one
// returns the bare array, which the client depends on.
func (h *RatesHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := store.ListRates(r.Context(), h.DB)
	if err != nil {
		slog.Error("listing rates failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if rates == nil {
		rates = []model.Rate{}
	}
	jsonResponse(w, http.StatusOK, rates)
}
