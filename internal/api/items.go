package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jlcruzar/siklo/internal/media"
	"github.com/jlcruzar/siklo/internal/model"
	"github.com/jlcruzar/siklo/internal/store"
)

// ItemsHandler handles listing endpoints.
type ItemsHandler struct {
	DB         *sql.DB
	UploadsDir string
}

type createItemResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type listItemsResponse struct {
	OK    bool         `json:"ok"`
	Items []model.Item `json:"items"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		slog.Error("listing items failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, listItemsResponse{OK: true, Items: items})
}

// Create handles POST /api/items: multipart form fields plus an
// optional image part. A thumbnail failure degrades to a listing
// without thumb_path, it never fails the create.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	title := r.FormValue("title")
	if title == "" {
		jsonError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	var sellerID *string
	if s := r.FormValue("seller_id"); s != "" {
		sellerID = &s
	}

	var imagePath, thumbPath *string
	file, header, err := r.FormFile("image")
	if err == nil {
		name, err := media.SaveUpload(h.UploadsDir, header.Filename, file)
		file.Close()
		if err != nil {
			slog.Error("storing upload failed", "error", err)
			jsonError(w, http.StatusInternalServerError, "Server error")
			return
		}

		p := "/uploads/" + name
		imagePath = &p

		thumbName, err := media.Thumbnail(h.UploadsDir, name)
		if err != nil {
			// Non-fatal: the listing is created without a thumbnail.
			slog.Error("image processing failed", "file", name, "error", err)
		} else {
			tp := "/uploads/" + thumbName
			thumbPath = &tp
		}
	}

	item, err := store.CreateItem(r.Context(), h.DB, title,
		r.FormValue("description"), r.FormValue("price"), sellerID,
		r.FormValue("category"), imagePath, thumbPath)
	if err != nil {
		slog.Error("creating item failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "Server error")
		return
	}

	jsonResponse(w, http.StatusOK, createItemResponse{OK: true, ID: item.ID})
}
