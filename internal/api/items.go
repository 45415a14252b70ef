package api

import (
	"net/http"

	"github.com/anzeg/najdeno/internal/board"
	"github.com/anzeg/najdeno/internal/model"
)

// ItemsHandler handles the item lifecycle and list-view endpoints.
type ItemsHandler struct {
	Board *board.Repository
}

// List handles GET /api/items. Query parameters: q, type, category, sort.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.Board.QueryActive(r.Context(), board.Filters{
		Text:     q.Get("q"),
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Categories handles GET /api/items/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Board.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft board.Draft
	if err := decodeJSON(r, &draft); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Board.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Claim handles POST /api/items/{id}/claim.
func (h *ItemsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.Claim(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item claimed"})
}

// Delete handles DELETE /api/items/{id} (move to the bin).
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := GetClaims(r.Context()).Actor()
	if err := h.Board.SoftDelete(r.Context(), r.PathValue("id"), actor); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Restore handles POST /api/items/{id}/restore.
func (h *ItemsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	actor := GetClaims(r.Context()).Actor()
	if err := h.Board.Restore(r.Context(), r.PathValue("id"), actor); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item restored"})
}

// Purge handles DELETE /api/items/{id}/purge.
func (h *ItemsHandler) Purge(w http.ResponseWriter, r *http.Request) {
	actor := GetClaims(r.Context()).Actor()
	if err := h.Board.Purge(r.Context(), r.PathValue("id"), actor); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item purged"})
}

// Clear handles POST /api/items/clear. Confirmation happens in the client.
func (h *ItemsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.ClearAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "board cleared"})
}

// Claimed handles GET /api/items/claimed.
func (h *ItemsHandler) Claimed(w http.ResponseWriter, r *http.Request) {
	items, err := h.Board.List(r.Context(), model.CollectionClaimed)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Deleted handles GET /api/items/deleted.
func (h *ItemsHandler) Deleted(w http.ResponseWriter, r *http.Request) {
	items, err := h.Board.List(r.Context(), model.CollectionDeleted)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.Board.Image(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
