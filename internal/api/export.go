package api

import (
	"net/http"

	"github.com/anzeg/najdeno/internal/board"
)

// ExportHandler handles backup and restore endpoints.
type ExportHandler struct {
	Board *board.Repository
}

// Export handles GET /api/export. It is deliberately public: after a
// failed write the user must always be able to get their data out.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	dump, err := h.Board.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="najdeno-export.json"`)
	jsonResponse(w, http.StatusOK, dump)
}

// Import handles POST /api/import.
func (h *ExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var dump board.Dump
	if err := decodeJSON(r, &dump); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := GetClaims(r.Context()).Actor()
	imported, err := h.Board.Import(r.Context(), &dump, actor)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"imported": imported})
}
