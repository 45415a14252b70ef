package api

import (
	"database/sql"
	"net/http"

	"github.com/anzeg/najdeno/internal/store"
)

// SettingsHandler handles the persisted UI preferences.
type SettingsHandler struct {
	DB *sql.DB
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET /api/settings/theme.
func (h *SettingsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := store.GetTheme(r.Context(), h.DB)
	if err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"theme": theme})
}

// SetTheme handles PUT /api/settings/theme.
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Theme != store.ThemeDark && req.Theme != store.ThemeLight {
		jsonError(w, http.StatusBadRequest, "theme must be 'dark' or 'light'")
		return
	}

	if err := store.SetTheme(r.Context(), h.DB, req.Theme); err != nil {
		writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"theme": req.Theme})
}
