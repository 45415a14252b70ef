package api

import (
	"database/sql"
	"net/http"

	"github.com/anzeg/najdeno/internal/auth"
	"github.com/anzeg/najdeno/internal/board"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	repo := board.New(db)
	identity := &auth.Identity{DB: db, Secret: jwtSecret}

	authHandler := &AuthHandler{Identity: identity}
	itemsHandler := &ItemsHandler{Board: repo}
	exportHandler := &ExportHandler{Board: repo}
	settingsHandler := &SettingsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Identity.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Reporting and browsing need no session.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/categories", itemsHandler.Categories)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("POST /api/items/{id}/claim", itemsHandler.Claim)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)
	mux.HandleFunc("POST /api/items/clear", itemsHandler.Clear)

	// Destructive lifecycle operations: the repository itself re-checks
	// the actor's role, the middleware only establishes the session.
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("POST /api/items/{id}/restore", authMW(http.HandlerFunc(itemsHandler.Restore)))
	mux.Handle("DELETE /api/items/{id}/purge", authMW(http.HandlerFunc(itemsHandler.Purge)))

	// Inventory and bin views (admin only).
	mux.Handle("GET /api/items/claimed", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.Claimed))))
	mux.Handle("GET /api/items/deleted", authMW(RequireAdmin(http.HandlerFunc(itemsHandler.Deleted))))

	// Backup and restore.
	mux.HandleFunc("GET /api/export", exportHandler.Export)
	mux.Handle("POST /api/import", authMW(http.HandlerFunc(exportHandler.Import)))

	// UI preferences.
	mux.HandleFunc("GET /api/settings/theme", settingsHandler.GetTheme)
	mux.HandleFunc("PUT /api/settings/theme", settingsHandler.SetTheme)

	return mux
}
