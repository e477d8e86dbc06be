package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peerjakobsen/md-gtd-mcp/internal/vault"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(vaultPath string, layout vault.Layout, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(vaultPath, layout)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Read surface; mirrors the gtd:// resource variants.
	r.Get("/files", h.ListFiles)
	r.Get("/files/{type}", h.ListFiles)
	r.Get("/file/*", h.GetFile)
	r.Get("/content", h.ReadContent)
	r.Get("/content/{type}", h.ReadContent)

	// Write surface.
	r.Post("/capture", h.Capture)
	r.Post("/setup", h.Setup)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
