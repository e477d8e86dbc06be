package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peerjakobsen/md-gtd-mcp/internal/apperr"
	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
	"github.com/peerjakobsen/md-gtd-mcp/internal/resource"
	"github.com/peerjakobsen/md-gtd-mcp/internal/vault"
)

// Handler holds API route handlers. Read endpoints delegate to the resource
// handler, so HTTP responses match the gtd:// resources byte for byte.
type Handler struct {
	res       *resource.Handler
	vaultPath string
	layout    vault.Layout
}

// NewHandler creates a new Handler serving the vault at vaultPath.
func NewHandler(vaultPath string, layout vault.Layout) *Handler {
	return &Handler{
		res:       &resource.Handler{Layout: layout},
		vaultPath: vaultPath,
		layout:    layout,
	}
}

// filePath extracts the vault-relative file path from the URL (everything
// after /api/file/). Supports encoded slashes (e.g. gtd%2Finbox.md).
func filePath(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListFiles handles GET /api/files and GET /api/files/{type}.
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	payload, err := h.res.Files(h.vaultPath, models.FileType(chi.URLParam(r, "type")))
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, payload)
}

// GetFile handles GET /api/file/*.
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	path := filePath(r)
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("path is required"))
		return
	}
	payload, err := h.res.File(h.vaultPath, path)
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, payload)
}

// ReadContent handles GET /api/content and GET /api/content/{type}.
func (h *Handler) ReadContent(w http.ResponseWriter, r *http.Request) {
	payload, err := h.res.Content(h.vaultPath, models.FileType(chi.URLParam(r, "type")))
	if err != nil {
		h.writeReadError(w, err)
		return
	}
	writeRawJSON(w, http.StatusOK, payload)
}

// Capture handles POST /api/capture.
func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("text is required"))
		return
	}
	rel, err := vault.Capture(h.vaultPath, h.layout, req.Text)
	if err != nil {
		slog.Error("capture failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"path": rel})
}

// Setup handles POST /api/setup.
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	res, err := vault.Setup(h.vaultPath, h.layout)
	if err != nil {
		slog.Error("vault setup failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeReadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case errors.Is(err, apperr.ErrInvalidPath):
		writeJSON(w, http.StatusBadRequest, errorBody("invalid path"))
	default:
		slog.Error("vault read failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
