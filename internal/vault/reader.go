package vault

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peerjakobsen/md-gtd-mcp/internal/apperr"
	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
	"github.com/peerjakobsen/md-gtd-mcp/internal/parser"
	"github.com/peerjakobsen/md-gtd-mcp/internal/storage"
)

// ReadError records a single file that could not be read during a batch
// operation. Batch reads fail open: one bad file never hides the rest of the
// vault.
type ReadError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Reader reads GTD files from a vault. Every operation is a pure function of
// current file-system state; no state is cached between calls.
type Reader struct {
	store  *storage.FS
	layout Layout
}

// NewReader creates a Reader for the vault at root.
func NewReader(root string, layout Layout) (*Reader, error) {
	store, err := storage.NewFS(root)
	if err != nil {
		return nil, err
	}
	return &Reader{store: store, layout: layout}, nil
}

// ReadFile reads and parses a single vault file. The traversal check runs
// before any file-system access; a path with ../ segments fails with
// apperr.ErrInvalidPath without touching disk, and a missing file or vault
// root fails with apperr.ErrNotFound.
func (r *Reader) ReadFile(relPath string) (*models.GTDFile, error) {
	data, err := r.store.Read(relPath)
	if err != nil {
		return nil, err
	}
	return parser.ParseFile(string(data), path.Clean(filepath.ToSlash(relPath))), nil
}

// ReadAll reads every recognized GTD file in the vault: the five standard
// files plus contexts/*.md. A non-empty typeFilter restricts the result to
// files of that type. Results are sorted by relative path regardless of read
// order; per-file failures are collected, not propagated.
func (r *Reader) ReadAll(typeFilter models.FileType) ([]*models.GTDFile, []ReadError, error) {
	if _, err := os.Stat(r.store.Root()); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("vault: root %s: %w", r.store.Root(), apperr.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("vault: stat root: %w", err)
	}

	candidates, err := r.listCandidates()
	if err != nil {
		return nil, nil, err
	}

	var (
		files    []*models.GTDFile
		readErrs []ReadError
	)
	for _, rel := range candidates {
		f, err := r.ReadFile(rel)
		if err != nil {
			readErrs = append(readErrs, ReadError{Path: rel, Message: err.Error()})
			continue
		}
		if typeFilter != "" && f.FileType != typeFilter {
			continue
		}
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, readErrs, nil
}

// listCandidates enumerates the recognized files present on disk.
func (r *Reader) listCandidates() ([]string, error) {
	var out []string

	for _, rel := range r.layout.StandardFiles() {
		ok, err := r.store.Exists(rel)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, rel)
		}
	}

	contextsAbs := filepath.Join(r.store.Root(), filepath.FromSlash(r.layout.ContextsDir()))
	entries, err := os.ReadDir(contextsAbs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return nil, fmt.Errorf("vault: list contexts: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		out = append(out, path.Join(r.layout.ContextsDir(), e.Name()))
	}

	return out, nil
}
