package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peerjakobsen/md-gtd-mcp/internal/apperr"
	"github.com/peerjakobsen/md-gtd-mcp/internal/storage"
)

// Capture appends a raw item to the vault's inbox file as an unprocessed
// checkbox line. Per the capture phase, no marker, context, or category is
// attached; triage happens later. The inbox file is created from its template
// when missing. Returns the vault-relative inbox path.
func Capture(root string, layout Layout, itemText string) (string, error) {
	clean := strings.TrimSpace(itemText)
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\n", " ")
	if clean == "" {
		return "", fmt.Errorf("vault: capture: item text is empty")
	}

	store, err := storage.NewFS(root)
	if err != nil {
		return "", err
	}

	rel := layout.InboxPath()
	entry := "- [ ] " + clean + "\n"

	existing, err := store.Read(rel)
	switch {
	case err == nil:
		content := string(existing)
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += entry
		if err := store.Write(rel, []byte(content)); err != nil {
			return "", err
		}
	case errors.Is(err, apperr.ErrNotFound):
		content := fileTemplates["inbox.md"] + entry
		if err := store.Write(rel, []byte(content)); err != nil {
			return "", err
		}
	default:
		return "", err
	}

	return rel, nil
}
