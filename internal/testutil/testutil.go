// Package testutil provides shared test helpers for setting up GTD vaults.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peerjakobsen/md-gtd-mcp/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// WriteFile writes a vault file, creating parent directories as needed.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// SeedVault writes a small but representative GTD vault: an inbox with raw
// captures, an action list with tagged tasks, a project register, and one
// context view.
func SeedVault(t *testing.T, root string) {
	t.Helper()

	WriteFile(t, root, "gtd/inbox.md", `---
status: active
---

# Inbox

- [ ] Call dentist about appointment
- [ ] Research vacation spots
`)

	WriteFile(t, root, "gtd/next-actions.md", `---
status: active
---

# Next Actions

- [ ] Email Sarah about Q3 report @computer [[Q3 Review]] #task 📅2025-02-03 ⏱️10
- [x] Book flights @computer #task ✅2025-01-20
- [ ] A checkbox line without the tag is prose here
`)

	WriteFile(t, root, "gtd/projects.md", `---
status: active
---

# Projects

## Q3 Review

Outcome: quarterly report delivered. See [[next-actions]] and
[reference](https://example.com/q3).
`)

	WriteFile(t, root, "gtd/contexts/@calls.md", `---
context: calls
---

# 📞 Calls Context
`)
}
