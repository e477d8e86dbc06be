package vault

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/peerjakobsen/md-gtd-mcp/internal/storage"
)

// Starter templates for the standard GTD files.
var fileTemplates = map[string]string{
	"inbox.md": `---
status: active
---

# Inbox

## Quick Capture

Capture everything here first, then process and organize.

`,
	"projects.md": `---
status: active
---

# Projects

## Active Projects

Projects with defined outcomes that require multiple steps.

`,
	"next-actions.md": `---
status: active
---

# Next Actions

## By Context

Context-organized actionable tasks that can be done immediately.

`,
	"waiting-for.md": `---
status: active
---

# Waiting For

## Delegated Items

Items waiting for someone else's response or action.

`,
	"someday-maybe.md": `---
status: someday
---

# Someday / Maybe

## Future Possibilities

Items that might be done someday but are not committed to now.

`,
}

// Starter context files created under contexts/.
var contextFiles = map[string]struct{ title, context string }{
	"@calls.md":    {"📞 Calls Context", "calls"},
	"@computer.md": {"💻 Computer Context", "computer"},
	"@errands.md":  {"🚗 Errands Context", "errands"},
	"@home.md":     {"🏠 Home Context", "home"},
}

func contextFileContent(title, context string) string {
	return fmt.Sprintf(`---
context: %s
---

# %s

`+"```"+`tasks
not done
description includes @%s
sort by due
`+"```"+`
`, context, title, context)
}

// SetupResult reports which vault entries Setup created and which already
// existed.
type SetupResult struct {
	VaultPath      string   `json:"vault_path"`
	Created        []string `json:"created"`
	AlreadyExisted []string `json:"already_existed"`
}

// Setup creates the GTD folder structure and template files under root.
// It only ever creates what is missing; existing files and folders are never
// overwritten.
func Setup(root string, layout Layout) (*SetupResult, error) {
	store, err := storage.NewFS(root)
	if err != nil {
		return nil, err
	}

	res := &SetupResult{
		VaultPath:      store.Root(),
		Created:        []string{},
		AlreadyExisted: []string{},
	}

	if _, err := os.Stat(store.Root()); os.IsNotExist(err) {
		if err := os.MkdirAll(store.Root(), 0o755); err != nil {
			return nil, fmt.Errorf("vault: create root: %w", err)
		}
		res.Created = append(res.Created, store.Root())
	}

	for _, dir := range []string{layout.folder(), layout.ContextsDir()} {
		abs := filepath.Join(store.Root(), filepath.FromSlash(dir))
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return nil, fmt.Errorf("vault: create %s: %w", dir, err)
			}
			res.Created = append(res.Created, dir+"/")
		} else {
			res.AlreadyExisted = append(res.AlreadyExisted, dir+"/")
		}
	}

	for _, name := range []string{
		"inbox.md", "projects.md", "next-actions.md", "waiting-for.md", "someday-maybe.md",
	} {
		rel := path.Join(layout.folder(), name)
		if err := createIfMissing(store, rel, fileTemplates[name], res); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(contextFiles))
	for name := range contextFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cfg := contextFiles[name]
		rel := path.Join(layout.ContextsDir(), name)
		content := contextFileContent(cfg.title, cfg.context)
		if err := createIfMissing(store, rel, content, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func createIfMissing(store *storage.FS, rel, content string, res *SetupResult) error {
	ok, err := store.Exists(rel)
	if err != nil {
		return err
	}
	if ok {
		res.AlreadyExisted = append(res.AlreadyExisted, rel)
		return nil
	}
	if err := store.Write(rel, []byte(content)); err != nil {
		return err
	}
	res.Created = append(res.Created, rel)
	return nil
}
