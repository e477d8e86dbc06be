// Package vault reads and bootstraps GTD vaults: a directory of Markdown
// files holding the inbox, project register, action lists, and context views.
package vault

import "path"

// DefaultFolder is the vault subdirectory holding the GTD files.
const DefaultFolder = "gtd"

// Layout describes where the GTD files live inside a vault.
type Layout struct {
	Folder string
}

func (l Layout) folder() string {
	if l.Folder == "" {
		return DefaultFolder
	}
	return l.Folder
}

// InboxPath returns the vault-relative path of the inbox file.
func (l Layout) InboxPath() string {
	return path.Join(l.folder(), "inbox.md")
}

// ContextsDir returns the vault-relative path of the contexts folder.
func (l Layout) ContextsDir() string {
	return path.Join(l.folder(), "contexts")
}

// StandardFiles returns the vault-relative paths of the five standard GTD
// files (contexts excluded).
func (l Layout) StandardFiles() []string {
	names := []string{
		"inbox.md",
		"projects.md",
		"next-actions.md",
		"waiting-for.md",
		"someday-maybe.md",
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = path.Join(l.folder(), n)
	}
	return out
}
