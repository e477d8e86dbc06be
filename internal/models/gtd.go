// Package models defines the domain types for parsed GTD vault files.
package models

import (
	"path"
	"strings"
	"time"
)

// FileType categorizes a vault file by its role in the GTD workflow.
// The type decides which task grammar applies during extraction.
type FileType string

const (
	FileTypeInbox        FileType = "inbox"
	FileTypeProjects     FileType = "projects"
	FileTypeNextActions  FileType = "next-actions"
	FileTypeWaitingFor   FileType = "waiting-for"
	FileTypeSomedayMaybe FileType = "someday-maybe"
	FileTypeContext      FileType = "context"
	FileTypeUnknown      FileType = "unknown"
)

// DetectFileType maps a vault-relative path to its FileType. It is a pure
// function of the path string: every input maps to exactly one type, with
// FileTypeUnknown as the default.
func DetectFileType(relPath string) FileType {
	p := path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	name := path.Base(p)

	switch name {
	case "inbox.md":
		return FileTypeInbox
	case "projects.md":
		return FileTypeProjects
	case "next-actions.md":
		return FileTypeNextActions
	case "waiting-for.md":
		return FileTypeWaitingFor
	case "someday-maybe.md":
		return FileTypeSomedayMaybe
	}

	if strings.HasPrefix(name, "@") && inContextsDir(p) {
		return FileTypeContext
	}

	return FileTypeUnknown
}

func inContextsDir(p string) bool {
	for _, seg := range strings.Split(path.Dir(p), "/") {
		if seg == "contexts" {
			return true
		}
	}
	return false
}

// Frontmatter holds the YAML metadata block of a GTD file. Recognized
// project-level fields are typed; everything else is preserved in Extra so no
// information is silently dropped. A file without a metadata block still gets
// a Frontmatter value with empty fields and a non-nil Extra map.
type Frontmatter struct {
	Outcome       string         `json:"outcome,omitempty"`
	Status        string         `json:"status,omitempty"`
	Area          string         `json:"area,omitempty"`
	ReviewDate    *time.Time     `json:"review_date,omitempty"`
	CreatedDate   *time.Time     `json:"created_date,omitempty"`
	CompletedDate *time.Time     `json:"completed_date,omitempty"`
	Tags          []string       `json:"tags"`
	Extra         map[string]any `json:"extra"`
}

// NewFrontmatter returns an empty Frontmatter with initialized collections.
func NewFrontmatter() Frontmatter {
	return Frontmatter{Tags: []string{}, Extra: map[string]any{}}
}

// Task is one action item extracted from a checkbox line. Text carries the
// display description with all annotation tokens stripped; RawText keeps the
// original line for traceability. Optional annotations are pointers or empty
// strings when absent.
type Task struct {
	Text       string `json:"text"`
	Completed  bool   `json:"completed"`
	RawText    string `json:"raw_text"`
	LineNumber int    `json:"line_number"`

	Context      string `json:"context,omitempty"`       // @home, @calls, ...
	Project      string `json:"project,omitempty"`       // [[Project Name]] target
	Energy       string `json:"energy,omitempty"`        // 🔥 high, 💪 medium, 🚶 low
	TimeEstimate *int   `json:"time_estimate,omitempty"` // ⏱️ minutes
	DelegatedTo  string `json:"delegated_to,omitempty"`  // 👤 person

	Tags          []string   `json:"tags"`
	DueDate       *time.Time `json:"due_date,omitempty"`       // 📅
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"` // ⏳
	StartDate     *time.Time `json:"start_date,omitempty"`     // 🛫
	DoneDate      *time.Time `json:"done_date,omitempty"`      // ✅
	Priority      string     `json:"priority,omitempty"`       // ⏫ 🔼 🔽
	Recurrence    string     `json:"recurrence,omitempty"`     // 🔁 every week
}

// Link is a normalized reference found in a file body. Both wikilinks and
// markdown links reduce to this shape; the source syntax is not retained.
type Link struct {
	Text       string `json:"text"`
	Target     string `json:"target"`
	IsExternal bool   `json:"is_external"`
	LineNumber int    `json:"line_number"`
}

// GTDFile is one fully parsed vault file. It is constructed fresh on every
// read and never mutated afterwards.
type GTDFile struct {
	Path        string      `json:"path"`
	Title       string      `json:"title"`
	Content     string      `json:"content"` // body without frontmatter
	FileType    FileType    `json:"file_type"`
	Frontmatter Frontmatter `json:"frontmatter"`
	Tasks       []Task      `json:"tasks"`
	Links       []Link      `json:"links"`
	RawContent  string      `json:"-"`
}
