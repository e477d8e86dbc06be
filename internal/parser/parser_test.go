package parser

import (
	"testing"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

func TestParseFile_Complete(t *testing.T) {
	content := "---\nstatus: active\n---\n\n# Next Actions\n\n- [ ] Email Sarah @computer [[Q3 Review]] #task\nSee [reference](https://example.com).\n"
	f := ParseFile(content, "gtd/next-actions.md")

	if f.FileType != models.FileTypeNextActions {
		t.Errorf("file type = %q", f.FileType)
	}
	if f.Title != "Next Actions" {
		t.Errorf("title = %q", f.Title)
	}
	if f.Frontmatter.Status != "active" {
		t.Errorf("status = %q", f.Frontmatter.Status)
	}
	if len(f.Tasks) != 1 {
		t.Fatalf("len(tasks) = %d, want 1", len(f.Tasks))
	}
	// Both wikilinks and markdown links surface: the project reference on the
	// task line plus the markdown link below it.
	if len(f.Links) != 2 {
		t.Fatalf("len(links) = %d, want 2", len(f.Links))
	}
	if f.RawContent != content {
		t.Error("raw content not preserved")
	}
}

func TestParseFile_TitleFallbackToFilename(t *testing.T) {
	f := ParseFile("no heading here\n", "gtd/someday-maybe.md")
	if f.Title != "someday-maybe" {
		t.Errorf("title = %q, want someday-maybe", f.Title)
	}
}

func TestParseFile_GrammarFollowsPath(t *testing.T) {
	content := "- [ ] untagged checkbox\n"
	if got := len(ParseFile(content, "gtd/inbox.md").Tasks); got != 1 {
		t.Errorf("inbox tasks = %d, want 1", got)
	}
	if got := len(ParseFile(content, "gtd/projects.md").Tasks); got != 0 {
		t.Errorf("projects tasks = %d, want 0", got)
	}
}

func TestParseFile_Idempotent(t *testing.T) {
	content := "---\nstatus: active\n---\n\n# Inbox\n\n- [ ] Call dentist 📅2025-02-01\n[[somewhere]]\n"
	a := ParseFile(content, "gtd/inbox.md")
	b := ParseFile(content, "gtd/inbox.md")

	if a.Title != b.Title || a.FileType != b.FileType || a.Content != b.Content {
		t.Error("repeated parses disagree on scalar fields")
	}
	if len(a.Tasks) != len(b.Tasks) || len(a.Links) != len(b.Links) {
		t.Error("repeated parses disagree on extraction counts")
	}
	if a.Tasks[0].Text != b.Tasks[0].Text || a.Tasks[0].RawText != b.Tasks[0].RawText {
		t.Error("repeated parses disagree on task content")
	}
}
