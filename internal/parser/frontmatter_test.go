package parser

import (
	"testing"
	"time"
)

func TestParseFrontmatter_TypedFields(t *testing.T) {
	content := "---\noutcome: Ship the release\nstatus: active\narea: work\ntags:\n  - q3\n  - review\n---\n# Body\n"
	fm, body := ParseFrontmatter(content)

	if fm.Outcome != "Ship the release" {
		t.Errorf("outcome = %q", fm.Outcome)
	}
	if fm.Status != "active" {
		t.Errorf("status = %q", fm.Status)
	}
	if fm.Area != "work" {
		t.Errorf("area = %q", fm.Area)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "q3" || fm.Tags[1] != "review" {
		t.Errorf("tags = %v, want [q3 review]", fm.Tags)
	}
	if body != "# Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontmatter_NoFence(t *testing.T) {
	content := "# Just a heading\nSome text.\n"
	fm, body := ParseFrontmatter(content)
	if len(fm.Extra) != 0 || fm.Status != "" {
		t.Errorf("expected empty frontmatter, got %+v", fm)
	}
	if body != content {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestParseFrontmatter_FenceNotAtStart(t *testing.T) {
	content := "\n---\nstatus: active\n---\nBody\n"
	fm, body := ParseFrontmatter(content)
	if fm.Status != "" {
		t.Error("leading blank line should disable frontmatter recognition")
	}
	if body != content {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestParseFrontmatter_UnclosedFence(t *testing.T) {
	content := "---\nstatus: active\nno closing fence\n"
	fm, body := ParseFrontmatter(content)
	if fm.Status != "" {
		t.Error("unclosed fence should yield empty frontmatter")
	}
	if body != content {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestParseFrontmatter_InvalidYAMLFallback(t *testing.T) {
	content := "---\n: invalid: yaml: {{{\n---\nBody\n"
	fm, body := ParseFrontmatter(content)
	if fm.Status != "" || len(fm.Extra) != 0 {
		t.Error("invalid YAML should yield empty frontmatter")
	}
	if body != content {
		t.Errorf("body = %q, want full input", body)
	}
}

func TestParseFrontmatter_DateForms(t *testing.T) {
	// Unquoted YAML dates decode as time.Time; quoted ones stay strings.
	content := "---\nreview_date: 2025-01-15\ncreated_date: \"2025-01-10T09:30:00\"\n---\nBody\n"
	fm, _ := ParseFrontmatter(content)

	if fm.ReviewDate == nil {
		t.Fatal("review_date not parsed")
	}
	if got := fm.ReviewDate.Format("2006-01-02"); got != "2025-01-15" {
		t.Errorf("review_date = %s", got)
	}
	if fm.CreatedDate == nil {
		t.Fatal("created_date not parsed")
	}
	if got := fm.CreatedDate.Format(time.RFC3339); got != "2025-01-10T09:30:00Z" {
		t.Errorf("created_date = %s", got)
	}
}

func TestParseFrontmatter_UnparsableDateRetained(t *testing.T) {
	content := "---\nreview_date: next tuesday\n---\nBody\n"
	fm, _ := ParseFrontmatter(content)
	if fm.ReviewDate != nil {
		t.Errorf("review_date = %v, want nil", fm.ReviewDate)
	}
	if got, ok := fm.Extra["review_date"]; !ok || got != "next tuesday" {
		t.Errorf("Extra[review_date] = %v, want raw string retained", got)
	}
}

func TestParseFrontmatter_UnknownKeysInExtra(t *testing.T) {
	content := "---\nstatus: active\ncustom_field: 42\nnested:\n  a: 1\n---\nBody\n"
	fm, _ := ParseFrontmatter(content)
	if fm.Extra["custom_field"] != 42 {
		t.Errorf("Extra[custom_field] = %v, want 42", fm.Extra["custom_field"])
	}
	if _, ok := fm.Extra["nested"]; !ok {
		t.Error("nested unknown key not retained")
	}
	if _, ok := fm.Extra["status"]; ok {
		t.Error("recognized key should not land in Extra")
	}
}

func TestParseFrontmatter_EmptyBlock(t *testing.T) {
	content := "---\n---\nBody\n"
	fm, body := ParseFrontmatter(content)
	if len(fm.Extra) != 0 {
		t.Errorf("Extra = %v, want empty", fm.Extra)
	}
	if body != "Body\n" {
		t.Errorf("body = %q", body)
	}
}
