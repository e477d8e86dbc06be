package parser

import (
	"testing"
)

func TestExtractLinks_Wikilink(t *testing.T) {
	links := ExtractLinks("See [[Project Alpha]] for details.")
	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	l := links[0]
	if l.Target != "Project Alpha" || l.Text != "Project Alpha" {
		t.Errorf("link = %+v", l)
	}
	if l.IsExternal {
		t.Error("wikilink should be internal")
	}
	if l.LineNumber != 1 {
		t.Errorf("line number = %d, want 1", l.LineNumber)
	}
}

func TestExtractLinks_WikilinkAlias(t *testing.T) {
	links := ExtractLinks("See [[projects/alpha|the alpha project]].")
	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	if links[0].Target != "projects/alpha" {
		t.Errorf("target = %q", links[0].Target)
	}
	if links[0].Text != "the alpha project" {
		t.Errorf("text = %q", links[0].Text)
	}
}

func TestExtractLinks_MarkdownExternal(t *testing.T) {
	links := ExtractLinks("Read [the docs](https://example.com/docs) first.")
	if len(links) != 1 {
		t.Fatalf("len(links) = %d, want 1", len(links))
	}
	l := links[0]
	if l.Text != "the docs" || l.Target != "https://example.com/docs" {
		t.Errorf("link = %+v", l)
	}
	if !l.IsExternal {
		t.Error("https link should be external")
	}
}

func TestExtractLinks_ExternalSchemes(t *testing.T) {
	cases := map[string]bool{
		"https://example.com":  true,
		"http://example.com":   true,
		"ftp://host/file":      true,
		"mailto:a@b.com":       true,
		"tel:+123456":          true,
		"file:///tmp/x":        true,
		"../notes/x.md":        false,
		"./sibling.md":         false,
		"plain/path.md":        false,
		"obsidian://open?v=x":  false,
	}
	for target, want := range cases {
		links := ExtractLinks("[t](" + target + ")")
		if len(links) != 1 {
			t.Fatalf("target %q: len(links) = %d, want 1", target, len(links))
		}
		if links[0].IsExternal != want {
			t.Errorf("IsExternal(%q) = %v, want %v", target, links[0].IsExternal, want)
		}
	}
}

func TestExtractLinks_MixedSyntaxOrderedLeftToRight(t *testing.T) {
	links := ExtractLinks("A [ext](https://x.io) then [[wiki]] then [two](../a.md).")
	if len(links) != 3 {
		t.Fatalf("len(links) = %d, want 3", len(links))
	}
	if links[0].Target != "https://x.io" {
		t.Errorf("links[0].Target = %q", links[0].Target)
	}
	if links[1].Target != "wiki" {
		t.Errorf("links[1].Target = %q", links[1].Target)
	}
	if links[2].Target != "../a.md" {
		t.Errorf("links[2].Target = %q", links[2].Target)
	}
}

func TestExtractLinks_LineNumbers(t *testing.T) {
	links := ExtractLinks("first\n[[a]]\n\n[b](https://b.io)")
	if len(links) != 2 {
		t.Fatalf("len(links) = %d, want 2", len(links))
	}
	if links[0].LineNumber != 2 || links[1].LineNumber != 4 {
		t.Errorf("line numbers = %d, %d, want 2, 4", links[0].LineNumber, links[1].LineNumber)
	}
}

func TestExtractLinks_EmptyTargetsSkipped(t *testing.T) {
	links := ExtractLinks("see [[ ]] and [[|alias]] and [](https://x.io) and [text]()")
	if len(links) != 0 {
		t.Errorf("links = %v, want none", links)
	}
}

func TestExtractLinks_EmptyInput(t *testing.T) {
	if links := ExtractLinks(""); links != nil {
		t.Errorf("links = %v, want nil", links)
	}
}
