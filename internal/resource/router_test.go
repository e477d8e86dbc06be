package resource

import (
	"errors"
	"testing"

	"github.com/peerjakobsen/md-gtd-mcp/internal/apperr"
	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

func TestParseURI_Variants(t *testing.T) {
	cases := []struct {
		uri  string
		want Request
	}{
		{"gtd:///home/me/vault/files", Request{Op: OpListAll, VaultPath: "/home/me/vault"}},
		{"gtd:///home/me/vault/files/inbox", Request{Op: OpListFiltered, VaultPath: "/home/me/vault", FileType: models.FileTypeInbox}},
		{"gtd:///home/me/vault/file/gtd/inbox.md", Request{Op: OpSingleFile, VaultPath: "/home/me/vault", FilePath: "gtd/inbox.md"}},
		{"gtd:///home/me/vault/content", Request{Op: OpContentAll, VaultPath: "/home/me/vault"}},
		{"gtd:///home/me/vault/content/projects", Request{Op: OpContentFiltered, VaultPath: "/home/me/vault", FileType: models.FileTypeProjects}},
		// Relative vault paths are allowed too.
		{"gtd://my-vault/files", Request{Op: OpListAll, VaultPath: "my-vault"}},
		{"gtd://my/deep/vault/content/context", Request{Op: OpContentFiltered, VaultPath: "my/deep/vault", FileType: models.FileTypeContext}},
	}
	for _, tc := range cases {
		got, err := ParseURI(tc.uri)
		if err != nil {
			t.Errorf("ParseURI(%q): %v", tc.uri, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseURI(%q) = %+v, want %+v", tc.uri, got, tc.want)
		}
	}
}

func TestParseURI_SingleFileNestedPath(t *testing.T) {
	got, err := ParseURI("gtd:///v/file/gtd/contexts/@calls.md")
	if err != nil {
		t.Fatal(err)
	}
	if got.FilePath != "gtd/contexts/@calls.md" {
		t.Errorf("file path = %q", got.FilePath)
	}
}

func TestParseURI_Invalid(t *testing.T) {
	for _, uri := range []string{
		"",
		"http://vault/files",            // wrong scheme
		"gtd://",                        // nothing at all
		"gtd:///files",                  // operation with no vault path
		"gtd://files",                   // same, relative form
		"gtd:///home/me/vault",          // no operation
		"gtd:///home/me/vault/browse",   // unknown operation
		"gtd:///home/me/vault/file",     // file without a path
		"gtd:///home/me/vault/files/inbox/extra", // trailing garbage
	} {
		if _, err := ParseURI(uri); !errors.Is(err, apperr.ErrInvalidAddress) {
			t.Errorf("ParseURI(%q) err = %v, want ErrInvalidAddress", uri, err)
		}
	}
}

func TestParseURI_FirstOperationSegmentSplits(t *testing.T) {
	// A vault directory literally named "files" would be ambiguous; the first
	// operation segment wins, so the vault path must come before it.
	got, err := ParseURI("gtd:///data/files/files")
	if err != nil {
		t.Fatal(err)
	}
	if got.VaultPath != "/data" || got.Op != OpListFiltered {
		t.Errorf("got = %+v", got)
	}
}
