// Package resource implements the gtd:// address space: parsing resource
// URIs into requests and serving them from a vault reader with one stable
// serialization, so the same data looks identical through every address
// variant.
package resource

import (
	"fmt"
	"strings"

	"github.com/peerjakobsen/md-gtd-mcp/internal/apperr"
	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

// Scheme is the URI scheme for vault resources.
const Scheme = "gtd"

// Op identifies one of the five address variants.
type Op int

const (
	// OpListAll lists every recognized file with metadata only.
	OpListAll Op = iota
	// OpListFiltered lists files of one type with metadata only.
	OpListFiltered
	// OpSingleFile reads one file with full content.
	OpSingleFile
	// OpContentAll reads every recognized file with full content.
	OpContentAll
	// OpContentFiltered reads files of one type with full content.
	OpContentFiltered
)

// Request is the parsed form of a resource URI.
type Request struct {
	Op        Op
	VaultPath string
	FilePath  string          // set for OpSingleFile
	FileType  models.FileType // set for filtered variants
}

// ParseURI parses an address of one of the forms
//
//	gtd://<vault>/files
//	gtd://<vault>/files/<file_type>
//	gtd://<vault>/file/<relative-path>
//	gtd://<vault>/content
//	gtd://<vault>/content/<file_type>
//
// into a Request. The vault segment may be an absolute path (leading slash).
// Anything else fails with apperr.ErrInvalidAddress.
func ParseURI(uri string) (Request, error) {
	prefix := Scheme + "://"
	if !strings.HasPrefix(uri, prefix) {
		return Request{}, fmt.Errorf("resource: scheme must be %q in %s: %w", Scheme, uri, apperr.ErrInvalidAddress)
	}

	rest := strings.TrimPrefix(uri, prefix)
	absolute := strings.HasPrefix(rest, "/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	// The first segment naming an operation splits the vault path from the
	// resource path; everything before it is the vault.
	opIndex := -1
	for i, seg := range parts {
		if seg == "files" || seg == "file" || seg == "content" {
			opIndex = i
			break
		}
	}
	if opIndex <= 0 {
		return Request{}, fmt.Errorf("resource: missing vault path or operation in %s: %w", uri, apperr.ErrInvalidAddress)
	}

	vaultPath := strings.Join(parts[:opIndex], "/")
	if absolute {
		vaultPath = "/" + vaultPath
	}
	op := parts[opIndex]
	tail := parts[opIndex+1:]

	switch op {
	case "files":
		switch len(tail) {
		case 0:
			return Request{Op: OpListAll, VaultPath: vaultPath}, nil
		case 1:
			return Request{Op: OpListFiltered, VaultPath: vaultPath, FileType: models.FileType(tail[0])}, nil
		}
	case "content":
		switch len(tail) {
		case 0:
			return Request{Op: OpContentAll, VaultPath: vaultPath}, nil
		case 1:
			return Request{Op: OpContentFiltered, VaultPath: vaultPath, FileType: models.FileType(tail[0])}, nil
		}
	case "file":
		if len(tail) >= 1 && tail[0] != "" {
			return Request{Op: OpSingleFile, VaultPath: vaultPath, FilePath: strings.Join(tail, "/")}, nil
		}
	}

	return Request{}, fmt.Errorf("resource: invalid address %s: %w", uri, apperr.ErrInvalidAddress)
}
