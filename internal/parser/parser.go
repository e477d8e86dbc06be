// Package parser extracts frontmatter, tasks, and links from GTD Markdown
// files. Parsing is deliberately lenient at the token level: malformed
// frontmatter or annotations degrade to raw text instead of failing the file.
package parser

import (
	"path"
	"regexp"
	"strings"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// ParseFile parses complete raw file content into a GTDFile. relPath is the
// vault-relative path used for file-type classification and the title
// fallback; the detected type selects the task grammar.
func ParseFile(content, relPath string) *models.GTDFile {
	fm, body := ParseFrontmatter(content)
	fileType := models.DetectFileType(relPath)

	return &models.GTDFile{
		Path:        relPath,
		Title:       extractTitle(body, relPath),
		Content:     body,
		FileType:    fileType,
		Frontmatter: fm,
		Tasks:       ExtractTasks(body, fileType),
		Links:       ExtractLinks(body),
		RawContent:  content,
	}
}

// extractTitle returns the first H1 heading, falling back to the filename
// without extension.
func extractTitle(body, relPath string) string {
	if m := h1Re.FindStringSubmatch(body); m != nil {
		return strings.TrimSpace(m[1])
	}
	name := path.Base(strings.ReplaceAll(relPath, "\\", "/"))
	return strings.TrimSuffix(name, path.Ext(name))
}
