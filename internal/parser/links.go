package parser

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

var (
	wikilinkRe     = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	markdownLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)
)

// Schemes that mark a link target as external to the vault.
var externalSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true,
	"mailto": true, "tel": true, "file": true,
}

// ExtractLinks scans text line by line for wikilinks and markdown links,
// returning them in left-to-right order per line. Relative targets are not
// normalized; that is left to consumers.
func ExtractLinks(text string) []models.Link {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var links []models.Link
	for i, line := range strings.Split(text, "\n") {
		links = append(links, extractLineLinks(line, i+1)...)
	}
	return links
}

func extractLineLinks(line string, lineNumber int) []models.Link {
	type positioned struct {
		start int
		link  models.Link
	}
	var found []positioned

	for _, idx := range wikilinkRe.FindAllStringSubmatchIndex(line, -1) {
		inner := line[idx[2]:idx[3]]
		if strings.TrimSpace(inner) == "" {
			continue
		}
		// [[target|display]] overrides the display text.
		target, display := inner, inner
		if i := strings.Index(inner, "|"); i >= 0 {
			target, display = inner[:i], inner[i+1:]
		}
		target = strings.TrimSpace(target)
		display = strings.TrimSpace(display)
		if target == "" || display == "" {
			continue
		}
		found = append(found, positioned{idx[0], models.Link{
			Text:       display,
			Target:     target,
			IsExternal: false,
			LineNumber: lineNumber,
		}})
	}

	for _, idx := range markdownLinkRe.FindAllStringSubmatchIndex(line, -1) {
		text := line[idx[2]:idx[3]]
		target := line[idx[4]:idx[5]]
		if text == "" || target == "" {
			continue
		}
		found = append(found, positioned{idx[0], models.Link{
			Text:       text,
			Target:     target,
			IsExternal: isExternalTarget(target),
			LineNumber: lineNumber,
		}})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := make([]models.Link, len(found))
	for i, p := range found {
		out[i] = p.link
	}
	return out
}

// isExternalTarget reports whether target is an absolute URI with a network
// scheme. Everything else, including ./ and ../ relative paths, is treated as
// vault-internal.
func isExternalTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return externalSchemes[strings.ToLower(u.Scheme)]
}
