package parser

import (
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

// Recognized frontmatter date layouts, tried in order.
var frontmatterDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseFrontmatter splits raw file content into a typed Frontmatter and the
// remaining body. A metadata block is recognized only when the opening ---
// fence is the very first content of the file and a closing fence follows.
// Unclosed or invalid YAML falls back to an empty Frontmatter with the whole
// input as body; frontmatter problems are logged, never propagated.
func ParseFrontmatter(content string) (models.Frontmatter, string) {
	const delim = "---"

	if !strings.HasPrefix(content, delim) {
		return models.NewFrontmatter(), content
	}

	rest := content[len(delim):]
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		// Opening fence without a closing fence: the "metadata" cannot be
		// decoded, so the entire input stays body.
		slog.Debug("frontmatter: unclosed fence, treating input as body")
		return models.NewFrontmatter(), content
	}

	yamlBlock := rest[:idx]
	body := rest[idx+1+len(delim):]
	body = strings.TrimPrefix(body, "\r")
	body = strings.TrimPrefix(body, "\n")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(yamlBlock), &raw); err != nil {
		slog.Debug("frontmatter: invalid YAML, treating input as body",
			slog.String("error", err.Error()))
		return models.NewFrontmatter(), content
	}

	return decodeFrontmatter(raw), body
}

// decodeFrontmatter maps the raw YAML document onto the typed Frontmatter.
// Unrecognized keys land in Extra verbatim; recognized date fields that fail
// to parse are retained in Extra as strings rather than dropped.
func decodeFrontmatter(raw map[string]any) models.Frontmatter {
	fm := models.NewFrontmatter()

	for key, value := range raw {
		switch key {
		case "outcome":
			fm.Outcome = stringValue(value)
		case "status":
			fm.Status = stringValue(value)
		case "area":
			fm.Area = stringValue(value)
		case "tags":
			fm.Tags = stringList(value)
		case "review_date", "created_date", "completed_date":
			t, ok := dateValue(value)
			if !ok {
				if value != nil && value != "" {
					fm.Extra[key] = value
				}
				continue
			}
			switch key {
			case "review_date":
				fm.ReviewDate = t
			case "created_date":
				fm.CreatedDate = t
			case "completed_date":
				fm.CompletedDate = t
			}
		default:
			fm.Extra[key] = value
		}
	}

	return fm
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// dateValue accepts the forms the YAML decoder may produce for a date field:
// time.Time for unquoted timestamps, or a string in a recognized layout.
func dateValue(v any) (*time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return &val, true
	case string:
		for _, layout := range frontmatterDateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return &t, true
			}
		}
	}
	return nil, false
}
