package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/peerjakobsen/md-gtd-mcp/internal/models"
)

var (
	taskLineRe = regexp.MustCompile(`^(\s*)- \[(.)\] (.+)$`)

	contextRe      = regexp.MustCompile(`@(\w+)`)
	projectRe      = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	energyRe       = regexp.MustCompile(`(🔥|💪|🚶)`)
	timeEstimateRe = regexp.MustCompile(`⏱️(\d+)`)
	delegatedRe    = regexp.MustCompile(`👤(\w+)`)

	tagRe           = regexp.MustCompile(`#([\w-]+)`)
	dueDateRe       = regexp.MustCompile(`📅(\d{4}-\d{2}-\d{2})`)
	scheduledDateRe = regexp.MustCompile(`⏳(\d{4}-\d{2}-\d{2})`)
	startDateRe     = regexp.MustCompile(`🛫(\d{4}-\d{2}-\d{2})`)
	doneDateRe      = regexp.MustCompile(`✅(\d{4}-\d{2}-\d{2})`)
	priorityRe      = regexp.MustCompile(`(⏫|🔼|🔽)`)
	recurrenceRe    = regexp.MustCompile(`🔁\s*([^#]*)`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// permissiveTypes lists the file types whose checkbox lines all count as
// tasks. Every other type, unknown included, requires the #task marker on the
// line before it is recognized. This single table is the grammar switch
// between raw capture and triaged action lists.
var permissiveTypes = map[models.FileType]bool{
	models.FileTypeInbox: true,
}

// ExtractTasks scans text line by line for checkbox tasks, applying the
// grammar selected by fileType. Annotation decoding is best effort: tokens
// that fail to decode stay in the display text, and decoding never discards a
// task.
func ExtractTasks(text string, fileType models.FileType) []models.Task {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tasks []models.Task
	for i, line := range strings.Split(text, "\n") {
		if task, ok := parseTaskLine(line, i+1, fileType); ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

func parseTaskLine(line string, lineNumber int, fileType models.FileType) (models.Task, bool) {
	m := taskLineRe.FindStringSubmatch(line)
	if m == nil {
		return models.Task{}, false
	}
	state, content := m[2], m[3]

	if !permissiveTypes[fileType] && !hasTaskMarker(content) {
		// A checkbox line without the marker in a triaged file is not a
		// draft and not an error: it is invisible to this extractor.
		return models.Task{}, false
	}

	task := decodeAnnotations(content)
	task.Completed = state == "x" || state == "X"
	task.RawText = line
	task.LineNumber = lineNumber
	return task, true
}

// hasTaskMarker reports whether the content carries the #task tag
// (case-insensitive).
func hasTaskMarker(content string) bool {
	for _, m := range tagRe.FindAllStringSubmatch(content, -1) {
		if strings.EqualFold(m[1], "task") {
			return true
		}
	}
	return false
}

// decodeAnnotations extracts every annotation token kind from the content and
// strips the matched tokens from the display text. Token kinds carry distinct
// sigils and do not overlap; when one kind occurs more than once on a line,
// the last occurrence wins.
func decodeAnnotations(content string) models.Task {
	task := models.Task{Tags: []string{}}

	if m := lastMatch(contextRe, content); m != nil {
		task.Context = "@" + m[1]
	}
	if m := lastMatch(projectRe, content); m != nil {
		task.Project = m[1]
	}
	if m := lastMatch(energyRe, content); m != nil {
		task.Energy = m[1]
	}
	if m := lastMatch(timeEstimateRe, content); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			task.TimeEstimate = &minutes
		}
	}
	if m := lastMatch(delegatedRe, content); m != nil {
		task.DelegatedTo = m[1]
	}

	for _, m := range tagRe.FindAllStringSubmatch(content, -1) {
		task.Tags = append(task.Tags, "#"+m[1])
	}

	task.DueDate = lastDate(dueDateRe, content)
	task.ScheduledDate = lastDate(scheduledDateRe, content)
	task.StartDate = lastDate(startDateRe, content)
	task.DoneDate = lastDate(doneDateRe, content)

	if m := lastMatch(priorityRe, content); m != nil {
		task.Priority = m[1]
	}
	if m := lastMatch(recurrenceRe, content); m != nil {
		task.Recurrence = strings.TrimSpace(m[1])
	}

	task.Text = stripAnnotations(content)
	return task
}

// stripAnnotations removes every recognized token from the content and
// collapses the remaining whitespace. Anything a pattern does not match, a
// malformed date for instance, is left in place.
func stripAnnotations(content string) string {
	text := content
	for _, re := range []*regexp.Regexp{
		contextRe, projectRe, energyRe, timeEstimateRe, delegatedRe,
		tagRe, dueDateRe, scheduledDateRe, startDateRe, doneDateRe,
		priorityRe, recurrenceRe,
	} {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

func lastMatch(re *regexp.Regexp, s string) []string {
	ms := re.FindAllStringSubmatch(s, -1)
	if len(ms) == 0 {
		return nil
	}
	return ms[len(ms)-1]
}

func lastDate(re *regexp.Regexp, s string) *time.Time {
	m := lastMatch(re, s)
	if m == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", m[1])
	if err != nil {
		return nil
	}
	return &t
}
