package vault

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasks-timeline/internal/model"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/taskmarker"
)

var (
	taskLineRe = regexp.MustCompile(`^\s*[-*+] \[(.)\] (.*)$`)
	tagRe      = regexp.MustCompile(`(?:^|\s)#([\p{L}\p{N}_/-]+)`)
	spacesRe   = regexp.MustCompile(`\s{2,}`)

	// dateRes maps each date role to "<marker> YYYY-MM-DD".
	dateRes = func() map[taskmarker.Role]*regexp.Regexp {
		m := make(map[taskmarker.Role]*regexp.Regexp)
		for _, role := range taskmarker.DateRoles() {
			m[role] = regexp.MustCompile(regexp.QuoteMeta(taskmarker.MarkerFor(role)) + `\s*(\d{4}-\d{2}-\d{2})`)
		}
		return m
	}()

	priorities = []struct {
		role     taskmarker.Role
		priority model.TaskPriority
	}{
		{taskmarker.PriorityHigh, model.PriorityHigh},
		{taskmarker.PriorityMedium, model.PriorityMedium},
		{taskmarker.PriorityLow, model.PriorityLow},
	}
)

// taskID derives a stable id from the task position.
func taskID(path string, line int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s:%d", path, line))).String()
}

func statusOf(checkbox string) model.TaskStatus {
	switch checkbox {
	case "x", "X":
		return model.StatusDone
	case "-":
		return model.StatusCancelled
	case "/":
		return model.StatusProcess
	default:
		return model.StatusTodo
	}
}

// parseContent extracts every task line of a note. Lines inside fenced code
// blocks are examples, not tasks.
func parseContent(path, content string, loc *time.Location) []model.Task {
	var (
		tasks   []model.Task
		inFence bool
	)
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		t, ok := parseLine(path, i+1, line, loc)
		if ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// parseLine parses a single "- [ ] text" line. It reports false for lines
// that are not tasks.
func parseLine(path string, lineNo int, line string, loc *time.Location) (model.Task, bool) {
	m := taskLineRe.FindStringSubmatch(line)
	if m == nil {
		return model.Task{}, false
	}
	text := m[2]

	t := model.Task{
		ID:       taskID(path, lineNo),
		Path:     path,
		Line:     lineNo,
		Text:     text,
		Checkbox: m[1],
		Status:   statusOf(m[1]),
	}

	desc := text
	for _, role := range taskmarker.DateRoles() {
		re := dateRes[role]
		dm := re.FindStringSubmatch(text)
		if dm == nil {
			continue
		}
		d, err := time.ParseInLocation(datemath.DateFormat, dm[1], loc)
		if err != nil {
			continue
		}
		switch role {
		case taskmarker.Due:
			t.Due = &d
		case taskmarker.Start:
			t.Start = &d
		case taskmarker.Scheduled:
			t.Scheduled = &d
		case taskmarker.Done:
			t.Done = &d
		}
		desc = re.ReplaceAllString(desc, "")
	}

	for _, p := range priorities {
		marker := taskmarker.MarkerFor(p.role)
		if strings.Contains(text, marker) {
			if t.Priority == model.PriorityNone {
				t.Priority = p.priority
			}
			desc = strings.ReplaceAll(desc, marker, "")
		}
	}

	if rule, segment, ok := recurrenceOf(desc); ok {
		t.Recurrence = rule
		desc = strings.Replace(desc, segment, "", 1)
	}

	for _, tm := range tagRe.FindAllStringSubmatch(text, -1) {
		t.Tags = append(t.Tags, tm[1])
	}

	t.Description = strings.TrimSpace(spacesRe.ReplaceAllString(desc, " "))
	return t, true
}

// recurrenceOf returns the rule text following the recurrence marker up to
// the next marker, and the whole segment including the marker.
func recurrenceOf(s string) (rule, segment string, ok bool) {
	marker := taskmarker.MarkerFor(taskmarker.Recurrence)
	start := strings.Index(s, marker)
	if start < 0 {
		return "", "", false
	}
	rest := s[start+len(marker):]
	end := len(rest)
	for _, role := range taskmarker.Roles() {
		if idx := strings.Index(rest, taskmarker.MarkerFor(role)); idx >= 0 && idx < end {
			end = idx
		}
	}
	return strings.TrimSpace(rest[:end]), s[start : start+len(marker)+end], true
}
