package http

import (
	"strings"
	"time"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task"
	"tasks-timeline/pkg/response"
)

// --- Request DTOs ---

type previewReq struct {
	Text string `json:"text" binding:"required"`
	Now  string `json:"now"` // Optional: YYYY-MM-DD, RFC 3339 or "tomorrow"; resolved in the vault timezone
}

func (r previewReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

func (r previewReq) toInput() task.PreviewInput {
	return task.PreviewInput{Text: r.Text, Now: strings.TrimSpace(r.Now)}
}

// ---

type createReq struct {
	File      string `json:"file"`
	Text      string `json:"text" binding:"required"`
	Transform bool   `json:"transform"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		File:      r.File,
		Text:      r.Text,
		Transform: r.Transform,
	}
}

// ---

type timelineReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r timelineReq) validate() error { return nil }

func (r timelineReq) toInput() task.TimelineInput {
	return task.TimelineInput{From: r.From, To: r.To}
}

// --- Response DTOs ---

type previewResp struct {
	Text     string `json:"text"`
	Original string `json:"original"`
	Changed  bool   `json:"changed"`
}

func (h *handler) newPreviewResp(out task.PreviewOutput) previewResp {
	return previewResp{
		Text:     out.Text,
		Original: out.Original,
		Changed:  out.Changed,
	}
}

type taskResp struct {
	ID          string         `json:"id"`
	Path        string         `json:"path"`
	Line        int            `json:"line"`
	Text        string         `json:"text"`
	Description string         `json:"description"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority,omitempty"`
	Due         *response.Date `json:"due,omitempty"`
	Start       *response.Date `json:"start,omitempty"`
	Scheduled   *response.Date `json:"scheduled,omitempty"`
	Done        *response.Date `json:"done,omitempty"`
	Recurrence  string         `json:"recurrence,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Path:        t.Path,
		Line:        t.Line,
		Text:        t.Text,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Due:         newDate(t.Due),
		Start:       newDate(t.Start),
		Scheduled:   newDate(t.Scheduled),
		Done:        newDate(t.Done),
		Recurrence:  t.Recurrence,
		Tags:        t.Tags,
	}
}

func newDate(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

type createResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{
		Task:         newTaskResp(out.Task),
		CalendarLink: out.CalendarLink,
	}
}

type groupResp struct {
	Date     response.Date `json:"date"`
	Year     int           `json:"year"`
	IsToday  bool          `json:"is_today"`
	Statuses []string      `json:"statuses"`
	Tasks    []taskResp    `json:"tasks"`
}

type countersResp struct {
	Overdue   int `json:"overdue"`
	Due       int `json:"due"`
	Scheduled int `json:"scheduled"`
	Start     int `json:"start"`
	Process   int `json:"process"`
	Unplanned int `json:"unplanned"`
	Done      int `json:"done"`
}

type timelineResp struct {
	From     response.Date `json:"from"`
	To       response.Date `json:"to"`
	Today    response.Date `json:"today"`
	Groups   []groupResp   `json:"groups"`
	Counters countersResp  `json:"counters"`
}

func (h *handler) newTimelineResp(out task.TimelineOutput) timelineResp {
	groups := make([]groupResp, len(out.Groups))
	for i, g := range out.Groups {
		statuses := make([]string, len(g.Statuses))
		for j, s := range g.Statuses {
			statuses[j] = string(s)
		}
		tasks := make([]taskResp, len(g.Tasks))
		for j, t := range g.Tasks {
			tasks[j] = newTaskResp(t)
		}
		groups[i] = groupResp{
			Date:     response.Date(g.Date),
			Year:     g.Year,
			IsToday:  g.IsToday,
			Statuses: statuses,
			Tasks:    tasks,
		}
	}
	return timelineResp{
		From:   response.Date(out.From),
		To:     response.Date(out.To),
		Today:  response.Date(out.Today),
		Groups: groups,
		Counters: countersResp{
			Overdue:   out.Counters.Overdue,
			Due:       out.Counters.Due,
			Scheduled: out.Counters.Scheduled,
			Start:     out.Counters.Start,
			Process:   out.Counters.Process,
			Unplanned: out.Counters.Unplanned,
			Done:      out.Counters.Done,
		},
	}
}

type fileResp struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

type filesResp struct {
	Files       []fileResp `json:"files"`
	DefaultFile string     `json:"default_file,omitempty"`
}

func (h *handler) newFilesResp(out task.ListFilesOutput) filesResp {
	files := make([]fileResp, len(out.Files))
	for i, f := range out.Files {
		files[i] = fileResp{Path: f.Path, Label: f.Label}
	}
	return filesResp{Files: files, DefaultFile: out.DefaultFile}
}
