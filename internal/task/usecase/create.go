package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/gcalendar"
)

const minTaskLength = 2

func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	file := input.File
	if file == "" {
		file = uc.cfg.DefaultFile
	}
	if file == "" {
		return task.CreateOutput{}, task.ErrNoFileSelected
	}
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateOutput{}, task.ErrEmptyInput
	}

	text := input.Text
	if input.Transform {
		text = uc.rewriter.Transform(text, uc.now(time.Time{}))
	}
	text = strings.TrimRight(text, " \t\r\n")
	if utf8.RuneCountInString(text) < minTaskLength {
		return task.CreateOutput{}, task.ErrTaskTooShort
	}

	t, err := uc.repo.AppendTask(ctx, repository.AppendTaskOptions{Path: file, Text: text})
	if err != nil {
		uc.l.Errorf(ctx, "Create: failed to append task to %s: %v", file, err)
		return task.CreateOutput{}, err
	}
	uc.l.Infof(ctx, "Create: added task %s:%d", t.Path, t.Line)

	return task.CreateOutput{
		Task:         t,
		CalendarLink: uc.tryCreateCalendarEvent(ctx, t),
	}, nil
}

// tryCreateCalendarEvent exports a task with a due date as an all-day event.
// Returns the event link, or empty string when skipped or on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.Due == nil {
		return ""
	}

	summary := t.Description
	if summary == "" {
		summary = t.Text
	}
	day := *t.Due

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar lookup failed for %q (non-fatal): %v", summary, err)
		return ""
	}
	for _, e := range existing {
		if e.Summary == summary {
			uc.l.Infof(ctx, "Create: calendar already has %q on %s, skipping", summary, datemath.Format(day))
			return e.HtmlLink
		}
	}

	event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.CreateAllDayEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     summary,
		Description: t.Path,
		Date:        day,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Create: calendar event creation failed for %q (non-fatal): %v", summary, err)
		return ""
	}
	return event.HtmlLink
}
