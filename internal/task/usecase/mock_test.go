package usecase_test

import (
	"context"
	"errors"
	"time"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository"
	"tasks-timeline/internal/task/usecase"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	tasks    []model.Task
	files    []string
	appended []repository.AppendTaskOptions
	appendFn func(opt repository.AppendTaskOptions) (model.Task, error)
	fail     bool
}

func (m *mockRepo) AppendTask(ctx context.Context, opt repository.AppendTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("disk error")
	}
	m.appended = append(m.appended, opt)
	if m.appendFn != nil {
		return m.appendFn(opt)
	}
	return model.Task{Path: opt.Path, Line: 1, Text: opt.Text, Description: opt.Text, Status: model.StatusTodo}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.fail {
		return nil, errors.New("disk error")
	}
	return m.tasks, nil
}

func (m *mockRepo) ListFiles(ctx context.Context) ([]string, error) {
	if m.fail {
		return nil, errors.New("disk error")
	}
	return m.files, nil
}

type mockCalendar struct {
	existing []gcalendar.Event
	created  []gcalendar.CreateAllDayEventRequest
	listErr  error
	failNew  bool
}

func (m *mockCalendar) CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error) {
	if m.failNew {
		return nil, errors.New("quota exceeded")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{Summary: req.Summary, HtmlLink: "https://calendar.example/new", AllDay: true}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.existing, m.listErr
}

// fixedNow is Tuesday 2024-03-12 09:30 UTC.
var fixedNow = time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)

func day(s string) *time.Time {
	d, _ := time.ParseInLocation(datemath.DateFormat, s, time.UTC)
	return &d
}

func newUseCase(repo *mockRepo, cal usecase.Calendar, cfg usecase.Config) task.UseCase {
	parser, _ := datemath.NewParser("UTC")
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return fixedNow }
	}
	return usecase.New(&mockLogger{}, repo, cal, parser, cfg)
}
