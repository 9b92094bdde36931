package usecase

import (
	"context"
	"fmt"
	"time"

	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository"
	"tasks-timeline/pkg/datemath"
	"tasks-timeline/pkg/gcalendar"
	pkgLog "tasks-timeline/pkg/log"
	"tasks-timeline/pkg/quickentry"
)

// Calendar is the subset of the Google Calendar client used for exporting due tasks.
type Calendar interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.CreateAllDayEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config holds the use case settings.
type Config struct {
	DefaultFile    string
	CalendarID     string
	DaysBefore     int
	DaysAfter      int
	ForwardOverdue bool
	Clock          func() time.Time // nil means time.Now
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar Calendar // nil disables calendar export
	rewriter *quickentry.Rewriter
	dateMath *datemath.Parser
	cfg      Config
}

// New creates a new task UseCase instance. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) task.UseCase {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		rewriter: quickentry.New(quickentry.DefaultRules()...),
		dateMath: dateMath,
		cfg:      cfg,
	}
}

// now returns the reference time in the vault timezone, preferring override.
func (uc *implUseCase) now(override time.Time) time.Time {
	if override.IsZero() {
		override = uc.cfg.Clock()
	}
	return override.In(uc.dateMath.Location())
}

// resolveNow turns a caller-supplied reference into a time in the vault
// timezone. Timestamps keep their instant; dates and relative expressions
// resolve to the start of that day in the vault timezone.
func (uc *implUseCase) resolveNow(expr string) (time.Time, error) {
	if expr == "" {
		return uc.now(time.Time{}), nil
	}
	if t, err := time.Parse(time.RFC3339, expr); err == nil {
		return uc.now(t), nil
	}
	t, err := uc.dateMath.Parse(expr, uc.now(time.Time{}))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: now: %v", task.ErrInvalidDate, err)
	}
	return t, nil
}
