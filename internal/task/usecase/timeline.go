package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tasks-timeline/internal/model"
	"tasks-timeline/internal/task"
	"tasks-timeline/internal/task/repository"
	"tasks-timeline/pkg/datemath"
)

func (uc *implUseCase) Timeline(ctx context.Context, input task.TimelineInput) (task.TimelineOutput, error) {
	now := uc.now(input.Now)
	today := datemath.StartOfDay(now)

	from, err := uc.resolveBound(input.From, now, today.AddDate(0, 0, -uc.cfg.DaysBefore))
	if err != nil {
		return task.TimelineOutput{}, err
	}
	to, err := uc.resolveBound(input.To, now, today.AddDate(0, 0, uc.cfg.DaysAfter))
	if err != nil {
		return task.TimelineOutput{}, err
	}
	if from.After(to) {
		return task.TimelineOutput{}, task.ErrInvalidRange
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{IncludeClosed: true})
	if err != nil {
		uc.l.Errorf(ctx, "Timeline: failed to list tasks: %v", err)
		return task.TimelineOutput{}, err
	}

	days := make(map[string]time.Time)
	byDay := make(map[string][]model.Task)
	for _, t := range tasks {
		day, status, ok := uc.place(t, today)
		if !ok || day.Before(from) || day.After(to) {
			continue
		}
		t.Status = status
		key := datemath.Format(day)
		days[key] = day
		byDay[key] = append(byDay[key], t)
	}
	if !today.Before(from) && !today.After(to) {
		days[datemath.Format(today)] = today
	}

	out := task.TimelineOutput{From: from, To: to, Today: today}
	for key, day := range days {
		dayTasks := byDay[key]
		sort.Slice(dayTasks, func(i, j int) bool {
			if dayTasks[i].Path != dayTasks[j].Path {
				return dayTasks[i].Path < dayTasks[j].Path
			}
			return dayTasks[i].Line < dayTasks[j].Line
		})
		group := task.DateGroup{
			Date:     day,
			Year:     day.Year(),
			IsToday:  datemath.SameDay(day, today),
			Statuses: statusesOf(dayTasks),
			Tasks:    dayTasks,
		}
		if group.IsToday {
			out.Counters = countStatuses(dayTasks)
		}
		out.Groups = append(out.Groups, group)
	}
	sort.Slice(out.Groups, func(i, j int) bool {
		return out.Groups[i].Date.Before(out.Groups[j].Date)
	})

	uc.l.Debugf(ctx, "Timeline: %d tasks in %d groups from %s to %s",
		len(tasks), len(out.Groups), datemath.Format(from), datemath.Format(to))
	return out, nil
}

func (uc *implUseCase) resolveBound(expr string, now, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(expr) == "" {
		return fallback, nil
	}
	d, err := uc.dateMath.Parse(expr, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}
	return d, nil
}

// place returns the day a task is shown on and its timeline status. Done
// tasks sit on their completion date; open tasks on their due, scheduled or
// start date in that order, or on today when undated.
func (uc *implUseCase) place(t model.Task, today time.Time) (time.Time, model.TaskStatus, bool) {
	switch t.Status {
	case model.StatusCancelled:
		return time.Time{}, "", false
	case model.StatusDone:
		if t.Done == nil {
			return time.Time{}, "", false
		}
		return datemath.StartOfDay(t.Done.In(today.Location())), model.StatusDone, true
	}

	var (
		day    time.Time
		status model.TaskStatus
	)
	switch {
	case t.Due != nil:
		day, status = *t.Due, model.StatusDue
	case t.Scheduled != nil:
		day, status = *t.Scheduled, model.StatusScheduled
	case t.Start != nil:
		day, status = *t.Start, model.StatusStart
	default:
		day, status = today, model.StatusUnplanned
	}
	day = datemath.StartOfDay(day.In(today.Location()))

	if t.Status == model.StatusProcess {
		status = model.StatusProcess
	}
	if day.Before(today) {
		status = model.StatusOverdue
		if uc.cfg.ForwardOverdue {
			day = today
		}
	}
	return day, status, true
}

func statusesOf(tasks []model.Task) []model.TaskStatus {
	seen := make(map[model.TaskStatus]bool)
	var statuses []model.TaskStatus
	for _, t := range tasks {
		if !seen[t.Status] {
			seen[t.Status] = true
			statuses = append(statuses, t.Status)
		}
	}
	return statuses
}

func countStatuses(tasks []model.Task) task.Counters {
	var c task.Counters
	for _, t := range tasks {
		switch t.Status {
		case model.StatusOverdue:
			c.Overdue++
		case model.StatusDue:
			c.Due++
		case model.StatusScheduled:
			c.Scheduled++
		case model.StatusStart:
			c.Start++
		case model.StatusProcess:
			c.Process++
		case model.StatusUnplanned:
			c.Unplanned++
		case model.StatusDone:
			c.Done++
		}
	}
	return c
}
