package gcalendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
)

const (
	defaultCalendarID = "primary"
	dateFormat        = "2006-01-02"
)

func calendarIDOrDefault(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}

// CreateEvent creates a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// CreateAllDayEvent creates a date-only event on req.Date. The end date is
// exclusive, so it is the following day.
func (c *Client) CreateAllDayEvent(ctx context.Context, req CreateAllDayEventRequest) (*Event, error) {
	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	end := start.AddDate(0, 0, 1)

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: start.Format(dateFormat)},
		End:         &calendar.EventDateTime{Date: end.Format(dateFormat)},
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create all-day calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     req.Summary,
		Description: req.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   start,
		EndTime:     end,
		AllDay:      true,
	}, nil
}

// ListEvents lists single events overlapping [TimeMin, TimeMax), ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarIDOrDefault(req.CalendarID)).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		e := Event{
			ID:          item.Id,
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			Location:    item.Location,
		}
		e.StartTime, e.AllDay = parseEventTime(item.Start)
		e.EndTime, _ = parseEventTime(item.End)
		events = append(events, e)
	}
	return events, nil
}

// parseEventTime reads either the timed or the date-only form.
func parseEventTime(dt *calendar.EventDateTime) (time.Time, bool) {
	if dt == nil {
		return time.Time{}, false
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t, false
	}
	if dt.Date != "" {
		t, _ := time.Parse(dateFormat, dt.Date)
		return t, true
	}
	return time.Time{}, false
}
