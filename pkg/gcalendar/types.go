package gcalendar

import "time"

// CreateEventRequest is the input for creating a timed event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"
}

// CreateAllDayEventRequest is the input for creating a date-only event.
type CreateAllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time // Only the calendar date is used
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
}

// ListEventsRequest is the input for listing events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
