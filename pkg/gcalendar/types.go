package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	URL         string // attached as the event source link
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Istanbul"
}

// UpdateEventRequest is the input for updating an existing event.
type UpdateEventRequest struct {
	CalendarID  string
	EventID     string
	Summary     string
	Description string
	Location    string
	URL         string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
