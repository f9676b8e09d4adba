// Package calendar renders interactive calendar views backed by the
// mac-calendar CLI. The subprocess is optional: when it is missing or
// misbehaves the views render with no events rather than failing.
package calendar

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/process"
)

// Event is one calendar entry as emitted by mac-calendar --json.
type Event struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Calendar  string `json:"calendar"`
	IsAllDay  bool   `json:"isAllDay"`
	Location  string `json:"location,omitempty"`
	Notes     string `json:"notes,omitempty"`
	URL       string `json:"url,omitempty"`
}

// EventSource fetches events for a calendar view. The renderer takes this as
// an interface so tests can supply canned events without the CLI.
type EventSource interface {
	Events(ctx context.Context, view document.CalendarView) ([]Event, error)
}

// commandPaths are the install locations checked for the mac-calendar binary.
var commandPaths = []string{
	"/opt/homebrew/bin/mac-calendar",
	"/usr/local/bin/mac-calendar",
}

// CommandSource shells out to mac-calendar. Any failure, missing binary,
// non-zero exit, or bad JSON, yields an empty event list.
type CommandSource struct{}

func (CommandSource) Events(ctx context.Context, view document.CalendarView) ([]Event, error) {
	log := logger.ComponentLogger("calendar")

	var path string
	for _, candidate := range commandPaths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			path = candidate
			break
		}
	}
	if path == "" {
		log.Debug("mac-calendar not installed")
		return nil, nil
	}

	// The view is a positional argument and must precede --json. Day view
	// is the CLI default and passes no view argument at all.
	var args []string
	switch view {
	case document.ViewWeek:
		args = []string{"week", "--json"}
	case document.ViewMonth:
		args = []string{"month", "--json"}
	default:
		args = []string{"--json"}
	}

	out, err := process.Run(ctx, path, args...)
	if err != nil {
		log.Debug("mac-calendar failed", "error", err)
		return nil, nil
	}

	var events []Event
	if err := json.Unmarshal(out, &events); err != nil {
		log.Debug("mac-calendar output not valid JSON", "error", err)
		return nil, nil
	}
	return events, nil
}

// parseEventTime parses the ISO-8601 timestamps mac-calendar emits. The CLI
// writes fractional seconds, but older builds omit them, so both forms parse.
func parseEventTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Local(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), true
	}
	return time.Time{}, false
}

// eventsForDay returns events whose start time falls on the given day.
// Events with unparseable timestamps are dropped.
func eventsForDay(events []Event, day time.Time) []Event {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var out []Event
	for _, ev := range events {
		start, ok := parseEventTime(ev.StartDate)
		if !ok {
			continue
		}
		if !start.Before(dayStart) && start.Before(dayEnd) {
			out = append(out, ev)
		}
	}
	return out
}

// minutesIntoDay converts a start timestamp to a pixel offset, one pixel per
// minute from midnight. Unparseable timestamps position at 0.
func minutesIntoDay(dateStr string) int {
	t, ok := parseEventTime(dateStr)
	if !ok {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// durationMinutes returns the event length in minutes, defaulting to an hour
// when either timestamp fails to parse.
func durationMinutes(start, end string) int {
	s, okS := parseEventTime(start)
	e, okE := parseEventTime(end)
	if !okS || !okE {
		return 60
	}
	return int(e.Sub(s) / time.Minute)
}

// formatTimeRange renders "9:00 AM - 10:30 AM" for an event card.
func formatTimeRange(start, end string) string {
	s, okS := parseEventTime(start)
	e, okE := parseEventTime(end)
	if !okS || !okE {
		return ""
	}
	return s.Format("3:04 PM") + " - " + e.Format("3:04 PM")
}
