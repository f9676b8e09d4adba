package calendar

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/zhubert/canvas/internal/document"
)

// eventColors cycle across timed events so adjacent cards stay visually
// distinct.
var eventColors = []string{
	"#4285F4", "#EA4335", "#34A853", "#FBBC04",
	"#9C27B0", "#00BCD4", "#FF5722", "#607D8B",
}

// weekColors is the shorter palette used by the compact week cards.
var weekColors = eventColors[:6]

const (
	allDayColor = "#9C27B0"
	timedColor  = "#4285F4"
)

// Renderer builds full HTML pages for the day, week, and month views.
type Renderer struct {
	Source EventSource
	// Now is the clock used to pick the rendered date. Tests override it.
	Now func() time.Time
}

// NewRenderer returns a renderer backed by the mac-calendar CLI.
func NewRenderer() *Renderer {
	return &Renderer{Source: CommandSource{}, Now: time.Now}
}

// RenderLive fetches events and renders the requested view. Fetch failures
// degrade to an empty calendar.
func (r *Renderer) RenderLive(ctx context.Context, view document.CalendarView) string {
	events, err := r.Source.Events(ctx, view)
	if err != nil {
		events = nil
	}

	switch view {
	case document.ViewWeek:
		return r.renderWeek(events)
	case document.ViewMonth:
		return r.renderMonth(events)
	default:
		return r.renderDay(events)
	}
}

func (r *Renderer) renderDay(events []Event) string {
	now := r.Now()
	todayEvents := eventsForDay(events, now)

	var b strings.Builder
	b.WriteString(`<div class="calendar-app" data-view="day">`)
	b.WriteString(renderHeader("Today", now.Format("Monday, January 2"), document.ViewDay))
	b.WriteString(`<div class="calendar-body"><div class="time-gutter">`)

	for hour := 0; hour <= 23; hour++ {
		fmt.Fprintf(&b, `<div class="time-label">%s</div>`, hourLabel(hour))
	}

	b.WriteString(`</div><div class="events-track"><div class="hour-lines">`)
	for hour := 0; hour <= 23; hour++ {
		fmt.Fprintf(&b, `<div class="hour-line" data-hour="%d"></div>`, hour)
	}
	b.WriteString(`</div><div class="events-layer">`)

	var allDay, timed []Event
	for _, ev := range todayEvents {
		if ev.IsAllDay {
			allDay = append(allDay, ev)
		} else {
			timed = append(timed, ev)
		}
	}

	if len(allDay) > 0 {
		b.WriteString(`<div class="all-day-banner">`)
		for _, ev := range allDay {
			fmt.Fprintf(&b, `<div class="all-day-event">%s</div>`, html.EscapeString(ev.Title))
		}
		b.WriteString(`</div>`)
	}

	for i, ev := range timed {
		position := minutesIntoDay(ev.StartDate)
		duration := durationMinutes(ev.StartDate, ev.EndDate)
		color := eventColors[i%len(eventColors)]

		fmt.Fprintf(&b, `<div class="calendar-event" style="top: %dpx; height: %dpx; background: %s;" onclick="selectEvent('%s')">`,
			position, max(30, duration), color, html.EscapeString(ev.Title))
		b.WriteString(`<div class="event-content">`)
		fmt.Fprintf(&b, `<div class="event-time">%s</div>`, formatTimeRange(ev.StartDate, ev.EndDate))
		fmt.Fprintf(&b, `<div class="event-title">%s</div>`, html.EscapeString(ev.Title))
		if ev.Location != "" {
			fmt.Fprintf(&b, `<div class="event-location">%s</div>`, html.EscapeString(ev.Location))
		}
		b.WriteString(`</div></div>`)
	}

	b.WriteString(`</div><div class="click-layer" onclick="handleTimeClick(event)"></div></div></div>`)
	b.WriteString(renderFooter())
	b.WriteString(renderEventDialog())
	b.WriteString(`</div>`)

	return wrapWithStyles(b.String())
}

func (r *Renderer) renderWeek(events []Event) string {
	now := r.Now()
	weekStart := now.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)
	subtitle := weekStart.Format("Jan 2") + " - " + weekEnd.Format("Jan 2")

	var b strings.Builder
	b.WriteString(`<div class="calendar-app" data-view="week">`)
	b.WriteString(renderHeader("This Week", subtitle, document.ViewWeek))
	b.WriteString(`<div class="calendar-body week-view"><div class="time-gutter"><div class="time-label header"></div>`)

	for hour := 6; hour <= 21; hour++ {
		fmt.Fprintf(&b, `<div class="time-label">%s</div>`, hourLabel(hour))
	}
	b.WriteString(`</div>`)

	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := weekStart.AddDate(0, 0, dayOffset)
		isToday := sameDay(day, now)

		var dayEvents []Event
		for _, ev := range eventsForDay(events, day) {
			if !ev.IsAllDay {
				dayEvents = append(dayEvents, ev)
			}
		}

		todayClass := ""
		currentClass := ""
		if isToday {
			todayClass = " today"
			currentClass = " current"
		}

		fmt.Fprintf(&b, `<div class="day-column%s"><div class="day-header">`, todayClass)
		fmt.Fprintf(&b, `<span class="day-name">%s</span>`, day.Format("Mon"))
		fmt.Fprintf(&b, `<span class="day-num%s">%d</span>`, currentClass, day.Day())
		b.WriteString(`</div><div class="day-events"><div class="hour-lines">`)

		for hour := 6; hour <= 21; hour++ {
			fmt.Fprintf(&b, `<div class="hour-line" data-hour="%d"></div>`, hour)
		}
		b.WriteString(`</div><div class="events-layer">`)

		// The grid starts at 6am and spans sixteen hours; events outside
		// that window are hidden and long events are clipped to it.
		for i, ev := range dayEvents {
			position := minutesIntoDay(ev.StartDate) - 6*60
			duration := durationMinutes(ev.StartDate, ev.EndDate)
			color := weekColors[i%len(weekColors)]

			if position >= 0 && position < 16*60 {
				height := max(20, min(duration, 16*60-position))
				fmt.Fprintf(&b, `<div class="calendar-event compact" style="top: %dpx; height: %dpx; background: %s;">`,
					position, height, color)
				fmt.Fprintf(&b, `<div class="event-title">%s</div></div>`, html.EscapeString(ev.Title))
			}
		}

		b.WriteString(`</div></div></div>`)
	}

	b.WriteString(`</div>`)
	b.WriteString(renderFooter())
	b.WriteString(renderEventDialog())
	b.WriteString(`</div>`)

	return wrapWithStyles(b.String())
}

func (r *Renderer) renderMonth(events []Event) string {
	now := r.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	leading := int(monthStart.Weekday())

	var b strings.Builder
	b.WriteString(`<div class="calendar-app" data-view="month">`)
	b.WriteString(renderHeader(monthStart.Format("January 2006"), "", document.ViewMonth))
	b.WriteString(`<div class="calendar-body month-view"><div class="month-header">`)
	for _, label := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		fmt.Fprintf(&b, `<div class="weekday-label">%s</div>`, label)
	}
	b.WriteString(`</div><div class="month-grid">`)

	for i := 0; i < leading; i++ {
		b.WriteString(`<div class="day-cell empty"></div>`)
	}

	for day := 1; day <= daysInMonth; day++ {
		dayDate := monthStart.AddDate(0, 0, day-1)
		isToday := sameDay(dayDate, now)
		dayEvents := eventsForDay(events, dayDate)

		todayClass := ""
		currentClass := ""
		if isToday {
			todayClass = " today"
			currentClass = " current"
		}

		fmt.Fprintf(&b, `<div class="day-cell%s" onclick="selectDate(%d)">`, todayClass, day)
		fmt.Fprintf(&b, `<div class="day-number%s">%d</div>`, currentClass, day)
		b.WriteString(`<div class="day-events-mini">`)

		for i, ev := range dayEvents {
			if i == 3 {
				break
			}
			color := timedColor
			if ev.IsAllDay {
				color = allDayColor
			}
			fmt.Fprintf(&b, `<div class="event-dot" style="background: %s;" title="%s"></div>`,
				color, html.EscapeString(ev.Title))
		}
		if len(dayEvents) > 3 {
			fmt.Fprintf(&b, `<div class="more-events">+%d</div>`, len(dayEvents)-3)
		}

		b.WriteString(`</div></div>`)
	}

	totalCells := leading + daysInMonth
	for i := 0; i < (7-totalCells%7)%7; i++ {
		b.WriteString(`<div class="day-cell empty"></div>`)
	}

	b.WriteString(`</div></div>`)
	b.WriteString(renderFooter())
	b.WriteString(renderEventDialog())
	b.WriteString(`</div>`)

	return wrapWithStyles(b.String())
}

// hourLabel formats an hour for the time gutter, e.g. "12 AM", "3 PM".
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func renderHeader(title, subtitle string, active document.CalendarView) string {
	var b strings.Builder
	b.WriteString(`<div class="calendar-header"><div class="calendar-nav">`)
	b.WriteString(`<button class="nav-btn" onclick="navigate(-1)">&lt;</button>`)
	b.WriteString(`<div class="calendar-title">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(title))
	if subtitle != "" {
		fmt.Fprintf(&b, `<span class="date-subtitle">%s</span>`, html.EscapeString(subtitle))
	}
	b.WriteString(`</div>`)
	b.WriteString(`<button class="nav-btn" onclick="navigate(1)">&gt;</button>`)
	b.WriteString(`</div><div class="view-toggle">`)

	for _, view := range []document.CalendarView{document.ViewDay, document.ViewWeek, document.ViewMonth} {
		activeClass := ""
		if view == active {
			activeClass = " active"
		}
		label := strings.ToUpper(string(view[0])) + string(view[1:])
		fmt.Fprintf(&b, `<button class="view-btn%s" onclick="switchView('%s')">%s</button>`, activeClass, view, label)
	}

	b.WriteString(`</div></div>`)
	return b.String()
}

func renderFooter() string {
	return `<div class="calendar-footer"><div class="shortcut-hint">Click on a time slot to add event | Data from macOS Calendar</div></div>`
}

func renderEventDialog() string {
	return `<div id="eventDialog" class="event-dialog hidden">
<div class="dialog-content">
<div class="dialog-header">
<h2>New Event</h2>
<button class="close-btn" onclick="closeDialog()">&times;</button>
</div>
<div class="dialog-body">
<div class="form-group">
<label>Title</label>
<input type="text" id="eventTitle" placeholder="Event title">
</div>
<div class="form-group">
<label>Time</label>
<div class="time-inputs">
<input type="time" id="eventStart">
<span>to</span>
<input type="time" id="eventEnd">
</div>
</div>
<div class="form-group">
<label>Location</label>
<input type="text" id="eventLocation" placeholder="Add location">
</div>
</div>
<div class="dialog-footer">
<button class="btn-cancel" onclick="closeDialog()">Cancel</button>
<button class="btn-create" onclick="createEvent()">Add to Calendar</button>
</div>
</div>
</div>`
}

func wrapWithStyles(body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>\n")
	b.WriteString(baseStyles)
	b.WriteString(calendarStyles)
	b.WriteString(dialogStyles)
	b.WriteString("</style>\n<script>\n")
	b.WriteString(interactionScript)
	b.WriteString("</script>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}
