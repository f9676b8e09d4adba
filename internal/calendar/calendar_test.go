package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/canvas/internal/document"
)

type fakeSource struct {
	events []Event
	err    error
}

func (f fakeSource) Events(ctx context.Context, view document.CalendarView) ([]Event, error) {
	return f.events, f.err
}

// fixedNow is the clock used by rendering tests.
var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

func newTestRenderer(events []Event, err error) *Renderer {
	return &Renderer{
		Source: fakeSource{events: events, err: err},
		Now:    func() time.Time { return fixedNow },
	}
}

// timedEvent builds an event starting at the given hour on the fixed day.
func timedEvent(title string, hour, durationMin int) Event {
	start := time.Date(2026, time.March, 10, hour, 0, 0, 0, time.Local)
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return Event{
		Title:     title,
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
		Calendar:  "Work",
	}
}

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"fractional seconds", "2026-03-10T09:00:00.000Z", true},
		{"plain", "2026-03-10T09:00:00Z", true},
		{"with offset", "2026-03-10T09:00:00-07:00", true},
		{"garbage", "not-a-date", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseEventTime(tt.input)
			if ok != tt.ok {
				t.Errorf("parseEventTime(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func TestEventsForDay(t *testing.T) {
	events := []Event{
		timedEvent("Today", 9, 60),
		{Title: "Tomorrow", StartDate: time.Date(2026, time.March, 11, 9, 0, 0, 0, time.Local).Format(time.RFC3339)},
		{Title: "Broken", StartDate: "???"},
	}

	got := eventsForDay(events, fixedNow)
	if len(got) != 1 {
		t.Fatalf("eventsForDay() returned %d events, want 1", len(got))
	}
	if got[0].Title != "Today" {
		t.Errorf("eventsForDay()[0].Title = %q, want %q", got[0].Title, "Today")
	}
}

func TestDurationMinutes(t *testing.T) {
	ev := timedEvent("Standup", 9, 30)
	if d := durationMinutes(ev.StartDate, ev.EndDate); d != 30 {
		t.Errorf("durationMinutes() = %d, want 30", d)
	}

	// Unparseable timestamps fall back to an hour.
	if d := durationMinutes("bad", "worse"); d != 60 {
		t.Errorf("durationMinutes(bad) = %d, want 60", d)
	}
}

func TestFormatTimeRange(t *testing.T) {
	ev := timedEvent("Standup", 9, 90)
	got := formatTimeRange(ev.StartDate, ev.EndDate)
	if got != "9:00 AM - 10:30 AM" {
		t.Errorf("formatTimeRange() = %q, want %q", got, "9:00 AM - 10:30 AM")
	}

	if got := formatTimeRange("bad", ev.EndDate); got != "" {
		t.Errorf("formatTimeRange(bad) = %q, want empty", got)
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{6, "6 AM"},
		{12, "12 PM"},
		{15, "3 PM"},
		{23, "11 PM"},
	}

	for _, tt := range tests {
		if got := hourLabel(tt.hour); got != tt.want {
			t.Errorf("hourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestRenderLive_DayView(t *testing.T) {
	events := []Event{
		timedEvent("Design & Review", 9, 90),
		{Title: "Conference", StartDate: fixedNow.Format(time.RFC3339), EndDate: fixedNow.Format(time.RFC3339), IsAllDay: true},
	}
	html := newTestRenderer(events, nil).RenderLive(context.Background(), document.ViewDay)

	if !strings.Contains(html, `data-view="day"`) {
		t.Error("day view should carry data-view=\"day\"")
	}
	if !strings.Contains(html, "top: 540px") {
		t.Error("9am event should be positioned at 540px")
	}
	if !strings.Contains(html, "height: 90px") {
		t.Error("90 minute event should be 90px tall")
	}
	if !strings.Contains(html, "Design &amp; Review") {
		t.Error("event title should be HTML escaped")
	}
	if !strings.Contains(html, "all-day-banner") {
		t.Error("all-day event should render in the banner")
	}
	if !strings.Contains(html, "9:00 AM - 10:30 AM") {
		t.Errorf("event card should show its time range")
	}
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("output should be a complete HTML page")
	}
}

func TestRenderLive_DayView_ShortEventMinHeight(t *testing.T) {
	events := []Event{timedEvent("Quick sync", 14, 10)}
	html := newTestRenderer(events, nil).RenderLive(context.Background(), document.ViewDay)

	if !strings.Contains(html, "height: 30px") {
		t.Error("short events should render at the 30px minimum height")
	}
}

func TestRenderLive_WeekView(t *testing.T) {
	events := []Event{
		timedEvent("Early", 5, 60),   // before the 6am grid start
		timedEvent("Standup", 7, 30), // visible
	}
	html := newTestRenderer(events, nil).RenderLive(context.Background(), document.ViewWeek)

	if !strings.Contains(html, `data-view="week"`) {
		t.Error("week view should carry data-view=\"week\"")
	}
	if strings.Contains(html, "Early") {
		t.Error("events before 6am should be hidden in week view")
	}
	if !strings.Contains(html, "top: 60px") {
		t.Error("7am event should sit 60px into the grid")
	}
	// Seven day columns plus the gutter.
	if got := strings.Count(html, `class="day-column`); got != 7 {
		t.Errorf("week view has %d day columns, want 7", got)
	}
}

func TestRenderLive_MonthView(t *testing.T) {
	var events []Event
	for i := 0; i < 5; i++ {
		events = append(events, timedEvent(fmt.Sprintf("Meeting %d", i), 9+i, 30))
	}
	html := newTestRenderer(events, nil).RenderLive(context.Background(), document.ViewMonth)

	if !strings.Contains(html, `data-view="month"`) {
		t.Error("month view should carry data-view=\"month\"")
	}
	if !strings.Contains(html, "March 2026") {
		t.Error("month view should show the month title")
	}
	if got := strings.Count(html, `class="event-dot"`); got != 3 {
		t.Errorf("busy day shows %d dots, want 3", got)
	}
	if !strings.Contains(html, ">+2</div>") {
		t.Error("overflow days should show a +N counter")
	}
	// March 2026 starts on a Sunday, so the grid has no leading blanks
	// and four trailing ones (31 days, 35 cells).
	if got := strings.Count(html, `class="day-cell empty"`); got != 4 {
		t.Errorf("month grid has %d empty cells, want 4", got)
	}
}

func TestRenderLive_SourceFailureDegradesToEmpty(t *testing.T) {
	html := newTestRenderer(nil, errors.New("calendar unavailable")).RenderLive(context.Background(), document.ViewDay)

	if !strings.Contains(html, `data-view="day"`) {
		t.Error("failed fetch should still render the view shell")
	}
	if strings.Contains(html, `class="calendar-event"`) {
		t.Error("failed fetch should render no event cards")
	}
}

func TestRenderHeader_ActiveView(t *testing.T) {
	header := renderHeader("Today", "Tuesday, March 10", document.ViewWeek)
	if !strings.Contains(header, `view-btn active" onclick="switchView('week')`) {
		t.Error("active view button should carry the active class")
	}
	if strings.Contains(header, `view-btn active" onclick="switchView('day')`) {
		t.Error("inactive view buttons should not carry the active class")
	}
}

func TestCommandSource_MissingBinary(t *testing.T) {
	events, err := CommandSource{}.Events(context.Background(), document.ViewDay)
	if err != nil {
		t.Fatalf("Events() error = %v, want nil", err)
	}
	if len(events) != 0 {
		t.Skip("mac-calendar installed on this machine")
	}
}
