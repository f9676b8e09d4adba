// Package htmlrender converts parsed documents to standalone HTML pages.
// A document's kind selects the layout: email drafts get a compose mockup,
// calendar documents get a schedule grid, and everything else renders as a
// styled article.
package htmlrender

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zhubert/canvas/internal/calendar"
	"github.com/zhubert/canvas/internal/document"
)

// Renderer turns documents into HTML. Live calendar documents delegate to
// the calendar renderer for real event data.
type Renderer struct {
	Calendar *calendar.Renderer
	// Now supplies the date shown in static calendar headers.
	Now func() time.Time
}

func New() *Renderer {
	return &Renderer{Calendar: calendar.NewRenderer(), Now: time.Now}
}

// Render produces a complete HTML page for the document.
func (r *Renderer) Render(ctx context.Context, doc *document.ContentDocument) string {
	switch doc.Kind {
	case document.KindEmailCompose:
		return r.renderEmail(doc)
	case document.KindCalendarLive:
		return r.Calendar.RenderLive(ctx, doc.CalendarView)
	case document.KindCalendarStatic:
		return r.renderStaticCalendar(doc)
	default:
		return r.renderStandard(doc)
	}
}

// renderStandard emits semantic HTML for each section in order.
func (r *Renderer) renderStandard(doc *document.ContentDocument) string {
	var b strings.Builder
	for _, sec := range doc.Sections {
		r.renderSection(&b, sec)
	}
	return wrapWithStyles(b.String(), "")
}

func (r *Renderer) renderSection(b *strings.Builder, sec document.Section) {
	if sec.Type == document.SectionHeading && sec.Title != "" {
		fmt.Fprintf(b, "<h%d>%s</h%d>\n", sec.Level, escapeHTML(sec.Title), sec.Level)
	}

	for _, block := range sec.Blocks {
		// The heading text doubles as the section's first block; the
		// <h> tag above already covers it.
		if isHeadingTitleBlock(sec, block) {
			continue
		}
		r.renderBlock(b, block)
	}
}

func isHeadingTitleBlock(sec document.Section, block document.Block) bool {
	if sec.Type != document.SectionHeading || block.Type != document.BlockText {
		return false
	}
	return block.Text.Text == sec.Title && block.Text.HasStyle(document.StyleHeading)
}

func (r *Renderer) renderBlock(b *strings.Builder, block document.Block) {
	switch block.Type {
	case document.BlockText:
		fmt.Fprintf(b, "<p>%s</p>\n", escapeHTML(block.Text.Text))

	case document.BlockTable:
		renderTable(b, block.Table)

	case document.BlockCode:
		fmt.Fprintf(b, "<pre><code class=\"language-%s\">%s</code></pre>\n",
			block.Language, escapeHTML(block.Code))

	case document.BlockList:
		renderList(b, block.Items)

	case document.BlockChecklist:
		renderChecklist(b, block.Checklist)

	case document.BlockImage:
		fmt.Fprintf(b, "<img src=%q alt=%q>\n", escapeHTML(block.URL), escapeHTML(block.Alt))

	case document.BlockLink:
		fmt.Fprintf(b, "<a href=%q>%s</a>\n", escapeHTML(block.URL), escapeHTML(block.LinkText))

	case document.BlockLineBreak:
		b.WriteString("<hr>\n")
	}
}

func renderTable(b *strings.Builder, table document.Table) {
	if len(table.Headers) == 0 && len(table.Rows) == 0 {
		return
	}
	b.WriteString("<table>\n<thead><tr>\n")
	for _, header := range table.Headers {
		fmt.Fprintf(b, "<th>%s</th>\n", escapeHTML(header))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range table.Rows {
		b.WriteString("<tr>\n")
		for _, cell := range row {
			fmt.Fprintf(b, "<td>%s</td>\n", escapeHTML(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func renderList(b *strings.Builder, items []document.ListItem) {
	b.WriteString("<ul>\n")
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s", escapeHTML(item.Content.Text))
		if len(item.Children) > 0 {
			renderList(b, item.Children)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}

func renderChecklist(b *strings.Builder, items []document.ChecklistItem) {
	b.WriteString("<ul class=\"checklist\">\n")
	for _, item := range items {
		checked := ""
		class := ""
		if item.IsChecked {
			checked = "checked "
			class = "completed"
		}
		fmt.Fprintf(b, "<li class=%q><input type=\"checkbox\" %sdisabled> %s</li>\n",
			class, checked, escapeHTML(item.Content.Text))
	}
	b.WriteString("</ul>\n")
}

// renderStaticCalendar scrapes schedule rows out of the raw markdown and
// lays them on a 6am to 10pm day grid. Rows look like
// "| 09:00 - 10:00 | Meeting Title |".
func (r *Renderer) renderStaticCalendar(doc *document.ContentDocument) string {
	type staticEvent struct {
		time     string
		title    string
		duration int
	}

	dateTitle := "Today"
	dateSubtitle := r.Now().Format("Monday, January 2")
	var events []staticEvent

	for _, line := range strings.Split(doc.RawMarkdown, "\n") {
		if strings.HasPrefix(line, "# ") {
			dateTitle = line[2:]
		}
		if strings.Contains(line, "|") && strings.Contains(line, ":") &&
			!strings.Contains(strings.ToLower(line), "time") && !strings.Contains(line, "---") {
			var parts []string
			for _, part := range strings.Split(line, "|") {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					parts = append(parts, trimmed)
				}
			}
			if len(parts) >= 2 {
				events = append(events, staticEvent{
					time:     parts[0],
					title:    parts[1],
					duration: parseClockDuration(parts[0]),
				})
			}
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="calendar-container"><div class="calendar-header"><div class="calendar-nav">`)
	b.WriteString(`<button class="nav-btn">&lt;</button>`)
	b.WriteString(`<div class="calendar-title">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, escapeHTML(dateTitle))
	fmt.Fprintf(&b, `<span class="date-subtitle">%s</span>`, dateSubtitle)
	b.WriteString(`</div><button class="nav-btn">&gt;</button></div>`)
	b.WriteString(`<div class="view-toggle"><button class="view-btn active">Day</button><button class="view-btn">Week</button><button class="view-btn">Month</button></div>`)
	b.WriteString(`</div><div class="calendar-body"><div class="time-gutter">`)

	for hour := 6; hour <= 22; hour++ {
		var label string
		switch {
		case hour < 12:
			label = fmt.Sprintf("%d AM", hour)
		case hour == 12:
			label = "12 PM"
		default:
			label = fmt.Sprintf("%d PM", hour-12)
		}
		fmt.Fprintf(&b, `<div class="time-label">%s</div>`, label)
	}

	b.WriteString(`</div><div class="events-track"><div class="hour-lines">`)
	for hour := 6; hour <= 22; hour++ {
		b.WriteString(`<div class="hour-line"></div>`)
	}
	b.WriteString(`</div><div class="events-layer">`)

	colors := []string{"#4285F4", "#EA4335", "#34A853", "#FBBC04", "#9C27B0", "#00BCD4"}
	for i, ev := range events {
		position := clockPosition(ev.time)
		height := max(40, ev.duration)
		fmt.Fprintf(&b, `<div class="calendar-event" style="top: %dpx; height: %dpx; background: %s;">`,
			position, height, colors[i%len(colors)])
		b.WriteString(`<div class="event-content">`)
		fmt.Fprintf(&b, `<div class="event-time">%s</div>`, escapeHTML(ev.time))
		fmt.Fprintf(&b, `<div class="event-title">%s</div>`, escapeHTML(ev.title))
		b.WriteString(`</div></div>`)
	}

	b.WriteString(`</div></div></div>`)
	b.WriteString(`<div class="calendar-footer"><div class="shortcut-hint">Click on a time slot to add event</div></div>`)
	b.WriteString(`</div>`)

	return wrapWithStyles(b.String(), staticCalendarStyles)
}

// parseClockDuration returns the minute span of a "09:00 - 10:30" range,
// defaulting to an hour when the range does not parse.
func parseClockDuration(timeStr string) int {
	parts := strings.Split(timeStr, " - ")
	if len(parts) != 2 {
		return 60
	}
	startHour, startMin, okStart := parseClock(parts[0])
	endHour, endMin, okEnd := parseClock(parts[1])
	if !okStart || !okEnd {
		return 60
	}
	return (endHour*60 + endMin) - (startHour*60 + startMin)
}

// clockPosition converts the start of a time range to a pixel offset on the
// grid, one pixel per minute from 6am.
func clockPosition(timeStr string) int {
	start := strings.Split(timeStr, " - ")[0]
	hour, min, ok := parseClock(start)
	if !ok {
		return 0
	}
	return (hour-6)*60 + min
}

func parseClock(s string) (hour, min int, ok bool) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, false
	}
	if len(fields) > 1 {
		min, _ = strconv.Atoi(fields[1])
	}
	return hour, min, true
}

// escapeHTML escapes the characters that would break out of markup.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func wrapWithStyles(body, extraStyles string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>\n")
	b.WriteString(documentStyles)
	b.WriteString(extraStyles)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}
