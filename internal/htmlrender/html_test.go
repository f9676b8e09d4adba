package htmlrender

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/canvas/internal/calendar"
	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/parser"
)

type fakeEventSource struct {
	views []document.CalendarView
}

func (f *fakeEventSource) Events(ctx context.Context, view document.CalendarView) ([]calendar.Event, error) {
	f.views = append(f.views, view)
	return nil, nil
}

func newTestRenderer() (*Renderer, *fakeEventSource) {
	source := &fakeEventSource{}
	fixed := func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local) }
	return &Renderer{
		Calendar: &calendar.Renderer{Source: source, Now: fixed},
		Now:      fixed,
	}, source
}

func render(t *testing.T, markdown string) string {
	t.Helper()
	r, _ := newTestRenderer()
	doc := parser.Parse(markdown)
	return r.Render(context.Background(), &doc)
}

func TestRender_Standard(t *testing.T) {
	markdown := "# Notes\n\nCheck that 1 < 2 & 3.\n\n```go\nfunc main() {}\n```\n\n- [x] done\n- [ ] pending\n\n---\n"
	html := render(t, markdown)

	if !strings.Contains(html, "<h1>Notes</h1>") {
		t.Error("heading section should render an <h1>")
	}
	if !strings.Contains(html, "1 &lt; 2 &amp; 3.") {
		t.Error("paragraph text should be HTML escaped")
	}
	if !strings.Contains(html, `<pre><code class="language-go">`) {
		t.Error("code blocks should carry a language class")
	}
	if !strings.Contains(html, `<input type="checkbox" checked disabled> done`) {
		t.Error("checked items should render a checked disabled checkbox")
	}
	if !strings.Contains(html, `class="completed"`) {
		t.Error("checked items should carry the completed class")
	}
	if !strings.Contains(html, "<hr>") {
		t.Error("thematic breaks should render as <hr>")
	}
}

func TestRender_Standard_HeadingNotDuplicated(t *testing.T) {
	html := render(t, "# Unique Title\n\nBody text.\n")

	if got := strings.Count(html, "Unique Title"); got != 1 {
		t.Errorf("title appears %d times, want 1", got)
	}
	if strings.Contains(html, "<p>Unique Title</p>") {
		t.Error("heading text must not also render as a paragraph")
	}
}

func TestRender_Standard_Table(t *testing.T) {
	html := render(t, "| Name | Role |\n| --- | --- |\n| Ada | Engineer |\n")

	for _, want := range []string{"<table>", "<th>Name</th>", "<td>Ada</td>", "</tbody>"} {
		if !strings.Contains(html, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestRender_Standard_NestedList(t *testing.T) {
	html := render(t, "- parent\n  - child\n")

	if got := strings.Count(html, "<ul>"); got != 2 {
		t.Errorf("nested list rendered %d <ul> tags, want 2", got)
	}
	if !strings.Contains(html, "<li>parent<ul>") {
		t.Error("children should nest inside the parent <li>")
	}
}

func TestRender_EmailCompose(t *testing.T) {
	markdown := strings.Join([]string{
		"# Email Compose",
		"",
		"| Field | Value |",
		"| --- | --- |",
		"| from | alice@example.com |",
		"| to | bob@example.com |",
		"| subject | Quarterly Report |",
		"",
		"---",
		"",
		"Hi Bob,",
		"",
		"Here is the report.",
		"",
		"---",
		"**Actions: E to send**",
	}, "\n")

	html := render(t, markdown)

	if !strings.Contains(html, `class="email-container"`) {
		t.Fatal("email documents should use the compose layout")
	}
	if !strings.Contains(html, `<div class="avatar">AL</div>`) {
		t.Error("avatar should show the sender's initials")
	}
	if !strings.Contains(html, `<div class="field-value recipient">bob@example.com</div>`) {
		t.Error("recipient field missing")
	}
	if !strings.Contains(html, `<div class="field-value subject">Quarterly Report</div>`) {
		t.Error("subject field missing")
	}
	if !strings.Contains(html, "Hi Bob,</p><p>Here is the report.") {
		t.Error("blank lines in the body should split paragraphs")
	}
	if strings.Contains(html, "**Actions") {
		t.Error("action hint lines should not leak into the body")
	}
}

func TestRender_EmailWinsOverCalendar(t *testing.T) {
	markdown := "# Email Preview\n\n<!-- calendar:live:week -->\n\nSchedule\n"
	html := render(t, markdown)

	if !strings.Contains(html, `class="email-container"`) {
		t.Error("email detection should take precedence over calendar markers")
	}
}

func TestRender_LiveCalendar_WeekView(t *testing.T) {
	r, source := newTestRenderer()
	doc := parser.Parse("Some notes\n\n<!-- calendar:live:week -->\n")

	html := r.Render(context.Background(), &doc)

	if !strings.Contains(html, `data-view="week"`) {
		t.Error("live week marker should render the week view")
	}
	if len(source.views) != 1 || source.views[0] != document.ViewWeek {
		t.Errorf("event source queried with %v, want [week]", source.views)
	}
}

func TestRender_StaticCalendar(t *testing.T) {
	markdown := strings.Join([]string{
		"# Calendar",
		"",
		"| Time | Event |",
		"| --- | --- |",
		"| 09:00 - 10:00 | Standup |",
		"| 14:30 - 15:00 | Review |",
	}, "\n")

	html := render(t, markdown)

	if !strings.Contains(html, `class="calendar-container"`) {
		t.Fatal("schedule documents should use the calendar grid")
	}
	if !strings.Contains(html, "<h1>Calendar</h1>") {
		t.Error("grid header should show the document title")
	}
	// 9am sits three hours into the 6am grid.
	if !strings.Contains(html, "top: 180px; height: 60px") {
		t.Error("hour long 9am event should span 180px to 240px")
	}
	// Short events get the 40px minimum height.
	if !strings.Contains(html, "top: 510px; height: 40px") {
		t.Error("half hour event should clamp to the minimum height")
	}
	if !strings.Contains(html, "Standup") || !strings.Contains(html, "Review") {
		t.Error("event titles missing from grid")
	}
}

func TestExtractEmailFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want EmailFields
	}{
		{
			name: "full draft",
			raw:  "| from | alice |\n| to | bob |\n| subject | Hello |\n---\nBody here\n---\n",
			want: EmailFields{From: "alice", To: "bob", Subject: "Hello", Body: "Body here"},
		},
		{
			name: "no recipient means no body",
			raw:  "| from | alice |\n---\nNot a body\n",
			want: EmailFields{From: "alice"},
		},
		{
			name: "defaults",
			raw:  "",
			want: EmailFields{From: "me"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractEmailFields(tt.raw); got != tt.want {
				t.Errorf("ExtractEmailFields() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseClockDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"09:00 - 10:00", 60},
		{"14:30 - 15:00", 30},
		{"9 - 11", 120},
		{"not a range", 60},
	}

	for _, tt := range tests {
		if got := parseClockDuration(tt.input); got != tt.want {
			t.Errorf("parseClockDuration(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	got := escapeHTML(`<b>"A & B"</b>`)
	want := "&lt;b&gt;&quot;A &amp; B&quot;&lt;/b&gt;"
	if got != want {
		t.Errorf("escapeHTML() = %q, want %q", got, want)
	}
}
