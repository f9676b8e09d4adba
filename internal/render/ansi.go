// Package render produces the terminal presentation of a ContentDocument
// as a slice of display lines. Lines are never wrapped here; the
// controller truncates them against the terminal width at display time.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/viewport"
)

var (
	headingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC785C")).Bold(true)
	ruleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC785C"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	italicStyle    = lipgloss.NewStyle().Italic(true)
	strikeStyle    = lipgloss.NewStyle().Strikethrough(true)
	codeSpanStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#282828")).Foreground(lipgloss.Color("#E8DDD4"))
	linkStyle      = lipgloss.NewStyle().Underline(true)
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	checkedText    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#666666"))
	codeLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C8C8C8"))
	statusBarStyle = lipgloss.NewStyle().Reverse(true)
)

// Renderer renders documents for a terminal of a given width.
type Renderer struct {
	Width int
}

// New returns a renderer for the given terminal width.
func New(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	return &Renderer{Width: width}
}

// Render produces the full display buffer for a document.
func (r *Renderer) Render(doc document.ContentDocument) []string {
	var lines []string
	for i, sec := range doc.Sections {
		lines = append(lines, r.RenderSection(sec, i, len(doc.Sections))...)
	}
	return lines
}

// RenderViewport renders the document and returns only the lines inside
// the viewport window. Used for one-shot, non-interactive display.
func (r *Renderer) RenderViewport(doc document.ContentDocument, vp viewport.Viewport) []string {
	lines := r.Render(doc)
	vp.SetTotalLines(len(lines))
	start, end := vp.Slice()
	return lines[start:end]
}

// RenderSection renders one section, including its heading banner when
// present. index is zero-based; total is the document's section count.
func (r *Renderer) RenderSection(sec document.Section, index, total int) []string {
	var lines []string

	if sec.Type == document.SectionHeading && sec.Title != "" {
		lines = append(lines, r.renderHeading(sec.Title, sec.Level, index+1, total)...)
		lines = append(lines, "")
	}

	for _, blk := range sec.Blocks {
		// The heading text block duplicates the banner; skip it.
		if sec.Type == document.SectionHeading && blk.Type == document.BlockText &&
			blk.Text.HasStyle(document.StyleHeading) && blk.Text.Text == sec.Title {
			continue
		}
		lines = append(lines, r.renderBlock(blk)...)
	}

	lines = append(lines, "")
	return lines
}

func (r *Renderer) renderHeading(text string, level, sectionIndex, total int) []string {
	indicator := ""
	if total > 1 {
		indicator = " " + mutedStyle.Render(fmt.Sprintf("[%d/%d]", sectionIndex, total))
	}

	switch level {
	case 1:
		n := runewidth.StringWidth(text) + 4
		if max := r.Width - 10; n > max {
			n = max
		}
		if n < 0 {
			n = 0
		}
		return []string{
			headingStyle.Render("  "+text) + indicator,
			ruleStyle.Render("  " + strings.Repeat("═", n)),
		}
	case 2:
		return []string{headingStyle.Render("## "+text) + indicator}
	case 3:
		return []string{boldStyle.Render("### " + text)}
	default:
		return []string{boldStyle.Render(text)}
	}
}

func (r *Renderer) renderBlock(blk document.Block) []string {
	switch blk.Type {
	case document.BlockText:
		return []string{renderAttributedText(blk.Text)}
	case document.BlockTable:
		return renderTable(blk.Table)
	case document.BlockCode:
		return r.renderCodeBlock(blk.Code, blk.Language)
	case document.BlockList:
		return renderList(blk.Items, blk.Ordered)
	case document.BlockChecklist:
		return renderChecklist(blk.Checklist)
	case document.BlockImage:
		return []string{mutedStyle.Render("[Image: " + blk.Alt + "]")}
	case document.BlockLink:
		return []string{linkStyle.Render(blk.LinkText) + " " + mutedStyle.Render("("+blk.URL+")")}
	case document.BlockLineBreak:
		n := r.Width - 4
		if n < 0 {
			n = 0
		}
		return []string{strings.Repeat("─", n)}
	default:
		return nil
	}
}

// renderAttributedText applies the flattened style list to the whole
// span, innermost first, matching the accumulated-style model.
func renderAttributedText(at document.AttributedText) string {
	result := at.Text

	for _, style := range at.Styles {
		switch style.Kind {
		case document.StyleBold:
			result = boldStyle.Render(result)
		case document.StyleItalic:
			result = italicStyle.Render(result)
		case document.StyleStrikethrough:
			result = strikeStyle.Render(result)
		case document.StyleCode:
			result = codeSpanStyle.Render(" " + result + " ")
		case document.StyleLink:
			result = linkStyle.Render(result) + " " + mutedStyle.Render("("+style.URL+")")
		case document.StyleHeading:
			result = boldStyle.Render(result)
		}
	}

	return result
}

func renderTable(tbl document.Table) []string {
	widths := make([]int, len(tbl.Headers))
	for i, h := range tbl.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range tbl.Rows {
		for i := range widths {
			// Ragged rows: a missing cell counts as empty.
			if w := runewidth.StringWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	var lines []string
	lines = append(lines, border("┌", "┬", "┐"))

	headerCells := make([]string, len(tbl.Headers))
	for i, h := range tbl.Headers {
		headerCells[i] = " " + boldStyle.Render(runewidth.FillRight(h, widths[i])) + " "
	}
	lines = append(lines, "│"+strings.Join(headerCells, "│")+"│")
	lines = append(lines, border("├", "┼", "┤"))

	for _, row := range tbl.Rows {
		cells := make([]string, len(widths))
		for i, w := range widths {
			cells[i] = " " + runewidth.FillRight(cellAt(row, i), w) + " "
		}
		lines = append(lines, "│"+strings.Join(cells, "│")+"│")
	}

	lines = append(lines, border("└", "┴", "┘"))
	return lines
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func (r *Renderer) renderCodeBlock(code, language string) []string {
	var lines []string

	label := " "
	if language != "" {
		label += mutedStyle.Render(language)
	}
	lines = append(lines, label)

	highlighted := highlightCode(code, language)
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		lines = append(lines, "  "+line)
	}

	return lines
}

// highlightCode runs chroma over the fence content. Unknown languages or
// highlighter failures fall back to a flat code color.
func highlightCode(code, language string) string {
	if language != "" {
		var buf strings.Builder
		if err := quick.Highlight(&buf, code, language, "terminal256", "monokai"); err == nil {
			return buf.String()
		}
	}

	var plain []string
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		plain = append(plain, codeLineStyle.Render(line))
	}
	return strings.Join(plain, "\n")
}

func renderList(items []document.ListItem, ordered bool) []string {
	var lines []string

	for i, item := range items {
		indent := strings.Repeat("  ", item.Depth)
		var marker string
		switch {
		case ordered:
			marker = fmt.Sprintf("%d.", i+1)
		case item.Depth == 0:
			marker = "•"
		default:
			marker = "◦"
		}
		lines = append(lines, indent+marker+" "+item.Content.Text)

		if len(item.Children) > 0 {
			lines = append(lines, renderList(item.Children, false)...)
		}
	}

	return lines
}

func renderChecklist(items []document.ChecklistItem) []string {
	var lines []string

	for _, item := range items {
		indent := strings.Repeat("  ", item.Depth)
		var line string
		if item.IsChecked {
			line = indent + checkedStyle.Render("☑") + " " + checkedText.Render(item.Content.Text)
		} else {
			line = indent + mutedStyle.Render("☐") + " " + item.Content.Text
		}
		lines = append(lines, line)
	}

	return lines
}

// RenderStatusBar renders the inverse-video status line: mode, section
// position, scroll percentage and the quit/help hint.
func (r *Renderer) RenderStatusBar(mode string, currentSection, totalSections, scrollPercent int) string {
	left := fmt.Sprintf(" %s | Section %d/%d", mode, currentSection, totalSections)
	right := fmt.Sprintf("%d%% | q:quit ?:help ", scrollPercent)

	padding := r.Width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if padding < 0 {
		padding = 0
	}

	return statusBarStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// RenderHelp returns the static help screen content.
func (r *Renderer) RenderHelp() []string {
	return []string{
		headingStyle.Render("  canvas Keyboard Shortcuts"),
		"",
		boldStyle.Render("Navigation"),
		"  j/k or ↓/↑    Scroll down/up",
		"  g/G           Go to top/bottom",
		"  PgUp/PgDn     Page up/down",
		"  Tab           Next section",
		"  Shift+Tab     Previous section",
		"",
		boldStyle.Render("Sidebar"),
		"  [             Focus session list",
		"  ]             Exit session list",
		"  ↑/↓           Select session",
		"  Enter         Open selected session",
		"",
		boldStyle.Render("List Navigation"),
		"  h/l or ←/→    Previous/next item",
		"",
		boldStyle.Render("Actions"),
		"  c             Copy current section",
		"  C             Copy all as markdown",
		"  s             Save to Notes",
		"  e             Compose email",
		"  o             Open file in editor",
		"  r             Re-read file",
		"",
		boldStyle.Render("Search"),
		"  /             Start search",
		"  n/N           Next/previous match",
		"  Esc           Clear/cancel",
		"",
		boldStyle.Render("Other"),
		"  ?             Toggle this help",
		"  q             Quit",
		"",
		mutedStyle.Render("Press ? or Esc to close"),
	}
}
