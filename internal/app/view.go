package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/ui"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render produces the frame: sidebar, content slice, status bar and footer.
func (m *Model) render() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp && !m.helpObscured {
		return strings.Join(m.renderer.RenderHelp(), "\n")
	}

	contentHeight := m.contentHeight()

	borderColor := ui.ColorBorder
	if m.mode == ModeSidebar {
		borderColor = ui.ColorPrimary
	}
	sidebar := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(borderColor).
		Render(m.sidebar.View())

	content := lipgloss.NewStyle().
		Width(m.contentWidth()).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(m.contentView())

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	status := m.renderer.RenderStatusBar(
		m.mode.String(), m.currentSection+1, len(m.doc.Sections), m.vp.ScrollPercent())

	bottom := m.footer.View()
	if m.mode == ModeSearch {
		bottom = ui.SearchPromptStyle.Render(" /") + m.searchInput.View()
	}

	return main + "\n" + status + "\n" + bottom
}

// contentView renders the visible document slice, applying search
// highlights and truncating lines to the content column.
func (m *Model) contentView() string {
	if len(m.lines) == 0 {
		return m.emptyView()
	}

	start, end := m.vp.Slice()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := m.lines[i]
		if m.searchQuery != "" && m.isMatchLine(i) {
			line = highlightMatches(line, m.searchQuery)
		}
		rows = append(rows, ansi.Truncate(line, m.contentWidth(), ""))
	}
	return strings.Join(rows, "\n")
}

// emptyView is shown while no document content has arrived.
func (m *Model) emptyView() string {
	hint := "No canvas selected"
	if m.filePath != "" {
		hint = "Write to: " + m.filePath
	}

	msg := ui.FooterDescStyle.Render("Waiting for content...") + "\n\n" +
		ui.FooterDescStyle.Render(hint)

	return lipgloss.Place(m.contentWidth(), m.contentHeight(),
		lipgloss.Center, lipgloss.Center, msg)
}
