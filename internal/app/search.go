package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/keys"
	"github.com/zhubert/canvas/internal/ui"
)

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.searchInput.Blur()
		m.setMode(ModeNormal)
		return m, nil

	case keys.Enter:
		m.searchQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.setMode(ModeNormal)
		return m, m.performSearch()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// performSearch runs the committed query over the display buffer and
// jumps to the first match.
func (m *Model) performSearch() tea.Cmd {
	m.recomputeMatches()

	if m.searchQuery == "" {
		return nil
	}
	if len(m.matches) == 0 {
		return m.flash("No matches for: " + m.searchQuery)
	}

	m.matchIdx = 0
	m.jumpToMatch()
	return m.flash(fmt.Sprintf("Match 1/%d for: %s", len(m.matches), m.searchQuery))
}

// recomputeMatches rebuilds the match line list for the current query.
// Styling is stripped before matching so escape sequences never split a
// hit.
func (m *Model) recomputeMatches() {
	m.matches = m.matches[:0]
	m.matchIdx = 0

	query := strings.ToLower(m.searchQuery)
	if query == "" {
		return
	}

	for i, line := range m.lines {
		if strings.Contains(strings.ToLower(ansi.Strip(line)), query) {
			m.matches = append(m.matches, i)
		}
	}
}

func (m *Model) nextMatch() tea.Cmd {
	return m.stepMatch(1)
}

func (m *Model) previousMatch() tea.Cmd {
	return m.stepMatch(-1)
}

func (m *Model) stepMatch(delta int) tea.Cmd {
	if len(m.matches) == 0 {
		return m.flash("No search results")
	}
	n := len(m.matches)
	m.matchIdx = (m.matchIdx + delta + n) % n
	m.jumpToMatch()
	return m.flash(fmt.Sprintf("Match %d/%d for: %s", m.matchIdx+1, n, m.searchQuery))
}

// jumpToMatch scrolls the viewport so the current match is visible.
func (m *Model) jumpToMatch() {
	if m.matchIdx >= len(m.matches) {
		return
	}
	target := m.matches[m.matchIdx] - 2
	if target < 0 {
		target = 0
	}
	m.vp.GoToTop()
	m.vp.ScrollDown(target)
}

// clearSearch drops the committed query and its highlights.
func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.matches = m.matches[:0]
	m.matchIdx = 0
}

// isMatchLine reports whether a display line is part of the current
// result set.
func (m *Model) isMatchLine(idx int) bool {
	for _, line := range m.matches {
		if line == idx {
			return true
		}
	}
	return false
}

// highlightMatches re-renders a matching line with the query hits in
// reverse video. The line's own styling is dropped in favor of the
// highlight.
func highlightMatches(line, query string) string {
	if query == "" {
		return line
	}

	plain := ansi.Strip(line)
	lower := strings.ToLower(plain)
	q := strings.ToLower(query)

	var b strings.Builder
	for {
		i := strings.Index(lower, q)
		if i < 0 {
			b.WriteString(plain)
			break
		}
		b.WriteString(plain[:i])
		b.WriteString(ui.SearchMatchStyle.Render(plain[i : i+len(q)]))
		plain = plain[i+len(q):]
		lower = lower[i+len(q):]
	}
	return b.String()
}
