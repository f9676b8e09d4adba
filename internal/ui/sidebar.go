package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/zhubert/canvas/internal/session"
)

// Sidebar represents the left panel with the session list.
type Sidebar struct {
	sessions     []session.Session
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.clamp()
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetSessions replaces the session list, keeping the current selection
// when the selected session still exists.
func (s *Sidebar) SetSessions(sessions []session.Session) {
	var selectedName string
	if s.selectedIdx < len(s.sessions) {
		selectedName = s.sessions[s.selectedIdx].Name
	}

	s.sessions = sessions
	s.selectedIdx = 0
	for i, sess := range sessions {
		if sess.Name == selectedName {
			s.selectedIdx = i
			break
		}
	}
	s.clamp()
}

// Sessions returns the current session list.
func (s *Sidebar) Sessions() []session.Session {
	return s.sessions
}

// MoveUp moves the selection up one entry.
func (s *Sidebar) MoveUp() {
	if s.selectedIdx > 0 {
		s.selectedIdx--
	}
	s.clamp()
}

// MoveDown moves the selection down one entry.
func (s *Sidebar) MoveDown() {
	if s.selectedIdx < len(s.sessions)-1 {
		s.selectedIdx++
	}
	s.clamp()
}

// Selected returns the currently selected session, if any.
func (s *Sidebar) Selected() (session.Session, bool) {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.sessions) {
		return session.Session{}, false
	}
	return s.sessions[s.selectedIdx], true
}

// Select moves the selection to the session with the given name.
func (s *Sidebar) Select(name string) {
	for i, sess := range s.sessions {
		if sess.Name == name {
			s.selectedIdx = i
			break
		}
	}
	s.clamp()
}

// visibleRows is the number of list rows after the title line.
func (s *Sidebar) visibleRows() int {
	rows := s.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clamp keeps the scroll window around the selection.
func (s *Sidebar) clamp() {
	rows := s.visibleRows()
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	}
	if s.selectedIdx >= s.scrollOffset+rows {
		s.scrollOffset = s.selectedIdx - rows + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	var b strings.Builder

	b.WriteString(SidebarTitleStyle.Render("Sessions"))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(SidebarItemStyle.Render("(no sessions)"))
		return b.String()
	}

	rows := s.visibleRows()
	end := s.scrollOffset + rows
	if end > len(s.sessions) {
		end = len(s.sessions)
	}

	for i := s.scrollOffset; i < end; i++ {
		sess := s.sessions[i]
		label := truncate(sess.Name, s.width-4)
		age := SidebarTimeStyle.Render(relativeTime(sess.ModTime))

		if i == s.selectedIdx && s.focused {
			b.WriteString(SidebarSelectedStyle.Render(label))
		} else if i == s.selectedIdx {
			b.WriteString(SidebarItemStyle.Bold(true).Render(label))
		} else {
			b.WriteString(SidebarItemStyle.Render(label))
		}
		b.WriteString(" ")
		b.WriteString(age)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// relativeTime formats a modification time as a short age like "5m" or
// "2d".
func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
