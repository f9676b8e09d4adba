package app

import (
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/keys"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar.SetSize(sidebarWidth, m.contentHeight())
		m.footer.SetWidth(msg.Width)
		m.rebuildLines()
		return m, nil

	case ContentMsg:
		if msg.Epoch != m.watchEpoch {
			appLog.Debug("dropping stale watcher event", "epoch", msg.Epoch, "current", m.watchEpoch)
			return m, m.listenForContent()
		}
		m.setContent(msg.Content)
		if m.mode == ModeHelp {
			// The update replaces the help overlay without leaving
			// help mode; dismiss keys still apply.
			m.helpObscured = true
		}
		return m, m.listenForContent()

	case sessionTickMsg:
		cmd := m.pollSessions()
		return m, tea.Batch(cmd, m.sessionTick())

	case flashExpireMsg:
		m.footer.ClearExpired(time.Time(msg))
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			return m, m.flashError(msg.err.Error())
		}
		return m, m.flash(msg.status)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// setMode transitions between input modes and keeps the widgets in sync.
func (m *Model) setMode(mode Mode) {
	m.mode = mode
	m.footer.SetMode(mode.String())
	m.sidebar.SetFocused(mode == ModeSidebar)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keys.CtrlC {
		return m.quit()
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeHelp:
		return m.handleHelpKey(msg)
	case ModeSidebar:
		return m.handleSidebarKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.stopWatching()
	return m, tea.Quit
}

// handleHelpKey dismisses the overlay on the dismiss keys and swallows
// everything else.
func (m *Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "q", keys.Escape:
		m.helpObscured = false
		m.setMode(ModeNormal)
	}
	return m, nil
}

func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Up, "k":
		m.sidebar.MoveUp()
	case keys.Down, "j":
		m.sidebar.MoveDown()
	case keys.Enter:
		if sel, ok := m.sidebar.Selected(); ok {
			return m, m.openSession(sel)
		}
	case "]", keys.Escape:
		m.setMode(ModeNormal)
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "?":
		m.helpObscured = false
		m.setMode(ModeHelp)

	case "[":
		m.refreshSessions()
		m.setMode(ModeSidebar)
		return m, m.flash("Sidebar focused (↑↓ select, Enter open, ] exit)")

	case "j", keys.Down:
		m.vp.ScrollDown(1)
	case "k", keys.Up:
		m.vp.ScrollUp(1)
	case "g", keys.Home:
		m.vp.GoToTop()
	case "G", keys.End:
		m.vp.GoToBottom()
	case keys.PgDown, keys.Space:
		m.vp.PageDown()
	case keys.PgUp:
		m.vp.PageUp()

	case keys.Tab:
		m.nextSection()
	case keys.ShiftTab:
		m.previousSection()

	case "l", keys.Right:
		return m, m.nextItem()
	case "h", keys.Left:
		return m, m.previousItem()

	case keys.Enter:
		m.toggleSection()

	case "c":
		return m, m.copySection()
	case "C":
		return m, m.copyAll()
	case "s":
		return m, m.saveToNotes()
	case "e":
		return m, m.composeEmail()
	case "o":
		return m, m.openInApp()
	case "r":
		return m, m.rereadFile()

	case "/":
		m.setMode(ModeSearch)
		m.searchInput.SetValue("")
		m.searchInput.Focus()
	case "n":
		return m, m.nextMatch()
	case "N":
		return m, m.previousMatch()

	case keys.Escape:
		m.footer.ClearFlash()
		m.clearSearch()
	}

	return m, nil
}

// rereadFile re-reads the watched file from disk.
func (m *Model) rereadFile() tea.Cmd {
	if m.filePath == "" {
		return m.flash("No canvas selected")
	}
	content, err := os.ReadFile(m.filePath)
	if err != nil {
		return m.flashError("Reload failed: " + err.Error())
	}
	m.setContent(string(content))
	return m.flash("Reloaded")
}
