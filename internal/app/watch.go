package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/session"
	"github.com/zhubert/canvas/internal/watcher"
)

// startWatching switches the watched file. The previous watcher is
// stopped before the new one starts, and the epoch is bumped so any of
// its late events are discarded by the update loop.
func (m *Model) startWatching(path string) tea.Cmd {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}

	m.watchEpoch++
	epoch := m.watchEpoch
	ch := m.contentCh

	debounce := time.Duration(m.config.GetDebounceMS()) * time.Millisecond
	w := watcher.New(path, debounce, func(content string) {
		select {
		case ch <- ContentMsg{Epoch: epoch, Content: content}:
		default:
			// Loop is behind; the next change re-delivers.
		}
	})

	if err := w.Start(); err != nil {
		return m.flashError("Error watching: " + err.Error())
	}

	m.watcher = w
	m.filePath = path
	appLog.Debug("watching file", "path", path, "epoch", epoch)
	return m.listenForContent()
}

// listenForContent waits for the next watcher delivery.
func (m *Model) listenForContent() tea.Cmd {
	ch := m.contentCh
	return func() tea.Msg {
		return <-ch
	}
}

// stopWatching tears down the active watcher, if any.
func (m *Model) stopWatching() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

// openSession switches the viewer to a session file and leaves the
// sidebar.
func (m *Model) openSession(sess session.Session) tea.Cmd {
	m.mode = ModeNormal
	m.footer.SetMode(m.mode.String())
	m.sidebar.SetFocused(false)

	watch := m.startWatching(sess.Path)
	return tea.Batch(watch, m.flash("Opened: "+sess.Name))
}

// pollSessions refreshes the sidebar and auto-switches to a canvas file
// that appeared since the last poll, but only when it is the most
// recent one.
func (m *Model) pollSessions() tea.Cmd {
	known := make(map[string]bool, len(m.sidebar.Sessions()))
	for _, sess := range m.sidebar.Sessions() {
		known[sess.Path] = true
	}

	m.refreshSessions()

	sessions := m.sidebar.Sessions()
	if len(sessions) == 0 || known[sessions[0].Path] {
		return nil
	}
	if sessions[0].Path == m.filePath {
		return nil
	}

	latest := sessions[0]
	m.sidebar.Select(latest.Name)
	watch := m.startWatching(latest.Path)
	return tea.Batch(watch, m.flash("Switched to: "+latest.Name))
}
