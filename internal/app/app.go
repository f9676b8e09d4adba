// Package app is the interactive terminal viewer: a Bubble Tea model
// wiring the parser, renderer, viewport, file watcher and session list
// into one event loop. All document and viewport state is owned by the
// model; the watcher hands content into the loop as messages.
package app

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/parser"
	"github.com/zhubert/canvas/internal/render"
	"github.com/zhubert/canvas/internal/session"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/viewport"
	"github.com/zhubert/canvas/internal/watcher"
)

// sidebarWidth is the fixed column width of the session list panel.
const sidebarWidth = 24

// sessionPollInterval is how often the session directory is re-listed
// for new canvas files, independent of the per-file watcher.
const sessionPollInterval = 2 * time.Second

// Mode is the controller's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSidebar
	ModeSearch
	ModeHelp
)

// String returns the status-bar name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSidebar:
		return "SIDEBAR"
	case ModeSearch:
		return "SEARCH"
	case ModeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// ContentMsg carries a watched file's new content into the event loop.
// Epoch identifies the watcher generation that produced it; events from
// a watcher that has since been replaced are discarded.
type ContentMsg struct {
	Epoch   int
	Content string
}

// sessionTickMsg drives the periodic session-directory poll.
type sessionTickMsg time.Time

// flashExpireMsg clears an expired footer status message.
type flashExpireMsg time.Time

// actionDoneMsg reports the outcome of a fire-and-forget action.
type actionDoneMsg struct {
	status string
	err    error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	footer  *ui.Footer
	sidebar *ui.Sidebar

	width  int
	height int
	mode   Mode

	filePath string
	doc      document.ContentDocument
	vp       viewport.Viewport
	renderer *render.Renderer

	// Display cache, rebuilt on content or size changes.
	lines         []string
	sectionStarts []int

	currentSection int
	currentItem    int
	collapsed      map[int]bool

	// helpObscured is set when a content update arrives while the help
	// overlay is showing: the new frame replaces the overlay without
	// leaving help mode.
	helpObscured bool

	// Search state
	searchInput textinput.Model
	searchQuery string
	matches     []int
	matchIdx    int

	// Watcher state
	watcher    *watcher.Watcher
	watchEpoch int
	contentCh  chan ContentMsg

	quitting bool
}

var appLog = logger.ComponentLogger("app")

// New creates the viewer model. filePath may be empty, in which case the
// most recently modified session file is opened at startup.
func New(cfg *config.Config, filePath string) *Model {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 128

	m := &Model{
		config:      cfg,
		footer:      ui.NewFooter(),
		sidebar:     ui.NewSidebar(),
		filePath:    filePath,
		renderer:    render.New(80),
		collapsed:   make(map[int]bool),
		searchInput: ti,
		contentCh:   make(chan ContentMsg, 16),
	}
	return m
}

// FilePath returns the path of the currently watched file.
func (m *Model) FilePath() string {
	return m.filePath
}

// Mode returns the current input mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	m.refreshSessions()

	if m.filePath == "" {
		if latest, ok := session.MostRecent(m.config.GetCanvasDir()); ok {
			m.filePath = latest.Path
			m.sidebar.Select(latest.Name)
		}
	}

	cmds := []tea.Cmd{m.sessionTick()}
	if m.filePath != "" {
		cmds = append(cmds, m.startWatching(m.filePath))
	}
	return tea.Batch(cmds...)
}

// refreshSessions re-lists the session directory into the sidebar.
func (m *Model) refreshSessions() {
	sessions, err := session.List(m.config.GetCanvasDir())
	if err != nil {
		appLog.Debug("session list failed", "error", err)
		return
	}
	m.sidebar.SetSessions(sessions)
}

// sessionTick schedules the next session-directory poll.
func (m *Model) sessionTick() tea.Cmd {
	return tea.Tick(sessionPollInterval, func(t time.Time) tea.Msg {
		return sessionTickMsg(t)
	})
}

// flashExpiry schedules the footer flash to clear.
func (m *Model) flashExpiry() tea.Cmd {
	return tea.Tick(ui.FlashDuration, func(t time.Time) tea.Msg {
		return flashExpireMsg(t)
	})
}

// flash shows a transient status message.
func (m *Model) flash(msg string) tea.Cmd {
	m.footer.Flash(msg)
	return m.flashExpiry()
}

// flashError shows a transient error message.
func (m *Model) flashError(msg string) tea.Cmd {
	appLog.Warn(msg)
	m.footer.FlashError(msg)
	return m.flashExpiry()
}

// setContent replaces the document from freshly read markdown.
func (m *Model) setContent(raw string) {
	prevSections := len(m.doc.Sections)
	m.doc = parser.Parse(raw)

	if len(m.doc.Sections) != prevSections {
		m.currentSection = 0
		m.currentItem = 0
		m.collapsed = make(map[int]bool)
	}

	m.rebuildLines()
	m.recomputeMatches()
}

// contentHeight is the number of rows available to document lines.
func (m *Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// contentWidth is the number of columns right of the sidebar.
func (m *Model) contentWidth() int {
	w := m.width - sidebarWidth - 1
	if w < 1 {
		w = 1
	}
	return w
}
