package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// FlashDuration is how long a status message stays visible before the
// normal keybinding hints return.
const FlashDuration = 3 * time.Second

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings and
// transient status messages.
type Footer struct {
	width    int
	mode     string
	flash    string
	flashErr bool
	flashAt  time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{mode: "NORMAL"}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode updates the mode the hints are rendered for.
func (f *Footer) SetMode(mode string) {
	f.mode = mode
}

// Flash shows a transient status message in place of the hints.
func (f *Footer) Flash(msg string) {
	f.flash = msg
	f.flashErr = false
	f.flashAt = time.Now()
}

// FlashError shows a transient error message in place of the hints.
func (f *Footer) FlashError(msg string) {
	f.flash = msg
	f.flashErr = true
	f.flashAt = time.Now()
}

// HasFlash reports whether a status message is currently showing.
func (f *Footer) HasFlash() bool {
	return f.flash != ""
}

// ClearFlash drops the flash message immediately.
func (f *Footer) ClearFlash() {
	f.flash = ""
	f.flashErr = false
}

// ClearExpired drops the flash message once it has been visible for
// FlashDuration. Returns true when a message was cleared.
func (f *Footer) ClearExpired(now time.Time) bool {
	if f.flash == "" || now.Sub(f.flashAt) < FlashDuration {
		return false
	}
	f.flash = ""
	f.flashErr = false
	return true
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		style := FlashStyle
		if f.flashErr {
			style = FlashErrorStyle
		}
		return style.Width(f.width).Render(f.flash)
	}

	var bindings []KeyBinding
	switch f.mode {
	case "SIDEBAR":
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "]", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case "SEARCH":
		bindings = []KeyBinding{
			{Key: "enter", Desc: "search"},
			{Key: "esc", Desc: "cancel"},
		}
	case "HELP":
		bindings = []KeyBinding{
			{Key: "?/esc/q", Desc: "close"},
		}
	default:
		bindings = []KeyBinding{
			{Key: "j/k", Desc: "scroll"},
			{Key: "tab", Desc: "section"},
			{Key: "[", Desc: "sessions"},
			{Key: "/", Desc: "search"},
			{Key: "c", Desc: "copy"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
