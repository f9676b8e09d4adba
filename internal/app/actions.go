package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/clipboard"
	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/process"
)

// copySection copies the selected section back out as markdown.
func (m *Model) copySection() tea.Cmd {
	if m.currentSection >= len(m.doc.Sections) {
		return nil
	}
	md := sectionToMarkdown(m.doc.Sections[m.currentSection])
	if err := clipboard.Copy(md); err != nil {
		return m.flashError("Failed to copy: " + err.Error())
	}
	return m.flash("Copied section to clipboard")
}

// copyAll copies the document's verbatim markdown.
func (m *Model) copyAll() tea.Cmd {
	if err := clipboard.Copy(m.doc.RawMarkdown); err != nil {
		return m.flashError("Failed to copy: " + err.Error())
	}
	return m.flash("Copied all content to clipboard")
}

// saveToNotes exports the document through the mac-notes tool.
func (m *Model) saveToNotes() tea.Cmd {
	title := m.noteTitle()
	body := m.doc.RawMarkdown
	if body == "" {
		body = "Empty canvas"
	}

	return func() tea.Msg {
		ctx := context.Background()
		if err := process.SaveToNotes(ctx, title, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Saved to Notes: " + title}
	}
}

// composeEmail opens a mail compose window pre-filled with the document.
func (m *Model) composeEmail() tea.Cmd {
	subject := strings.TrimSpace(m.doc.Title)
	if subject == "" {
		subject = "Canvas Export"
	}
	body := m.doc.RawMarkdown

	return func() tea.Msg {
		if err := process.ComposeEmail(context.Background(), subject, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Mail compose opened"}
	}
}

// openInApp opens the watched file with the OS default application.
func (m *Model) openInApp() tea.Cmd {
	if m.filePath == "" {
		return m.flash("No file to open")
	}
	path := m.filePath

	return func() tea.Msg {
		if err := process.OpenInDefaultApp(context.Background(), path); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Opened: " + filepath.Base(path)}
	}
}

// noteTitle derives a single-line Notes title from the document, with a
// timestamp fallback for untitled canvases.
func (m *Model) noteTitle() string {
	title := strings.TrimSpace(m.doc.Title)
	if title == "" {
		title = "Canvas - " + time.Now().Format("2006-01-02 15:04")
	}
	if i := strings.IndexByte(title, '\n'); i >= 0 {
		title = title[:i]
	}
	return title
}

// sectionToMarkdown reconstructs a minimal markdown fragment for one
// section: heading, text, lists and checklists. Tables and code keep
// their place in the raw document and are not round-tripped here.
func sectionToMarkdown(sec document.Section) string {
	var b strings.Builder

	if sec.Type == document.SectionHeading && sec.Title != "" {
		b.WriteString(strings.Repeat("#", sec.Level))
		b.WriteString(" ")
		b.WriteString(sec.Title)
		b.WriteString("\n\n")
	}

	for _, blk := range sec.Blocks {
		switch blk.Type {
		case document.BlockText:
			if sec.Type == document.SectionHeading && blk.Text.HasStyle(document.StyleHeading) && blk.Text.Text == sec.Title {
				continue
			}
			b.WriteString(blk.Text.Text)
			b.WriteString("\n")
		case document.BlockChecklist:
			for _, item := range blk.Checklist {
				box := "[ ]"
				if item.IsChecked {
					box = "[x]"
				}
				b.WriteString("- " + box + " " + item.Content.Text + "\n")
			}
		case document.BlockList:
			for _, item := range blk.Items {
				b.WriteString("- " + item.Content.Text + "\n")
			}
		}
	}

	return b.String()
}
