package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/document"
	"github.com/zhubert/canvas/internal/render"
)

// rebuildLines regenerates the display buffer and the per-section line
// offsets, honoring collapsed sections.
func (m *Model) rebuildLines() {
	if m.renderer == nil || m.renderer.Width != m.contentWidth() {
		m.renderer = render.New(m.contentWidth())
	}

	total := len(m.doc.Sections)
	m.lines = m.lines[:0]
	m.sectionStarts = m.sectionStarts[:0]

	for i, sec := range m.doc.Sections {
		m.sectionStarts = append(m.sectionStarts, len(m.lines))

		if m.collapsed[i] {
			heading := sec
			heading.Blocks = nil
			m.lines = append(m.lines, m.renderer.RenderSection(heading, i, total)...)
			continue
		}
		m.lines = append(m.lines, m.renderer.RenderSection(sec, i, total)...)
	}

	m.vp.SetTotalLines(len(m.lines))
	m.vp.SetVisibleLines(m.contentHeight())
}

// nextSection advances the selected section, wrapping around.
func (m *Model) nextSection() {
	if len(m.doc.Sections) == 0 {
		return
	}
	m.currentSection = (m.currentSection + 1) % len(m.doc.Sections)
	m.currentItem = 0
	m.scrollToSection()
}

// previousSection moves the selected section back, wrapping around.
func (m *Model) previousSection() {
	if len(m.doc.Sections) == 0 {
		return
	}
	n := len(m.doc.Sections)
	m.currentSection = (m.currentSection - 1 + n) % n
	m.currentItem = 0
	m.scrollToSection()
}

// scrollToSection positions the viewport so the selected section's
// heading sits near the top of the content area.
func (m *Model) scrollToSection() {
	if m.currentSection >= len(m.sectionStarts) {
		return
	}
	target := m.sectionStarts[m.currentSection] - 2
	if target < 0 {
		target = 0
	}
	m.vp.GoToTop()
	m.vp.ScrollDown(target)
}

// toggleSection collapses or expands the selected section.
func (m *Model) toggleSection() {
	if m.currentSection >= len(m.doc.Sections) {
		return
	}
	m.collapsed[m.currentSection] = !m.collapsed[m.currentSection]
	m.rebuildLines()
}

// itemCount returns the entry count of the first list, checklist or
// table in the section; zero when it has none.
func itemCount(sec document.Section) int {
	for _, blk := range sec.Blocks {
		switch blk.Type {
		case document.BlockList:
			return len(blk.Items)
		case document.BlockChecklist:
			return len(blk.Checklist)
		case document.BlockTable:
			return len(blk.Table.Rows)
		}
	}
	return 0
}

// nextItem cycles forward through the selected section's items.
func (m *Model) nextItem() tea.Cmd {
	return m.stepItem(1)
}

// previousItem cycles backward through the selected section's items.
func (m *Model) previousItem() tea.Cmd {
	return m.stepItem(-1)
}

func (m *Model) stepItem(delta int) tea.Cmd {
	if m.currentSection >= len(m.doc.Sections) {
		return nil
	}
	count := itemCount(m.doc.Sections[m.currentSection])
	if count == 0 {
		return nil
	}
	m.currentItem = (m.currentItem + delta + count) % count
	return m.flash(fmt.Sprintf("Item %d/%d", m.currentItem+1, count))
}
