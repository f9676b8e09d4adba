package document

import (
	"fmt"
	"strings"
)

// PlainText flattens the document to unstyled text, dropping all markup.
// Used for clipboard and export actions rather than display.
func (d ContentDocument) PlainText() string {
	var b strings.Builder

	for i, sec := range d.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.PlainText())
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// PlainText flattens one section to unstyled text. A heading section's
// title is not printed separately because the heading text is already the
// section's first block.
func (s Section) PlainText() string {
	var b strings.Builder
	for _, blk := range s.Blocks {
		writeBlockText(&b, blk)
	}
	return b.String()
}

func writeBlockText(b *strings.Builder, blk Block) {
	switch blk.Type {
	case BlockText:
		b.WriteString(blk.Text.Text)
		b.WriteString("\n")
	case BlockTable:
		if len(blk.Table.Headers) > 0 {
			b.WriteString(strings.Join(blk.Table.Headers, "\t"))
			b.WriteString("\n")
		}
		for _, row := range blk.Table.Rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
	case BlockCode:
		b.WriteString(blk.Code)
		if !strings.HasSuffix(blk.Code, "\n") {
			b.WriteString("\n")
		}
	case BlockList:
		writeListText(b, blk.Items, blk.Ordered)
	case BlockChecklist:
		for _, item := range blk.Checklist {
			b.WriteString(strings.Repeat("  ", item.Depth))
			if item.IsChecked {
				b.WriteString("[x] ")
			} else {
				b.WriteString("[ ] ")
			}
			b.WriteString(item.Content.Text)
			b.WriteString("\n")
		}
	case BlockImage:
		if blk.Alt != "" {
			b.WriteString(blk.Alt)
			b.WriteString("\n")
		}
	case BlockLink:
		if blk.LinkText != "" {
			b.WriteString(blk.LinkText)
			b.WriteString("\n")
		} else if blk.URL != "" {
			b.WriteString(blk.URL)
			b.WriteString("\n")
		}
	case BlockLineBreak:
		b.WriteString("\n")
	}
}

func writeListText(b *strings.Builder, items []ListItem, ordered bool) {
	for i, item := range items {
		b.WriteString(strings.Repeat("  ", item.Depth))
		if ordered {
			fmt.Fprintf(b, "%d. ", i+1)
		} else {
			b.WriteString("- ")
		}
		b.WriteString(item.Content.Text)
		b.WriteString("\n")
		if len(item.Children) > 0 {
			writeListText(b, item.Children, false)
		}
	}
}
