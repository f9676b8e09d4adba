// Package parser converts the constrained markdown dialect into a
// document.ContentDocument. Parsing is total: malformed or unrecognized
// input degrades to plain text rather than returning an error.
package parser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/zhubert/canvas/internal/document"
)

// The task-list extension is deliberately not enabled: checklist detection
// works on the literal item text so that a list where only some items carry
// a marker stays a plain list with the markers visible.
var md = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Parse converts markdown into a ContentDocument. The document kind is
// derived from marker substrings in the raw text.
func Parse(markdown string) document.ContentDocument {
	kind, view := document.Classify(markdown)
	return ParseTagged(markdown, kind, view)
}

// ParseTagged converts markdown into a ContentDocument with an explicit
// document kind, bypassing the substring classifier. Used by callers that
// know what layout they authored.
func ParseTagged(markdown string, kind document.Kind, view document.CalendarView) document.ContentDocument {
	src := []byte(markdown)
	root := md.Parser().Parse(gtext.NewReader(src))

	var sections []document.Section
	var current *document.Section
	title := ""

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		sec := processBlock(node, src)

		switch {
		case sec.Type == document.SectionHeading && sec.Level <= 2:
			// h1/h2 closes the open section and starts a new one
			if current != nil {
				sections = append(sections, *current)
			}
			s := sec
			current = &s
			if title == "" && sec.Level == 1 {
				title = sec.Title
			}
		case current != nil:
			current.Blocks = append(current.Blocks, sec.Blocks...)
		default:
			// No section open yet: the block's own section becomes the
			// implicit one. Deep headings lose their section identity and
			// open a plain paragraph section instead.
			s := sec
			if s.Type == document.SectionHeading {
				s.Type = document.SectionParagraph
				s.Title = ""
				s.Level = 0
			}
			current = &s
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	for i := range sections {
		sections[i].ID = sectionID(i, sections[i])
	}

	return document.ContentDocument{
		Sections:     sections,
		Title:        title,
		RawMarkdown:  markdown,
		Kind:         kind,
		CalendarView: view,
	}
}

// sectionID derives a deterministic identifier so that a re-parse of
// unchanged content yields the same IDs, letting the UI carry
// expand/select state across re-renders.
func sectionID(index int, sec document.Section) string {
	fingerprint := fmt.Sprintf("%d:%d:%s:%s", index, sec.Type, sec.Title, sec.PlainText())
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fingerprint)).String()
}

// processBlock maps one top-level AST node to a section carrying its
// content. Only heading sections survive as boundaries; other sections
// contribute their blocks to whatever section is open.
func processBlock(node ast.Node, src []byte) document.Section {
	switch n := node.(type) {
	case *ast.Heading:
		text := extractText(n, src)
		return document.Section{
			Type:  document.SectionHeading,
			Level: n.Level,
			Title: text,
			Blocks: []document.Block{{
				Type: document.BlockText,
				Text: document.AttributedText{
					Text:   text,
					Styles: []document.Style{{Kind: document.StyleHeading, Level: n.Level}},
					Spans: []document.StyleSpan{
						{Start: 0, End: len(text), Style: document.Style{Kind: document.StyleHeading, Level: n.Level}},
					},
				},
			}},
		}

	case *ast.Paragraph:
		return document.Section{
			Type:   document.SectionParagraph,
			Blocks: []document.Block{{Type: document.BlockText, Text: processInline(n, src)}},
		}

	case *ast.FencedCodeBlock:
		lang := string(n.Language(src))
		code := blockLines(n, src)
		return document.Section{
			Type:     document.SectionCodeBlock,
			Language: lang,
			Blocks:   []document.Block{{Type: document.BlockCode, Language: lang, Code: code}},
		}

	case *ast.CodeBlock:
		code := blockLines(n, src)
		return document.Section{
			Type:   document.SectionCodeBlock,
			Blocks: []document.Block{{Type: document.BlockCode, Code: code}},
		}

	case *ast.List:
		items := processList(n, src, 0)
		if n.IsOrdered() {
			return document.Section{
				Type:    document.SectionList,
				Ordered: true,
				Blocks:  []document.Block{{Type: document.BlockList, Ordered: true, Items: items}},
			}
		}
		if len(items) > 0 && allChecklistItems(items) {
			checklist := make([]document.ChecklistItem, 0, len(items))
			for _, item := range items {
				checked, text := parseChecklistText(item.Content.Text)
				checklist = append(checklist, document.ChecklistItem{
					Content:   document.AttributedText{Text: text},
					Depth:     item.Depth,
					IsChecked: checked,
				})
			}
			return document.Section{
				Type:   document.SectionChecklist,
				Blocks: []document.Block{{Type: document.BlockChecklist, Checklist: checklist}},
			}
		}
		return document.Section{
			Type:   document.SectionList,
			Blocks: []document.Block{{Type: document.BlockList, Items: items}},
		}

	case *east.Table:
		return document.Section{
			Type:   document.SectionTable,
			Blocks: []document.Block{{Type: document.BlockTable, Table: processTable(n, src)}},
		}

	case *ast.Blockquote:
		text := extractText(n, src)
		return document.Section{
			Type: document.SectionBlockquote,
			Blocks: []document.Block{{
				Type: document.BlockText,
				Text: document.AttributedText{
					Text:   text,
					Styles: []document.Style{{Kind: document.StyleItalic}},
					Spans: []document.StyleSpan{
						{Start: 0, End: len(text), Style: document.Style{Kind: document.StyleItalic}},
					},
				},
			}},
		}

	case *ast.ThematicBreak:
		return document.Section{
			Type:   document.SectionThematicBreak,
			Blocks: []document.Block{{Type: document.BlockLineBreak}},
		}

	default:
		// Fallback for unknown types: keep whatever plain text is under
		// the node, drop the node otherwise.
		text := extractText(node, src)
		if text != "" {
			return document.Section{
				Type:   document.SectionParagraph,
				Blocks: []document.Block{{Type: document.BlockText, Text: document.AttributedText{Text: text}}},
			}
		}
		return document.Section{Type: document.SectionParagraph}
	}
}

// processInline flattens a paragraph's inline tree into one attributed
// span. Styles accumulate over the whole span; Spans additionally record
// which byte range each style actually covered.
func processInline(node ast.Node, src []byte) document.AttributedText {
	var b strings.Builder
	var styles []document.Style
	var spans []document.StyleSpan

	appendStyled := func(text string, style document.Style) {
		start := b.Len()
		b.WriteString(text)
		styles = append(styles, style)
		spans = append(spans, document.StyleSpan{Start: start, End: b.Len(), Style: style})
	}

	var traverse func(n ast.Node)
	traverse = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.Emphasis:
			kind := document.StyleItalic
			if t.Level >= 2 {
				kind = document.StyleBold
			}
			appendStyled(extractText(t, src), document.Style{Kind: kind})
		case *ast.CodeSpan:
			appendStyled(extractText(t, src), document.Style{Kind: document.StyleCode})
		case *ast.Link:
			appendStyled(extractText(t, src), document.Style{Kind: document.StyleLink, URL: string(t.Destination)})
		case *ast.AutoLink:
			url := string(t.URL(src))
			appendStyled(url, document.Style{Kind: document.StyleLink, URL: url})
		case *east.Strikethrough:
			appendStyled(extractText(t, src), document.Style{Kind: document.StyleStrikethrough})
		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				traverse(c)
			}
		}
	}

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		traverse(c)
	}

	return document.AttributedText{Text: b.String(), Styles: styles, Spans: spans}
}

// processList converts list items at the given depth, re-parenting nested
// lists as children at depth+1.
func processList(list *ast.List, src []byte, depth int) []document.ListItem {
	var result []document.ListItem

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var textParts []string
		var children []document.ListItem

		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				children = append(children, processList(nested, src, depth+1)...)
				continue
			}
			if t := strings.TrimSpace(extractText(c, src)); t != "" {
				textParts = append(textParts, t)
			}
		}

		result = append(result, document.ListItem{
			Content:  document.AttributedText{Text: strings.Join(textParts, " ")},
			Depth:    depth,
			Children: children,
		})
	}

	return result
}

func processTable(table *east.Table, src []byte) document.Table {
	var headers []string
	var rows [][]string

	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, extractText(cell, src))
		}
		if _, ok := row.(*east.TableHeader); ok {
			headers = cells
			continue
		}
		rows = append(rows, cells)
	}

	alignments := make([]document.Alignment, len(headers))
	for i := range headers {
		if i >= len(table.Alignments) {
			break
		}
		switch table.Alignments[i] {
		case east.AlignCenter:
			alignments[i] = document.AlignCenter
		case east.AlignRight:
			alignments[i] = document.AlignRight
		default:
			alignments[i] = document.AlignLeft
		}
	}

	return document.Table{Headers: headers, Rows: rows, Alignments: alignments}
}

// extractText collects the plain text under a node, collapsing line
// breaks to single spaces and dropping all markup.
func extractText(node ast.Node, src []byte) string {
	var b strings.Builder

	var traverse func(n ast.Node)
	traverse = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				traverse(c)
			}
		}
	}

	traverse(node)
	return b.String()
}

// blockLines joins the source lines a block node spans.
func blockLines(node ast.Node, src []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

func allChecklistItems(items []document.ListItem) bool {
	for _, item := range items {
		text := item.Content.Text
		if !strings.HasPrefix(text, "[ ]") && !strings.HasPrefix(text, "[x]") && !strings.HasPrefix(text, "[X]") {
			return false
		}
	}
	return true
}

func parseChecklistText(text string) (bool, string) {
	switch {
	case strings.HasPrefix(text, "[x]"), strings.HasPrefix(text, "[X]"):
		return true, strings.TrimSpace(text[3:])
	case strings.HasPrefix(text, "[ ]"):
		return false, strings.TrimSpace(text[3:])
	}
	return false, text
}
