// Package document defines the intermediate representation shared by the
// markdown parser and every renderer. A ContentDocument is produced whole
// by one parse and replaced whole by the next; nothing patches it in place.
package document

import "strings"

// SectionType identifies the markdown construct that opened a section.
type SectionType int

const (
	SectionHeading SectionType = iota
	SectionParagraph
	SectionTable
	SectionCodeBlock
	SectionList
	SectionChecklist
	SectionBlockquote
	SectionThematicBreak
)

func (t SectionType) String() string {
	switch t {
	case SectionHeading:
		return "heading"
	case SectionParagraph:
		return "paragraph"
	case SectionTable:
		return "table"
	case SectionCodeBlock:
		return "codeBlock"
	case SectionList:
		return "list"
	case SectionChecklist:
		return "checklist"
	case SectionBlockquote:
		return "blockquote"
	case SectionThematicBreak:
		return "thematicBreak"
	default:
		return "unknown"
	}
}

// Style is a single inline formatting attribute.
type Style struct {
	Kind  StyleKind
	URL   string // set for StyleLink
	Level int    // set for StyleHeading
}

// StyleKind enumerates the inline styles the dialect supports.
type StyleKind int

const (
	StyleBold StyleKind = iota
	StyleItalic
	StyleStrikethrough
	StyleCode
	StyleLink
	StyleHeading
)

// StyleSpan applies one style to a byte range of the text. The parser
// records spans alongside the flattened Styles list so renderers that
// want partial styling can have it without changing the default model.
type StyleSpan struct {
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
	Style Style
}

// AttributedText is a string plus its accumulated styles. Styles applies
// to the whole string; Spans carries per-range detail when available.
type AttributedText struct {
	Text   string
	Styles []Style
	Spans  []StyleSpan
}

// HasStyle reports whether the flattened style list contains the kind.
func (a AttributedText) HasStyle(kind StyleKind) bool {
	for _, s := range a.Styles {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// LinkURL returns the first link style's URL, or "".
func (a AttributedText) LinkURL() string {
	for _, s := range a.Styles {
		if s.Kind == StyleLink {
			return s.URL
		}
	}
	return ""
}

// Alignment is a table column alignment. Unspecified columns are left.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Table holds a parsed table. Rows may be ragged; consumers must treat
// missing cells as empty strings.
type Table struct {
	Headers    []string
	Rows       [][]string
	Alignments []Alignment
}

// Cell returns the cell at (row, col), or "" when the row is short.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// ColumnAlignment returns the alignment for col, defaulting to left.
func (t Table) ColumnAlignment(col int) Alignment {
	if col < 0 || col >= len(t.Alignments) {
		return AlignLeft
	}
	return t.Alignments[col]
}

// ListItem is one entry in an ordered or unordered list. Children are
// nested lists re-parented under this item at Depth+1.
type ListItem struct {
	Content  AttributedText
	Depth    int
	Children []ListItem
}

// ChecklistItem is a task-list entry with its checked state.
type ChecklistItem struct {
	Content   AttributedText
	Depth     int
	IsChecked bool
}

// BlockType tags a Block variant.
type BlockType int

const (
	BlockText BlockType = iota
	BlockTable
	BlockCode
	BlockList
	BlockChecklist
	BlockImage
	BlockLink
	BlockLineBreak
)

// Block is one renderable unit inside a Section. Exactly the fields for
// its Type are populated; blocks never reference each other.
type Block struct {
	Type BlockType

	Text      AttributedText  // BlockText
	Table     Table           // BlockTable
	Language  string          // BlockCode
	Code      string          // BlockCode
	Ordered   bool            // BlockList
	Items     []ListItem      // BlockList
	Checklist []ChecklistItem // BlockChecklist
	Alt       string          // BlockImage
	URL       string          // BlockImage, BlockLink
	LinkText  string          // BlockLink
}

// Section is a contiguous heading-delimited region of the document.
// ID is stable for the lifetime of one parse and lets the UI carry
// expand/select state across re-renders of unchanged content.
type Section struct {
	ID       string
	Type     SectionType
	Level    int    // heading level for SectionHeading
	Language string // fence language for SectionCodeBlock
	Ordered  bool   // for SectionList
	Title    string // heading text for SectionHeading
	Blocks   []Block

	// UI-only state, not part of parse identity.
	IsExpanded bool
	IsSelected bool
}

// Kind classifies what layout a document should render with. Authors can
// set it explicitly; otherwise Classify derives it from marker substrings.
type Kind int

const (
	KindStandard Kind = iota
	KindEmailCompose
	KindCalendarLive
	KindCalendarStatic
)

// CalendarView selects the live calendar grid granularity.
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

// ContentDocument is the parse result. RawMarkdown is always the literal
// input that produced Sections.
type ContentDocument struct {
	Sections     []Section
	Title        string
	RawMarkdown  string
	Kind         Kind
	CalendarView CalendarView
}

// Classify derives a document Kind from marker substrings in raw markdown.
// Precedence mirrors what the upstream generator relies on: email markers
// win over live calendar markers, which win over static calendar markers.
func Classify(raw string) (Kind, CalendarView) {
	if strings.Contains(raw, "# Email Preview") || strings.Contains(raw, "# Email Compose") {
		return KindEmailCompose, ""
	}
	if strings.Contains(raw, "<!-- calendar:live") {
		view := ViewDay
		if strings.Contains(raw, "<!-- calendar:live:week") {
			view = ViewWeek
		} else if strings.Contains(raw, "<!-- calendar:live:month") {
			view = ViewMonth
		}
		return KindCalendarLive, view
	}
	if strings.Contains(raw, "# Calendar") || strings.Contains(raw, "Schedule") {
		return KindCalendarStatic, ""
	}
	return KindStandard, ""
}

// SectionByID returns a pointer to the section with the given ID, or nil.
func (d *ContentDocument) SectionByID(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// Markdown returns the verbatim source this document was parsed from.
func (d ContentDocument) Markdown() string {
	return d.RawMarkdown
}
