package htmlrender

import (
	"fmt"
	"strings"

	"github.com/zhubert/canvas/internal/document"
)

// EmailFields is the draft extracted from an email document.
type EmailFields struct {
	From    string
	To      string
	Subject string
	Body    string
}

// ExtractEmailFields scrapes the From/To/Subject table and body text out of
// an email document's raw markdown. The body starts after the "---" rule
// that follows the header table and ends at the next "---" rule; action
// hint lines are dropped.
func ExtractEmailFields(raw string) EmailFields {
	fields := EmailFields{From: "me"}

	inBody := false
	var bodyLines []string

	for _, line := range strings.Split(raw, "\n") {
		if strings.Contains(line, "| From |") || strings.Contains(line, "| To |") ||
			strings.Contains(line, "| Subject |") ||
			(strings.Contains(line, "---") && strings.Contains(line, "|")) {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(line, "|") && strings.Contains(lower, "from"):
			if parts := strings.Split(line, "|"); len(parts) >= 3 {
				fields.From = strings.TrimSpace(parts[2])
			}
		case strings.Contains(line, "|") && strings.Contains(lower, "to"):
			if parts := strings.Split(line, "|"); len(parts) >= 3 {
				fields.To = strings.TrimSpace(parts[2])
			}
		case strings.Contains(line, "|") && strings.Contains(lower, "subject"):
			if parts := strings.Split(line, "|"); len(parts) >= 3 {
				fields.Subject = strings.TrimSpace(parts[2])
			}
		case line == "---":
			if !inBody && fields.To != "" {
				inBody = true
			} else if inBody {
				return finishEmail(fields, bodyLines)
			}
		case inBody && !strings.HasPrefix(line, "**Actions"):
			bodyLines = append(bodyLines, line)
		}
	}

	return finishEmail(fields, bodyLines)
}

func finishEmail(fields EmailFields, bodyLines []string) EmailFields {
	fields.Body = strings.TrimSpace(strings.Join(bodyLines, "\n"))
	return fields
}

// initials returns the avatar badge text for a sender.
func initials(from string) string {
	runes := []rune(from)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func (r *Renderer) renderEmail(doc *document.ContentDocument) string {
	fields := ExtractEmailFields(doc.RawMarkdown)

	formattedBody := escapeHTML(fields.Body)
	formattedBody = strings.ReplaceAll(formattedBody, "\n\n", "</p><p>")
	formattedBody = strings.ReplaceAll(formattedBody, "\n", "<br>")

	var b strings.Builder
	b.WriteString(`<div class="email-container">`)
	b.WriteString(`<div class="email-header-bar"><div class="email-action-buttons">`)
	b.WriteString(`<button class="email-btn" title="Send"><svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M22 2L11 13"/><path d="M22 2L15 22L11 13L2 9L22 2Z"/></svg></button>`)
	b.WriteString(`<button class="email-btn" title="Attach"><svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M21.44 11.05l-9.19 9.19a6 6 0 0 1-8.49-8.49l9.19-9.19a4 4 0 0 1 5.66 5.66l-9.2 9.19a2 2 0 0 1-2.83-2.83l8.49-8.48"/></svg></button>`)
	b.WriteString(`<button class="email-btn" title="Discard"><svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M3 6h18"/><path d="M19 6v14a2 2 0 0 1-2 2H7a2 2 0 0 1-2-2V6m3 0V4a2 2 0 0 1 2-2h4a2 2 0 0 1 2 2v2"/></svg></button>`)
	b.WriteString(`</div><div class="email-status">Draft</div></div>`)

	b.WriteString(`<div class="email-compose"><div class="email-row">`)
	fmt.Fprintf(&b, `<div class="avatar">%s</div>`, escapeHTML(initials(fields.From)))
	b.WriteString(`<div class="email-fields">`)
	fmt.Fprintf(&b, `<div class="field-row"><label>To</label><div class="field-value recipient">%s</div></div>`, escapeHTML(fields.To))
	fmt.Fprintf(&b, `<div class="field-row"><label>Subject</label><div class="field-value subject">%s</div></div>`, escapeHTML(fields.Subject))
	b.WriteString(`</div></div>`)

	fmt.Fprintf(&b, `<div class="email-body-container"><div class="email-body"><p>%s</p></div></div>`, formattedBody)

	b.WriteString(`<div class="email-signature"><div class="sig-line"></div><p>Sent from mac-canvas</p></div>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="email-footer"><div class="shortcut-hint"><kbd>E</kbd> Send via Mail.app <kbd>Esc</kbd> Cancel</div></div>`)
	b.WriteString(`</div>`)

	return wrapWithStyles(b.String(), emailStyles)
}
