// Package viewport is a pure scrolling state machine over a line count.
// It owns no rendering; the terminal controller slices its rendered
// buffer against the offset this package maintains.
package viewport

// Viewport tracks the first visible line of a rendered buffer.
// Invariant: 0 <= Offset() <= max(0, totalLines-visibleLines).
type Viewport struct {
	offset       int
	visibleLines int
	totalLines   int
}

// New returns a viewport for a window of visibleLines over totalLines.
func New(visibleLines, totalLines int) Viewport {
	v := Viewport{visibleLines: visibleLines, totalLines: totalLines}
	v.clamp()
	return v
}

func (v *Viewport) clamp() {
	if max := v.maxOffset(); v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

func (v Viewport) maxOffset() int {
	max := v.totalLines - v.visibleLines
	if max < 0 {
		return 0
	}
	return max
}

// Offset returns the first visible line.
func (v Viewport) Offset() int { return v.offset }

// VisibleLines returns the window height.
func (v Viewport) VisibleLines() int { return v.visibleLines }

// TotalLines returns the rendered line count being scrolled over.
func (v Viewport) TotalLines() int { return v.totalLines }

// SetTotalLines updates the buffer size and re-clamps the offset.
func (v *Viewport) SetTotalLines(n int) {
	v.totalLines = n
	v.clamp()
}

// SetVisibleLines updates the window height and re-clamps the offset.
func (v *Viewport) SetVisibleLines(n int) {
	v.visibleLines = n
	v.clamp()
}

// ScrollDown moves the window down by n lines, clamping at the bottom.
func (v *Viewport) ScrollDown(n int) {
	v.offset += n
	v.clamp()
}

// ScrollUp moves the window up by n lines, clamping at the top.
func (v *Viewport) ScrollUp(n int) {
	v.offset -= n
	v.clamp()
}

// GoToTop jumps to the first line.
func (v *Viewport) GoToTop() { v.offset = 0 }

// GoToBottom jumps so the last line is visible.
func (v *Viewport) GoToBottom() { v.offset = v.maxOffset() }

// PageDown scrolls by one window minus two lines, keeping one line of
// context across the boundary plus the status-bar reservation.
func (v *Viewport) PageDown() { v.ScrollDown(v.visibleLines - 2) }

// PageUp scrolls up by one window minus two lines.
func (v *Viewport) PageUp() { v.ScrollUp(v.visibleLines - 2) }

// ScrollPercent reports scroll progress as an integer in [0,100].
// When everything fits in the window there is nothing to scroll, so
// progress is 0.
func (v Viewport) ScrollPercent() int {
	if v.totalLines <= v.visibleLines {
		return 0
	}
	return v.offset * 100 / (v.totalLines - v.visibleLines)
}

// Slice returns the half-open line range [start, end) currently visible.
func (v Viewport) Slice() (start, end int) {
	start = v.offset
	end = v.offset + v.visibleLines
	if end > v.totalLines {
		end = v.totalLines
	}
	if start > end {
		start = end
	}
	return start, end
}
