package viewport

import (
	"math/rand"
	"testing"
)

func TestPageDownScenario(t *testing.T) {
	v := New(24, 100)

	v.PageDown()
	if v.Offset() != 22 {
		t.Errorf("after PageDown offset = %d, want 22", v.Offset())
	}

	for i := 0; i < 50; i++ {
		v.PageDown()
	}
	if v.Offset() != 76 {
		t.Errorf("exhausted PageDown offset = %d, want clamp at 76", v.Offset())
	}
}

func TestScrollClamping(t *testing.T) {
	v := New(10, 30)

	v.ScrollUp(5)
	if v.Offset() != 0 {
		t.Errorf("ScrollUp at top: offset = %d, want 0", v.Offset())
	}

	v.ScrollDown(1000)
	if v.Offset() != 20 {
		t.Errorf("ScrollDown past bottom: offset = %d, want 20", v.Offset())
	}

	v.ScrollUp(3)
	if v.Offset() != 17 {
		t.Errorf("ScrollUp: offset = %d, want 17", v.Offset())
	}
}

func TestGoToTopBottom(t *testing.T) {
	v := New(10, 50)

	v.GoToBottom()
	if v.Offset() != 40 {
		t.Errorf("GoToBottom: offset = %d, want 40", v.Offset())
	}

	v.GoToTop()
	if v.Offset() != 0 {
		t.Errorf("GoToTop: offset = %d, want 0", v.Offset())
	}
}

func TestShortContent(t *testing.T) {
	v := New(24, 10)

	v.PageDown()
	v.ScrollDown(100)
	v.GoToBottom()
	if v.Offset() != 0 {
		t.Errorf("short content: offset = %d, want 0", v.Offset())
	}
	if v.ScrollPercent() != 0 {
		t.Errorf("short content: percent = %d, want 0", v.ScrollPercent())
	}
}

func TestScrollPercent(t *testing.T) {
	tests := []struct {
		name    string
		visible int
		total   int
		offset  int
		want    int
	}{
		{"top", 24, 100, 0, 0},
		{"bottom", 24, 100, 76, 100},
		{"middle", 24, 100, 38, 50},
		{"fits exactly", 24, 24, 0, 0},
		{"empty", 24, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(tt.visible, tt.total)
			v.ScrollDown(tt.offset)
			if got := v.ScrollPercent(); got != tt.want {
				t.Errorf("ScrollPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResizeReclamps(t *testing.T) {
	v := New(10, 100)
	v.GoToBottom()
	if v.Offset() != 90 {
		t.Fatalf("offset = %d, want 90", v.Offset())
	}

	v.SetTotalLines(20)
	if v.Offset() != 10 {
		t.Errorf("after shrink: offset = %d, want 10", v.Offset())
	}

	v.SetVisibleLines(30)
	if v.Offset() != 0 {
		t.Errorf("after grow window: offset = %d, want 0", v.Offset())
	}
}

func TestSlice(t *testing.T) {
	v := New(10, 25)
	v.ScrollDown(20)

	start, end := v.Slice()
	if start != 15 || end != 25 {
		t.Errorf("Slice() = [%d,%d), want [15,25)", start, end)
	}

	v = New(10, 4)
	start, end = v.Slice()
	if start != 0 || end != 4 {
		t.Errorf("Slice() = [%d,%d), want [0,4)", start, end)
	}
}

func TestInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := New(24, 100)

	for i := 0; i < 1000; i++ {
		switch rng.Intn(8) {
		case 0:
			v.ScrollDown(rng.Intn(50))
		case 1:
			v.ScrollUp(rng.Intn(50))
		case 2:
			v.PageDown()
		case 3:
			v.PageUp()
		case 4:
			v.GoToTop()
		case 5:
			v.GoToBottom()
		case 6:
			v.SetTotalLines(rng.Intn(200))
		case 7:
			v.SetVisibleLines(1 + rng.Intn(50))
		}

		max := v.TotalLines() - v.VisibleLines()
		if max < 0 {
			max = 0
		}
		if v.Offset() < 0 || v.Offset() > max {
			t.Fatalf("op %d: offset %d outside [0,%d] (total=%d visible=%d)",
				i, v.Offset(), max, v.TotalLines(), v.VisibleLines())
		}
	}
}
