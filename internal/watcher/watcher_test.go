package watcher

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zhubert/canvas/internal/errors"
)

// collector records onChange invocations.
type collector struct {
	mu       sync.Mutex
	contents []string
}

func (c *collector) record(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contents = append(c.contents, content)
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.contents...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestStart_MissingFile(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing.md"), 0, func(string) {})
	err := w.Start()
	if err == nil {
		t.Fatal("Start() on a missing file should fail")
	}
	if !strings.Contains(err.Error(), "cannot open file") {
		t.Errorf("error = %q, want it to mention 'cannot open file'", err.Error())
	}
	if errors.GetKind(err) != errors.KindIO {
		t.Errorf("GetKind(err) = %v, want IO", errors.GetKind(err))
	}
}

func TestStart_FiresInitialRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# Hello\n")

	var c collector
	w := New(path, 0, c.record)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	got := c.snapshot()
	if len(got) != 1 {
		t.Fatalf("initial read fired %d callbacks, want 1", len(got))
	}
	if got[0] != "# Hello\n" {
		t.Errorf("initial content = %q, want %q", got[0], "# Hello\n")
	}
}

func TestRapidWritesCoalesce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "v0")

	var c collector
	w := New(path, 50*time.Millisecond, c.record)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	// Two writes inside the debounce window.
	writeFile(t, path, "v1")
	time.Sleep(20 * time.Millisecond)
	writeFile(t, path, "v2")

	time.Sleep(500 * time.Millisecond)

	got := c.snapshot()
	if len(got) != 2 {
		t.Fatalf("got %d callbacks %v, want 2 (initial plus one coalesced)", len(got), got)
	}
	if got[1] != "v2" {
		t.Errorf("coalesced content = %q, want %q", got[1], "v2")
	}
}

func TestChangeAfterQuietPeriodFiresAgain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "one")

	var c collector
	w := New(path, 50*time.Millisecond, c.record)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "two")
	time.Sleep(300 * time.Millisecond)
	writeFile(t, path, "three")
	time.Sleep(300 * time.Millisecond)

	got := c.snapshot()
	if len(got) != 3 {
		t.Fatalf("got %d callbacks %v, want 3", len(got), got)
	}
	if got[2] != "three" {
		t.Errorf("final content = %q, want %q", got[2], "three")
	}
}

func TestStop_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "content")

	w := New(path, 0, func(string) {})
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	w.Stop()
	w.Stop()
}

func TestStop_SuppressesPendingCallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "before")

	var c collector
	w := New(path, 100*time.Millisecond, c.record)
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	writeFile(t, path, "after")
	w.Stop()
	time.Sleep(300 * time.Millisecond)

	got := c.snapshot()
	if len(got) != 1 {
		t.Errorf("got %d callbacks %v, want only the initial read", len(got), got)
	}
}

func TestNew_DefaultDebounce(t *testing.T) {
	w := New("x.md", 0, func(string) {})
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}
	if w.Path() != "x.md" {
		t.Errorf("Path() = %q, want %q", w.Path(), "x.md")
	}
}
