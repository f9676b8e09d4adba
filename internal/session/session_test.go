package session

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhubert/canvas/internal/errors"
)

func TestDefaultName(t *testing.T) {
	t.Run("explicit name wins", func(t *testing.T) {
		t.Setenv("CANVAS_SESSION", "from-env")
		if got := DefaultName("explicit"); got != "explicit" {
			t.Errorf("DefaultName() = %q, want %q", got, "explicit")
		}
	})

	t.Run("env var beats parent pid", func(t *testing.T) {
		t.Setenv("CANVAS_SESSION", "from-env")
		if got := DefaultName(""); got != "from-env" {
			t.Errorf("DefaultName() = %q, want %q", got, "from-env")
		}
	})

	t.Run("falls back to parent pid", func(t *testing.T) {
		t.Setenv("CANVAS_SESSION", "")
		want := fmt.Sprintf("session-%d", os.Getppid())
		if got := DefaultName(""); got != want {
			t.Errorf("DefaultName() = %q, want %q", got, want)
		}
	})
}

func TestCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "canvas")

	s, err := Create(dir, "notes")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Name != "notes" {
		t.Errorf("Name = %q, want %q", s.Name, "notes")
	}
	if s.Path != filepath.Join(dir, "notes.md") {
		t.Errorf("Path = %q, want file in canvas dir", s.Path)
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("new session should be empty, got %q", content)
	}
}

func TestCreate_PreservesExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir, "notes")
	if err := os.WriteFile(path, []byte("# Existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Create(dir, "notes"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "# Existing\n" {
		t.Errorf("Create() overwrote existing content: %q", content)
	}
}

func TestList_OrdersByModTime(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	for i, name := range []string{"oldest", "middle", "newest"} {
		path := Path(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
		mtime := now.Add(time.Duration(i-3) * time.Hour)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}
	// Non-markdown files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	sessions, err := List(dir)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("List() returned %d sessions, want 3", len(sessions))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if sessions[i].Name != want {
			t.Errorf("sessions[%d].Name = %q, want %q", i, sessions[i].Name, want)
		}
	}
}

func TestList_MissingDir(t *testing.T) {
	sessions, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("List() on missing dir error = %v, want nil", err)
	}
	if len(sessions) != 0 {
		t.Errorf("List() on missing dir = %v, want empty", sessions)
	}
}

func TestMostRecent(t *testing.T) {
	dir := t.TempDir()

	if _, ok := MostRecent(dir); ok {
		t.Error("MostRecent() on empty dir should report none")
	}

	old := Path(dir, "old")
	os.WriteFile(old, []byte("old"), 0644)
	past := time.Now().Add(-time.Hour)
	os.Chtimes(old, past, past)
	os.WriteFile(Path(dir, "new"), []byte("new"), 0644)

	s, ok := MostRecent(dir)
	if !ok {
		t.Fatal("MostRecent() found nothing")
	}
	if s.Name != "new" {
		t.Errorf("MostRecent().Name = %q, want %q", s.Name, "new")
	}
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(Path(dir, "notes"), []byte("# Content\n"), 0644)

	if err := Clear(dir, "notes"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	content, _ := os.ReadFile(Path(dir, "notes"))
	if len(content) != 0 {
		t.Errorf("Clear() left content %q", content)
	}

	err := Clear(dir, "missing")
	if errors.GetKind(err) != errors.KindNotFound {
		t.Errorf("Clear(missing) kind = %v, want KindNotFound", errors.GetKind(err))
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(Path(dir, "notes"), []byte("x"), 0644)

	if err := Remove(dir, "notes"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := os.Stat(Path(dir, "notes")); !os.IsNotExist(err) {
		t.Error("Remove() left the file behind")
	}

	err := Remove(dir, "notes")
	if errors.GetKind(err) != errors.KindNotFound {
		t.Errorf("Remove(missing) kind = %v, want KindNotFound", errors.GetKind(err))
	}
}

func TestRemoveStale(t *testing.T) {
	dir := t.TempDir()

	stalePath := Path(dir, "stale")
	os.WriteFile(stalePath, []byte("x"), 0644)
	old := time.Now().Add(-8 * 24 * time.Hour)
	os.Chtimes(stalePath, old, old)

	os.WriteFile(Path(dir, "fresh"), []byte("x"), 0644)

	removed, err := RemoveStale(dir, false)
	if err != nil {
		t.Fatalf("RemoveStale() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("RemoveStale() removed %d, want 1", removed)
	}
	if _, err := os.Stat(Path(dir, "fresh")); err != nil {
		t.Error("RemoveStale() should keep fresh sessions")
	}

	removed, err = RemoveStale(dir, true)
	if err != nil {
		t.Fatalf("RemoveStale(all) error = %v", err)
	}
	if removed != 1 {
		t.Errorf("RemoveStale(all) removed %d, want 1", removed)
	}
}
