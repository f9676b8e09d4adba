package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

// Session is one canvas file in the canvas directory.
type Session struct {
	Name    string
	Path    string
	ModTime time.Time
}

// DefaultName resolves the session name for the current terminal:
// an explicit name wins, then the CANVAS_SESSION environment variable,
// and finally a name derived from the parent process ID so each terminal
// gets its own canvas.
func DefaultName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("CANVAS_SESSION"); env != "" {
		return env
	}
	return fmt.Sprintf("session-%d", os.Getppid())
}

// Path returns the file backing a named session.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".md")
}

// Create ensures the session file exists, creating an empty one if needed.
func Create(dir, name string) (Session, error) {
	log := logger.ComponentLogger("session")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return Session{}, errors.SessionCreateFailed(name, err)
	}

	path := Path(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Session{}, errors.SessionCreateFailed(name, err)
	}
	f.Close()

	info, err := os.Stat(path)
	if err != nil {
		return Session{}, errors.SessionCreateFailed(name, err)
	}

	log.Debug("session ready", "name", name, "path", path)
	return Session{Name: name, Path: path, ModTime: info.ModTime()}, nil
}

// List returns all sessions in the directory, most recently modified first.
// A missing directory is an empty list, not an error.
func List(dir string) ([]Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.E(errors.Op("session.List"), errors.KindIO, err)
	}

	var sessions []Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, Session{
			Name:    strings.TrimSuffix(entry.Name(), ".md"),
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// MostRecent returns the newest session, if any exist.
func MostRecent(dir string) (Session, bool) {
	sessions, err := List(dir)
	if err != nil || len(sessions) == 0 {
		return Session{}, false
	}
	return sessions[0], true
}

// Clear truncates a session's content without removing the file.
func Clear(dir, name string) error {
	path := Path(dir, name)
	if _, err := os.Stat(path); err != nil {
		return errors.SessionNotFound(name)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return errors.E(errors.Op("session.Clear"), errors.KindIO, err)
	}
	return nil
}

// Remove deletes a session file.
func Remove(dir, name string) error {
	path := Path(dir, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.SessionNotFound(name)
		}
		return errors.E(errors.Op("session.Remove"), errors.KindIO, err)
	}
	logger.ComponentLogger("session").Info("session removed", "name", name)
	return nil
}

// staleAfter is how old a session must be before clean considers it stale.
const staleAfter = 7 * 24 * time.Hour

// RemoveStale deletes sessions untouched for a week. With all set it
// deletes every session. Returns how many files were removed.
func RemoveStale(dir string, all bool) (int, error) {
	sessions, err := List(dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-staleAfter)
	removed := 0
	for _, s := range sessions {
		if !all && s.ModTime.After(cutoff) {
			continue
		}
		if err := os.Remove(s.Path); err != nil {
			logger.ComponentLogger("session").Warn("failed to remove session", "name", s.Name, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
