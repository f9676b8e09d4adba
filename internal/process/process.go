// Package process runs the external helper tools Canvas integrates with:
// the mac-calendar and mac-notes CLIs, osascript, and the platform opener.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

// toolPrefixes are the directories searched for helper binaries, in order.
// Homebrew on Apple Silicon installs under /opt/homebrew/bin; Intel Macs and
// manual installs use /usr/local/bin.
var toolPrefixes = []string{
	"/opt/homebrew/bin",
	"/usr/local/bin",
	"/usr/bin",
}

// runTimeout is the maximum time to wait for a helper tool to finish.
const runTimeout = 10 * time.Second

// FindTool returns the absolute path of a helper binary, checking the known
// prefixes in order. Returns an error of kind NotFound if the tool is not
// installed in any of them.
func FindTool(name string) (string, error) {
	for _, prefix := range toolPrefixes {
		path := filepath.Join(prefix, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.ToolNotFound(name)
}

// ToolInstalled reports whether a helper binary exists in any known prefix.
func ToolInstalled(name string) bool {
	_, err := FindTool(name)
	return err == nil
}

// Run executes a helper tool and returns its stdout. Stderr is discarded
// unless the command fails, in which case it is included in the error.
func Run(ctx context.Context, path string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	log := logger.ComponentLogger("process")
	log.Debug("running tool", "path", path, "args", args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Debug("tool failed", "path", path, "error", err, "stderr", stderr.String())
		return nil, errors.ToolFailed(filepath.Base(path), fmt.Errorf("%w: %s", err, stderr.String()))
	}
	return stdout.Bytes(), nil
}

// SaveToNotes creates a note via the mac-notes CLI. Failures are logged to a
// dedicated file so a broken integration does not interrupt the TUI.
func SaveToNotes(ctx context.Context, title, body string) error {
	path, err := FindTool("mac-notes")
	if err != nil {
		return err
	}

	if _, err := Run(ctx, path, "create", title, "--body", body); err != nil {
		appendNotesError(err)
		return err
	}
	return nil
}

// appendNotesError records a mac-notes failure to the notes error log.
func appendNotesError(err error) {
	f, openErr := os.OpenFile(logger.NotesErrorLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if openErr != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s mac-notes: %v\n", time.Now().Format(time.RFC3339), err)
}

// ComposeEmail opens Mail.app with a draft pre-filled from the document body.
// Only supported on macOS.
func ComposeEmail(ctx context.Context, subject, body string) error {
	if runtime.GOOS != "darwin" {
		return errors.ToolNotFound("osascript")
	}

	script := fmt.Sprintf(`tell application "Mail"
	set newMessage to make new outgoing message with properties {subject:%q, content:%q, visible:true}
	activate
end tell`, subject, body)

	_, err := Run(ctx, "/usr/bin/osascript", "-e", script)
	return err
}

// OpenInDefaultApp opens a file with the platform's default handler.
func OpenInDefaultApp(ctx context.Context, path string) error {
	var cmd string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "windows":
		return errors.ToolNotFound("open")
	default:
		cmd = "xdg-open"
	}

	bin, err := exec.LookPath(cmd)
	if err != nil {
		return errors.ToolNotFound(cmd)
	}
	_, err = Run(ctx, bin, path)
	return err
}
