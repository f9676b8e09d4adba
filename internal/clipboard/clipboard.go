// Package clipboard copies text to the system clipboard. It prefers the
// native clipboard bindings and falls back to the platform's command line
// tool when those are unavailable (no cgo, headless X, etc).
package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/canvas/internal/logger"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
		if initErr != nil {
			logger.ComponentLogger("clipboard").Debug("native clipboard unavailable", "error", initErr)
		}
	})
	return initErr
}

// Copy places text on the clipboard.
func Copy(text string) error {
	if err := ensureInit(); err == nil {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}
	return copyViaCommand(text)
}

// copyCommand picks the fallback tool for the current platform.
func copyCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	default:
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			return "wl-copy", nil
		}
		return "xclip", []string{"-selection", "clipboard"}
	}
}

func copyViaCommand(text string) error {
	name, args := copyCommand()
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("no clipboard tool available (%s not found)", name)
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	logger.ComponentLogger("clipboard").Debug("copied via fallback tool", "tool", name, "bytes", len(text))
	return nil
}
