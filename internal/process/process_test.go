package process

import (
	"context"
	"strings"
	"testing"

	"github.com/zhubert/canvas/internal/errors"
)

func TestFindTool_NotInstalled(t *testing.T) {
	_, err := FindTool("canvas-no-such-tool-12345")
	if err == nil {
		t.Fatal("FindTool() error = nil, want NotFound")
	}
	if errors.GetKind(err) != errors.KindNotFound {
		t.Errorf("GetKind(err) = %v, want NotFound", errors.GetKind(err))
	}
	if !strings.Contains(err.Error(), "canvas-no-such-tool-12345") {
		t.Errorf("error %q should name the missing tool", err.Error())
	}
}

func TestToolInstalled_NotInstalled(t *testing.T) {
	if ToolInstalled("canvas-no-such-tool-12345") {
		t.Error("ToolInstalled() = true for a tool that does not exist")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	_, err := Run(context.Background(), "/nonexistent/path/to/tool")
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if errors.GetKind(err) != errors.KindExternal {
		t.Errorf("GetKind(err) = %v, want External", errors.GetKind(err))
	}
}

func TestRun_CapturesStdout(t *testing.T) {
	out, err := Run(context.Background(), "/bin/echo", "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "hello" {
		t.Errorf("Run() output = %q, want %q", got, "hello")
	}
}

func TestRun_FailureIncludesStderr(t *testing.T) {
	_, err := Run(context.Background(), "/bin/sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q should include stderr output", err.Error())
	}
}

func TestSaveToNotes_ToolMissing(t *testing.T) {
	if ToolInstalled("mac-notes") {
		t.Skip("mac-notes installed on this machine")
	}
	err := SaveToNotes(context.Background(), "Title", "Body")
	if err == nil {
		t.Fatal("SaveToNotes() error = nil, want NotFound")
	}
	if errors.GetKind(err) != errors.KindNotFound {
		t.Errorf("GetKind(err) = %v, want NotFound", errors.GetKind(err))
	}
}
