package tools

import (
	"context"
	"runtime"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test expects a POSIX shell")
	}
}

func TestHandleExecuteTerminalCommand(t *testing.T) {
	requireShell(t)
	tc, _ := newTestContext(t)

	result, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command": "echo hello",
	})
	if err != nil {
		t.Fatalf("HandleExecuteTerminalCommand failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success, got: %q", result.Content[0].Text)
	}

	sc := result.StructuredContent
	if sc == nil {
		t.Fatal("Expected structured content")
	}
	if code, ok := sc["exitCode"].(float64); !ok || code != 0 {
		t.Errorf("exitCode = %v, want 0", sc["exitCode"])
	}
	if out, _ := sc["stdout"].(string); !strings.Contains(out, "hello") {
		t.Errorf("stdout = %q, want to contain hello", out)
	}
	if timedOut, _ := sc["timedOut"].(bool); timedOut {
		t.Error("timedOut = true for an instant command")
	}
}

func TestHandleExecuteTerminalCommand_NonZeroExit(t *testing.T) {
	requireShell(t)
	tc, _ := newTestContext(t)

	result, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command": "exit 3",
	})
	if err != nil {
		t.Fatalf("HandleExecuteTerminalCommand failed: %v", err)
	}

	// The command ran; a non-zero exit code is a result, not a tool failure.
	if result.IsError {
		t.Fatal("Expected success envelope for a non-zero exit")
	}
	if code, ok := result.StructuredContent["exitCode"].(float64); !ok || code != 3 {
		t.Errorf("exitCode = %v, want 3", result.StructuredContent["exitCode"])
	}
}

func TestHandleExecuteTerminalCommand_Timeout(t *testing.T) {
	requireShell(t)
	tc, _ := newTestContext(t)

	result, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command":   "sleep 5",
		"timeoutMs": 50,
	})
	if err != nil {
		t.Fatalf("HandleExecuteTerminalCommand failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("Expected success envelope, got: %q", result.Content[0].Text)
	}
	if timedOut, _ := result.StructuredContent["timedOut"].(bool); !timedOut {
		t.Error("Expected timedOut = true")
	}
}

func TestHandleExecuteTerminalCommand_RunsInWorkspace(t *testing.T) {
	requireShell(t)
	tc, dir := newTestContext(t)
	seedFile(t, dir, "sub/probe.txt", "x")

	result, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command": "ls",
		"cwd":     "sub",
	})
	if err != nil {
		t.Fatalf("HandleExecuteTerminalCommand failed: %v", err)
	}
	if out, _ := result.StructuredContent["stdout"].(string); !strings.Contains(out, "probe.txt") {
		t.Errorf("stdout = %q, want listing of the sub directory", out)
	}

	result, err = HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command": "ls",
		"cwd":     "../elsewhere",
	})
	if err != nil {
		t.Fatalf("HandleExecuteTerminalCommand failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error envelope for cwd escaping the workspace")
	}
}

func TestHandleExecuteTerminalCommand_Validation(t *testing.T) {
	tc, _ := newTestContext(t)

	if _, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{}); err == nil {
		t.Error("Expected invalid-parameters error for missing command")
	}

	if _, err := HandleExecuteTerminalCommand(context.Background(), tc, Args{
		"command":   "echo x",
		"timeoutMs": maxCommandTimeoutMs + 1,
	}); err == nil {
		t.Error("Expected invalid-parameters error for oversized timeout")
	}
}

func TestBoundedBuffer_Truncation(t *testing.T) {
	b := &boundedBuffer{limit: 4}

	n, err := b.Write([]byte("abcdefgh"))
	if err != nil || n != 8 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	n, err = b.Write([]byte("ij"))
	if err != nil || n != 2 {
		t.Fatalf("Write = %d, %v", n, err)
	}

	out := b.String()
	if !strings.HasPrefix(out, "abcd") {
		t.Errorf("Output = %q, want kept prefix", out)
	}
	if !strings.Contains(out, "truncated") || !strings.Contains(out, "6 bytes dropped") {
		t.Errorf("Output = %q, want truncation note", out)
	}
}
