package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// newTestContext builds a ToolContext over a throwaway workspace with the
// full built-in tool set registered.
func newTestContext(t *testing.T) (*ToolContext, string) {
	t.Helper()

	dir := t.TempDir()
	ws, err := workspace.NewLocal(dir, nil)
	if err != nil {
		t.Fatalf("NewLocal failed: %v", err)
	}

	registry := NewRegistry()
	RegisterAll(registry)

	logger := zerolog.Nop()
	tc := NewToolContext(&logger, ws, cache.New(ws), registry, "ggmcp", "test")
	return tc, dir
}

// seedFile writes a file under the workspace root outside the binding, the
// way an external editor would.
func seedFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

// readFile reads a workspace file straight from disk.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

// runDeferred executes the follow-up tasks a handler scheduled.
func runDeferred(tc *ToolContext) {
	for _, task := range tc.Deferred() {
		task.Run()
	}
}
