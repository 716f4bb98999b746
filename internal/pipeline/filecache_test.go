package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

func newSeededCache(t *testing.T) *cache.DocumentCache {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	ws, err := workspace.NewLocal(root, nil)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	c := cache.New(ws)
	if _, err := c.Read("main.go", false); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return c
}

func TestFileCache_AttachesCachedResult(t *testing.T) {
	f := NewFileCacheInterceptor(newSeededCache(t), "get_file_text")

	rc := NewRequestContext("get_file_text", map[string]any{"path": "main.go"}, "tools/call", "/mcp")
	next, err := f.Before(context.Background(), rc)
	if err != nil {
		t.Fatalf("Before() error = %v", err)
	}
	if next.Cached == nil {
		t.Fatal("Expected a cached result to be attached")
	}
	if got := next.Cached.Content[0].Text; got != "package main\n" {
		t.Errorf("cached text = %q, want %q", got, "package main\n")
	}
	if next.Cached.IsError {
		t.Error("Cached result must be a success envelope")
	}
}

func TestFileCache_PassesThrough(t *testing.T) {
	c := newSeededCache(t)
	f := NewFileCacheInterceptor(c, "get_file_text")

	tests := []struct {
		name   string
		tool   string
		params map[string]any
	}{
		{
			name:   "tool not registered for cache serving",
			tool:   "replace_file_text",
			params: map[string]any{"path": "main.go"},
		},
		{
			name:   "forced utf8 read",
			tool:   "get_file_text",
			params: map[string]any{"path": "main.go", "forceUtf8": true},
		},
		{
			name:   "missing path param",
			tool:   "get_file_text",
			params: map[string]any{},
		},
		{
			name:   "uncached file",
			tool:   "get_file_text",
			params: map[string]any{"path": "other.go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRequestContext(tt.tool, tt.params, "tools/call", "/mcp")
			next, err := f.Before(context.Background(), rc)
			if err != nil {
				t.Fatalf("Before() error = %v", err)
			}
			if next != rc {
				t.Error("Pass-through must return the same context")
			}
			if next.Cached != nil {
				t.Error("Pass-through must not attach a cached result")
			}
		})
	}
}

func TestFileCache_ChainServesHitWithoutAfterPhase(t *testing.T) {
	var calls []string
	f := NewFileCacheInterceptor(newSeededCache(t), "get_file_text")
	tail := &scripted{name: "tail", calls: &calls}

	chain := NewChain(f, tail)
	res, err := chain.RunBefore(context.Background(), NewRequestContext("get_file_text", map[string]any{"path": "main.go"}, "tools/call", "/mcp"))
	if err != nil {
		t.Fatalf("RunBefore() error = %v", err)
	}
	if !res.CacheHit {
		t.Fatal("Expected cache hit")
	}
	if len(calls) != 0 {
		t.Errorf("Interceptors after the hit still ran: %v", calls)
	}
}
