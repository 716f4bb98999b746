package tools

import (
	"github.com/rs/zerolog"

	"github.com/n2ns/ggMCP4VSCode/internal/cache"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// DeferredTask is follow-up work a handler schedules to run after the
// response has been written, such as refreshing the content cache or
// revealing a file in the editor.
type DeferredTask struct {
	Name string
	Run  func()
}

// ToolContext provides shared resources for tool handlers. The dispatcher
// builds one per invocation so deferred tasks stay scoped to their call.
type ToolContext struct {
	Logger        *zerolog.Logger
	Workspace     workspace.Binding
	Cache         *cache.DocumentCache
	Registry      *Registry
	ServerName    string
	ServerVersion string

	deferred []DeferredTask
}

// NewToolContext creates a context wired to the server's workspace binding,
// content cache and registry.
func NewToolContext(logger *zerolog.Logger, ws workspace.Binding, c *cache.DocumentCache, r *Registry, serverName, serverVersion string) *ToolContext {
	return &ToolContext{
		Logger:        logger,
		Workspace:     ws,
		Cache:         c,
		Registry:      r,
		ServerName:    serverName,
		ServerVersion: serverVersion,
	}
}

// Defer schedules fn to run after the response for this invocation has
// been sent. Tasks run in the order they were added.
func (tc *ToolContext) Defer(name string, fn func()) {
	tc.deferred = append(tc.deferred, DeferredTask{Name: name, Run: fn})
}

// Deferred returns the tasks scheduled during this invocation.
func (tc *ToolContext) Deferred() []DeferredTask {
	return tc.deferred
}
