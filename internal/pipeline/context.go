package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// RequestContext carries one tool invocation through the before-phase.
// Interceptors receive it by reference and may hand back a replacement;
// setting Cached short-circuits execution with a pre-computed result.
// A context lives for exactly one invocation.
type RequestContext struct {
	InvocationID string
	ToolName     string
	Params       map[string]any
	Method       string
	Path         string
	StartedAt    time.Time
	Cached       *protocol.ToolResult
}

// NewRequestContext builds a fresh context for a tool call arriving via the
// given transport method and path.
func NewRequestContext(toolName string, params map[string]any, method, path string) *RequestContext {
	return &RequestContext{
		InvocationID: uuid.New().String(),
		ToolName:     toolName,
		Params:       params,
		Method:       method,
		Path:         path,
		StartedAt:    time.Now(),
	}
}

// ResponseContext carries the result of an executed invocation through the
// after-phase. Interceptors may rewrite the payload or status.
type ResponseContext struct {
	Result *protocol.ToolResult
	Status int
}
