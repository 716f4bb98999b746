package tools

import (
	"context"

	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// Handler executes a tool call. Arguments arrive as the decoded params
// bag of the tools/call request. A non-nil error is converted by the
// dispatcher into a failure envelope; handlers that want to control the
// wording of a failure return an error result themselves.
type Handler func(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error)

// ToolDefinition is the metadata advertised for a tool via tools/list.
type ToolDefinition struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	InputSchema  map[string]any `json:"inputSchema"`
	OutputSchema map[string]any `json:"outputSchema,omitempty"`
	Annotations  *Annotations   `json:"annotations,omitempty"`
}

// Annotations carry the behavioral hints of the MCP tool spec. All hints
// are advisory; clients use them for confirmation prompts and caching.
type Annotations struct {
	Title           string `json:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint,omitempty"`
	DestructiveHint bool   `json:"destructiveHint,omitempty"`
	IdempotentHint  bool   `json:"idempotentHint,omitempty"`
	OpenWorldHint   bool   `json:"openWorldHint,omitempty"`
}

// Tool pairs a definition with its handler inside the registry.
type Tool struct {
	Definition ToolDefinition
	Handler    Handler
}

// CallRequest is the params payload of a tools/call request.
type CallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}
