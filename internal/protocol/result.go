package protocol

import (
	"encoding/json"
	"fmt"
)

// ToolResult is the envelope every tool call resolves to, success or
// failure. It crosses the wire as the result of a tools/call request and
// must keep this exact shape.
type ToolResult struct {
	Content           []Content      `json:"content"`
	IsError           bool           `json:"isError"`
	StructuredContent map[string]any `json:"structuredContent,omitempty"`
}

// TextResult returns a success envelope with a single text item.
func TextResult(text string) *ToolResult {
	return &ToolResult{
		Content: []Content{NewTextContent(text)},
	}
}

// Textf returns a success envelope with a single formatted text item.
func Textf(format string, args ...any) *ToolResult {
	return TextResult(fmt.Sprintf(format, args...))
}

// ErrorResult returns a failure envelope with a single text item carrying a
// human-readable message. Identical inputs produce identical envelopes;
// internal error detail belongs in logs, not here.
func ErrorResult(format string, args ...any) *ToolResult {
	return &ToolResult{
		Content: []Content{NewTextContent(fmt.Sprintf(format, args...))},
		IsError: true,
	}
}

// JSONResult serializes v and returns it as a single text item. A value
// that cannot be serialized degrades to a failure envelope.
func JSONResult(v any) *ToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return ErrorResult("failed to serialize result: %v", err)
	}
	return TextResult(string(data))
}

// StructuredResult carries v as structuredContent alongside a serialized
// text fallback for clients that ignore structured output.
func StructuredResult(v any, fallbackText string) *ToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return ErrorResult("failed to serialize result: %v", err)
	}

	var structured map[string]any
	if err := json.Unmarshal(data, &structured); err != nil {
		// Non-object values cannot be structured content.
		return TextResult(string(data))
	}

	if fallbackText == "" {
		fallbackText = string(data)
	}
	return &ToolResult{
		Content:           []Content{NewTextContent(fallbackText)},
		StructuredContent: structured,
	}
}
