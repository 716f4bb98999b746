package tools

import (
	"context"
	"fmt"

	"github.com/n2ns/ggMCP4VSCode/internal/edit"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// Positional edit tool handlers. Both read the current text through the
// content cache, transform it in memory and write the authoritative copy
// back in one piece.

func HandleReplaceLinesInFile(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := ReplaceLinesParams{
		Path:      args.String("path", ""),
		StartLine: args.Int("startLine", 0),
		EndLine:   args.Int("endLine", 0),
		Offset:    args.Int("offset", 0),
		Text:      args.String("text", ""),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	current, err := tc.Cache.Read(params.Path, false)
	if err != nil {
		return failureResult(tc, "replace_lines_in_file", params.Path, err), nil
	}

	updated, err := edit.ReplaceRange(current, params.StartLine, params.EndLine, params.Offset, params.Text)
	if err != nil {
		return failureResult(tc, "replace_lines_in_file", params.Path, err), nil
	}

	opts := workspace.WriteOptions{MustExist: true}
	if err := tc.Workspace.WriteText(params.Path, updated, opts); err != nil {
		return failureResult(tc, "replace_lines_in_file", params.Path, err), nil
	}

	queueFollowUps(tc, "replace_lines_in_file", params.Path, updated)
	return protocol.Textf("replaced lines %d-%d in %s", params.StartLine, params.EndLine, params.Path), nil
}

func HandleReplaceTextInFile(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := ReplaceTextParams{
		Path:    args.String("path", ""),
		OldText: args.String("oldText", ""),
		NewText: args.String("newText", ""),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	current, err := tc.Cache.Read(params.Path, false)
	if err != nil {
		return failureResult(tc, "replace_text_in_file", params.Path, err), nil
	}

	updated, count, err := edit.ReplaceAll(current, params.OldText, params.NewText)
	if err != nil {
		return failureResult(tc, "replace_text_in_file", params.Path, err), nil
	}

	opts := workspace.WriteOptions{MustExist: true}
	if err := tc.Workspace.WriteText(params.Path, updated, opts); err != nil {
		return failureResult(tc, "replace_text_in_file", params.Path, err), nil
	}

	queueFollowUps(tc, "replace_text_in_file", params.Path, updated)
	return protocol.Textf("replaced %d occurrence(s) in %s", count, params.Path), nil
}
