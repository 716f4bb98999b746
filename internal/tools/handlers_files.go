package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/n2ns/ggMCP4VSCode/internal/edit"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// File content tool handlers

func HandleGetFileText(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := GetFileTextParams{
		Path:      args.String("path", ""),
		ForceUTF8: args.Bool("forceUtf8", false),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	text, err := tc.Cache.Read(params.Path, params.ForceUTF8)
	if err != nil {
		return failureResult(tc, "get_file_text", params.Path, err), nil
	}

	// Plain text envelope, matching the shape the file cache interceptor
	// produces on a hit.
	return protocol.TextResult(text), nil
}

func HandleCreateFile(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := CreateFileParams{
		Path:      args.String("path", ""),
		Text:      args.String("text", ""),
		Overwrite: args.Bool("overwrite", false),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if !params.Overwrite {
		if _, err := tc.Workspace.Stat(params.Path); err == nil {
			return protocol.ErrorResult("%v: %s", workspace.ErrAlreadyExists, params.Path), nil
		} else if !errors.Is(err, workspace.ErrNotFound) {
			return failureResult(tc, "create_file", params.Path, err), nil
		}
	}

	opts := workspace.WriteOptions{CreateIfAbsent: true}
	if err := tc.Workspace.WriteText(params.Path, params.Text, opts); err != nil {
		return failureResult(tc, "create_file", params.Path, err), nil
	}

	queueFollowUps(tc, "create_file", params.Path, params.Text)
	return protocol.Textf("created %s (%d bytes)", params.Path, len(params.Text)), nil
}

func HandleReplaceFileText(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := ReplaceFileTextParams{
		Path: args.String("path", ""),
		Text: args.String("text", ""),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	opts := workspace.WriteOptions{MustExist: true}
	if err := tc.Workspace.WriteText(params.Path, params.Text, opts); err != nil {
		return failureResult(tc, "replace_file_text", params.Path, err), nil
	}

	queueFollowUps(tc, "replace_file_text", params.Path, params.Text)
	return protocol.Textf("replaced contents of %s (%d bytes)", params.Path, len(params.Text)), nil
}

func HandleAppendToFile(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := AppendParams{
		Path: args.String("path", ""),
		Text: args.String("text", ""),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	current, err := tc.Cache.Read(params.Path, false)
	if err != nil {
		if !errors.Is(err, workspace.ErrNotFound) {
			return failureResult(tc, "append_to_file", params.Path, err), nil
		}
		current = "" // appending to a missing file creates it
	}

	updated := edit.Append(current, params.Text)
	opts := workspace.WriteOptions{CreateIfAbsent: true}
	if err := tc.Workspace.WriteText(params.Path, updated, opts); err != nil {
		return failureResult(tc, "append_to_file", params.Path, err), nil
	}

	queueFollowUps(tc, "append_to_file", params.Path, updated)
	return protocol.Textf("appended %d bytes to %s", len(params.Text), params.Path), nil
}
