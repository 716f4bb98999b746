package tools

import (
	"context"
	"fmt"

	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
)

// Workspace inspection tool handlers

func HandleListDirectory(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := ListDirectoryParams{
		Path: args.String("path", "."),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	entries, err := tc.Workspace.ListDirectory(params.Path)
	if err != nil {
		return failureResult(tc, "list_directory", params.Path, err), nil
	}

	return protocol.JSONResult(entries), nil
}

func HandleOpenInEditor(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	params := OpenInEditorParams{
		Path: args.String("path", ""),
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if _, err := tc.Workspace.Stat(params.Path); err != nil {
		return failureResult(tc, "open_in_editor", params.Path, err), nil
	}

	tc.Workspace.OpenInEditor(params.Path, "open_in_editor")
	return protocol.Textf("opened %s in editor", params.Path), nil
}

// WorkspaceInfo is the structured payload of get_workspace_info.
type WorkspaceInfo struct {
	Root          string `json:"root"`
	ServerName    string `json:"serverName"`
	ServerVersion string `json:"serverVersion"`
	ToolCount     int    `json:"toolCount"`
}

func HandleGetWorkspaceInfo(ctx context.Context, tc *ToolContext, args Args) (*protocol.ToolResult, error) {
	info := WorkspaceInfo{
		Root:          tc.Workspace.Root(),
		ServerName:    tc.ServerName,
		ServerVersion: tc.ServerVersion,
		ToolCount:     tc.Registry.Len(),
	}

	fallback := fmt.Sprintf("%s %s serving %d tools for workspace %s",
		info.ServerName, info.ServerVersion, info.ToolCount, info.Root)
	return protocol.StructuredResult(info, fallback), nil
}
