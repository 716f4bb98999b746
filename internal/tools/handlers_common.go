package tools

import (
	"errors"

	"github.com/n2ns/ggMCP4VSCode/internal/edit"
	"github.com/n2ns/ggMCP4VSCode/internal/protocol"
	"github.com/n2ns/ggMCP4VSCode/internal/workspace"
)

// knownFailures are expected outcomes whose messages are safe to show
// to the caller verbatim.
var knownFailures = []error{
	workspace.ErrNotFound,
	workspace.ErrAlreadyExists,
	workspace.ErrDecode,
	workspace.ErrOutsideWorkspace,
	edit.ErrInvalidRange,
	edit.ErrNotFound,
}

// failureResult converts a workspace or edit error into the failure
// envelope shown to the caller. Unexpected errors are logged in full and
// reported generically so internal detail stays out of the response.
func failureResult(tc *ToolContext, toolName, path string, err error) *protocol.ToolResult {
	for _, known := range knownFailures {
		if errors.Is(err, known) {
			return protocol.ErrorResult("%v", err)
		}
	}
	tc.Logger.Error().Err(err).Str("tool", toolName).Str("path", path).Msg("tool operation failed")
	return protocol.ErrorResult("%s failed for %s", toolName, path)
}

// queueFollowUps schedules the post-response cache refresh and editor
// reveal for a file the tool just wrote.
func queueFollowUps(tc *ToolContext, toolName, path, text string) {
	tc.Defer("cache_update", func() { tc.Cache.Update(path, text) })
	tc.Defer("open_editor", func() { tc.Workspace.OpenInEditor(path, toolName) })
}
