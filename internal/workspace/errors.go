package workspace

import "errors"

var (
	// ErrNotFound reports a path that does not exist in the workspace.
	ErrNotFound = errors.New("file not found")

	// ErrAlreadyExists reports a create refused because the path exists.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrDecode reports file contents that are not valid UTF-8 text.
	ErrDecode = errors.New("content is not valid text")

	// ErrOutsideWorkspace reports a path that resolves outside the root.
	ErrOutsideWorkspace = errors.New("path escapes the workspace root")
)
