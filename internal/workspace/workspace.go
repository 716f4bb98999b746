// Package workspace binds the server to a single editor workspace: a
// directory tree holding the authoritative copy of every file, plus the
// editor command used to surface files visually.
package workspace

import "time"

// Entry is one row of a directory listing.
type Entry struct {
	Name        string `json:"name"`
	IsDirectory bool   `json:"isDirectory"`
}

// FileStat is the cheap existence/freshness view of a file, used by the
// content cache as its validity marker.
type FileStat struct {
	Size    int64
	ModTime time.Time
}

// WriteOptions controls how WriteText treats a missing target.
type WriteOptions struct {
	// MustExist fails the write with ErrNotFound when the file is missing.
	MustExist bool
	// CreateIfAbsent creates the file (and parent directories) when missing.
	// A missing file with neither flag set is ErrNotFound.
	CreateIfAbsent bool
}

// Binding is the surface tools operate on. Implementations own path
// resolution and text decoding; callers never see raw bytes.
type Binding interface {
	// Root returns the absolute workspace root directory.
	Root() string

	// Resolve canonicalizes a tool-supplied path to an absolute path inside
	// the root, failing with ErrOutsideWorkspace when it escapes.
	Resolve(path string) (string, error)

	// ReadText returns the decoded text of the file at path. Contents that
	// are not valid UTF-8 fail with ErrDecode unless forceUTF8 is set, in
	// which case invalid sequences are replaced and the result returned.
	ReadText(path string, forceUTF8 bool) (string, error)

	// WriteText stores text as the file's new full contents.
	WriteText(path, text string, opts WriteOptions) error

	// Stat reports size and modification time of the file at path.
	Stat(path string) (FileStat, error)

	// ListDirectory returns the entries directly under path in name order.
	ListDirectory(path string) ([]Entry, error)

	// OpenInEditor asks the editor to show path. Fire and forget: failures
	// are logged, never returned, and nothing waits for the editor.
	OpenInEditor(path, originTool string)
}
