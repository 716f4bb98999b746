package workspace

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Local is the OS file-system implementation of Binding, rooted at a single
// directory. Tool paths may be absolute or root-relative; either way they
// must resolve inside the root.
type Local struct {
	root      string
	editorCmd []string
}

// NewLocal binds root as the workspace directory. editorCmd is the command
// prefix used by OpenInEditor (the file path is appended); empty disables
// editor opens.
func NewLocal(root string, editorCmd []string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("workspace root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", abs)
	}

	return &Local{root: abs, editorCmd: editorCmd}, nil
}

// Root returns the absolute workspace root.
func (l *Local) Root() string {
	return l.root
}

// Resolve maps a tool-supplied path onto the file system and confines it to
// the workspace root.
func (l *Local) Resolve(path string) (string, error) {
	p := filepath.FromSlash(path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.root, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(l.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, path)
	}
	return p, nil
}

// ReadText reads and decodes the file at path.
func (l *Local) ReadText(path string, forceUTF8 bool) (string, error) {
	abs, err := l.Resolve(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if forceUTF8 {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), nil
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%w: %s", ErrDecode, path)
	}
	return string(data), nil
}

// WriteText stores text as the new full contents of the file at path.
func (l *Local) WriteText(path, text string, opts WriteOptions) error {
	abs, err := l.Resolve(path)
	if err != nil {
		return err
	}

	_, statErr := os.Stat(abs)
	switch {
	case statErr == nil:
		// Existing file, plain overwrite.
	case os.IsNotExist(statErr):
		if opts.MustExist || !opts.CreateIfAbsent {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return fmt.Errorf("failed to create parent directories for %s: %w", path, err)
		}
	default:
		return fmt.Errorf("failed to stat %s: %w", path, statErr)
	}

	if err := os.WriteFile(abs, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Stat reports the file's size and modification time.
func (l *Local) Stat(path string) (FileStat, error) {
	abs, err := l.Resolve(path)
	if err != nil {
		return FileStat{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return FileStat{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return FileStat{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return FileStat{Size: info.Size(), ModTime: info.ModTime()}, nil
}

// ListDirectory returns the entries directly under path.
func (l *Local) ListDirectory(path string) ([]Entry, error) {
	abs, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, Entry{Name: e.Name(), IsDirectory: e.IsDir()})
	}
	return entries, nil
}

// OpenInEditor launches the configured editor command against path. The
// spawned process is reaped in the background; its outcome is log-only.
func (l *Local) OpenInEditor(path, originTool string) {
	abs, err := l.Resolve(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Str("tool", originTool).Msg("editor open refused")
		return
	}
	if len(l.editorCmd) == 0 {
		log.Debug().Str("path", path).Msg("no editor command configured, skipping open")
		return
	}

	args := append(append([]string{}, l.editorCmd[1:]...), abs)
	cmd := exec.Command(l.editorCmd[0], args...)
	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Str("path", path).Str("tool", originTool).Msg("editor open failed")
		return
	}
	go func() { _ = cmd.Wait() }()

	log.Debug().Str("path", path).Str("tool", originTool).Msg("opened in editor")
}
