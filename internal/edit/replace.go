// Package edit implements the positional text transforms behind the
// file-mutating tools. Every function takes the current full text and
// returns new full text; writing the result back is the caller's job.
//
// All operations detect the text's dominant line-ending style, work in
// LF-normalized space, and restore the detected style on the way out, so
// a CRLF file stays CRLF after any edit.
package edit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRange reports line bounds outside the current text.
	ErrInvalidRange = errors.New("invalid line range")

	// ErrNotFound reports a replace-all whose old text never occurs.
	ErrNotFound = errors.New("text not found")
)

// ReplaceRange replaces the 1-based inclusive line range [startLine, endLine]
// with replacement text.
//
// When startLine == endLine the replacement is a positional overwrite inside
// that single line: characters in [offset, offset+len(replacement)) are
// overwritten and anything beyond that window is kept verbatim, so a
// replacement shorter than the remainder does not shift the remainder left.
// Offsets are counted in characters, clamped to the line; offset is ignored
// for multi-line ranges.
func ReplaceRange(text string, startLine, endLine, offset int, replacement string) (string, error) {
	style := DetectLineEnding(text)
	lines := strings.Split(NormalizeLF(text), "\n")

	if startLine < 1 || startLine > endLine || endLine > len(lines) {
		return "", fmt.Errorf("%w: %d-%d in %d line(s)", ErrInvalidRange, startLine, endLine, len(lines))
	}

	replacement = NormalizeLF(replacement)

	if startLine == endLine {
		lines[startLine-1] = overwriteAt(lines[startLine-1], offset, replacement)
	} else {
		spliced := make([]string, 0, len(lines))
		spliced = append(spliced, lines[:startLine-1]...)
		spliced = append(spliced, strings.Split(replacement, "\n")...)
		spliced = append(spliced, lines[endLine:]...)
		lines = spliced
	}

	return ApplyLineEnding(strings.Join(lines, "\n"), style), nil
}

// overwriteAt writes replacement over line starting at character offset,
// keeping everything past the written window. Offsets outside the line are
// clamped, so an offset past the end appends.
func overwriteAt(line string, offset int, replacement string) string {
	runes := []rune(line)
	repl := []rune(replacement)

	start := offset
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + len(repl)
	if end > len(runes) {
		end = len(runes)
	}

	return string(runes[:start]) + replacement + string(runes[end:])
}

// ReplaceAll replaces every literal occurrence of oldText with newText and
// returns the occurrence count. No pattern semantics: oldText is matched as
// an exact substring and may span line breaks. Zero occurrences fail with
// ErrNotFound; the caller is expected to have rejected empty oldText.
func ReplaceAll(text, oldText, newText string) (string, int, error) {
	style := DetectLineEnding(text)
	normText := NormalizeLF(text)
	normOld := NormalizeLF(oldText)
	normNew := NormalizeLF(newText)

	count := 0
	if normOld != "" {
		count = strings.Count(normText, normOld)
	}
	if count == 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrNotFound, oldText)
	}

	return ApplyLineEnding(strings.ReplaceAll(normText, normOld, normNew), style), count, nil
}

// Append concatenates addition to text after rewriting the addition's line
// endings to the text's dominant style. The existing bytes are never touched.
func Append(text, addition string) string {
	style := DetectLineEnding(text)
	return text + ApplyLineEnding(NormalizeLF(addition), style)
}
