package edit

import "strings"

// LineEnding is a file's dominant line-ending style.
type LineEnding string

const (
	LF   LineEnding = "\n"
	CRLF LineEnding = "\r\n"
)

// DetectLineEnding reports CRLF if the text contains any CRLF sequence,
// LF otherwise. Empty text defaults to LF.
func DetectLineEnding(text string) LineEnding {
	if strings.Contains(text, string(CRLF)) {
		return CRLF
	}
	return LF
}

// NormalizeLF rewrites CRLF sequences to bare LF so positional operations
// can treat "\n" as the only separator.
func NormalizeLF(text string) string {
	return strings.ReplaceAll(text, string(CRLF), string(LF))
}

// ApplyLineEnding rewrites every LF separator in LF-normalized text to the
// given style. Calling it on text that still contains CRLF sequences would
// double the carriage returns, so normalize first.
func ApplyLineEnding(text string, ending LineEnding) string {
	if ending == LF {
		return text
	}
	return strings.ReplaceAll(text, string(LF), string(ending))
}
