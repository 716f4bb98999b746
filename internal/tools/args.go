package tools

import "github.com/spf13/cast"

// Args is the decoded argument bag of a tools/call request. JSON numbers
// arrive as float64 and clients are loose about types, so accessors
// coerce rather than type-assert.
type Args map[string]any

// Has reports whether key is present, even with a null or zero value.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the value at key coerced to a string, or fallback when
// the key is absent.
func (a Args) String(key, fallback string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback
	}
	return cast.ToString(v)
}

// Int returns the value at key coerced to an int, or fallback when the
// key is absent.
func (a Args) Int(key string, fallback int) int {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback
	}
	return cast.ToInt(v)
}

// Bool returns the value at key coerced to a bool, or fallback when the
// key is absent.
func (a Args) Bool(key string, fallback bool) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback
	}
	return cast.ToBool(v)
}
