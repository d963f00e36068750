// Package strings provides string helpers shared across the data layer
package strings

import std "strings"

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// EmptyToNil returns empty string if s is all whitespace, otherwise returns s
func EmptyToNil(s string) string {
	if std.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps.
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// FirstToken returns the first whitespace-delimited token of s, or "" when s is blank
func FirstToken(s string) string {
	fs := std.Fields(s)
	if len(fs) == 0 {
		return ""
	}
	return fs[0]
}

// LastToken returns the final whitespace-delimited token of s, or "" when s is blank
func LastToken(s string) string {
	fs := std.Fields(s)
	if len(fs) == 0 {
		return ""
	}
	return fs[len(fs)-1]
}
