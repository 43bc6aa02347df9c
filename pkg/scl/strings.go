package scl

import "strings"

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// StringOf returns the trimmed value of an optional attribute.
// A nil pointer and a blank value both yield "".
func StringOf(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// EqualsOrBothBlank reports whether a and b are equal, treating all blank
// values as equal to each other.
func EqualsOrBothBlank(a, b string) bool {
	if IsBlank(a) && IsBlank(b) {
		return true
	}
	return a == b
}
