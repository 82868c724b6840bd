// Package patch applies partial updates: a source value is written to its
// destination only when it is present and, for strings, non-blank after
// trimming.
package patch

import (
	"strings"
	"time"
)

// String sets *dst to the trimmed *src when src is non-nil and non-blank.
// It reports whether dst changed.
func String(dst *string, src *string) bool {
	if dst == nil || src == nil {
		return false
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		return false
	}
	*dst = v
	return true
}

// OptionalString is String for nullable columns.
func OptionalString(dst **string, src *string) bool {
	if dst == nil || src == nil {
		return false
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		return false
	}
	*dst = &v
	return true
}

// Time sets *dst to *src when src is non-nil and non-zero.
func Time(dst *time.Time, src *time.Time) bool {
	if dst == nil || src == nil || src.IsZero() {
		return false
	}
	*dst = *src
	return true
}

// OptionalTime is Time for nullable columns.
func OptionalTime(dst **time.Time, src *time.Time) bool {
	if dst == nil || src == nil || src.IsZero() {
		return false
	}
	v := *src
	*dst = &v
	return true
}

// Trimmed returns the trimmed value of s, or nil when s is nil or blank.
func Trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Value returns *s trimmed, or "" when s is nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
