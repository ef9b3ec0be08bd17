package veevalidate

import (
	"regexp"
	"strings"
)

var (
	nonNestedPathPattern = regexp.MustCompile(`^\[.+\]$`)
	bracketIndexPattern  = regexp.MustCompile(`\[(\d+)\]`)
)

// IsNotNestedPath reports whether path addresses a single literal key
// wrapped in brackets, e.g. "[billing.street]". Such keys may contain dots
// and are never split into segments.
func IsNotNestedPath(path string) bool { return nonNestedPathPattern.MatchString(path) }

// CleanupNonNestedPath strips the surrounding brackets from a non-nested
// path. Other paths come back unchanged.
func CleanupNonNestedPath(path string) string {
	if IsNotNestedPath(path) {
		return path[1 : len(path)-1]
	}
	return path
}

// NormalizePath collapses bracket-index syntax into the canonical dotted
// form used as the error-map key: "a.b[2].c" becomes "a.b.2.c".
func NormalizePath(path string) string {
	p := bracketIndexPattern.ReplaceAllString(path, ".$1")
	return strings.TrimPrefix(p, ".")
}

// splitPath breaks a nested path into its non-empty segments.
func splitPath(path string) []string {
	raw := strings.Split(NormalizePath(path), ".")
	segs := raw[:0]
	for _, s := range raw {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// isIndexSegment reports whether seg is a bare non-negative integer.
func isIndexSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}
