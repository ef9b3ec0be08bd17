package veevalidate

import (
	"strings"

	goskema "github.com/reoring/goskema"
)

// fieldErrors shapes any engine error into the path-keyed error list of a
// Result. Non-Issues errors become a single root-path entry.
func fieldErrors(err error) []FieldError {
	if iss, ok := goskema.AsIssues(err); ok {
		if out := fieldErrorsFromIssues(iss); len(out) > 0 {
			return out
		}
	}
	return []FieldError{{Path: "", Errors: []string{err.Error()}}}
}

// fieldErrorsFromIssues flattens issues into one entry per normalized path.
// Entries keep first-seen path order; messages within an entry keep the
// order the engine reported them. Issues whose cause unwraps to a nested
// issue list (failed union branches) are replaced by the nested issues.
func fieldErrorsFromIssues(iss goskema.Issues) []FieldError {
	byPath := make(map[string]int, len(iss))
	out := make([]FieldError, 0, len(iss))
	var walk func(items goskema.Issues)
	walk = func(items goskema.Issues) {
		for _, it := range items {
			if nested, ok := goskema.AsIssues(it.Cause); ok && len(nested) > 0 {
				walk(nested)
				continue
			}
			p := pathFromPointer(it.Path)
			msg := it.Message
			if msg == "" {
				msg = it.Code
			}
			if i, seen := byPath[p]; seen {
				out[i].Errors = append(out[i].Errors, msg)
				continue
			}
			byPath[p] = len(out)
			out = append(out, FieldError{Path: p, Errors: []string{msg}})
		}
	}
	walk(iss)
	return out
}

// pathFromPointer converts an engine-issued JSON Pointer (RFC 6901, e.g.
// "/items/2/price") into the form layer's dotted path ("items.2.price").
// Paths without a leading slash are treated as form paths and normalized.
func pathFromPointer(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	if ptr[0] != '/' {
		return NormalizePath(ptr)
	}
	parts := strings.Split(ptr[1:], "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}
