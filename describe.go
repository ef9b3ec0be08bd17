package veevalidate

import (
	"strings"

	js "github.com/reoring/goskema/jsonschema"
)

// Shape queries over the engine's JSON Schema projection. The projection is
// the only introspection surface the adapter touches; engine internals may
// change between versions, the exported projection shape does not.

func isObjectSchema(s *js.Schema) bool {
	return s != nil && (s.Type == "object" || s.Properties != nil)
}

func isArraySchema(s *js.Schema) bool {
	return s != nil && (s.Type == "array" || s.Items != nil)
}

func isRequiredField(s *js.Schema, key string) bool {
	for _, k := range s.Required {
		if k == key {
			return true
		}
	}
	return false
}

// specForPath resolves the sub-schema at a dotted/indexed form path.
//
// A plain key is looked up directly in the root's field map. Nested paths
// walk segment by segment with a trailing empty sentinel, so the walk stops
// with the node reached by the last real segment. Descending into an array
// element returns that element's schema immediately, without consuming the
// remaining segments; callers rely on this exact behavior, so do not
// "fix" it here without coordinating with the form layer.
func specForPath(root *js.Schema, path string) (node *js.Schema, required bool, ok bool) {
	if !isObjectSchema(root) {
		return nil, false, false
	}
	if IsNotNestedPath(path) || !strings.ContainsAny(path, ".[") {
		key := CleanupNonNestedPath(path)
		node = root.Properties[key]
		if node == nil {
			return nil, false, false
		}
		return node, isRequiredField(root, key), true
	}

	segs := append(splitPath(path), "")
	cur := root
	for _, seg := range segs {
		if seg == "" || cur == nil {
			break
		}
		if isObjectSchema(cur) {
			next := cur.Properties[seg]
			if next != nil {
				required = isRequiredField(cur, seg)
			}
			cur = next
			continue
		}
		if isArraySchema(cur) && isIndexSegment(seg) {
			if cur.Items == nil {
				return nil, false, false
			}
			// Element slots carry no optional marker; a resolvable element
			// is reported as required.
			return cur.Items, true, true
		}
		// Descent required through a non-object, non-array node.
		return nil, false, false
	}
	if cur == nil || cur == root {
		return nil, false, false
	}
	return cur, required, true
}
