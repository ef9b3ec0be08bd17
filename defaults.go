package veevalidate

import (
	"reflect"

	json "github.com/goccy/go-json"
	js "github.com/reoring/goskema/jsonschema"
)

// defaultsFor reconstructs the declared default values of an object-shaped
// projection. Fields with a declared default contribute it; object-shaped
// fields contribute their own defaults recursively; everything else is
// absent from the result. Non-object schemas yield nothing.
func defaultsFor(s *js.Schema) map[string]any {
	out := make(map[string]any, len(s.Properties))
	for k, p := range s.Properties {
		if p == nil {
			continue
		}
		if p.Default != nil {
			out[k] = p.Default
			continue
		}
		if isObjectSchema(p) {
			out[k] = defaultsFor(p)
		}
	}
	return out
}

// plainMap coerces v into a JSON-like string-keyed map. Maps pass through
// (string keys directly, other key types via normalization); structs and
// struct pointers round-trip through JSON so their exported fields merge
// like form values. Anything else is not a mapping.
func plainMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	case map[any]any:
		m := normalizeStringMap(t)
		return m, m != nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map {
		return nil, false
	}
	data, err := json.Marshal(rv.Interface())
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return m, true
}

// mergeOverDefaults lays the caller's fields over the extracted defaults.
// The merge is shallow: a provided field wins wholesale, nested defaults
// underneath it included.
func mergeOverDefaults(defaults, values map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(values))
	for k, dv := range defaults {
		out[k] = dv
	}
	for k, vv := range values {
		out[k] = vv
	}
	return out
}
