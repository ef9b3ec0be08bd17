package veevalidate

import (
	"context"
	"log/slog"

	goskema "github.com/reoring/goskema"
	js "github.com/reoring/goskema/jsonschema"
	"gopkg.in/yaml.v3"
)

// Schema adapts a goskema schema to the TypedSchema facade. Construct it
// once per schema via ToTypedSchema and reuse it for the lifetime of the
// form; it holds no mutable state.
type Schema[T any] struct {
	schema goskema.Schema[T]
	opt    SchemaOpt
	spec   *js.Schema // cached projection; nil when the engine could not export one
}

var _ TypedSchema[map[string]any] = (*Schema[map[string]any])(nil)

// ToTypedSchema wraps a goskema schema for consumption by the form layer.
// When several opts are given the last one wins.
func ToTypedSchema[T any](s goskema.Schema[T], opts ...SchemaOpt) *Schema[T] {
	var opt SchemaOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	a := &Schema[T]{schema: s, opt: opt}
	if s != nil {
		spec, err := s.JSONSchema()
		if err != nil {
			a.warn("schema projection unavailable; Describe and Cast defaults degrade", "err", err)
		} else {
			a.spec = spec
		}
	}
	return a
}

// ToFieldValidator is the legacy name for ToTypedSchema.
//
// Deprecated: use ToTypedSchema.
func ToFieldValidator[T any](s goskema.Schema[T], opts ...SchemaOpt) *Schema[T] {
	return ToTypedSchema(s, opts...)
}

// ToFormValidator is the legacy name for ToTypedSchema.
//
// Deprecated: use ToTypedSchema.
func ToFormValidator[T any](s goskema.Schema[T], opts ...SchemaOpt) *Schema[T] {
	return ToTypedSchema(s, opts...)
}

// Engine identifies the wrapped validation engine.
func (a *Schema[T]) Engine() string { return "goskema" }

// Parse validates v against the wrapped schema. Validation failures come
// back as path-keyed error entries, never as a raised error.
func (a *Schema[T]) Parse(ctx context.Context, v any) Result[T] {
	if a.schema == nil {
		return Result[T]{Errors: []FieldError{{Path: "", Errors: []string{"nil schema"}}}}
	}
	if a.opt.Parse.FailFast {
		ctx = goskema.WithFailFast(ctx, true)
	}
	tv, err := a.schema.Parse(ctx, v)
	if err != nil {
		return Result[T]{Errors: fieldErrors(err)}
	}
	return Result[T]{Value: tv}
}

// ParseJSON validates a raw JSON payload through the engine's source path,
// honoring the passthrough ParseOpt (duplicate-key strictness, limits).
func (a *Schema[T]) ParseJSON(ctx context.Context, data []byte) Result[T] {
	if a.schema == nil {
		return Result[T]{Errors: []FieldError{{Path: "", Errors: []string{"nil schema"}}}}
	}
	tv, err := goskema.ParseFrom(ctx, a.schema, goskema.JSONBytes(data), a.opt.Parse)
	if err != nil {
		return Result[T]{Errors: fieldErrors(err)}
	}
	return Result[T]{Value: tv}
}

// ParseYAML validates a raw YAML payload. The decoded tree is normalized to
// JSON-like map[string]any values before validation.
func (a *Schema[T]) ParseYAML(ctx context.Context, data []byte) Result[T] {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Result[T]{Errors: []FieldError{{Path: "", Errors: []string{err.Error()}}}}
	}
	return a.Parse(ctx, normalizeYAMLValue(node))
}

// Cast attempts a strict parse and, when that fails, falls back to the
// schema's declared defaults shallow-merged under the provided fields.
// It never fails; inputs it cannot improve come back unchanged.
func (a *Schema[T]) Cast(v any) any {
	if a.schema != nil {
		if tv, err := a.schema.Parse(context.Background(), v); err == nil {
			return tv
		}
	}
	if !isObjectSchema(a.spec) {
		return v
	}
	values, ok := plainMap(v)
	if !ok {
		return v
	}
	return mergeOverDefaults(defaultsFor(a.spec), values)
}

// Describe reports whether the field at path exists and is required. An
// empty path describes the schema itself. Unresolvable paths and unexpected
// failures both degrade to a not-found description; this never panics.
func (a *Schema[T]) Describe(path string) (desc FieldDescription) {
	defer func() {
		if r := recover(); r != nil {
			a.warn("describe failed; reporting field as not found", "path", path, "panic", r)
			desc = FieldDescription{}
		}
	}()
	if path == "" {
		return FieldDescription{Required: !a.opt.RootOptional, Exists: true}
	}
	node, required, ok := specForPath(a.spec, path)
	if !ok || node == nil {
		return FieldDescription{}
	}
	return FieldDescription{Required: required, Exists: true}
}

func (a *Schema[T]) warn(msg string, args ...any) {
	if a.opt.Debug && a.opt.Logger != nil {
		a.opt.Logger.Warn(msg, args...)
	}
}
