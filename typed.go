package veevalidate

import (
	"context"
	"log/slog"

	goskema "github.com/reoring/goskema"
)

// TypedSchema is the uniform facade the form layer consumes for any
// validation-engine adapter. Implementations must be stateless between
// calls: the same instance may serve many forms concurrently.
type TypedSchema[T any] interface {
	// Engine identifies the validation engine backing this adapter.
	Engine() string

	// Parse validates v and returns either the typed value with no errors
	// or a path-keyed error list with no value. It never returns an error.
	Parse(ctx context.Context, v any) Result[T]

	// Cast coerces v on a best-effort basis for initializing untouched
	// fields. It never fails; inputs it cannot improve come back unchanged.
	Cast(v any) any

	// Describe reports whether the field at path exists in the schema and
	// whether it is required. An empty path describes the schema itself.
	Describe(path string) FieldDescription
}

// Result carries the outcome of a Parse call. Exactly one of Value and
// Errors is meaningful: a valid result has an empty error list, an invalid
// one has the zero value.
type Result[T any] struct {
	Value  T
	Errors []FieldError
}

// Valid reports whether the parse produced a value.
func (r Result[T]) Valid() bool { return len(r.Errors) == 0 }

// FieldError accumulates every message raised against one normalized field
// path, in the order the engine reported them.
type FieldError struct {
	Path   string   `json:"path"`
	Errors []string `json:"errors"`
}

// FieldDescription is the answer to a Describe query.
type FieldDescription struct {
	Required bool `json:"required"`
	Exists   bool `json:"exists"`
}

// SchemaOpt bundles adapter options. Pass it as the trailing argument to
// ToTypedSchema; when several are given the last one wins.
type SchemaOpt struct {
	// Parse is forwarded to the engine for payload entry points
	// (duplicate-key strictness, limits, fail-fast).
	Parse goskema.ParseOpt

	// RootOptional marks the schema itself as optional for Describe("").
	// goskema roots carry no declared-optional flag, so the caller states it.
	RootOptional bool

	// Debug enables non-fatal diagnostics for Describe failures.
	Debug bool

	// Logger receives diagnostics when Debug is set. Defaults to slog.Default().
	Logger *slog.Logger
}
