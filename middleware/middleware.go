// Package middleware carries TypedSchema parse results across HTTP handler
// boundaries and shapes error payloads for JSON responses.
package middleware

import (
	"context"

	goskema "github.com/reoring/goskema"

	veevalidate "github.com/perusall/vee-validate"
)

// ctxKeyResult is a typed context key for storing a Result[T].
// Using a generic struct type ensures uniqueness per T.
type ctxKeyResult[T any] struct{}

// ContextWithResult attaches a parse result to the context.
func ContextWithResult[T any](ctx context.Context, r veevalidate.Result[T]) context.Context {
	return context.WithValue(ctx, ctxKeyResult[T]{}, r)
}

// ResultFromContext retrieves a parse result from the context.
func ResultFromContext[T any](ctx context.Context) (veevalidate.Result[T], bool) {
	v, ok := ctx.Value(ctxKeyResult[T]{}).(veevalidate.Result[T])
	return v, ok
}

// DefaultParseOpt returns a recommended passthrough ParseOpt for HTTP JSON
// form boundaries: duplicate keys are errors.
func DefaultParseOpt() goskema.ParseOpt {
	return goskema.ParseOpt{
		Strictness: goskema.Strictness{OnDuplicateKey: goskema.Error},
	}
}

// ErrorPayload shapes field errors for JSON responses.
func ErrorPayload(errs []veevalidate.FieldError) map[string]any {
	return map[string]any{"errors": errs}
}
