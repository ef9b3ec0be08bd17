package middleware_test

import (
	"context"
	"testing"

	goskema "github.com/reoring/goskema"

	veevalidate "github.com/perusall/vee-validate"
	"github.com/perusall/vee-validate/middleware"
)

func TestResultContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := middleware.ResultFromContext[map[string]any](ctx); ok {
		t.Fatalf("empty context should carry no result")
	}

	r := veevalidate.Result[map[string]any]{Value: map[string]any{"name": "Ada"}}
	ctx = middleware.ContextWithResult(ctx, r)
	got, ok := middleware.ResultFromContext[map[string]any](ctx)
	if !ok || got.Value["name"] != "Ada" {
		t.Fatalf("result not carried through context: %+v ok=%v", got, ok)
	}

	// Keys are typed per T; a different T sees nothing.
	if _, ok := middleware.ResultFromContext[string](ctx); ok {
		t.Fatalf("results must not leak across value types")
	}
}

func TestDefaultParseOpt(t *testing.T) {
	opt := middleware.DefaultParseOpt()
	if opt.Strictness.OnDuplicateKey != goskema.Error {
		t.Fatalf("duplicate keys should be errors at HTTP boundaries: %+v", opt)
	}
}

func TestErrorPayload(t *testing.T) {
	errs := []veevalidate.FieldError{{Path: "email", Errors: []string{"invalid email"}}}
	payload := middleware.ErrorPayload(errs)
	got, ok := payload["errors"].([]veevalidate.FieldError)
	if !ok || len(got) != 1 || got[0].Path != "email" {
		t.Fatalf("unexpected payload: %#v", payload)
	}
}
