package veevalidate_test

import (
	"context"
	"testing"

	goskema "github.com/reoring/goskema"
	veevalidate "github.com/perusall/vee-validate"
)

func TestParseJSON(t *testing.T) {
	ctx := context.Background()
	ts := veevalidate.ToTypedSchema(signupSchema(t))

	res := ts.ParseJSON(ctx, []byte(`{"name":"Ada","age":30}`))
	if !res.Valid() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Value["name"] != "Ada" {
		t.Fatalf("value not decoded: %#v", res.Value)
	}

	res = ts.ParseJSON(ctx, []byte(`{"age":15}`))
	if res.Valid() || len(res.Errors) != 2 {
		t.Fatalf("expected age and name entries, got %v", res.Errors)
	}

	res = ts.ParseJSON(ctx, []byte(`{`))
	if res.Valid() {
		t.Fatalf("malformed JSON must surface as error entries, not a panic")
	}
}

func TestParseJSON_DuplicateKeyStrictness(t *testing.T) {
	ctx := context.Background()
	ts := veevalidate.ToTypedSchema(signupSchema(t), veevalidate.SchemaOpt{
		Parse: goskema.ParseOpt{
			Strictness: goskema.Strictness{OnDuplicateKey: goskema.Error},
		},
	})

	res := ts.ParseJSON(ctx, []byte(`{"name":"Ada","name":"Lovelace","age":30}`))
	if res.Valid() {
		t.Fatalf("duplicate keys should be rejected under the strict passthrough option")
	}
}

func TestParseYAML(t *testing.T) {
	ctx := context.Background()
	ts := veevalidate.ToTypedSchema(signupSchema(t))

	res := ts.ParseYAML(ctx, []byte("name: Ada\nage: 30.0\n"))
	if !res.Valid() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Value["name"] != "Ada" {
		t.Fatalf("value not decoded: %#v", res.Value)
	}

	res = ts.ParseYAML(ctx, []byte(":\n  - ]["))
	if res.Valid() {
		t.Fatalf("malformed YAML must surface as error entries")
	}
}
