package veevalidate

// Package veevalidate adapts goskema validation schemas to the TypedSchema
// facade a form-management layer consumes:
//
// - Parse: safe validation returning a path-keyed error map instead of an error
// - Cast: best-effort coercion falling back to declared schema defaults
// - Describe: required/exists reporting for a dotted field path
//
// Design policy:
// - Keep the public API in the root package; transport helpers live under middleware/.
// - Introspect schemas only through their JSON Schema projection, never engine internals.
// - The three facade operations are total: validation failures are data, not errors.
//
// Typical usage:
//
//	ts := veevalidate.ToTypedSchema(schema)
//	res := ts.Parse(ctx, values)
//	if !res.Valid() { render(res.Errors) }
//	initial := ts.Cast(partialValues)
//	desc := ts.Describe("profile.email")
