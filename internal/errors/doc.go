// Package errors provides structured, coded errors for Weft.
//
// Each known failure mode has a unique code (e.g. "E001") registered with
// a category, a short message, and a detailed explanation. Structural
// engine invariant violations are fatal and abort the render pass that hit
// them; recoverable conditions are logged and registered here only so
// diagnostics carry a stable code.
//
// # Usage
//
//	err := errors.New("E001").Wrap(cause)
//	if errors.IsFatal(err) { ... }
package errors
