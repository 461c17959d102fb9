// Package errors provides structured error handling for the credential flow gateway.
//
// Every failure the gateway reports carries a Kind, a human-readable message, and the
// raw provider detail when one exists. Callers branch on the Kind; the Detail is for
// diagnostics only.
//
// # Basic Usage
//
//	import "github.com/tendant/cognito-flow/pkg/errors"
//
//	// Create a simple error
//	err := errors.New(errors.KindValidation, "username cannot be empty")
//
//	// Wrap a provider error, keeping its raw detail
//	err := errors.Wrap(sdkErr, errors.KindUnknown, "provider call failed").
//		WithDetail(sdkErr.Error())
//
//	// Inspect
//	if errors.IsKind(err, errors.KindUnauthorized) { ... }
//
// # HTTP Mapping
//
// Callers that render flow results over HTTP can use MapKindToHTTPStatus or the
// HTTPStatusCode method to pick a response code. Nothing in this package performs I/O.
package errors
