// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys,
// HTTP client initialization and call identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallIDCtxKey is the key a caller-chosen call identifier is stored under.
// When present, failure logs use it as their "call_id" instead of a freshly
// generated one, so a caller can correlate its own logs with the client's.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithCallID(ctx, "req-42")
var CallIDCtxKey = contextKey("callID")

// WithCallID returns a copy of ctx carrying callID.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, CallIDCtxKey, callID)
}

// GetCallIDFromContext retrieves the call identifier from the context.
//
// Returns the call ID and an ok flag:
//   - ok == true if a non-empty string value is found
//   - ok == false if the value is missing, empty or of another type
func GetCallIDFromContext(ctx context.Context) (string, bool) {
	callID, ok := ctx.Value(CallIDCtxKey).(string)
	return callID, ok && callID != ""
}
