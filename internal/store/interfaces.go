// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client's credential token storage.
//
// The token lives under the fixed key [AccessTokenKey] in a key-value store.
// The transport only ever reads it ([TokenReader]); writing and clearing is
// reserved to the session layer ([TokenStore]).
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// AccessTokenKey is the fixed key the credential token is stored under.
const AccessTokenKey = "access_token"

// TokenReader is the read-only view of the credential token store used by
// the transport before every request.
type TokenReader interface {
	// Token returns the stored credential token, or an empty string if none
	// is stored. A non-nil error means the store itself could not be read.
	Token(ctx context.Context) (string, error)
}

// TokenStore is the full credential token store. At most one token is held
// at a time; SetToken replaces any previous value.
type TokenStore interface {
	TokenReader

	// SetToken persists token under [AccessTokenKey].
	SetToken(ctx context.Context, token string) error

	// ClearToken removes the stored token. Clearing an empty store is not an
	// error.
	ClearToken(ctx context.Context) error

	// Close releases resources held by the store.
	Close() error
}
