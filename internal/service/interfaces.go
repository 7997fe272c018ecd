// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service exposes one operation per backend capability on top of
// the transport adapter, plus the session layer that owns the credential
// token lifecycle.
package service

import (
	"context"

	"github.com/MKhiriev/go-items-client/models"
)

// APIService issues exactly one backend request per call. On failure it logs
// a single entry and returns the transport error unchanged. It never writes
// the credential token.
type APIService interface {
	// Register creates a user account and returns the backend's message.
	Register(ctx context.Context, creds models.Credentials) (models.Message, error)

	// Login exchanges credentials for an access token. The token is returned
	// as-is and is not persisted; see [SessionService.SignIn].
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// GetStatus returns the backend health status.
	GetStatus(ctx context.Context) (models.Status, error)

	// GetData returns the authenticated user's aggregate data.
	GetData(ctx context.Context) (models.Data, error)

	// ListItems returns every item. An empty collection is an empty, non-nil
	// slice.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem creates item and returns it as stored by the backend.
	CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error)

	// UpdateItem applies the supplied fields of update to the item with
	// itemID and returns the updated item.
	UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdate) (models.Item, error)

	// DeleteItem deletes the item with itemID. It reports true on any 2xx
	// response.
	DeleteItem(ctx context.Context, itemID int64) (bool, error)
}

// SessionService owns the stored credential token.
type SessionService interface {
	// SignIn logs in and persists the returned access token, so every
	// subsequent request carries it.
	SignIn(ctx context.Context, creds models.Credentials) (models.Token, error)

	// SignOut removes the stored token.
	SignOut(ctx context.Context) error

	// Authenticated reports whether a token is stored and, when it carries
	// an expiry, has not expired yet.
	Authenticated(ctx context.Context) (bool, error)
}
