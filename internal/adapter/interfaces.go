// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport layer between the items client and its
// backend.
//
// [ServerAdapter] has one method per backend endpoint. The HTTP
// implementation ([NewHTTPServerAdapter]) owns a single preconfigured resty
// client: fixed base URL, fixed timeout, no retries, and an auth hook that
// reads the credential token before every request and attaches it as a
// bearer Authorization header when one is stored.
//
// Failures are returned as wrapped errors so callers can use [errors.Is] and
// [errors.As]: [ErrNetwork], [ErrTimeout], [ErrCanceled] and [ErrDecode] wrap
// the underlying cause; non-2xx responses are *[HTTPError] values carrying
// the status code and unwrapping to a per-status sentinel such as
// [ErrUnauthorized].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-items-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the items backend. Every method
// issues exactly one request.
type ServerAdapter interface {
	// Register POSTs the credentials as JSON to /api/auth/register and
	// returns the backend's confirmation message.
	Register(ctx context.Context, creds models.Credentials) (models.Message, error)

	// Login POSTs the credentials form-urlencoded to /token and returns the
	// issued token verbatim. It does not store the token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// GetStatus GETs / (health probe).
	GetStatus(ctx context.Context) (models.Status, error)

	// GetData GETs /api/data.
	GetData(ctx context.Context) (models.Data, error)

	// ListItems GETs /api/items. An empty collection yields an empty,
	// non-nil slice.
	ListItems(ctx context.Context) ([]models.Item, error)

	// CreateItem POSTs item as JSON to /api/items and returns the created
	// record with its backend-assigned ID.
	CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error)

	// UpdateItem PUTs the partial update as JSON to /api/items/{itemID};
	// only the non-nil fields of update are sent.
	UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdate) (models.Item, error)

	// DeleteItem sends DELETE /api/items/{itemID}. Any 2xx response is a
	// success, whatever its body.
	DeleteItem(ctx context.Context, itemID int64) error
}
