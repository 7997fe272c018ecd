// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemStatus is the workflow state the backend accepts for an item.
type ItemStatus = string

// Item states accepted by the backend. The client never validates them: an
// unknown value is rejected by the backend with 422 and surfaced as-is.
const (
	ItemStatusPending    ItemStatus = "Pendiente"
	ItemStatusInProgress ItemStatus = "En progreso"
	ItemStatusDone       ItemStatus = "Completado"
)

// Item is the only record managed through the backend. It is identified by
// the server-assigned ID once created; every read goes to the backend, the
// client keeps no copy.
type Item struct {
	// ID is assigned by the backend on creation.
	ID int64 `json:"id"`

	// Name is a free-form title.
	Name string `json:"name"`

	// Status is one of the ItemStatus values.
	Status ItemStatus `json:"status"`
}

// ItemCreate is the body of POST /api/items. Both fields are always sent.
type ItemCreate struct {
	Name   string     `json:"name"`
	Status ItemStatus `json:"status"`
}

// ItemUpdate is the body of PUT /api/items/{id}.
// Only non-nil fields are serialised (partial update support); an omitted
// field is absent from the request body, never sent as null or "".
type ItemUpdate struct {
	// Name is the new title. If nil, the field will not be updated.
	Name *string `json:"name,omitempty"`

	// Status is the new state. If nil, the field will not be updated.
	Status *ItemStatus `json:"status,omitempty"`
}
