// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"sync"
)

// memoryTokenStore keeps the token in process memory. It is the default when
// no session DSN is configured, and the natural choice for tests.
type memoryTokenStore struct {
	mu     sync.RWMutex
	token  string
	closed bool
}

// NewMemoryTokenStore returns an empty in-memory [TokenStore].
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (m *memoryTokenStore) Token(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", ErrStoreClosed
	}
	return m.token, nil
}

func (m *memoryTokenStore) SetToken(_ context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	m.token = token
	return nil
}

func (m *memoryTokenStore) ClearToken(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	m.token = ""
	return nil
}

func (m *memoryTokenStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.token = ""
	return nil
}
