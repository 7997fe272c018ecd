// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "  tok123  "))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)

	require.NoError(t, s.SetToken(ctx, "tok456"))
	tok, _ = s.Token(ctx)
	assert.Equal(t, "tok456", tok, "SetToken replaces the previous token")

	require.NoError(t, s.ClearToken(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.ClearToken(ctx), "clearing an empty store is not an error")
}

func TestMemoryTokenStore_EmptyToken(t *testing.T) {
	s := NewMemoryTokenStore()
	assert.ErrorIs(t, s.SetToken(context.Background(), "   "), ErrEmptyToken)
}

func TestMemoryTokenStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()
	require.NoError(t, s.SetToken(ctx, "tok"))
	require.NoError(t, s.Close())

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.SetToken(ctx, "tok"), ErrStoreClosed)
	assert.ErrorIs(t, s.ClearToken(ctx), ErrStoreClosed)
}

func TestMemoryTokenStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryTokenStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.SetToken(ctx, "tok")
		}()
		go func() {
			defer wg.Done()
			_, err := s.Token(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}
