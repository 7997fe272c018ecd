// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-key"))
	require.NoError(t, err)
	return s
}

func TestToken_Claims_SubjectAndExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := Token{
		AccessToken: signTestToken(t, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(exp),
		}),
		TokenType: "bearer",
	}

	claims, err := tok.Claims()
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, exp.Equal(claims.ExpiresAt))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(exp.Add(time.Second)))
}

func TestToken_Claims_NoExpiry(t *testing.T) {
	tok := Token{AccessToken: signTestToken(t, jwt.RegisteredClaims{Subject: "bob"})}

	claims, err := tok.Claims()
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestToken_Claims_OpaqueToken(t *testing.T) {
	_, err := Token{AccessToken: "tok123"}.Claims()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing access token")
}

func TestToken_String_Redacted(t *testing.T) {
	tok := Token{AccessToken: "tok123", TokenType: "bearer"}

	assert.Equal(t, "bearer <redacted>", tok.String())
	assert.NotContains(t, fmt.Sprintf("%v", tok), "tok123")
	assert.NotContains(t, fmt.Sprintf("%s", tok), "tok123")
	assert.Equal(t, "bearer <empty>", Token{TokenType: "bearer"}.String())
}
