// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the body returned by POST /token on successful login.
//
// Both fields are taken verbatim from the backend response. AccessToken is
// the opaque bearer credential that the session layer stores and the
// transport attaches as "Authorization: Bearer <AccessToken>".
type Token struct {
	// AccessToken is the bearer credential.
	AccessToken string `json:"access_token"`

	// TokenType is the scheme reported by the backend (normally "bearer").
	TokenType string `json:"token_type"`
}

// TokenClaims is the subset of JWT registered claims the client cares about.
type TokenClaims struct {
	// Subject is the "sub" claim; the backend puts the username there.
	Subject string

	// ExpiresAt is the "exp" claim, zero if the token carries none.
	ExpiresAt time.Time
}

// Expired reports whether the claims are past their expiry at now.
// A token without an "exp" claim never expires.
func (c TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// String implements [fmt.Stringer] without exposing the credential, so a
// Token passed to a formatter or logger prints only its type.
func (t Token) String() string {
	if t.AccessToken == "" {
		return t.TokenType + " <empty>"
	}
	return t.TokenType + " <redacted>"
}

// Claims decodes the JWT payload of the access token without verifying its
// signature. The signing key lives on the backend only, so the result is
// advisory: it tells a session owner when to stop presenting the token, it
// does not prove the token is valid.
func (t Token) Claims() (TokenClaims, error) {
	return ParseTokenClaims(t.AccessToken)
}

// ParseTokenClaims decodes the registered claims of an unverified JWT.
func ParseTokenClaims(accessToken string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("error parsing access token: %w", err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("error extracting expiry from token: %w", err)
	}

	out := TokenClaims{Subject: sub}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
