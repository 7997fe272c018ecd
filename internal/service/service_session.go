// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/store"
	"github.com/MKhiriev/go-items-client/models"
)

type sessionService struct {
	api    APIService
	tokens store.TokenStore
	logger *logger.Logger
	now    func() time.Time
}

func NewSessionService(api APIService, tokens store.TokenStore, logger *logger.Logger) SessionService {
	return &sessionService{
		api:    api,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// SignIn returns the login error untouched; it has already been logged by
// the API service.
func (s *sessionService) SignIn(ctx context.Context, creds models.Credentials) (models.Token, error) {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return models.Token{}, err
	}

	if token.AccessToken == "" {
		return models.Token{}, ErrEmptyAccessToken
	}

	if err = s.tokens.SetToken(ctx, token.AccessToken); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrPersistToken, err)
	}

	s.logger.Debug().Str("user", creds.Username).Msg("signed in")
	return token, nil
}

func (s *sessionService) SignOut(ctx context.Context) error {
	if err := s.tokens.ClearToken(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrClearToken, err)
	}
	return nil
}

func (s *sessionService) Authenticated(ctx context.Context) (bool, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrReadToken, err)
	}
	if token == "" {
		return false, nil
	}

	// opaque tokens have no readable expiry
	claims, err := models.ParseTokenClaims(token)
	if err != nil {
		return true, nil
	}

	return !claims.Expired(s.now()), nil
}
