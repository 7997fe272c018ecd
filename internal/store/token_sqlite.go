// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-items-client/internal/logger"
)

// sqliteTokenStore persists the token in the local_storage table of the
// client's SQLite file, so a session survives process restarts.
type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStore wraps an already migrated connection.
func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	return &sqliteTokenStore{db: db, logger: logger, now: time.Now}
}

func (s *sqliteTokenStore) Token(ctx context.Context) (string, error) {
	query, args, err := selectValueQuery(AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		// the failed request is logged by the caller
		s.logger.Debug().Err(err).Str("func", "*sqliteTokenStore.Token").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteTokenStore) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	query, args, err := upsertValueQuery(AccessTokenKey, token, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.SetToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) ClearToken(ctx context.Context) error {
	query, args, err := deleteValueQuery(AccessTokenKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteTokenStore.ClearToken").Msg("error clearing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Close() error {
	return s.db.Close()
}
