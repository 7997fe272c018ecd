// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-items-client/internal/adapter"
	"github.com/MKhiriev/go-items-client/internal/config"
	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/service"
	"github.com/MKhiriev/go-items-client/internal/store"
	"github.com/MKhiriev/go-items-client/models"
)

const loggerRole = "items-client"

// Client is safe for concurrent use.
type Client struct {
	services *service.ClientServices
	tokens   store.TokenStore
	logger   *logger.Logger
}

// NewFromEnv builds a Client from environment variables and the optional
// JSON file named by CONFIG. Logs go to stdout at the configured level.
func NewFromEnv(ctx context.Context) (*Client, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	return New(ctx, cfg, logger.NewLogger(loggerRole))
}

// New builds a Client from cfg, or from [config.DefaultClientConfig] when cfg
// is nil. A nil log discards all output.
func New(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		cfg = config.DefaultClientConfig()
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithLevel(cfg.Log.Level)

	tokens, err := store.NewTokenStore(ctx, cfg.Storage.Session, log.GetChildLogger("store"))
	if err != nil {
		return nil, fmt.Errorf("error creating token store: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, tokens, log.GetChildLogger("adapter"))
	if err != nil {
		_ = tokens.Close()
		return nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	log.Debug().Str("address", cfg.Adapter.HTTPAddress).Msg("items client ready")

	return &Client{
		services: service.NewClientServices(serverAdapter, tokens, log.GetChildLogger("service")),
		tokens:   tokens,
		logger:   log,
	}, nil
}

func (c *Client) Register(ctx context.Context, creds models.Credentials) (models.Message, error) {
	return c.services.APIService.Register(ctx, creds)
}

// Login returns the backend's token without storing it. Use SignIn to make
// later calls authenticated.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return c.services.APIService.Login(ctx, creds)
}

func (c *Client) GetStatus(ctx context.Context) (models.Status, error) {
	return c.services.APIService.GetStatus(ctx)
}

func (c *Client) GetData(ctx context.Context) (models.Data, error) {
	return c.services.APIService.GetData(ctx)
}

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	return c.services.APIService.ListItems(ctx)
}

func (c *Client) CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	return c.services.APIService.CreateItem(ctx, item)
}

func (c *Client) UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdate) (models.Item, error) {
	return c.services.APIService.UpdateItem(ctx, itemID, update)
}

func (c *Client) DeleteItem(ctx context.Context, itemID int64) (bool, error) {
	return c.services.APIService.DeleteItem(ctx, itemID)
}

func (c *Client) SignIn(ctx context.Context, creds models.Credentials) (models.Token, error) {
	return c.services.SessionService.SignIn(ctx, creds)
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.services.SessionService.SignOut(ctx)
}

func (c *Client) Authenticated(ctx context.Context) (bool, error) {
	return c.services.SessionService.Authenticated(ctx)
}

// Close releases the token store. The client must not be used afterwards.
func (c *Client) Close() error {
	if err := c.tokens.Close(); err != nil {
		return fmt.Errorf("error closing token store: %w", err)
	}
	c.logger.Debug().Msg("items client closed")
	return nil
}
