// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-items-client/internal/config"
	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/store"
	"github.com/MKhiriev/go-items-client/internal/utils"
	"github.com/MKhiriev/go-items-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRegister = "/api/auth/register"
	pathToken    = "/token"
	pathStatus   = "/"
	pathData     = "/api/data"
	pathItems    = "/api/items"
	pathItem     = "/api/items/{itemID}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter].
//
// The base URL is adapterCfg.HTTPAddress, or [config.DefaultHTTPAddress] when
// blank, normalised by adding a missing scheme and trimming trailing
// slashes. Every request is bounded by adapterCfg.RequestTimeout
// ([config.DefaultRequestTimeout] when unset) and passes through the auth
// hook, which reads tokens before dispatch.
//
// Returns an error if the address cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens store.TokenReader, logger *logger.Logger) (ServerAdapter, error) {
	address := adapterCfg.HTTPAddress
	if strings.TrimSpace(address) == "" {
		address = config.DefaultHTTPAddress
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.OnBeforeRequest(authHook(tokens))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authHook returns the request middleware that attaches the stored
// credential token. No token leaves the headers untouched; a store failure
// aborts the request.
func authHook(tokens store.TokenReader) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		token, err := tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
		}
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.Message, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds)

	resp, err := h.send(req, http.MethodPost, pathRegister)
	if err != nil {
		return models.Message{}, fmt.Errorf("register request: %w", err)
	}

	var msg models.Message
	if err = decodeJSON(resp, &msg); err != nil {
		return models.Message{}, fmt.Errorf("decode register response: %w", err)
	}
	return msg, nil
}

// Login implements [ServerAdapter]. The credentials are sent as
// application/x-www-form-urlencoded fields, as a password grant requires.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	req := h.client.R().
		SetContext(ctx).
		SetFormData(creds.FormData())

	resp, err := h.send(req, http.MethodPost, pathToken)
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}

	var token models.Token
	if err = decodeJSON(resp, &token); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}
	return token, nil
}

// GetStatus implements [ServerAdapter].
func (h *httpServerAdapter) GetStatus(ctx context.Context) (models.Status, error) {
	resp, err := h.send(h.client.R().SetContext(ctx), http.MethodGet, pathStatus)
	if err != nil {
		return models.Status{}, fmt.Errorf("get status request: %w", err)
	}

	var status models.Status
	if err = decodeJSON(resp, &status); err != nil {
		return models.Status{}, fmt.Errorf("decode status response: %w", err)
	}
	return status, nil
}

// GetData implements [ServerAdapter].
func (h *httpServerAdapter) GetData(ctx context.Context) (models.Data, error) {
	resp, err := h.send(h.client.R().SetContext(ctx), http.MethodGet, pathData)
	if err != nil {
		return models.Data{}, fmt.Errorf("get data request: %w", err)
	}

	var data models.Data
	if err = decodeJSON(resp, &data); err != nil {
		return models.Data{}, fmt.Errorf("decode data response: %w", err)
	}
	if data.Items == nil {
		data.Items = []models.Item{}
	}
	return data, nil
}

// ListItems implements [ServerAdapter].
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := h.send(h.client.R().SetContext(ctx), http.MethodGet, pathItems)
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}

	var items []models.Item
	if err = decodeJSON(resp, &items); err != nil {
		return nil, fmt.Errorf("decode items response: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// CreateItem implements [ServerAdapter].
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item)

	resp, err := h.send(req, http.MethodPost, pathItems)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}

	var created models.Item
	if err = decodeJSON(resp, &created); err != nil {
		return models.Item{}, fmt.Errorf("decode created item: %w", err)
	}
	return created, nil
}

// UpdateItem implements [ServerAdapter].
func (h *httpServerAdapter) UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdate) (models.Item, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("itemID", strconv.FormatInt(itemID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(update)

	resp, err := h.send(req, http.MethodPut, pathItem)
	if err != nil {
		return models.Item{}, fmt.Errorf("update item %d request: %w", itemID, err)
	}

	var updated models.Item
	if err = decodeJSON(resp, &updated); err != nil {
		return models.Item{}, fmt.Errorf("decode updated item: %w", err)
	}
	return updated, nil
}

// DeleteItem implements [ServerAdapter].
func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	req := h.client.R().
		SetContext(ctx).
		SetPathParam("itemID", strconv.FormatInt(itemID, 10))

	if _, err := h.send(req, http.MethodDelete, pathItem); err != nil {
		return fmt.Errorf("delete item %d request: %w", itemID, err)
	}
	return nil
}

// send dispatches req and maps both transport failures and non-2xx statuses
// to this package's errors.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, mapTransportError(err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("backend responded")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
