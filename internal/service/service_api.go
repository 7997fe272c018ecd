// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-items-client/internal/adapter"
	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/utils"
	"github.com/MKhiriev/go-items-client/models"
)

const (
	opRegister   = "register"
	opLogin      = "login"
	opGetStatus  = "getStatus"
	opGetData    = "getData"
	opListItems  = "listItems"
	opCreateItem = "createItem"
	opUpdateItem = "updateItem"
	opDeleteItem = "deleteItem"
)

type apiService struct {
	adapter adapter.ServerAdapter
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

func NewAPIService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) APIService {
	return &apiService{
		adapter: serverAdapter,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *apiService) Register(ctx context.Context, creds models.Credentials) (models.Message, error) {
	msg, err := s.adapter.Register(ctx, creds)
	if err != nil {
		return models.Message{}, s.failed(ctx, opRegister, err)
	}
	return msg, nil
}

func (s *apiService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	token, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return models.Token{}, s.failed(ctx, opLogin, err)
	}
	return token, nil
}

func (s *apiService) GetStatus(ctx context.Context) (models.Status, error) {
	status, err := s.adapter.GetStatus(ctx)
	if err != nil {
		return models.Status{}, s.failed(ctx, opGetStatus, err)
	}
	return status, nil
}

func (s *apiService) GetData(ctx context.Context) (models.Data, error) {
	data, err := s.adapter.GetData(ctx)
	if err != nil {
		return models.Data{}, s.failed(ctx, opGetData, err)
	}
	return data, nil
}

func (s *apiService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.adapter.ListItems(ctx)
	if err != nil {
		return nil, s.failed(ctx, opListItems, err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (s *apiService) CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	created, err := s.adapter.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, s.failed(ctx, opCreateItem, err)
	}
	return created, nil
}

func (s *apiService) UpdateItem(ctx context.Context, itemID int64, update models.ItemUpdate) (models.Item, error) {
	updated, err := s.adapter.UpdateItem(ctx, itemID, update)
	if err != nil {
		return models.Item{}, s.failed(ctx, opUpdateItem, err)
	}
	return updated, nil
}

func (s *apiService) DeleteItem(ctx context.Context, itemID int64) (bool, error) {
	if err := s.adapter.DeleteItem(ctx, itemID); err != nil {
		return false, s.failed(ctx, opDeleteItem, err)
	}
	return true, nil
}

// failed writes the single failure entry for op and hands err back as-is.
func (s *apiService) failed(ctx context.Context, op string, err error) error {
	s.logger.Err(err).
		Str("op", op).
		Str("call_id", s.ids.CallID(ctx)).
		Int("http_status", adapter.StatusCode(err)).
		Msg("backend call failed")
	return err
}
