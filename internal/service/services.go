package service

import (
	"github.com/MKhiriev/go-items-client/internal/adapter"
	"github.com/MKhiriev/go-items-client/internal/logger"
	"github.com/MKhiriev/go-items-client/internal/store"
)

type ClientServices struct {
	APIService     APIService
	SessionService SessionService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, tokens store.TokenStore, logger *logger.Logger) *ClientServices {
	api := NewAPIService(serverAdapter, logger)

	return &ClientServices{
		APIService:     api,
		SessionService: NewSessionService(api, tokens, logger),
	}
}
