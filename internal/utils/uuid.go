package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces call identifiers. Version 7 UUIDs are time-ordered,
// so log entries sorted by call_id follow call order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// CallID returns the identifier stored in ctx by WithCallID, or a new one.
func (g *UUIDGenerator) CallID(ctx context.Context) string {
	if callID, ok := GetCallIDFromContext(ctx); ok {
		return callID
	}
	return g.Generate()
}
