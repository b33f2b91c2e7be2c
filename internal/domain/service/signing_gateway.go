package service

import (
	"context"

	"workbench/internal/domain/entity"
)

// SigningGateway submits transaction templates to a wallet for the holder to sign.
type SigningGateway interface {
	// Configured reports whether gateway credentials are present.
	Configured() bool

	// CreatePayload registers a signing request and returns how to open it.
	CreatePayload(ctx context.Context, tx entity.TxJSON) (*entity.SignPayload, error)

	// GetPayloadStatus polls the resolution of a signing request.
	GetPayloadStatus(ctx context.Context, uuid string) (*entity.PayloadStatus, error)
}
