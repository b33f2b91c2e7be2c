package usecase

import (
	"context"

	"workbench/internal/domain/entity"
)

// PinningUsecase defines file pinning use cases.
type PinningUsecase interface {
	// PinFile stores an upload and returns its public URL.
	PinFile(ctx context.Context, upload *entity.PinUpload) (*entity.PinnedFile, error)

	// ReadPin serves content from providers that keep it locally.
	ReadPin(ctx context.Context, hash string) (content []byte, contentType string, err error)
}
