package service

import (
	"context"

	"workbench/internal/domain/entity"
)

// PinningService stores files under a content address and returns a public URL.
type PinningService interface {
	// Configured reports whether provider credentials are present.
	Configured() bool

	Pin(ctx context.Context, upload *entity.PinUpload) (*entity.PinnedFile, error)
}

// PinReader is implemented by providers that can serve pinned content themselves.
type PinReader interface {
	// ReadPin returns the stored bytes and their content type.
	ReadPin(ctx context.Context, hash string) (content []byte, contentType string, err error)
}
