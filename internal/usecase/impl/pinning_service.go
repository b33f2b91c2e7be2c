package impl

import (
	"context"
	"log/slog"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	"workbench/internal/usecase"
	"workbench/internal/util"
)

const upstreamPinning = "pinning"

type pinningService struct {
	pinner service.PinningService
	logger *slog.Logger
}

// NewPinningService creates a new pinning service instance
func NewPinningService(pinner service.PinningService, logger *slog.Logger) usecase.PinningUsecase {
	return &pinningService{
		pinner: pinner,
		logger: logger,
	}
}

// PinFile pins an upload, defaulting its name.
func (s *pinningService) PinFile(ctx context.Context, upload *entity.PinUpload) (*entity.PinnedFile, error) {
	if upload == nil || len(upload.Content) == 0 {
		return nil, domainerrors.ErrInvalidInput.WithDetails("file is required")
	}

	if upload.Name == "" {
		upload.Name = entity.DefaultPinName
	}

	if !s.pinner.Configured() {
		return nil, domainerrors.ErrServiceNotConfigured.WithDetails(upstreamPinning)
	}

	pinned, err := s.pinner.Pin(ctx, upload)
	if err != nil {
		return nil, upstreamError(s.logger, upstreamPinning, err)
	}

	s.logger.Info("File pinned",
		slog.String("name", upload.Name),
		slog.String("size", util.FormatBytes(int64(len(upload.Content)))),
		slog.String("url", pinned.URL),
	)

	return pinned, nil
}

// ReadPin returns content held by a provider that serves its own pins.
func (s *pinningService) ReadPin(ctx context.Context, hash string) ([]byte, string, error) {
	if hash == "" {
		return nil, "", domainerrors.ErrInvalidInput.WithDetails("hash is required")
	}

	reader, ok := s.pinner.(service.PinReader)
	if !ok {
		return nil, "", domainerrors.ErrNotFound
	}

	content, contentType, err := reader.ReadPin(ctx, hash)
	if err != nil {
		return nil, "", upstreamError(s.logger, upstreamPinning, err)
	}

	return content, contentType, nil
}
