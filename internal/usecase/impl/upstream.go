package impl

import (
	"log/slog"

	domainerrors "workbench/internal/domain/errors"

	"github.com/pkg/errors"
)

// upstreamError logs a collaborator failure and hides it behind ErrUpstreamFailure.
// Errors that already carry an application code pass through untouched.
func upstreamError(logger *slog.Logger, upstream string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	logger.Error("Upstream request failed",
		slog.String("upstream", upstream),
		slog.Any("error", err),
	)

	return errors.Wrap(domainerrors.ErrUpstreamFailure, upstream)
}
