// Package pinning provides the file pinning backends.
package pinning

import (
	"context"
	"log/slog"

	"workbench/config"
	"workbench/internal/domain/service"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Pinning providers.
const (
	ProviderPinata = "pinata"
	ProviderLocal  = "local"
)

// PinnerParams holds dependencies for PinningService, injected by Fx
type PinnerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// NewPinningService creates a PinningService based on configuration
func NewPinningService(params PinnerParams) (service.PinningService, error) {
	cfg := params.Config.Pinning
	logger := params.Logger

	provider := ProviderPinata
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case ProviderPinata:
		pinner := NewPinataPinner(params.Config.Pinata, params.Metrics)
		if !pinner.Configured() {
			logger.Warn("Pinata credentials are not configured, uploads will be rejected")
		}
		logger.Info("Using Pinata pinning provider")

		return pinner, nil

	case ProviderLocal:
		pinner, err := NewBlobPinner(context.Background(), cfg.BucketURL, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Using local blob pinning provider",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("public_base_url", cfg.PublicBaseURL),
		)

		// Register lifecycle hook to close the bucket on shutdown
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing pin bucket")

				return pinner.Close()
			},
		})

		return pinner, nil

	default:
		return nil, errors.Errorf("unknown pinning provider: %s", provider)
	}
}

// Module provides the pinning FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPinningService),
)
