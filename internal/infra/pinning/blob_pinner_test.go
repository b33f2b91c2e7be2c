package pinning

import (
	"context"
	"log/slog"
	"testing"

	"workbench/config"
	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newMemPinner(t *testing.T) *blobPinner {
	t.Helper()

	pinner, err := NewBlobPinner(context.Background(), "mem://", "http://localhost:8374/api/pins/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pinner.Close() })

	return pinner
}

func TestBlobPinner_PinAndRead(t *testing.T) {
	ctx := context.Background()
	pinner := newMemPinner(t)
	content := []byte("\x89PNG\r\n\x1a\n0000")

	pinned, err := pinner.Pin(ctx, &entity.PinUpload{Name: "clock-nft", Content: content})
	require.NoError(t, err)
	assert.Len(t, pinned.Hash, 64)
	assert.Equal(t, "http://localhost:8374/api/pins/"+pinned.Hash, pinned.URL)

	again, err := pinner.Pin(ctx, &entity.PinUpload{Name: "other", Content: content})
	require.NoError(t, err)
	assert.Equal(t, pinned.Hash, again.Hash)

	got, contentType, err := pinner.ReadPin(ctx, pinned.Hash)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "image/png", contentType)
}

func TestBlobPinner_KeepsDeclaredContentType(t *testing.T) {
	ctx := context.Background()
	pinner := newMemPinner(t)

	pinned, err := pinner.Pin(ctx, &entity.PinUpload{Name: "meta", ContentType: "application/json", Content: []byte(`{"a":1}`)})
	require.NoError(t, err)

	_, contentType, err := pinner.ReadPin(ctx, pinned.Hash)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
}

func TestBlobPinner_ReadPin_NotFound(t *testing.T) {
	pinner := newMemPinner(t)

	tests := []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"../../etc/passwd",
		"ABC",
	}

	for _, hash := range tests {
		t.Run(hash, func(t *testing.T) {
			_, _, err := pinner.ReadPin(context.Background(), hash)
			assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
		})
	}
}

func TestNewPinningService(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("defaults to pinata", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		pinner, err := NewPinningService(PinnerParams{Lc: lc, Config: &config.Config{}, Logger: logger, Metrics: metrics.New()})
		require.NoError(t, err)

		_, isReader := pinner.(service.PinReader)
		assert.False(t, isReader)
		assert.False(t, pinner.Configured())
	})

	t.Run("local provider serves pins", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Pinning: &config.PinningConfig{
			Provider:      ProviderLocal,
			BucketURL:     "mem://",
			PublicBaseURL: "http://localhost/api/pins/",
		}}

		pinner, err := NewPinningService(PinnerParams{Lc: lc, Config: cfg, Logger: logger})
		require.NoError(t, err)

		_, isReader := pinner.(service.PinReader)
		assert.True(t, isReader)
		assert.True(t, pinner.Configured())

		lc.RequireStart().RequireStop()
	})

	t.Run("unknown provider", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Pinning: &config.PinningConfig{Provider: "s3"}}

		_, err := NewPinningService(PinnerParams{Lc: lc, Config: cfg, Logger: logger})
		assert.Error(t, err)
	})
}
