package qrcode

import (
	"encoding/base64"
	"strings"
	"testing"

	"workbench/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, byte(0x89), data[0])
	assert.Equal(t, byte(0x50), data[1])
	assert.Equal(t, byte(0x4E), data[2])
	assert.Equal(t, byte(0x47), data[3])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	pngBytes, err := service.GeneratePNG("https://xumm.app/sign/5f1c6a0e-0000-4000-8000-000000000000")
	require.NoError(t, err)
	assertPNG(t, pngBytes)
}

func TestQRCodeService_GeneratePNG_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			pngBytes, err := service.GeneratePNG("https://xumm.app/sign/abc")
			require.NoError(t, err)
			assertPNG(t, pngBytes)
		})
	}
}

func TestQRCodeService_GeneratePNG_EmptyContent(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GeneratePNG("")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateDataURI(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "L"}})

	dataURI, err := service.GenerateDataURI("https://xumm.app/sign/abc")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataURI, "data:image/png;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, "data:image/png;base64,"))
	require.NoError(t, err)
	assertPNG(t, decoded)
}

func TestNewQRCodeServiceFromConfig_MissingSection(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{})

	pngBytes, err := service.GeneratePNG("hello")
	require.NoError(t, err)
	assertPNG(t, pngBytes)
}
