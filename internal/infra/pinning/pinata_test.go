package pinning

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"workbench/config"
	"workbench/internal/domain/entity"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPinata(t *testing.T, handler http.HandlerFunc) *pinataPinner {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	pinner := NewPinataPinner(&config.PinataConfig{
		APIKey:     "api-key",
		SecretKey:  "secret-key",
		BaseURL:    server.URL,
		GatewayURL: "https://gateway.pinata.cloud/ipfs/",
	}, metrics.New())

	p, ok := pinner.(*pinataPinner)
	require.True(t, ok)

	return p
}

func TestPinataPinner_Pin(t *testing.T) {
	content := []byte("\x89PNG\r\n\x1a\nfake")

	pinner := newTestPinata(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "secret-key", r.Header.Get("pinata_secret_api_key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "clock-42.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		var metadata map[string]string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("pinataMetadata")), &metadata))
		assert.Equal(t, "clock-42-nft", metadata["name"])

		_, _ = w.Write([]byte(`{"IpfsHash":"QmHash","PinSize":12,"Timestamp":"2026-03-01T00:00:00Z"}`))
	})

	pinned, err := pinner.Pin(context.Background(), &entity.PinUpload{Name: "clock-42", Content: content})
	require.NoError(t, err)
	assert.Equal(t, "QmHash", pinned.Hash)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmHash", pinned.URL)
}

func TestPinataPinner_Pin_Rejected(t *testing.T) {
	pinner := newTestPinata(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API key"}`))
	})

	_, err := pinner.Pin(context.Background(), &entity.PinUpload{Name: "x", Content: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPinataPinner_Pin_MissingHash(t *testing.T) {
	pinner := newTestPinata(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := pinner.Pin(context.Background(), &entity.PinUpload{Name: "x", Content: []byte("x")})
	assert.True(t, errors.Is(err, ErrMissingIPFSHash))
}

func TestPinataPinner_Configured(t *testing.T) {
	assert.False(t, NewPinataPinner(nil, nil).Configured())
	assert.False(t, NewPinataPinner(&config.PinataConfig{APIKey: "k"}, nil).Configured())
	assert.True(t, NewPinataPinner(&config.PinataConfig{APIKey: "k", SecretKey: "s"}, nil).Configured())
}
