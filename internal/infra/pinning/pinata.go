package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"workbench/config"
	"workbench/internal/domain/entity"
	"workbench/internal/domain/service"
	"workbench/internal/infra/metrics"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	pinFileEndpoint      = "/pinning/pinFileToIPFS"
	defaultPinataTimeout = 60 * time.Second
	maxErrorBody         = 512
)

// ErrMissingIPFSHash is returned when Pinata accepts an upload without reporting its hash.
var ErrMissingIPFSHash = errors.New("pinata response has no IpfsHash")

// pinataPinner pins files to IPFS through the Pinata API.
type pinataPinner struct {
	baseURL    string
	gatewayURL string
	apiKey     string
	secretKey  string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewPinataPinner builds a pinner from the pinata config section.
func NewPinataPinner(cfg *config.PinataConfig, m *metrics.Metrics) service.PinningService {
	if cfg == nil {
		cfg = &config.PinataConfig{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPinataTimeout
	}

	return &pinataPinner{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		gatewayURL: cfg.GatewayURL,
		apiKey:     cfg.APIKey,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

func (p *pinataPinner) Configured() bool {
	return p.apiKey != "" && p.secretKey != ""
}

// Pin uploads the file as <name>.png with metadata name <name>-nft.
func (p *pinataPinner) Pin(ctx context.Context, upload *entity.PinUpload) (pinned *entity.PinnedFile, err error) {
	defer func() { p.metrics.ObserveUpstream("pinata", err) }()

	body, contentType, err := buildPinataForm(upload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+pinFileEndpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", p.apiKey)
	req.Header.Set("pinata_secret_api_key", p.secretKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}

		return nil, errors.Errorf("pin file failed: %s - %s", resp.Status, respBody)
	}

	hash := gjson.GetBytes(respBody, "IpfsHash").String()
	if hash == "" {
		return nil, ErrMissingIPFSHash
	}

	return &entity.PinnedFile{
		Hash: hash,
		URL:  p.gatewayURL + hash,
	}, nil
}

func buildPinataForm(upload *entity.PinUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s.png"`, escapeQuotes(upload.Name)))
	header.Set("Content-Type", "image/png")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "create file part")
	}

	if _, err := part.Write(upload.Content); err != nil {
		return nil, "", errors.Wrap(err, "write file part")
	}

	metadata, err := json.Marshal(map[string]string{"name": upload.Name + "-nft"})
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal metadata")
	}

	if err := writer.WriteField("pinataMetadata", string(metadata)); err != nil {
		return nil, "", errors.Wrap(err, "write metadata field")
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "close multipart writer")
	}

	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
