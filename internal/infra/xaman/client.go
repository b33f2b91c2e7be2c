// Package xaman is a client for the Xaman (formerly XUMM) platform API.
package xaman

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
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
	upstreamName   = "xaman"
	defaultTimeout = 15 * time.Second
	// maxErrorBody bounds how much of a failed response ends up in an error message.
	maxErrorBody = 512
)

var (
	// ErrMissingUUID is returned when a created payload carries no uuid.
	ErrMissingUUID = errors.New("payload response has no uuid")
	// ErrMissingDeepLink is returned when a created payload carries no next.always link.
	ErrMissingDeepLink = errors.New("payload response has no deep link")
	// ErrMissingMeta is returned when a payload status response has no meta object.
	ErrMissingMeta = errors.New("payload status response has no meta")
)

// Client implements service.SigningGateway against the Xaman REST API.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient builds a gateway from the xaman config section.
func NewClient(cfg *config.Config, m *metrics.Metrics) service.SigningGateway {
	xc := cfg.Xaman
	if xc == nil {
		xc = &config.XamanConfig{}
	}

	timeout := xc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(xc.BaseURL, "/"),
		apiKey:     xc.APIKey,
		apiSecret:  xc.APISecret,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// Configured reports whether both API credentials are set.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// CreatePayload posts {txjson} and returns how the holder opens the request.
func (c *Client) CreatePayload(ctx context.Context, tx entity.TxJSON) (*entity.SignPayload, error) {
	body, err := json.Marshal(map[string]any{"txjson": tx})
	if err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}

	respBody, err := c.do(ctx, http.MethodPost, "/payload", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	result := gjson.ParseBytes(respBody)
	payload := &entity.SignPayload{
		UUID:     result.Get("uuid").String(),
		QRURL:    result.Get("refs.qr_png").String(),
		DeepLink: result.Get("next.always").String(),
	}
	if payload.UUID == "" {
		return nil, ErrMissingUUID
	}
	if payload.DeepLink == "" {
		return nil, ErrMissingDeepLink
	}

	return payload, nil
}

// GetPayloadStatus reads the meta and response sections of a payload.
func (c *Client) GetPayloadStatus(ctx context.Context, uuid string) (*entity.PayloadStatus, error) {
	respBody, err := c.do(ctx, http.MethodGet, "/payload/"+url.PathEscape(uuid), nil)
	if err != nil {
		return nil, err
	}

	result := gjson.ParseBytes(respBody)
	if !result.Get("meta").IsObject() {
		return nil, ErrMissingMeta
	}

	return &entity.PayloadStatus{
		Resolved: result.Get("meta.resolved").Bool(),
		Signed:   result.Get("meta.signed").Bool(),
		Account:  result.Get("response.account").String(),
		TxHash:   result.Get("response.txid").String(),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (respBody []byte, err error) {
	defer func() { c.metrics.ObserveUpstream(upstreamName, err) }()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-API-Secret", c.apiSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}

		return nil, errors.Errorf("%s %s failed: %s - %s", method, path, resp.Status, respBody)
	}

	return respBody, nil
}
