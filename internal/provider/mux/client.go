package mux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/provider"
)

const (
	defaultBaseURL   = "https://api.mux.com"
	streamURLFormat  = "https://stream.mux.com/%s.m3u8"
	thumbnailFormat  = "https://image.mux.com/%s/thumbnail.jpg"
	directUploadTTL  = 3600
	uploadCORSOrigin = "*"
)

// Client talks to the Mux-style video API over basic-auth JSON REST.
type Client struct {
	cfg     config.Mux
	baseURL string
	http    *http.Client
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func NewClient(cfg config.Mux, log *logger.Logger, metrics metrics.MetricsProvider, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) configured() bool {
	return c.cfg.TokenID != "" && c.cfg.TokenSecret != ""
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.cfg.TokenID, c.cfg.TokenSecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Mux request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return custom_errors.ErrProviderRequest
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("Mux returned error status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return custom_errors.ErrProviderRequest
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return custom_errors.ErrProviderRequest
		}
	}
	return nil
}

type createUploadRequest struct {
	Timeout          int              `json:"timeout"`
	CORSOrigin       string           `json:"cors_origin"`
	NewAssetSettings newAssetSettings `json:"new_asset_settings"`
}

type newAssetSettings struct {
	PlaybackPolicy []string `json:"playback_policy"`
}

type uploadData struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Status  string `json:"status"`
	AssetID string `json:"asset_id"`
}

type uploadResponse struct {
	Data uploadData `json:"data"`
}

func (c *Client) CreateDirectUpload(ctx context.Context) (*provider.DirectUpload, error) {
	if !c.configured() {
		c.log.Error("Direct upload requested without mux configuration")
		return nil, custom_errors.ErrProviderNotConfigured
	}

	payload := createUploadRequest{
		Timeout:    directUploadTTL,
		CORSOrigin: uploadCORSOrigin,
		NewAssetSettings: newAssetSettings{
			PlaybackPolicy: []string{"public"},
		},
	}

	var resp uploadResponse
	if err := c.do(ctx, http.MethodPost, "/video/v1/uploads", payload, &resp); err != nil {
		c.metrics.IncrementProviderCalls("mux", "create_direct_upload", false)
		return nil, err
	}

	c.metrics.IncrementProviderCalls("mux", "create_direct_upload", true)
	c.log.Debug("Created mux direct upload", slog.String("upload_id", resp.Data.ID))
	return &provider.DirectUpload{
		UploadURL: resp.Data.URL,
		UploadID:  resp.Data.ID,
		Status:    resp.Data.Status,
	}, nil
}

func (c *Client) GetUpload(ctx context.Context, uploadID string) (*provider.UploadDetails, error) {
	if !c.configured() {
		return nil, custom_errors.ErrProviderNotConfigured
	}

	var resp uploadResponse
	if err := c.do(ctx, http.MethodGet, "/video/v1/uploads/"+uploadID, nil, &resp); err != nil {
		c.metrics.IncrementProviderCalls("mux", "get_upload", false)
		return nil, err
	}

	c.metrics.IncrementProviderCalls("mux", "get_upload", true)
	return &provider.UploadDetails{
		ID:      resp.Data.ID,
		Status:  resp.Data.Status,
		AssetID: resp.Data.AssetID,
	}, nil
}

type assetData struct {
	ID                  string   `json:"id"`
	Status              string   `json:"status"`
	Duration            *float64 `json:"duration"`
	AspectRatio         string   `json:"aspect_ratio"`
	MaxStoredResolution string   `json:"max_stored_resolution"`
	PlaybackIDs         []struct {
		ID string `json:"id"`
	} `json:"playback_ids"`
}

type assetResponse struct {
	Data assetData `json:"data"`
}

func (c *Client) GetAsset(ctx context.Context, assetID string) (*provider.AssetDetails, error) {
	if !c.configured() {
		return nil, custom_errors.ErrProviderNotConfigured
	}

	var resp assetResponse
	if err := c.do(ctx, http.MethodGet, "/video/v1/assets/"+assetID, nil, &resp); err != nil {
		c.metrics.IncrementProviderCalls("mux", "get_asset", false)
		return nil, err
	}

	details := &provider.AssetDetails{
		AssetID:             resp.Data.ID,
		Status:              resp.Data.Status,
		Duration:            resp.Data.Duration,
		AspectRatio:         resp.Data.AspectRatio,
		MaxStoredResolution: resp.Data.MaxStoredResolution,
	}
	if len(resp.Data.PlaybackIDs) > 0 {
		details.PlaybackID = resp.Data.PlaybackIDs[0].ID
	}

	c.metrics.IncrementProviderCalls("mux", "get_asset", true)
	return details, nil
}

func (c *Client) DeleteAsset(ctx context.Context, assetID string) error {
	if !c.configured() {
		return custom_errors.ErrProviderNotConfigured
	}

	if err := c.do(ctx, http.MethodDelete, "/video/v1/assets/"+assetID, nil, nil); err != nil {
		c.metrics.IncrementProviderCalls("mux", "delete_asset", false)
		return err
	}

	c.metrics.IncrementProviderCalls("mux", "delete_asset", true)
	c.log.Debug("Deleted mux asset", slog.String("asset_id", assetID))
	return nil
}

func (c *Client) StreamURL(playbackID string) string {
	if playbackID == "" {
		return ""
	}
	return fmt.Sprintf(streamURLFormat, playbackID)
}

func (c *Client) ThumbnailURL(playbackID string) string {
	if playbackID == "" {
		return ""
	}
	return fmt.Sprintf(thumbnailFormat, playbackID)
}
