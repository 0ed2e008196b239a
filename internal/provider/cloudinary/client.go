package cloudinary

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"portfolio-content-service/internal/config"
	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/provider"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// Client talks to the Cloudinary-style REST API. Uploads are performed by the
// browser against a signature issued here; the server itself only signs and
// destroys.
type Client struct {
	cfg     config.Cloudinary
	baseURL string
	http    *http.Client
	log     *logger.Logger
	metrics metrics.MetricsProvider
	now     func() time.Time
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func NewClient(cfg config.Cloudinary, log *logger.Logger, metrics metrics.MetricsProvider, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) configured() bool {
	return c.cfg.CloudName != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

// SignUpload issues a signature over the exact params the client will send:
// timestamp and upload_preset, plus folder when non-empty.
func (c *Client) SignUpload(folder string) (*provider.UploadSignature, error) {
	if !c.configured() || c.cfg.UploadPreset == "" {
		c.log.Error("Upload signing requested without cloudinary configuration")
		return nil, custom_errors.ErrProviderNotConfigured
	}

	timestamp := c.now().Unix()
	params := map[string]string{
		"timestamp":     strconv.FormatInt(timestamp, 10),
		"upload_preset": c.cfg.UploadPreset,
	}
	if folder != "" {
		params["folder"] = folder
	}

	return &provider.UploadSignature{
		Timestamp: timestamp,
		Signature: c.sign(params),
	}, nil
}

// sign computes base64(HMAC-SHA1(secret, "k1=v1&k2=v2...")) over the
// non-empty params in key order.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	mac := hmac.New(sha1.New, []byte(c.cfg.APISecret))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Destroy removes a resource by public id. A "not found" result from the API
// is treated as success: the resource is gone either way.
func (c *Client) Destroy(ctx context.Context, publicID, resourceType string) error {
	if !c.configured() {
		return custom_errors.ErrProviderNotConfigured
	}
	if resourceType != "image" && resourceType != "video" {
		resourceType = "image"
	}

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := c.sign(map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	})

	form := url.Values{}
	form.Set("public_id", publicID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", c.cfg.APIKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.baseURL, c.cfg.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncrementProviderCalls("cloudinary", "destroy", false)
		c.log.Error("Cloudinary destroy request failed",
			slog.String("public_id", publicID),
			slog.String("error", err.Error()))
		return custom_errors.ErrProviderRequest
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.IncrementProviderCalls("cloudinary", "destroy", false)
		c.log.Error("Cloudinary destroy returned non-200",
			slog.String("public_id", publicID),
			slog.Int("status", resp.StatusCode))
		return custom_errors.ErrProviderRequest
	}

	var body destroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.metrics.IncrementProviderCalls("cloudinary", "destroy", false)
		return custom_errors.ErrProviderRequest
	}
	if body.Result != "ok" && body.Result != "not found" {
		c.metrics.IncrementProviderCalls("cloudinary", "destroy", false)
		c.log.Error("Cloudinary destroy rejected",
			slog.String("public_id", publicID),
			slog.String("result", body.Result))
		return custom_errors.ErrProviderRequest
	}

	c.metrics.IncrementProviderCalls("cloudinary", "destroy", true)
	c.log.Debug("Destroyed cloudinary resource",
		slog.String("public_id", publicID),
		slog.String("resource_type", resourceType),
		slog.Duration("took", time.Since(start)))
	return nil
}
