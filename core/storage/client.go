package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client defines the interface for Bunny Storage and CDN purge operations.
type Client interface {
	// Select returns a derived client that remembers file (and optionally
	// zone) as the default target for subsequent operations. The receiver
	// is not modified, so a selected view is safe to hand out.
	Select(file string, zone ...string) Client
	// Download fetches an object and returns its raw bytes.
	Download(ctx context.Context, opts ...TargetOption) ([]byte, error)
	// DownloadFile fetches an object into a temporary file positioned at
	// offset 0. The caller owns the file and must remove it.
	DownloadFile(ctx context.Context, opts ...TargetOption) (*os.File, error)
	// Exists reports whether an object exists. Only status 200 counts;
	// any other status reads as absent.
	Exists(ctx context.Context, opts ...TargetOption) (bool, error)
	// Upload stores an object with Content-Type application/octet-stream.
	Upload(ctx context.Context, body Body, opts ...TargetOption) error
	// Delete removes an object. The upstream API answers 404 or 500 for
	// objects that are already gone; both count as success.
	Delete(ctx context.Context, opts ...TargetOption) error
	// PurgeCache evicts the CDN-cached copy of an object and returns the
	// purge endpoint's status code as a string.
	PurgeCache(ctx context.Context, opts ...TargetOption) (string, error)
}

// TargetOption overrides the target of a single operation.
type TargetOption func(*target)

type target struct {
	zone string
	file string
}

// WithZone overrides the storage zone for one call.
func WithZone(zone string) TargetOption {
	return func(t *target) { t.zone = zone }
}

// WithFile overrides the object name for one call.
func WithFile(file string) TargetOption {
	return func(t *target) { t.file = file }
}

type bunnyClient struct {
	cfg      Config
	endpoint string
	selected target
	http     *http.Client
	logger   *zap.Logger
}

// NewClient creates a new Bunny Storage client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) Client {
	connect := cfg.ConnectTimeoutSeconds
	if connect <= 0 {
		connect = 3
	}
	read := cfg.ReadTimeoutSeconds
	if read <= 0 {
		read = 5
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: time.Duration(connect) * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   time.Duration(connect) * time.Second,
		ResponseHeaderTimeout: time.Duration(read) * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		// One connection per call; the client does no pooling across calls.
		DisableKeepAlives: true,
	}

	return &bunnyClient{
		cfg:      cfg,
		endpoint: strings.TrimRight(cfg.BaseEndpoint(), "/"),
		http:     &http.Client{Transport: transport},
		logger:   logger,
	}
}

func (c *bunnyClient) Select(file string, zone ...string) Client {
	derived := *c
	derived.selected.file = file
	if len(zone) > 0 {
		derived.selected.zone = zone[0]
	}
	return &derived
}

// resolve applies per-call overrides over the remembered target and the
// configured default zone. Explicit values win.
func (c *bunnyClient) resolve(opts []TargetOption) (target, error) {
	var t target
	for _, opt := range opts {
		opt(&t)
	}
	if t.zone == "" {
		t.zone = c.selected.zone
	}
	if t.zone == "" {
		t.zone = c.cfg.Zone
	}
	if t.file == "" {
		t.file = c.selected.file
	}
	if t.zone == "" || t.file == "" {
		return target{}, ErrNoTarget
	}
	return t, nil
}

func (c *bunnyClient) objectURL(t target) (string, error) {
	joined := c.endpoint + "/" + strings.Trim(t.zone, "/") + "/" + strings.TrimLeft(t.file, "/")
	u, err := url.Parse(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrBadURL, joined, err)
	}
	return u.String(), nil
}

// do issues a single request and drains the response. key goes into the
// AccessKey header the Bunny APIs authenticate with.
func (c *bunnyClient) do(ctx context.Context, method, rawURL, key string, headers map[string]string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadURL, err)
	}
	req.Header.Set("AccessKey", key)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request %s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response body: %w", err)
	}

	c.logger.Debug("storage request",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
	)
	return resp.StatusCode, data, nil
}

func (c *bunnyClient) Download(ctx context.Context, opts ...TargetOption) ([]byte, error) {
	t, err := c.resolve(opts)
	if err != nil {
		return nil, err
	}
	u, err := c.objectURL(t)
	if err != nil {
		return nil, err
	}

	status, data, err := c.do(ctx, http.MethodGet, u, c.cfg.AccessKey, map[string]string{"Accept": "*/*"}, nil)
	if err != nil {
		return nil, err
	}
	if !Succeeded(status) {
		return nil, &RemoteError{StatusCode: status, Body: data}
	}
	return data, nil
}

func (c *bunnyClient) DownloadFile(ctx context.Context, opts ...TargetOption) (*os.File, error) {
	data, err := c.Download(ctx, opts...)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "bunny-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("rewind temp file: %w", err)
	}
	return f, nil
}

func (c *bunnyClient) Exists(ctx context.Context, opts ...TargetOption) (bool, error) {
	t, err := c.resolve(opts)
	if err != nil {
		return false, err
	}
	u, err := c.objectURL(t)
	if err != nil {
		return false, err
	}

	// The storage API does not reliably answer HEAD, so this is a GET.
	status, _, err := c.do(ctx, http.MethodGet, u, c.cfg.AccessKey, map[string]string{"Accept": "*/*"}, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusOK, nil
}

func (c *bunnyClient) Upload(ctx context.Context, body Body, opts ...TargetOption) error {
	t, err := c.resolve(opts)
	if err != nil {
		return err
	}
	u, err := c.objectURL(t)
	if err != nil {
		return err
	}
	data, err := body.Bytes()
	if err != nil {
		return err
	}

	status, respBody, err := c.do(ctx, http.MethodPut, u, c.cfg.AccessKey,
		map[string]string{"Content-Type": "application/octet-stream"}, bytes.NewReader(data))
	if err != nil {
		return err
	}
	if !Succeeded(status) {
		return &RemoteError{StatusCode: status, Body: respBody}
	}
	return nil
}

func (c *bunnyClient) Delete(ctx context.Context, opts ...TargetOption) error {
	t, err := c.resolve(opts)
	if err != nil {
		return err
	}
	u, err := c.objectURL(t)
	if err != nil {
		return err
	}

	status, data, err := c.do(ctx, http.MethodDelete, u, c.cfg.AccessKey, nil, nil)
	if err != nil {
		return err
	}
	// 404 and 500 both mean "already gone" on this API.
	if Succeeded(status) || status == http.StatusNotFound || status == http.StatusInternalServerError {
		return nil
	}
	return &RemoteError{StatusCode: status, Body: data}
}

func (c *bunnyClient) PurgeCache(ctx context.Context, opts ...TargetOption) (string, error) {
	t, err := c.resolve(opts)
	if err != nil {
		return "", err
	}

	cdnURL := fmt.Sprintf("https://%s.b-cdn.net/%s", t.zone, strings.TrimLeft(t.file, "/"))
	// The purge endpoint expects the url parameter verbatim, so the query
	// string is assembled by hand rather than through url.Values, which
	// would percent-encode it.
	purgeURL := c.cfg.PurgeTarget() + "?url=" + cdnURL + "&async=true"

	status, data, err := c.do(ctx, http.MethodPost, purgeURL, c.cfg.ApiKey, nil, nil)
	if err != nil {
		return "", err
	}
	if !Succeeded(status) {
		return "", &RemoteError{StatusCode: status, Body: data}
	}
	return strconv.Itoa(status), nil
}
