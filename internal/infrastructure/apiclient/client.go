// Package apiclient is the single point of outbound REST access to the
// recruitment backend. Every call carries the stored bearer token, and every
// 401 answer erases it and sends the client back to the login view.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/metrics"
	"github.com/talentbridge/recruitment-client/pkg/logger"
)

const (
	defaultTimeout  = 15 * time.Second
	maxBodyBytes    = 8 << 20
	requestIDHeader = "X-Request-ID"
)

// Config holds the connection settings of the backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client wraps net/http with uniform auth attachment and failure handling.
type Client struct {
	base  *url.URL
	http  *http.Client
	store ports.TokenStore
	nav   ports.Navigator
	log   zerolog.Logger

	mu    sync.RWMutex
	hooks []func(context.Context)
}

// New builds a Client against cfg.BaseURL. Cookies set by the backend are kept
// in a jar for the lifetime of the client.
func New(cfg Config, store ports.TokenStore, nav ports.Navigator, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			Jar:       jar,
		},
		store: store,
		nav:   nav,
		log:   logger.Named(log, "apiclient"),
	}, nil
}

// OnUnauthorized registers fn to run after a 401 answer has cleared the token.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string { return c.base.String() }

// Ping reports whether the backend answers at all. Any HTTP status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base.String(), nil)
	if err != nil {
		return fmt.Errorf("build ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ping %s: %w", domain.ErrNetwork, c.base.Host, err)
	}
	resp.Body.Close()
	return nil
}

// ── Request options ───────────────────────────────────────────────────────────

type request struct {
	query  url.Values
	header http.Header
}

// RequestOption customises a single call.
type RequestOption func(*request)

// WithQuery adds a query parameter. Empty values are skipped.
func WithQuery(key, value string) RequestOption {
	return func(r *request) {
		if value != "" {
			r.query.Add(key, value)
		}
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *request) { r.header.Set(key, value) }
}

// ── Verbs ─────────────────────────────────────────────────────────────────────

// Get issues a GET and decodes the JSON answer into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, body, out, opts...)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out, opts...)
}

// Upload posts a single file as multipart/form-data under field.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, out any, opts ...RequestOption) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("multipart: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("multipart: copy %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart: %w", err)
	}
	opts = append(opts, WithHeader("Content-Type", mw.FormDataContentType()))
	return c.send(ctx, http.MethodPost, path, &buf, out, opts...)
}

// Do performs one call. A nil body sends no payload; anything else is encoded
// as JSON. Non-2xx answers come back as *APIError, transport failures wrap
// domain.ErrNetwork.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(b)
	}
	return c.send(ctx, method, path, payload, out, opts...)
}

func (c *Client) send(ctx context.Context, method, path string, payload io.Reader, out any, opts ...RequestOption) error {
	r := request{query: url.Values{}, header: http.Header{}}
	r.header.Set("Content-Type", "application/json")
	r.header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(&r)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, r.query), payload)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header = r.header
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}
	c.authorize(ctx, req)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, "error").Inc()
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Msg("api call")

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read %s %s: %w", domain.ErrNetwork, method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized(ctx, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, data)
	}
	return decode(data, out)
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + "/" + strings.TrimLeft(path, "/")
	u.RawQuery = query.Encode()
	return u.String()
}

// authorize attaches the stored token, if any. A store that cannot be read
// sends the request anonymously.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	token, err := c.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoToken) {
			c.log.Warn().Err(err).Msg("token store unreadable, sending anonymous request")
		}
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func (c *Client) unauthorized(ctx context.Context, method, path string) {
	metrics.UnauthorizedTotal.Inc()
	c.log.Warn().Str("method", method).Str("path", path).Msg("backend answered 401, clearing session")

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to clear stored token")
	}

	c.mu.RLock()
	hooks := make([]func(context.Context), len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()
	for _, fn := range hooks {
		fn(ctx)
	}

	c.nav.Navigate(service.RouteLogin)
}

// decode fills out from a 2xx body. *string receives the raw text and a nil
// out discards the body.
func decode(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if s, ok := out.(*string); ok {
		*s = string(data)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
