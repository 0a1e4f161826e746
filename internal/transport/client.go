// Package transport is the HTTP implementation of the Remote Access Layer.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/rpggio/termstate/internal/remote"
)

// DefaultTimeout bounds every request unless Options.Timeout is set.
const DefaultTimeout = 30 * time.Second

const basePath = "/api/v1"

// TokenSource supplies the session token sampled for each request.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Options configure a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenSource
	LocalesTTL time.Duration
	HTTPClient *http.Client
}

// Client talks to the translation backend.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	tokens     TokenSource
	locales    *cache.Cache
	localesTTL time.Duration
	logger     *zap.Logger
}

// NewClient creates a client for opts.BaseURL.
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host required", opts.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	ttl := opts.LocalesTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{
		base:       base,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		locales:    cache.New(ttl, 2*ttl),
		localesTTL: ttl,
		logger:     logger.Named("transport"),
	}, nil
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request to the route built from segments. body, when non-nil,
// is sent as JSON; out, when non-nil, receives the envelope's data.
func (c *Client) do(ctx context.Context, method string, body, out any, segments ...string) error {
	route := "/" + strings.Join(escape(segments), "/")
	u := *c.base
	u.Path = path.Join(u.Path, basePath) + route

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, route, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	var token string
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("request", zap.String("method", method), zap.String("route", route))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s %s: %w: %v", method, route, remote.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, route, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &remote.Error{
			Status:        resp.StatusCode,
			Method:        method,
			Path:          route,
			Authenticated: token != "",
		}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil {
			rerr.Code = env.Error.Code
			rerr.Message = env.Error.Message
		}
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("route", route),
			zap.Int("status", resp.StatusCode),
			zap.String("code", rerr.Code))
		return rerr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s %s: parse response: %w", method, route, err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("%s %s: %w", method, route, errMissingData)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: parse data: %w", method, route, err)
	}
	return nil
}

var errMissingData = errors.New("response has no data")

func escape(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = url.PathEscape(s)
	}
	return out
}

// get is do for a typed result.
func get[T any](ctx context.Context, c *Client, method string, body any, segments ...string) (T, error) {
	var out T
	err := c.do(ctx, method, body, &out, segments...)
	return out, err
}

// ptr is get for single entities.
func ptr[T any](ctx context.Context, c *Client, method string, body any, segments ...string) (*T, error) {
	out, err := get[T](ctx, c, method, body, segments...)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
