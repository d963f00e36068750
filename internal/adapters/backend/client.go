// Package backend provides the HTTP client for the PolitiTrack record service
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	perr "polittrack/internal/platform/errors"
	"polittrack/internal/platform/logger"
)

const (
	baseURLDefault = "http://localhost:8000/api"
	defaultTimeout = 15 * time.Second
	defaultUA      = "polittrack-client"

	// diagnostics tail kept from error bodies
	bodyTailMax = 2048
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client is a minimal JSON GET client for the backend record service
// Failures come back as coded errors: Unavailable/Timeout for transport
// problems, a status-mapped code for non-2xx, Decode for bad payloads
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("backend"),
		now:  time.Now,
	}
}

// BaseURL returns the resolved base URL (useful for logging and tests)
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// GetJSON issues a GET against path with the given query and decodes the
// 2xx response body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	select {
	case <-ctx.Done():
		return ctxErr(ctx.Err())
	default:
	}

	u := c.opts.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "backend new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) && uerr.Timeout() {
			c.log.Warn().Str("path", path).Dur("latency", lat).Msg("backend request timed out")
			return perr.Wrapf(err, perr.ErrorCodeTimeout, "backend request timed out")
		}
		c.log.Warn().Str("path", path).Err(err).Msg("backend transport error")
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "backend unreachable")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	c.log.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("backend http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, bodyTailMax))
		c.log.Warn().
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend http failure")
		return perr.Newf(
			perr.CodeFromHTTPStatus(resp.StatusCode),
			"backend status %d on %s body %s", resp.StatusCode, path, string(body),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn().Str("path", path).Err(err).Msg("backend payload decode failed")
		return perr.Wrapf(err, perr.ErrorCodeDecode, "backend payload decode failed")
	}
	return nil
}

func ctxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return perr.Wrapf(err, perr.ErrorCodeTimeout, "request deadline exceeded")
	}
	return perr.Wrapf(err, perr.ErrorCodeUnavailable, "request canceled")
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, bodyTailMax))
	return rc.Close()
}
