package monitor

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const (
	DefaultTimeout        = 5 * time.Second
	DefaultConnectTimeout = 3 * time.Second
	DefaultUserAgent      = "TITAN-CLI/1.0"

	maxBodyBytes = 64 << 10
	maxRedirects = 10
)

// HealthChecker checks the health of a single endpoint
type HealthChecker interface {
	CheckHealth(ctx context.Context, endpoint string) Outcome
}

// HTTPOptions configures an HTTPChecker
type HTTPOptions struct {
	Timeout        time.Duration
	ConnectTimeout time.Duration
	UserAgent      string
}

// HTTPChecker performs HTTP GET health checks
type HTTPChecker struct {
	client    *http.Client
	userAgent string
}

// NewHTTPChecker creates a new HTTP checker
func NewHTTPChecker(opts HTTPOptions) *HTTPChecker {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: opts.ConnectTimeout}).DialContext

	return &HTTPChecker{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: opts.UserAgent,
	}
}

// Close closes the HTTP client's connection pool
func (h *HTTPChecker) Close() {
	if h.client != nil {
		h.client.CloseIdleConnections()
	}
}

// CheckHealth issues a single GET against endpoint and classifies the response
func (h *HTTPChecker) CheckHealth(ctx context.Context, endpoint string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return TransportFailure(err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := h.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		outcome := TransportFailure(err)
		outcome.Latency = latency
		return outcome
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		outcome := HTTPFailure(resp.StatusCode)
		outcome.Latency = latency
		return outcome
	}

	outcome := Online("healthy")
	outcome.StatusCode = resp.StatusCode
	outcome.Latency = latency

	// The body only enriches the detail; a failed read leaves the service online.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err == nil && gjson.ValidBytes(body) {
		if reported := gjson.GetBytes(body, "status"); reported.Exists() && reported.String() != "" {
			outcome.Detail = "healthy (" + reported.String() + ")"
		}
	}

	return outcome
}
