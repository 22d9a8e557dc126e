package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/voxrelay/deepgram-mcp/internal/httpclient"
)

const defaultProbeTimeout = 5 * time.Second

// Config holds configuration for the relay client.
type Config struct {
	// CallbackURL is the relay address Deepgram delivers results to
	// (e.g. https://worker.example.dev/callback). All other relay
	// endpoints are derived from it.
	CallbackURL string `yaml:"callback_url" mapstructure:"callback_url" validate:"required,url"`
	// ProbeTimeout bounds the health probe. Defaults to 5s.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
}

// Client fetches stored transcripts from the webhook relay.
type Client struct {
	base  string
	http  *httpclient.Client
	probe *httpclient.Client
}

// NewClient creates a relay client from the configured callback URL.
func NewClient(cfg Config) (*Client, error) {
	if cfg.CallbackURL == "" {
		return nil, fmt.Errorf("relay: callback URL is required")
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	base := strings.TrimSuffix(strings.TrimRight(cfg.CallbackURL, "/"), "/callback")

	// Transcript fetches carry no client-side timeout; a stalled fetch is
	// bounded by the caller's context. The probe always has one so a dead
	// relay cannot stall the connectivity test.
	hc, err := httpclient.New(httpclient.Config{BaseURL: base})
	if err != nil {
		return nil, err
	}
	pc, err := httpclient.New(httpclient.Config{BaseURL: base, Timeout: cfg.ProbeTimeout})
	if err != nil {
		return nil, err
	}

	return &Client{base: base, http: hc, probe: pc}, nil
}

// CallbackURL returns the address Deepgram should deliver results to.
// The relay invokes it, never this client.
func (c *Client) CallbackURL() string { return c.base + "/callback" }

// TranscriptURL returns the per-job retrieval address.
func (c *Client) TranscriptURL(requestID string) string {
	return c.base + "/transcript/" + requestID
}

// HealthURL returns the relay health endpoint.
func (c *Client) HealthURL() string { return c.base + "/health" }

// LogURL returns the relay log-sink endpoint.
func (c *Client) LogURL() string { return c.base + "/log" }

// Fetch retrieves the stored result for a request id. A 404 yields
// CodeNotReady, a connection-level failure yields CodeUnreachable with the
// derived health URL, and any other fault propagates unchanged.
func (c *Client) Fetch(ctx context.Context, requestID string) (*JobRecord, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/transcript/" + requestID,
	})
	if err != nil {
		switch {
		case httpclient.IsNotFound(err):
			return nil, &Error{Code: CodeNotReady, RequestID: requestID, Err: err}
		case httpclient.IsConnection(err) || httpclient.IsTimeout(err):
			return nil, &Error{Code: CodeUnreachable, RequestID: requestID, HealthURL: c.HealthURL(), Err: err}
		default:
			return nil, err
		}
	}

	var record JobRecord
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("relay: decode transcript payload: %w", err)
	}
	if record.RequestID == "" {
		record.RequestID = requestID
	}
	return &record, nil
}

// Probe reports whether the relay health endpoint answers 200 within the
// probe timeout. Every failure collapses to false.
func (c *Client) Probe(ctx context.Context) bool {
	resp, err := c.probe.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
	return err == nil && resp.IsSuccess()
}
