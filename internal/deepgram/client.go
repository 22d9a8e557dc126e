package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/voxrelay/deepgram-mcp/internal/httpclient"
)

const defaultBaseURL = "https://api.deepgram.com/v1"

// Config holds configuration for the Deepgram client.
type Config struct {
	// APIKey is the Deepgram credential.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`
	// ProjectID, when set, skips project auto-detection.
	ProjectID string `yaml:"project_id" mapstructure:"project_id"`
	// BaseURL overrides the Deepgram API base URL (tests, proxies).
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds each API call. Zero means no client-side timeout:
	// long submissions are bounded by the provider, not by us.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Client calls the Deepgram REST API.
type Client struct {
	http *httpclient.Client
	cfg  Config

	mu        sync.Mutex
	projectID string
}

// NewClient creates a Deepgram client for one credential. The memoized
// project id lives for the lifetime of the instance; construct one client
// per credential.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("deepgram: api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Auth:    httpclient.TokenAuth(cfg.APIKey),
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	if err != nil {
		return nil, err
	}

	return &Client{http: hc, cfg: cfg}, nil
}

// Submit sends a transcription job to POST /listen. The source URL travels
// in the body; all set options travel as query parameters. With a callback
// set, Deepgram acknowledges with a request id and delivers results
// asynchronously.
func (c *Client) Submit(ctx context.Context, opts TranscriptionOptions) (*SubmitResponse, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/listen",
		Query:  opts.queryParams(),
		Body:   map[string]string{"url": opts.URL},
	})
	if err != nil {
		if resp != nil {
			return nil, NewUpstreamError(resp.StatusCode, resp.Body, err)
		}
		return nil, err
	}

	var out SubmitResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("deepgram: decode submit response: %w", err)
	}
	return &out, nil
}

// ResolveProjectID returns the project id for this credential. A configured
// id wins; otherwise the first project from GET /projects is fetched once
// and memoized for the client lifetime.
func (c *Client) ResolveProjectID(ctx context.Context) (string, error) {
	if c.cfg.ProjectID != "" {
		return c.cfg.ProjectID, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projectID != "" {
		return c.projectID, nil
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/projects",
	})
	if err != nil {
		if httpclient.IsAuth(err) {
			return "", NewPermissionError("list projects", err)
		}
		return "", err
	}

	var out listProjectsResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return "", fmt.Errorf("deepgram: decode projects response: %w", err)
	}
	if len(out.Projects) == 0 {
		return "", NewNotConfiguredError()
	}

	c.projectID = out.Projects[0].ProjectID
	return c.projectID, nil
}

// FetchRequestStatus looks up a transcription request under the resolved
// project. 403 maps to a permission error, 404 identifies both the request
// id and the project it was searched under; anything else propagates.
func (c *Client) FetchRequestStatus(ctx context.Context, requestID string) (*RequestStatus, error) {
	projectID, err := c.ResolveProjectID(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/projects/%s/requests/%s", projectID, requestID),
	})
	if err != nil {
		switch {
		case httpclient.IsAuth(err):
			return nil, NewPermissionError("access request details (requires usage:read)", err)
		case httpclient.IsNotFound(err):
			return nil, NewNotFoundError(requestID, projectID, err)
		default:
			return nil, err
		}
	}

	var out getRequestResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("deepgram: decode request status: %w", err)
	}
	return &out.Request, nil
}

// TestConnection reports whether the project-listing call succeeds.
// Every failure collapses to false; no detail is exposed.
func (c *Client) TestConnection(ctx context.Context) bool {
	_, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/projects",
	})
	return err == nil
}
