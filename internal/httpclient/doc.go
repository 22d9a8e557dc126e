// Package httpclient provides the shared outbound HTTP client for the
// Deepgram API and the webhook relay.
//
// It supports a base URL, default headers, token/bearer authentication,
// and classification of response status codes into typed errors. Every
// request is made at most once: there is no retry, circuit breaking, or
// rate limiting. The remote services own those concerns.
//
//	c, _ := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.deepgram.com/v1",
//	    Auth:    httpclient.TokenAuth(apiKey),
//	})
//	resp, err := c.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/projects"})
package httpclient
