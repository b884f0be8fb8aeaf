package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when an authenticated call is attempted with
// no usable bearer token. The call is skipped client-side; nothing is
// sent over the network.
var ErrNoToken = errors.New("no auth token available")

// TokenSource supplies the persisted bearer token. An empty string
// means no token is stored.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, mostly for tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// Client talks to the remote restaurant REST API. All catalog data is
// owned by that API; this client only fetches, mutates and normalizes.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	nowFunc func() time.Time
}

// New creates a Client for the given API base URL, e.g.
// "https://api.example.com". tokens may be nil for public-only use.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// bearerToken returns the stored token, treating an expired token the
// same as a missing one. The signature is not verified here: the
// client has no secret, it only reads the exp claim to avoid sending
// requests that are guaranteed to be rejected.
func (c *Client) bearerToken() string {
	if c.tokens == nil {
		return ""
	}
	tok := c.tokens.Token()
	if tok == "" {
		return ""
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		// Opaque (non-JWT) tokens are passed through as-is.
		return tok
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err == nil && exp != nil && exp.Before(c.nowFunc()) {
		return ""
	}
	return tok
}

// do issues one request and decodes the JSON response into an untyped
// value. Errors come back as *APIError so NormalizeError can classify
// them.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool) (any, error) {
	var token string
	if authed {
		token = c.bearerToken()
		if token == "" {
			return nil, ErrNoToken
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Err: err}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Kind: KindHTTP, Status: resp.StatusCode}
		// Body decode is best-effort; an unreadable error body still
		// yields a status-classified error.
		_ = json.Unmarshal(raw, &apiErr.Body)
		return nil, apiErr
	}

	if len(raw) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &APIError{Kind: KindParse, Err: err}
	}
	return decoded, nil
}

func classifyTransport(err error) *APIError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &APIError{Kind: KindTimeout, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &APIError{Kind: KindTimeout, Err: err}
	}
	return &APIError{Kind: KindNetwork, Err: err}
}
