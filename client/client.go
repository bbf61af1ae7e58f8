// Package client implements the HTTP transport for the FreeAgent API: request
// construction, JSON decoding, bearer auth, and typed errors. It knows nothing
// about caching or individual resources.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/google/go-querystring/query"
)

// DefaultHost is the production API host. See SandboxHost for testing
// against a sandbox company.
const DefaultHost = "https://api.freeagent.com"

const SandboxHost = "https://api.sandbox.freeagent.com"

type Client struct {
	// Client is an HTTP client to use. If not set, defaults to RobustHTTPClient().
	Client    *http.Client
	Auth      *AuthInfo
	Host      string
	UserAgent *string
	Headers   map[string]string
}

// AuthInfo carries a bearer token for the Authorization header. Leave nil
// when the underlying http.Client already injects credentials (e.g. an
// oauth2 client, see NewWithToken).
type AuthInfo struct {
	AccessToken string
}

func (c *Client) getClient() *http.Client {
	if c.Client == nil {
		return RobustHTTPClient()
	}
	return c.Client
}

func (c *Client) host() string {
	if c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

// Get performs a GET against path, encoding params (a struct with url tags,
// or nil) into the query string and decoding the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, params interface{}, out interface{}) error {
	return c.Do(ctx, "GET", path, params, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.Do(ctx, "POST", path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.Do(ctx, "PUT", path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, "DELETE", path, nil, nil, nil)
}

func (c *Client) Do(ctx context.Context, method string, path string, params interface{}, bodyobj interface{}, out interface{}) error {
	var body io.Reader
	if bodyobj != nil {
		if rr, ok := bodyobj.(io.Reader); ok {
			body = rr
		} else {
			b, err := json.Marshal(bodyobj)
			if err != nil {
				return err
			}
			body = bytes.NewReader(b)
		}
	}

	var paramStr string
	if params != nil {
		vals, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("encoding query params: %w", err)
		}
		if enc := vals.Encode(); enc != "" {
			paramStr = "?" + enc
		}
	}

	uri := c.host() + "/v2/" + path + paramStr

	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if bodyobj != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != nil {
		req.Header.Set("User-Agent", *c.UserAgent)
	} else {
		req.Header.Set("User-Agent", "freeagent-go/"+versioninfo.Short())
	}
	if c.Auth != nil {
		req.Header.Set("Authorization", "Bearer "+c.Auth.AccessToken)
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.getClient().Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var eb ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
			return errorFromHTTPResponse(resp, fmt.Errorf("failed to decode api error message: %w", err))
		}
		return errorFromHTTPResponse(resp, &eb)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding api response: %w", err)
		}
	}

	return nil
}

// ErrorBody is the JSON error payload the API returns on non-2xx responses.
// The "errors" member is an object for a single error and an array when
// validation produced several.
type ErrorBody struct {
	Errors json.RawMessage `json:"errors"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// Messages flattens both payload shapes into a list of human-readable strings.
func (b *ErrorBody) Messages() []string {
	var single struct {
		Error errorMessage `json:"error"`
	}
	if err := json.Unmarshal(b.Errors, &single); err == nil && single.Error.Message != "" {
		return []string{single.Error.Message}
	}
	var many []errorMessage
	if err := json.Unmarshal(b.Errors, &many); err == nil {
		out := make([]string, 0, len(many))
		for _, m := range many {
			if m.Message != "" {
				out = append(out, m.Message)
			}
		}
		return out
	}
	return nil
}

func (b *ErrorBody) Error() string {
	msgs := b.Messages()
	if len(msgs) == 0 {
		return "unknown error"
	}
	out := msgs[0]
	for _, m := range msgs[1:] {
		out += "; " + m
	}
	return out
}

// APIError wraps any non-2xx response.
type APIError struct {
	StatusCode int
	Wrapped    error
	Ratelimit  *RatelimitInfo
}

func (e *APIError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("freeagent api error %d", e.StatusCode)
	}
	if e.StatusCode == http.StatusTooManyRequests && e.Ratelimit != nil {
		return fmt.Sprintf("freeagent api error %d: %s (throttled until %s)", e.StatusCode, e.Wrapped, e.Ratelimit.Reset.Local())
	}
	return fmt.Sprintf("freeagent api error %d: %s", e.StatusCode, e.Wrapped)
}

func (e *APIError) Unwrap() error {
	return e.Wrapped
}

func (e *APIError) IsThrottled() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

type RatelimitInfo struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

func errorFromHTTPResponse(resp *http.Response, err error) error {
	r := &APIError{
		StatusCode: resp.StatusCode,
		Wrapped:    err,
	}
	if resp.Header.Get("X-RateLimit-Limit") != "" || resp.Header.Get("Retry-After") != "" {
		r.Ratelimit = &RatelimitInfo{}
		if n, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Limit"), 10, 64); err == nil {
			r.Ratelimit.Limit = int(n)
		}
		if n, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Remaining"), 10, 64); err == nil {
			r.Ratelimit.Remaining = int(n)
		}
		if n, err := strconv.ParseInt(resp.Header.Get("Retry-After"), 10, 64); err == nil {
			r.Ratelimit.Reset = time.Now().Add(time.Duration(n) * time.Second)
		}
	}
	return r
}
