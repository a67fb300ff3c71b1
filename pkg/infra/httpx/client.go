package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 30 * time.Second
	DefaultMaxConnsPerHost     = 64
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 512 * 1024 * 1024

	acceptEncoding = "gzip, br, zstd, deflate"
	maxRedirects   = 5
)

// StatusError is returned when a server answers with anything but 200.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Retryable reports whether repeating the same request may succeed.
func (e *StatusError) Retryable() bool {
	return e.Code == fasthttp.StatusTooManyRequests || e.Code >= fasthttp.StatusInternalServerError
}

// Doer is the subset of *fasthttp.Client the clients in this package use.
type Doer interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type ClientOptions struct {
	Timeout             time.Duration
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
	UserAgent           string
}

type ClientOption func(*ClientOptions)

func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *ClientOptions) {
		o.Timeout = timeout
	}
}

func WithMaxConnsPerHost(max int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxConnsPerHost = max
	}
}

func WithMaxResponseBodySize(size int) ClientOption {
	return func(o *ClientOptions) {
		o.MaxResponseBodySize = size
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(o *ClientOptions) {
		o.UserAgent = userAgent
	}
}

// NewFastHTTPClient builds the shared fasthttp client used by the embedding
// providers and the model downloader.
func NewFastHTTPClient(opts ...ClientOption) *fasthttp.Client {
	options := &ClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &fasthttp.Client{
		Name:                options.UserAgent,
		ReadTimeout:         options.Timeout,
		WriteTimeout:        options.Timeout,
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: options.MaxIdleConnDuration,
		MaxResponseBodySize: options.MaxResponseBodySize,
	}
}

// Client sends requests through a Doer while honouring context cancellation.
type Client struct {
	doer    Doer
	timeout time.Duration
}

func NewClient(doer Doer, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{doer: doer, timeout: timeout}
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// PostJSON posts payload as JSON and decodes a 200 response into out.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	respBody, err := c.Do(ctx, fasthttp.MethodPost, url, headers, body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Do performs the request and returns the decoded body of a 200 response.
// Any other status is reported as *StatusError.
func (c *Client) Do(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, acceptEncoding)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}
	defer fasthttp.ReleaseResponse(resp)
	return readResponse(resp)
}

// Get fetches url following up to five redirects, resolving relative
// Location headers against the URL that issued them. Headers are dropped once
// a redirect leaves the original host.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)

	current := rawURL
	for i := 0; ; i++ {
		req.Reset()
		req.SetRequestURI(current)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set(fasthttp.HeaderAcceptEncoding, acceptEncoding)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.roundTrip(ctx, req)
		if err != nil {
			return nil, err
		}
		if !fasthttp.StatusCodeIsRedirect(resp.StatusCode()) {
			body, err := readResponse(resp)
			fasthttp.ReleaseResponse(resp)
			return body, err
		}
		location := string(resp.Header.Peek(fasthttp.HeaderLocation))
		fasthttp.ReleaseResponse(resp)

		if i >= maxRedirects {
			return nil, fmt.Errorf("too many redirects fetching %s", rawURL)
		}
		next, err := resolveLocation(current, location)
		if err != nil {
			return nil, err
		}
		if hostOf(next) != hostOf(rawURL) {
			headers = nil
		}
		current = next
	}
}

func resolveLocation(base, location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("redirect from %s without location", base)
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", base, err)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("invalid redirect location %q: %w", location, err)
	}
	return baseURL.ResolveReference(ref).String(), nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func readResponse(resp *fasthttp.Response) ([]byte, error) {
	decoded, _, err := DecodeChain(resp, resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode(), Body: string(decoded)}
	}

	// resp is released on return
	out := make([]byte, len(decoded))
	copy(out, decoded)
	return out, nil
}

type roundTripResult struct {
	resp *fasthttp.Response
	err  error
}

// roundTrip sends a copy of req and returns a response the caller must
// release. When ctx ends first it returns at once; the transfer keeps its own
// request and response until DoTimeout gives up, and releases them then.
func (c *Client) roundTrip(ctx context.Context, req *fasthttp.Request) (*fasthttp.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := fasthttp.AcquireRequest()
	req.CopyTo(out)
	resp := fasthttp.AcquireResponse()

	done := make(chan roundTripResult, 1)
	go func() {
		err := c.doer.DoTimeout(out, resp, c.timeout)
		fasthttp.ReleaseRequest(out)
		if err != nil {
			fasthttp.ReleaseResponse(resp)
			done <- roundTripResult{err: err}
			return
		}
		done <- roundTripResult{resp: resp}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-done; r.resp != nil {
				fasthttp.ReleaseResponse(r.resp)
			}
		}()
		return nil, ctx.Err()
	case r := <-done:
		return r.resp, r.err
	}
}
