// Package http implements the request pipeline shared by every resource
// client: one encoded request, one round trip, one classified result.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/moip/moip-sdk-go/internal/codec"
	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/internal/version"
	"github.com/moip/moip-sdk-go/pkg/moip"
)

// ErrReadTimeout reports a response body that stalled past the read timeout.
var ErrReadTimeout = errors.New("read timeout exceeded")

// Client is the HTTP pipeline. It is immutable once built and safe for
// concurrent use.
type Client struct {
	baseURL        string
	authenticator  moip.Authenticator
	httpClient     *retryablehttp.Client
	standardClient *http.Client
	logger         moip.Logger
	debug          bool
	userAgent      string
	connectTimeout time.Duration
	readTimeout    time.Duration
}

// Request represents an API request.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	ContentKind codec.ContentKind
	Headers     map[string]string
}

// Response represents an API response. Body is nil when the status class
// does not read it (401 and 5xx).
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger moip.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent derived from build metadata.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeouts sets the connect and read timeouts. Zero disables a bound.
func WithTimeouts(connect, read time.Duration) Option {
	return func(c *Client) {
		c.connectTimeout = connect
		c.readTimeout = read
	}
}

// WithHTTPClient replaces the pooled transport, typically with a recorder
// in tests. Dial and header timeouts and the TLS floor are the caller's
// responsibility; body reads stay bounded by the read timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.standardClient = httpClient
	}
}

// NewClient creates a new HTTP pipeline. A nil authenticator sends requests
// without credentials.
func NewClient(baseURL string, authenticator moip.Authenticator, opts ...Option) *Client {
	client := &Client{
		baseURL:       baseURL,
		authenticator: authenticator,
		userAgent:     version.DefaultUserAgent(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.standardClient == nil {
		client.standardClient = &http.Client{
			Transport: newTransport(client.connectTimeout, client.readTimeout),
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = client.standardClient
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.httpClient = retryClient

	return client
}

// newTransport returns a pooled transport pinned to the minimum TLS version.
func newTransport(connectTimeout, readTimeout time.Duration) *http.Transport {
	transport := cleanhttp.DefaultPooledTransport()

	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: constants.KeepAliveInterval,
	}
	transport.DialContext = dialer.DialContext
	transport.TLSHandshakeTimeout = connectTimeout
	transport.ResponseHeaderTimeout = readTimeout
	transport.TLSClientConfig = &tls.Config{
		MinVersion: constants.MinTLSVersion, // #nosec G402 -- the API still accepts TLS 1.1 clients
	}

	return transport
}

// stallReader cancels the request when no bytes arrive within timeout.
type stallReader struct {
	body    io.ReadCloser
	timeout time.Duration
	timer   *time.Timer
	expired atomic.Bool
}

func newStallReader(body io.ReadCloser, timeout time.Duration, cancel context.CancelFunc) *stallReader {
	reader := &stallReader{body: body, timeout: timeout}
	reader.timer = time.AfterFunc(timeout, func() {
		reader.expired.Store(true)
		cancel()
	})

	return reader
}

func (r *stallReader) Read(p []byte) (int, error) {
	n, err := r.body.Read(p)
	if r.expired.Load() {
		return n, fmt.Errorf("%w after %s", ErrReadTimeout, r.timeout)
	}

	r.timer.Reset(r.timeout)

	return n, err
}

func (r *stallReader) Close() error {
	r.stop()

	return r.body.Close()
}

func (r *stallReader) stop() {
	r.timer.Stop()
}

// neverRetry keeps every call to a single round trip.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// BaseURL returns the base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserAgent returns the User-Agent header value.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// Do executes a request and classifies the response. On a 2xx status the
// body is decoded into out unless out is nil. The returned Response is
// non-nil whenever the server answered, including on classified errors.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) (*Response, error) {
	var body []byte

	if req.Body != nil {
		encoded, err := codec.Encode(req.Body, req.ContentKind)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	fullURL := c.buildURL(req.Path, req.Query)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Content-Type", req.ContentKind.MIMEType())
	httpReq.Header.Set("Accept", constants.ContentTypeJSON)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.authenticator != nil {
		err = c.authenticator.Authenticate(httpReq.Request)
		if err != nil {
			return nil, &moip.TransportError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("authenticating request: %w", err)}
		}
	}

	c.logRequest(httpReq.Request, body)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &moip.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	if c.readTimeout > 0 {
		reader := newStallReader(httpResp.Body, c.readTimeout, cancel)
		defer reader.stop()

		httpResp.Body = reader
	}

	return c.handleResponse(req, fullURL, httpResp, out)
}

// handleResponse classifies the response by status.
func (c *Client) handleResponse(req *Request, fullURL string, httpResp *http.Response, out interface{}) (*Response, error) {
	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     statusText(httpResp),
		Header:     httpResp.Header,
	}

	switch code := httpResp.StatusCode; {
	case code >= constants.StatusSuccessMin && code < constants.StatusSuccessLimit:
		err := c.readBody(req, fullURL, httpResp, resp)
		if err != nil {
			return resp, err
		}

		if out != nil {
			err = codec.Decode(resp.Body, out)
			if err != nil {
				return resp, &moip.DecodeError{Err: err}
			}
		}

		return resp, nil

	case code == http.StatusUnauthorized:
		c.logResponse(fullURL, httpResp, nil)

		return resp, &moip.UnauthorizedError{Status: resp.Status}

	case code >= constants.StatusClientErrorMin && code < constants.StatusClientErrorLimit:
		err := c.readBody(req, fullURL, httpResp, resp)
		if err != nil {
			return resp, err
		}

		errResp, parseErr := moip.ParseResponseError(resp.Body)
		apiErrors := []moip.APIError{}

		if parseErr != nil {
			if c.logger != nil && c.debug {
				c.logger.Debug("unparseable error body", map[string]interface{}{
					"status_code": code,
					"error":       parseErr.Error(),
				})
			}
		} else if errResp.Errors != nil {
			apiErrors = errResp.Errors
		}

		return resp, &moip.ValidationError{StatusCode: code, Status: resp.Status, Errors: apiErrors}

	default:
		c.logResponse(fullURL, httpResp, nil)

		return resp, &moip.UnexpectedError{StatusCode: code, Status: resp.Status}
	}
}

func (c *Client) readBody(req *Request, fullURL string, httpResp *http.Response, resp *Response) error {
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &moip.TransportError{Method: req.Method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp.Body = body
	c.logResponse(fullURL, httpResp, body)

	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}

// statusText returns the reason phrase, falling back to the standard text.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}

	return text
}

func (c *Client) logRequest(req *http.Request, body []byte) {
	if c.logger == nil || !c.debug {
		return
	}

	fields := map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"headers": maskHeaders(req.Header),
	}

	if len(body) > 0 {
		fields["body"] = string(body)
	}

	c.logger.Debug("HTTP Request", fields)
}

func (c *Client) logResponse(fullURL string, resp *http.Response, body []byte) {
	if c.logger == nil || !c.debug {
		return
	}

	fields := map[string]interface{}{
		"status_code": resp.StatusCode,
		"status":      statusText(resp),
		"url":         fullURL,
		"headers":     resp.Header,
	}

	if len(body) > 0 {
		fields["body"] = string(body)
	}

	c.logger.Debug("HTTP Response", fields)
}

func maskHeaders(header http.Header) map[string]string {
	masked := make(map[string]string, len(header))

	for key := range header {
		if strings.EqualFold(key, "Authorization") {
			masked[key] = constants.MaskedSecret

			continue
		}

		masked[key] = header.Get(key)
	}

	return masked
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	}, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	}, out)
}

// PostForm performs a POST request with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, path string, body interface{}, out interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        body,
		ContentKind: codec.Form,
	}, out)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	}, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	}, out)
}
