package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL.
type Client struct {
	baseURL            string
	client             *http.Client
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	// ReadTimeout bounds the whole exchange, connection included.
	ReadTimeout time.Duration
	Logger      HTTPLogger
}

// Response is the outcome of an exchange that reached the server.
type Response struct {
	StatusCode int
	Body       []byte
	Success    any
}

// StatusError reports a non-2xx answer. Body is the raw upstream payload.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 100
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 10
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = opts.ReadTimeout
	}
	if opts.IdleConnTimeout == 0 {
		opts.IdleConnTimeout = 90 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}
	if opts.Logger == nil {
		opts.Logger = NewZapLogger()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// BaseURL returns the normalized base URL.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// doRequest sends one request, without retries.
// A transport failure yields a nil Response. A non-2xx status yields the Response together with a *StatusError.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams url.Values, headers map[string]string, body any, successResp any) (*Response, error) {
	target := hc.buildURL(path)
	if len(queryParams) > 0 {
		target += "?" + queryParams.Encode()
	}

	bodyReader, contentType, rawBody, err := hc.encodeBody(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", hc.defaultContentType)
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logURL := redactURL(req.URL)
	hc.logger.LogRequest(method, logURL, headers, rawBody)

	started := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		hc.logger.LogResponseError(method, logURL, 0, "", time.Since(started).Milliseconds(), err)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(started).Milliseconds()
	if err != nil {
		hc.logger.LogResponseError(method, logURL, resp.StatusCode, "", latency, err)
		return nil, err
	}

	result := &Response{StatusCode: resp.StatusCode, Body: bodyBytes}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: bodyBytes}
		hc.logger.LogResponseError(method, logURL, resp.StatusCode, string(bodyBytes), latency, statusErr)
		return result, statusErr
	}

	hc.logger.LogResponseSuccess(method, logURL, resp.StatusCode, latency)

	if successResp != nil {
		respContentType := resp.Header.Get("Content-Type")
		if respContentType == "" {
			respContentType = hc.defaultContentType
		}
		if err := hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
			return result, fmt.Errorf("decode response: %w", err)
		}
		result.Success = successResp
	}

	return result, nil
}

func (hc *Client) encodeBody(body any) (io.Reader, string, string, error) {
	if body == nil {
		return nil, "", "", nil
	}

	switch typed := body.(type) {
	case string:
		return strings.NewReader(typed), "text/plain", typed, nil
	case []byte:
		return bytes.NewReader(typed), "application/octet-stream", "", nil
	}

	var (
		raw []byte
		err error
	)
	contentType := hc.defaultContentType
	if contentType == "application/xml" {
		raw, err = xml.Marshal(body)
	} else {
		contentType = "application/json"
		raw, err = json.Marshal(body)
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to marshal request body: %w", err)
	}
	return bytes.NewReader(raw), contentType, string(raw), nil
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
	}
	return json.Unmarshal(bodyBytes, target)
}

// buildURL joins baseURL and path with exactly one slash.
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// redactURL hides credentials passed as query parameters.
func redactURL(u *url.URL) string {
	query := u.Query()
	redacted := false
	for _, key := range []string{"appid", "api_key", "apikey", "token"} {
		if query.Has(key) {
			query.Set(key, "***")
			redacted = true
		}
	}
	if !redacted {
		return u.String()
	}
	clone := *u
	clone.RawQuery = query.Encode()
	return clone.String()
}
