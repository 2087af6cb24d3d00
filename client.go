package stripeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stripe/stripe-go/v72"

	"golang.org/x/time/rate"
)

// DefaultAPIVersion is the version of the Stripe API the resources in this
// module were generated against.
const DefaultAPIVersion = "2025-03-31.basil"

// Doer sends an HTTP request and returns its response. *http.Client
// implements this.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Backend sends a described request to the Stripe API, and returns the body of
// a successful response. Client is the Backend that talks to Stripe over HTTP.
type Backend interface {
	Call(ctx context.Context, d Description, opts ...RequestOption) ([]byte, error)
}

// Client is an HTTP client for the Stripe API. This is configured to use a
// specific version of the Stripe API, and each request made via this client
// will be sent with the necessary headers for authentication and versioning.
// A Client is not modified once configured, and is safe to share between
// goroutines.
type Client struct {
	http     Doer
	secret   string
	endpoint string
	version  string
	account  string
	log      logrus.FieldLogger
	limiter  *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

var _ Backend = Client{}

func respCode2xx(code int) bool { return code >= 200 && code < 300 }

// New configures a new Client using the given secret for authentication, and
// the DefaultAPIVersion.
func New(secret string, opts ...Option) Client {
	return NewClient(DefaultAPIVersion, secret, opts...)
}

// NewClient configures a new Client for interfacing with the Stripe API using
// the given version, and secret for authentication. The version is sent as is
// in the Stripe-Version header, if empty then the header is not sent and the
// account's default version is used.
func NewClient(version, secret string, opts ...Option) Client {
	c := Client{
		http:     http.DefaultClient,
		secret:   secret,
		endpoint: stripe.APIURL + "/v1",
		version:  version,
		log:      logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithHTTPClient sets the Doer used to send requests. Timeouts, proxies, and
// connection pooling are the concern of the given Doer.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithEndpoint sets the base URL requests are sent to. This should include the
// version prefix of the API, for example "https://api.stripe.com/v1".
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithAccount sets the connected account each request is made on behalf of via
// the Stripe-Account header.
func WithAccount(account string) Option {
	return func(c *Client) {
		c.account = account
	}
}

// WithLogger sets the logger requests are logged to. Requests are logged at
// the debug level. The secret key, and the bodies of requests are never
// logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithRateLimit limits the rate at which requests are sent to the given number
// of requests per second, with the given burst. Waiting on the limiter can be
// canceled via the context of the request.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// Execute sends the given request via the given Backend, and decodes the
// response into the type the request returns.
func Execute[T any](ctx context.Context, b Backend, r Request[T], opts ...RequestOption) (*T, error) {
	body, err := b.Call(ctx, r.Describe(), opts...)

	if err != nil {
		return nil, err
	}
	return decodeResponse[T](body)
}

// ExecuteBlocking sends the given request via the given Backend without a
// context, and so cannot be canceled. Timeouts should be configured on the
// underlying HTTP client.
func ExecuteBlocking[T any](b Backend, r Request[T], opts ...RequestOption) (*T, error) {
	return Execute[T](context.Background(), b, r, opts...)
}

func decodeResponse[T any](body []byte) (*T, error) {
	if bytes.Equal(bytes.TrimSpace(body), null) {
		return nil, &DecodeError{Err: ErrNullField}
	}

	v := new(T)

	if err := json.Unmarshal(body, v); err != nil {
		var derr *DecodeError

		if errors.As(err, &derr) {
			return nil, err
		}
		return nil, &DecodeError{Err: err}
	}
	return v, nil
}

func canceled(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
	}
	return fmt.Errorf("%w: %w", ErrCanceled, err)
}

func (c Client) newRequest(ctx context.Context, d Description, o requestOptions) (*http.Request, error) {
	uri := c.endpoint + d.Path

	var body io.Reader

	if d.Role != PayloadNone {
		if enc := d.Form().Encode(); enc != "" {
			if d.Role == PayloadQuery {
				uri += "?" + enc
			} else {
				body = strings.NewReader(enc)
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, uri, body)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.secret)
	req.Header.Set("Accept", "application/json")

	if d.Role == PayloadForm {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.version != "" {
		req.Header.Set("Stripe-Version", c.version)
	}

	if o.account != "" {
		req.Header.Set("Stripe-Account", o.account)
	}

	if o.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", o.idempotencyKey)
	}

	for k, vals := range o.header {
		if reservedHeader(k) {
			continue
		}

		req.Header.Del(k)

		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// reservedHeader reports whether the given header is set by the Client itself,
// and so cannot be given via the Header option.
func reservedHeader(key string) bool {
	switch http.CanonicalHeaderKey(key) {
	case "Authorization", "Stripe-Version":
		return true
	}
	return false
}

// Call implements the Backend interface. A single attempt is made to send the
// request, if the response has a non-2xx status then either an *Error or a
// *StatusError is returned. If the request could not be sent then a
// *TransportError is returned, unless the given context was canceled, in which
// case the returned error wraps ErrCanceled.
func (c Client) Call(ctx context.Context, d Description, opts ...RequestOption) ([]byte, error) {
	o := requestOptions{
		account: c.account,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, canceled(ctx, err)
		}
	}

	req, err := c.newRequest(ctx, d, o)

	if err != nil {
		return nil, &TransportError{Err: err}
	}

	start := time.Now()

	resp, err := c.http.Do(req)

	if err != nil {
		if ctx.Err() != nil {
			return nil, canceled(ctx, err)
		}
		return nil, &TransportError{Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		if ctx.Err() != nil {
			return nil, canceled(ctx, err)
		}
		return nil, &TransportError{Err: err}
	}

	requestID := resp.Header.Get("Request-Id")

	fields := logrus.Fields{
		"method":     d.Method,
		"path":       d.Path,
		"status":     resp.StatusCode,
		"request_id": requestID,
		"duration":   time.Since(start),
	}

	if o.account != "" {
		fields["stripe_account"] = o.account
	}

	c.log.WithFields(fields).Debug("stripe request")

	if !respCode2xx(resp.StatusCode) {
		return nil, parseError(resp.StatusCode, requestID, body)
	}
	return body, nil
}

// Get sends a GET request to the given path of the Stripe API, with the given
// Params in the query string.
func (c Client) Get(ctx context.Context, path string, params Params, opts ...RequestOption) ([]byte, error) {
	return c.Call(ctx, Get(path, params), opts...)
}

// Post sends a POST request to the given path of the Stripe API, with the
// given Params as the body.
func (c Client) Post(ctx context.Context, path string, params Params, opts ...RequestOption) ([]byte, error) {
	return c.Call(ctx, Post(path, params), opts...)
}

// Delete sends a DELETE request to the given path of the Stripe API.
func (c Client) Delete(ctx context.Context, path string, opts ...RequestOption) ([]byte, error) {
	return c.Call(ctx, Delete(path), opts...)
}
