package stripeapi

import (
	"net/http"
	"net/url"
	"strings"
)

// PayloadRole denotes where the parameters of a request are sent.
type PayloadRole int

const (
	// PayloadNone denotes a request without parameters.
	PayloadNone PayloadRole = iota

	// PayloadQuery denotes parameters sent in the query string.
	PayloadQuery

	// PayloadForm denotes parameters sent as an x-www-form-urlencoded body.
	PayloadForm
)

// Description describes a request to the Stripe API. Path is relative to the
// API base, for example "/terminal/locations/tml_123". Params are encoded with
// EncodeForm. A Description made with Get or Post holds a *Form encoded when
// it was made, so later changes to the given parameters do not affect it.
type Description struct {
	Method string
	Path   string
	Role   PayloadRole
	Params interface{}
}

// Returns is embedded in request builders to denote the type of the response
// they expect. It carries no data.
type Returns[T any] struct{}

// Request is implemented by every request builder. Describe should be pure,
// and return a new Description on each call.
type Request[T any] interface {
	Describe() Description

	returns(*T)
}

// RequestOption configures a single request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	idempotencyKey string
	account        string
	header         http.Header
}

func (Returns[T]) returns(*T) {}

// Get describes a GET request to the given path, with the given parameters
// sent in the query string.
func Get(path string, params interface{}) Description {
	return Description{
		Method: http.MethodGet,
		Path:   path,
		Role:   PayloadQuery,
		Params: snapshot(params),
	}
}

// Post describes a POST request to the given path, with the given parameters
// sent as the body.
func Post(path string, params interface{}) Description {
	return Description{
		Method: http.MethodPost,
		Path:   path,
		Role:   PayloadForm,
		Params: snapshot(params),
	}
}

// Delete describes a DELETE request to the given path.
func Delete(path string) Description {
	return Description{
		Method: http.MethodDelete,
		Path:   path,
		Role:   PayloadNone,
	}
}

func snapshot(params interface{}) interface{} {
	if params == nil {
		return nil
	}
	return EncodeForm(params)
}

// FormatPath returns the given path with each {} placeholder replaced with the
// escaped ID in the same position,
//
//     FormatPath("/customers/{}/sources/{}", "cus_123", "src_456")
func FormatPath(path string, ids ...string) string {
	var buf strings.Builder

	for _, id := range ids {
		i := strings.Index(path, "{}")

		if i < 0 {
			break
		}

		buf.WriteString(path[:i])
		buf.WriteString(url.PathEscape(id))
		path = path[i+2:]
	}
	buf.WriteString(path)
	return buf.String()
}

// Form returns the encoded parameters of the Description. If the Description
// has no parameters then an empty Form is returned.
func (d Description) Form() *Form {
	if d.Params == nil {
		return &Form{}
	}
	return EncodeForm(d.Params)
}

// IdempotencyKey sets the Idempotency-Key header of the request.
func IdempotencyKey(key string) RequestOption {
	return func(o *requestOptions) {
		o.idempotencyKey = key
	}
}

// StripeAccount sets the Stripe-Account header of the request, overriding the
// account the Client was configured with.
func StripeAccount(account string) RequestOption {
	return func(o *requestOptions) {
		o.account = account
	}
}

// Header sets an additional header on the request, replacing any value the
// Client would otherwise send. The Authorization and Stripe-Version headers
// cannot be set this way.
func Header(key, val string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Set(key, val)
	}
}
