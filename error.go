package stripeapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

// ErrorType is the type of an Error returned by the Stripe API.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
)

// Error is an error returned by the Stripe API. This is decoded from the error
// envelope in the body of a response with a non-2xx status.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int `json:"-"`

	// RequestID is the value of the Request-Id header of the response.
	RequestID string `json:"-"`

	Type              ErrorType `json:"type"`
	Code              ErrorCode `json:"code,omitempty"`
	DeclineCode       string    `json:"decline_code,omitempty"`
	Message           string    `json:"message,omitempty"`
	Param             string    `json:"param,omitempty"`
	DocURL            string    `json:"doc_url,omitempty"`
	RequestLogURL     string    `json:"request_log_url,omitempty"`
	Charge            string    `json:"charge,omitempty"`
	PaymentMethodType string    `json:"payment_method_type,omitempty"`

	// PaymentIntent, SetupIntent, and Source are the IDs of the objects
	// associated with the error, if any.
	PaymentIntent string `json:"payment_intent,omitempty"`
	SetupIntent   string `json:"setup_intent,omitempty"`
	Source        string `json:"source,omitempty"`
}

// StatusError is returned when the Stripe API responds with a non-2xx status,
// and the body of the response could not be decoded as an error envelope.
type StatusError struct {
	Status int
	Body   []byte
}

// TransportError is returned when a request could not be sent to the Stripe
// API, or its response could not be read.
type TransportError struct {
	Err error
}

// DecodeError is returned when a response could not be decoded into the
// expected type. Path is the dotted path of the key in the response that
// failed to decode, if known.
type DecodeError struct {
	Path string
	Err  error
}

// EnumParseError is returned when a string is not a known value of a closed
// enum.
type EnumParseError struct {
	Enum  string
	Value string
}

// objectID decodes either an ID, or an object with an ID, into a string.
type objectID string

var (
	// ErrCanceled is returned when the context of a request is canceled or
	// expires before a response is received. The error returned will also
	// wrap the context's error.
	ErrCanceled = errors.New("request canceled")

	errorTypes = NewEnumSet("error.type",
		ErrorTypeAPI,
		ErrorTypeCard,
		ErrorTypeIdempotency,
		ErrorTypeInvalidRequest,
		ErrorTypeAuthentication,
		ErrorTypeRateLimit,
	)
)

// ParseErrorType parses the given string into an ErrorType.
func ParseErrorType(s string) (ErrorType, error) { return errorTypes.Parse(s) }

func (t *ErrorType) UnmarshalText(text []byte) error { return errorTypes.UnmarshalClosed(t, text) }

func (id *objectID) UnmarshalJSON(data []byte) error {
	var s string

	if err := json.Unmarshal(data, &s); err == nil {
		(*id) = objectID(s)
		return nil
	}

	s, err := jsonparser.GetString(data, "id")

	if err != nil {
		return err
	}
	(*id) = objectID(s)
	return nil
}

// parseError decodes the error envelope in the given body. If the body is not
// an error envelope then a *StatusError is returned.
func parseError(status int, requestID string, body []byte) error {
	e := &Error{}

	if err := DecodeObject(body, Required("error", e)); err != nil {
		return &StatusError{
			Status: status,
			Body:   body,
		}
	}

	e.Status = status
	e.RequestID = requestID
	return e
}

func (e *Error) UnmarshalJSON(data []byte) error {
	var e1 Error

	err := DecodeObject(data,
		Required("type", &e1.Type),
		Optional("code", &e1.Code),
		Optional("decline_code", &e1.DeclineCode),
		Optional("message", &e1.Message),
		Optional("param", &e1.Param),
		Optional("doc_url", &e1.DocURL),
		Optional("request_log_url", &e1.RequestLogURL),
		Optional("charge", &e1.Charge),
		Optional("payment_method_type", &e1.PaymentMethodType),
		Optional("payment_intent", (*objectID)(&e1.PaymentIntent)),
		Optional("setup_intent", (*objectID)(&e1.SetupIntent)),
		Optional("source", (*objectID)(&e1.Source)),
	)

	if err != nil {
		return err
	}

	e1.Status = e.Status
	e1.RequestID = e.RequestID
	(*e) = e1
	return nil
}

func (e *Error) Error() string {
	s := "stripe api error " + strconv.Itoa(e.Status) + " " + string(e.Type)

	if e.Code != "" {
		s += " (" + string(e.Code) + ")"
	}

	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stripe api error %d: %s", e.Status, string(e.Body))
}

func (e *TransportError) Error() string { return "stripe transport error: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "stripe decode error: " + e.Err.Error()
	}
	return "stripe decode error at " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *EnumParseError) Error() string {
	return fmt.Sprintf("unknown value %q for %s", e.Value, e.Enum)
}
