package stripeapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/andrewpillar/stripeapi/internal/stripetest"
)

type testRequest struct {
	Returns[testObject]

	desc Description
}

func (r testRequest) Describe() Description { return r.desc }

func newTestClient(srv *stripetest.Server, opts ...Option) Client {
	opts = append([]Option{
		WithEndpoint(srv.Endpoint()),
		WithHTTPClient(srv.Client()),
	}, opts...)
	return NewClient("2024-06-20", "sk_test_123", opts...)
}

func Test_ClientCall(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/objects", http.StatusOK, `{"id":"obj_1","amount":1,"livemode":false}`)
	srv.Handle("POST", "/objects", http.StatusOK, `{"id":"obj_2","amount":2,"livemode":false}`)
	srv.Handle("DELETE", "/objects/{id}", http.StatusOK, `{"id":"obj_3","amount":3,"livemode":false}`)

	c := newTestClient(srv, WithAccount("acct_1"))

	tests := []struct {
		desc          Description
		opts          []RequestOption
		expectedID    string
		expectedPath  string
		expectedQuery string
		expectedBody  string
		expectedType  string
		headers       map[string]string
	}{
		{
			Get("/objects", Params{"limit": 2, "created": Between(1, 2)}),
			nil,
			"obj_1",
			"/v1/objects",
			"created[gte]=1&created[lt]=2&limit=2",
			"",
			"",
			map[string]string{"Stripe-Account": "acct_1"},
		},
		{
			Post("/objects", Params{"metadata": map[string]string{}}),
			[]RequestOption{IdempotencyKey("key_1"), StripeAccount("acct_2")},
			"obj_2",
			"/v1/objects",
			"",
			"metadata=",
			"application/x-www-form-urlencoded",
			map[string]string{"Idempotency-Key": "key_1", "Stripe-Account": "acct_2"},
		},
		{
			Delete(FormatPath("/objects/{}", "obj 3")),
			[]RequestOption{Header("X-Test", "yes")},
			"obj_3",
			"/v1/objects/obj 3",
			"",
			"",
			"",
			map[string]string{"X-Test": "yes"},
		},
	}

	for i, test := range tests {
		obj, err := Execute[testObject](context.Background(), c, testRequest{desc: test.desc}, test.opts...)

		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s\n", i, err)
		}

		if obj.ID != test.expectedID {
			t.Errorf("tests[%d] - unexpected object id, expected=%q, got=%q\n", i, test.expectedID, obj.ID)
		}

		req, _ := srv.LastRequest()

		if req.Path != test.expectedPath {
			t.Errorf("tests[%d] - unexpected path, expected=%q, got=%q\n", i, test.expectedPath, req.Path)
		}

		if req.RawQuery != test.expectedQuery {
			t.Errorf("tests[%d] - unexpected query, expected=%q, got=%q\n", i, test.expectedQuery, req.RawQuery)
		}

		if req.Body != test.expectedBody {
			t.Errorf("tests[%d] - unexpected body, expected=%q, got=%q\n", i, test.expectedBody, req.Body)
		}

		if typ := req.Header.Get("Content-Type"); typ != test.expectedType {
			t.Errorf("tests[%d] - unexpected content type, expected=%q, got=%q\n", i, test.expectedType, typ)
		}

		if auth := req.Header.Get("Authorization"); auth != "Bearer sk_test_123" {
			t.Errorf("tests[%d] - unexpected authorization, got=%q\n", i, auth)
		}

		if v := req.Header.Get("Stripe-Version"); v != "2024-06-20" {
			t.Errorf("tests[%d] - unexpected version, got=%q\n", i, v)
		}

		for k, v := range test.headers {
			if got := req.Header.Get(k); got != v {
				t.Errorf("tests[%d] - unexpected header %s, expected=%q, got=%q\n", i, k, v, got)
			}
		}
	}
}

func Test_ClientErrors(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/declined", http.StatusPaymentRequired, `{
		"error": {
			"type": "card_error",
			"code": "card_declined",
			"decline_code": "insufficient_funds",
			"message": "Your card has insufficient funds.",
			"param": "payment_method",
			"payment_intent": {"id": "pi_1", "object": "payment_intent"}
		}
	}`)
	srv.Handle("GET", "/gateway", http.StatusBadGateway, `<html>bad gateway</html>`)
	srv.Handle("GET", "/unknown-type", http.StatusBadRequest, `{"error":{"type":"teapot_error"}}`)
	srv.Handle("GET", "/malformed", http.StatusOK, `{"id":"obj_1"}`)
	srv.Handle("GET", "/null", http.StatusOK, `null`)

	c := newTestClient(srv)
	ctx := context.Background()

	_, err := Execute[testObject](ctx, c, testRequest{desc: Post("/declined", nil)})

	var stripeErr *Error

	if !errors.As(err, &stripeErr) {
		t.Fatalf("expected *Error, got=%T (%v)\n", err, err)
	}

	if stripeErr.Status != http.StatusPaymentRequired {
		t.Errorf("unexpected status, expected=%d, got=%d\n", http.StatusPaymentRequired, stripeErr.Status)
	}

	if stripeErr.Type != ErrorTypeCard || stripeErr.Code != ErrorCodeCardDeclined {
		t.Errorf("unexpected error type and code, got=%q, %q\n", stripeErr.Type, stripeErr.Code)
	}

	if stripeErr.Param != "payment_method" || stripeErr.DeclineCode != "insufficient_funds" {
		t.Errorf("unexpected param and decline code, got=%q, %q\n", stripeErr.Param, stripeErr.DeclineCode)
	}

	if stripeErr.PaymentIntent != "pi_1" || stripeErr.RequestID != "req_test" {
		t.Errorf("unexpected payment intent and request id, got=%q, %q\n", stripeErr.PaymentIntent, stripeErr.RequestID)
	}

	for _, path := range []string{"/gateway", "/unknown-type"} {
		_, err = Execute[testObject](ctx, c, testRequest{desc: Get(path, nil)})

		var statusErr *StatusError

		if !errors.As(err, &statusErr) {
			t.Fatalf("%s - expected *StatusError, got=%T (%v)\n", path, err, err)
		}

		if statusErr.Status < 400 || len(statusErr.Body) == 0 {
			t.Errorf("%s - unexpected status error, got=%+v\n", path, statusErr)
		}
	}

	_, err = Execute[testObject](ctx, c, testRequest{desc: Get("/malformed", nil)})

	var derr *DecodeError

	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got=%T (%v)\n", err, err)
	}

	if derr.Path != "amount" {
		t.Errorf("unexpected decode error path, expected=%q, got=%q\n", "amount", derr.Path)
	}

	obj, err := Execute[testObject](ctx, c, testRequest{desc: Get("/null", nil)})

	if !errors.Is(err, ErrNullField) {
		t.Fatalf("expected error to wrap %q, got=%v\n", ErrNullField, err)
	}

	if obj != nil {
		t.Errorf("expected nil object for null body, got=%+v\n", obj)
	}
}

func Test_ClientHeaderOption(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/objects", http.StatusOK, `{"id":"obj_1","amount":1,"livemode":false}`)

	c := newTestClient(srv)

	opts := []RequestOption{
		Header("Authorization", "Bearer sk_other"),
		Header("Stripe-Version", "2020-08-27"),
		Header("Accept", "text/plain"),
	}

	if _, err := Execute[testObject](context.Background(), c, testRequest{desc: Get("/objects", nil)}, opts...); err != nil {
		t.Fatal(err)
	}

	req, _ := srv.LastRequest()

	tests := []struct {
		header   string
		expected []string
	}{
		{"Authorization", []string{"Bearer sk_test_123"}},
		{"Stripe-Version", []string{"2024-06-20"}},
		{"Accept", []string{"text/plain"}},
	}

	for i, test := range tests {
		vals := req.Header.Values(test.header)

		if len(vals) != len(test.expected) || vals[0] != test.expected[0] {
			t.Errorf("tests[%d] - unexpected %s header, expected=%q, got=%q\n", i, test.header, test.expected, vals)
		}
	}
}

func Test_DescribeSnapshot(t *testing.T) {
	params := Params{"limit": 2}

	d := Get("/objects", params)
	params["limit"] = 5
	params["starting_after"] = "obj_1"

	if q := d.Form().Encode(); q != "limit=2" {
		t.Errorf("unexpected query, expected=%q, got=%q\n", "limit=2", q)
	}
}

func Test_ClientTransportError(t *testing.T) {
	srv := stripetest.NewServer(t)

	c := newTestClient(srv)
	srv.Close()

	_, err := ExecuteBlocking[testObject](c, testRequest{desc: Get("/objects", nil)})

	var terr *TransportError

	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got=%T (%v)\n", err, err)
	}
}

func Test_ClientCanceled(t *testing.T) {
	srv := stripetest.NewServer(t)

	release := make(chan struct{})
	defer close(release)

	srv.HandleFunc("GET", "/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	c := newTestClient(srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Execute[testObject](ctx, c, testRequest{desc: Get("/slow", nil)})

	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got=%v\n", err)
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected error to wrap context.DeadlineExceeded, got=%v\n", err)
	}
}

func Test_ClientRateLimitCanceled(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/objects", http.StatusOK, `{"id":"obj_1","amount":1,"livemode":false}`)

	c := newTestClient(srv, WithRateLimit(0.001, 1))

	if _, err := Execute[testObject](context.Background(), c, testRequest{desc: Get("/objects", nil)}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute[testObject](ctx, c, testRequest{desc: Get("/objects", nil)})

	if !errors.Is(err, ErrCanceled) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled error, got=%v\n", err)
	}

	if n := len(srv.Requests()); n != 1 {
		t.Errorf("unexpected number of requests, expected=%d, got=%d\n", 1, n)
	}
}
