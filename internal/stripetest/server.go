// Package stripetest provides a fake Stripe API server for testing requests
// made by the client.
package stripetest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Request is a request received by the Server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Body     string
	Form     url.Values
	Header   http.Header
}

// Server is a fake Stripe API. Every route is mounted beneath /v1, and every
// request received is recorded.
type Server struct {
	*httptest.Server

	router chi.Router

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a new Server that is closed when the given test finishes.
func NewServer(t testing.TB) *Server {
	s := &Server{
		router: chi.NewRouter(),
	}

	s.router.Use(s.record)
	s.Server = httptest.NewServer(s.router)

	t.Cleanup(s.Close)
	return s
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		r.Body.Close()

		form, _ := url.ParseQuery(string(b))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Query:    r.URL.Query(),
			Body:     string(b),
			Form:     form,
			Header:   r.Header.Clone(),
		})
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(b))
		next.ServeHTTP(w, r)
	})
}

// Endpoint returns the base URL of the fake API, this is given to the client
// as the endpoint to send requests to.
func (s *Server) Endpoint() string { return s.URL + "/v1" }

// HandleFunc registers the given handler for the given method and pattern.
// The pattern is relative to /v1, and may use chi URL parameters.
func (s *Server) HandleFunc(method, pattern string, fn http.HandlerFunc) {
	s.router.MethodFunc(method, "/v1"+pattern, fn)
}

// Handle registers a handler for the given method and pattern that always
// responds with the given status and JSON body.
func (s *Server) Handle(method, pattern string, status int, body string) {
	s.HandleFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		Respond(w, status, body)
	})
}

// Requests returns the requests the Server has received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	reqs := make([]Request, len(s.requests))
	copy(reqs, s.requests)
	return reqs
}

// LastRequest returns the most recent request the Server received.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Respond writes the given JSON body with the given status.
func Respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Request-Id", "req_test")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// Param returns the URL parameter of the given name for the request.
func Param(r *http.Request, name string) string { return chi.URLParam(r, name) }
