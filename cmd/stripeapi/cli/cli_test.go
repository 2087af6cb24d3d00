package cli

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/andrewpillar/stripeapi/internal/stripetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs the command line client with the given arguments against the given
// server, and returns what was written to stdout and stderr.
func run(t *testing.T, srv *stripetest.Server, args ...string) (string, string, error) {
	t.Helper()

	file := filepath.Join(t.TempDir(), "stripeapi.yaml")

	cfg := "api_key: sk_test_123\napi_base: " + srv.Endpoint() + "\nlog_level: error\nconcurrency: 2\n"

	require.NoError(t, os.WriteFile(file, []byte(cfg), 0o600))

	var out, progress bytes.Buffer

	a := &app{
		v:        viper.New(),
		out:      &out,
		progress: &progress,
	}

	cmd := newRootCmd(a, "test")
	cmd.SetArgs(append([]string{"--config", file}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), progress.String(), err
}

func TestRequestCmd(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/customers", http.StatusOK, `{"id":"cus_1","object":"customer"}`)

	out, _, err := run(t, srv, "request", "post", "/customers", "-d", "email=jane@example.com", "-d", "metadata[plan]=pro")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "cus_1"`)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "jane@example.com", req.Form.Get("email"))
	assert.Equal(t, "pro", req.Form.Get("metadata[plan]"))
	assert.NotEmpty(t, req.Header.Get("Idempotency-Key"))
}

func TestRequestCmdBadData(t *testing.T) {
	srv := stripetest.NewServer(t)

	_, _, err := run(t, srv, "request", "GET", "/customers", "-d", "email")
	assert.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestTerminalLocationsGetCmd(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.HandleFunc("GET", "/terminal/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch stripetest.Param(r, "id") {
		case "tml_gone":
			stripetest.Respond(w, http.StatusOK, `{"id":"tml_gone","object":"terminal.location","deleted":true}`)
		case "tml_1":
			stripetest.Respond(w, http.StatusOK, `{
				"id": "tml_1",
				"object": "terminal.location",
				"address": {"country": "US"},
				"display_name": "HQ",
				"livemode": false,
				"metadata": {}
			}`)
		default:
			stripetest.Respond(w, http.StatusNotFound, `{"error":{"type":"invalid_request_error","code":"resource_missing"}}`)
		}
	})

	ids := filepath.Join(t.TempDir(), "ids")
	require.NoError(t, os.WriteFile(ids, []byte("# locations\ntml_gone\n\ntml_missing\n"), 0o600))

	out, progress, err := run(t, srv, "terminal-locations", "get", "tml_1", "-f", ids)

	require.NoError(t, err)
	assert.Contains(t, out, `"display_name": "HQ"`)
	assert.Contains(t, out, `"deleted": true`)
	assert.Contains(t, progress, "tml_missing")
	assert.Len(t, srv.Requests(), 3)
}

func TestSyncCmd(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/disputes", http.StatusOK, `{
		"object": "list",
		"data": [{
			"id": "dp_1",
			"object": "dispute",
			"amount": 1000,
			"charge": "ch_1",
			"created": 1700000000,
			"currency": "usd",
			"evidence": {},
			"evidence_details": {"has_evidence": false, "past_due": false, "submission_count": 0},
			"is_charge_refundable": false,
			"livemode": false,
			"metadata": {},
			"reason": "fraudulent",
			"status": "needs_response"
		}],
		"has_more": false,
		"url": "/v1/disputes"
	}`)

	_, _, err := run(t, srv, "sync", "disputes", "--prune")
	require.NoError(t, err)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "limit=100", req.RawQuery)

	_, _, err = run(t, srv, "sync", "invoices")
	assert.Error(t, err)
}
