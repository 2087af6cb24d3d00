package treasury

import (
	"context"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/internal/stripetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transferJSON = `{
	"id": "obt_1",
	"object": "treasury.outbound_transfer",
	"amount": 10000,
	"cancelable": true,
	"created": 1700000000,
	"currency": "usd",
	"description": null,
	"destination_payment_method": "pm_bank",
	"expected_arrival_date": 1700086400,
	"financial_account": "fa_1",
	"hosted_regulatory_receipt_url": null,
	"livemode": false,
	"metadata": {},
	"returned_details": null,
	"statement_descriptor": "payout",
	"status": "processing",
	"status_transitions": {"canceled_at": null, "failed_at": null, "posted_at": null, "returned_at": null},
	"transaction": "trxn_1"
}`

func newClient(srv *stripetest.Server) stripeapi.Client {
	return stripeapi.NewClient(stripeapi.DefaultAPIVersion, "sk_test_123",
		stripeapi.WithEndpoint(srv.Endpoint()),
		stripeapi.WithHTTPClient(srv.Client()),
	)
}

func TestCreateOutboundTransfer(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/treasury/outbound_transfers", http.StatusOK, transferJSON)

	tr, err := NewCreateOutboundTransfer("fa_1", 10000, "USD").
		Destination("pm_bank", NetworkACH).
		StatementDescriptor("payout").
		Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, OutboundTransferID("obt_1"), tr.ID)
	assert.Equal(t, StatusProcessing, tr.Status)
	assert.True(t, tr.Cancelable)
	assert.Equal(t, "trxn_1", tr.Transaction.GetID())
	assert.False(t, tr.Transaction.IsExpanded())
	assert.Nil(t, tr.ReturnedDetails)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "amount=10000&currency=usd&destination_payment_method=pm_bank&destination_payment_method_options[us_bank_account][network]=ach&financial_account=fa_1&statement_descriptor=payout", req.Body)
}

func TestCancelOutboundTransfer(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/treasury/outbound_transfers/{id}/cancel", http.StatusOK, `{
		"id": "obt_1",
		"object": "treasury.outbound_transfer",
		"amount": 10000,
		"cancelable": false,
		"created": 1700000000,
		"currency": "usd",
		"financial_account": "fa_1",
		"livemode": false,
		"status": "canceled",
		"status_transitions": {"canceled_at": 1700000100}
	}`)

	tr, err := NewCancelOutboundTransfer("obt_1").Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, tr.Status)
	assert.False(t, tr.Cancelable)
	require.NotNil(t, tr.StatusTransitions.CanceledAt)
	assert.Equal(t, stripeapi.Timestamp(1700000100), *tr.StatusTransitions.CanceledAt)
	assert.False(t, tr.Transaction.IsPresent())

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "/v1/treasury/outbound_transfers/obt_1/cancel", req.Path)
	assert.Equal(t, "", req.Body)
}

func TestListOutboundTransfers(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/treasury/outbound_transfers", http.StatusOK, `{
		"object": "list",
		"data": [`+transferJSON+`],
		"has_more": false,
		"url": "/v1/treasury/outbound_transfers"
	}`)

	it := NewListOutboundTransfers("fa_1").
		Limit(10).
		Status(StatusProcessing).
		Paginate(context.Background(), newClient(srv))

	transfers, err := stripeapi.Collect(it)

	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, OutboundTransferID("obt_1"), transfers[0].ID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)

	assert.Equal(t, "limit=10&financial_account=fa_1&status=processing", reqs[0].RawQuery)
}

func TestOutboundTransferReturned(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/treasury/outbound_transfers/{id}", http.StatusOK, `{
		"id": "obt_2",
		"object": "treasury.outbound_transfer",
		"amount": 500,
		"cancelable": false,
		"created": 1700000000,
		"currency": "usd",
		"financial_account": "fa_1",
		"livemode": false,
		"returned_details": {
			"code": "account_closed",
			"transaction": {"id": "trxn_2", "object": "treasury.transaction", "amount": 500, "currency": "usd", "financial_account": "fa_1", "status": "posted"}
		},
		"status": "held_for_review",
		"status_transitions": {}
	}`)

	tr, err := NewRetrieveOutboundTransfer("obt_2").
		Expand("returned_details.transaction").
		Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.False(t, tr.Status.Known())
	assert.Equal(t, Status("held_for_review"), tr.Status)

	require.NotNil(t, tr.ReturnedDetails)
	assert.Equal(t, "account_closed", tr.ReturnedDetails.Code)
	require.True(t, tr.ReturnedDetails.Transaction.IsExpanded())
	assert.Equal(t, "trxn_2", tr.ReturnedDetails.Transaction.GetID())
	assert.Equal(t, int64(500), tr.ReturnedDetails.Transaction.Object.Amount)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "expand[0]=returned_details.transaction", req.RawQuery)
}

func TestParseNetwork(t *testing.T) {
	n, err := ParseNetwork("us_domestic_wire")

	require.NoError(t, err)
	assert.Equal(t, NetworkUSDomesticWire, n)

	_, err = ParseNetwork("swift")
	assert.Error(t, err)
}
