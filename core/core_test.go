package core

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/internal/stripetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerJSON = `{
		"id": "cus_123",
		"object": "customer",
		"address": null,
		"balance": 0,
		"created": 1700000000,
		"currency": "gbp",
		"email": "me@example.com",
		"livemode": false,
		"metadata": {},
		"name": "Jane",
		"preferred_locales": ["en"],
		"tax_exempt": "none"
	}`

	disputeJSON = `{
		"id": "dp_1",
		"object": "dispute",
		"amount": 1000,
		"charge": "ch_1",
		"created": 1700000000,
		"currency": "usd",
		"evidence": {"customer_name": "Jane", "receipt": "file_1", "uncategorized_file": null},
		"evidence_details": {"due_by": 1700500000, "has_evidence": false, "past_due": false, "submission_count": 0},
		"is_charge_refundable": false,
		"livemode": false,
		"metadata": {},
		"payment_intent": null,
		"reason": "fraudulent",
		"status": "needs_response"
	}`
)

func newClient(srv *stripetest.Server) stripeapi.Client {
	return stripeapi.NewClient(stripeapi.DefaultAPIVersion, "sk_test_123",
		stripeapi.WithEndpoint(srv.Endpoint()),
		stripeapi.WithHTTPClient(srv.Client()),
	)
}

func TestRetrieveCustomer(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.HandleFunc("GET", "/customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if stripetest.Param(r, "id") == "cus_gone" {
			stripetest.Respond(w, http.StatusOK, `{"id":"cus_gone","object":"customer","deleted":true}`)
			return
		}
		stripetest.Respond(w, http.StatusOK, customerJSON)
	})

	c := newClient(srv)

	cus, err := NewRetrieveCustomer("cus_123").Send(context.Background(), c)

	require.NoError(t, err)
	require.NotNil(t, cus.Object)
	assert.Equal(t, "me@example.com", *cus.Object.Email)
	assert.Equal(t, stripeapi.Currency("gbp"), *cus.Object.Currency)
	assert.True(t, cus.Object.TaxExempt.Known())

	gone, err := NewRetrieveCustomer("cus_gone").Send(context.Background(), c)

	require.NoError(t, err)
	assert.True(t, gone.IsDeleted())
	assert.Equal(t, "cus_gone", gone.GetID())
}

func TestCustomerParams(t *testing.T) {
	tests := []struct {
		desc     stripeapi.Description
		expected string
	}{
		{
			NewCreateCustomer().Email("me@example.com").TaxExempt(TaxExemptParamNone).Describe(),
			"email=me%40example.com&tax_exempt=none",
		},
		{
			NewUpdateCustomer("cus_123").Metadata(stripeapi.Metadata{"b": "2", "a": "1"}).PreferredLocales("en", "fr").Describe(),
			"metadata[a]=1&metadata[b]=2&preferred_locales[0]=en&preferred_locales[1]=fr",
		},
		{
			NewListCustomers().Limit(3).Created(stripeapi.After(1700000000)).Describe(),
			"limit=3&created[gt]=1700000000",
		},
	}

	for i, test := range tests {
		assert.Equal(t, test.expected, test.desc.Form().Encode(), "tests[%d]", i)
	}

	_, err := ParseTaxExemptParam("partial")
	assert.Error(t, err)
}

func TestDeleteCustomer(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("DELETE", "/customers/{id}", http.StatusOK, `{"id":"cus_123","object":"customer","deleted":true}`)

	del, err := NewDeleteCustomer("cus_123").Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, CustomerID("cus_123"), del.ID)
	assert.True(t, del.Deleted)
}

func TestListDisputes(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/disputes", http.StatusOK, `{"object":"list","data":[`+disputeJSON+`],"has_more":false,"url":"/v1/disputes"}`)

	it := NewListDisputes().
		Created(stripeapi.Between(1700000000, 1700100000)).
		PaymentIntent("pi_1").
		Paginate(context.Background(), newClient(srv))

	disputes, err := stripeapi.Collect(it)

	require.NoError(t, err)
	require.Len(t, disputes, 1)

	dp := disputes[0]

	assert.Equal(t, DisputeStatusNeedsResponse, dp.Status)
	assert.False(t, dp.Status.Closed())
	assert.Equal(t, "ch_1", dp.Charge.GetID())
	assert.False(t, dp.PaymentIntent.IsPresent())
	assert.Equal(t, "file_1", dp.Evidence.Receipt.GetID())
	assert.False(t, dp.Evidence.UncategorizedFile.IsPresent())
	assert.Equal(t, stripeapi.Timestamp(1700500000), *dp.EvidenceDetails.DueBy)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "created[gte]=1700000000&created[lt]=1700100000&payment_intent=pi_1", req.RawQuery)
}

func TestUpdateDispute(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/disputes/{id}", http.StatusOK, disputeJSON)

	_, err := NewUpdateDispute("dp_1").
		Evidence(DisputeEvidenceParams{
			CustomerName:      stripeapi.String("Jane"),
			UncategorizedText: stripeapi.String("Delivered"),
		}).
		Submit(true).
		Send(context.Background(), newClient(srv))

	require.NoError(t, err)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "/v1/disputes/dp_1", req.Path)
	assert.Equal(t, "Jane", req.Form.Get("evidence[customer_name]"))
	assert.Equal(t, "Delivered", req.Form.Get("evidence[uncategorized_text]"))
	assert.Equal(t, "true", req.Form.Get("submit"))
}

func TestCloseDispute(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/disputes/{id}/close", http.StatusOK, `{
		"id": "dp_1",
		"amount": 1000,
		"charge": {"id": "ch_1", "object": "charge", "amount": 1000, "created": 1, "currency": "usd", "livemode": false, "status": "brand_new"},
		"created": 1700000000,
		"currency": "usd",
		"livemode": false,
		"reason": "fraudulent",
		"status": "lost"
	}`)

	dp, err := NewCloseDispute("dp_1").Expand("charge").Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.True(t, dp.Status.Closed())
	require.True(t, dp.Charge.IsExpanded())
	assert.Equal(t, ChargeID("ch_1"), dp.Charge.Object.ID)
	assert.False(t, dp.Charge.Object.Status.Known())

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "/v1/disputes/dp_1/close", req.Path)
	assert.Equal(t, "expand[0]=charge", req.Body)
}

func TestDisputeRoundTrip(t *testing.T) {
	var dp Dispute
	require.NoError(t, json.Unmarshal([]byte(disputeJSON), &dp))

	b, err := json.Marshal(dp)
	require.NoError(t, err)

	var dp1 Dispute
	require.NoError(t, json.Unmarshal(b, &dp1))

	assert.Equal(t, dp, dp1)
}
