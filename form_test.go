package stripeapi

import (
	"testing"
	"time"
)

type flowKind string

type testFlow struct {
	Kind   flowKind
	Cancel *struct {
		Subscription string `form:"subscription"`
	}
	Update *struct {
		Subscription string `form:"subscription"`
	}
}

type testItem struct {
	ID       string `form:"id"`
	Quantity *int64 `form:"quantity"`
}

type testParams struct {
	Customer    string            `form:"customer"`
	Description *string           `form:"description"`
	Type        *string           `form:"type"`
	Amount      *int64            `form:"amount"`
	Capture     *bool             `form:"capture"`
	Currency    Currency          `form:"currency,omitempty"`
	Items       []testItem        `form:"items"`
	Metadata    map[string]string `form:"metadata"`
	Expires     *time.Time        `form:"expires_at"`
	Created     *RangeQuery       `form:"created"`
	Flow        *testFlow         `form:"flow_data"`
	Ignored     string            `form:"-"`
	internal    string
}

func (f testFlow) AppendForm(dst *Form, key string) {
	switch f.Kind {
	case "subscription_cancel":
		AppendForm(dst, FormKey(key, "subscription_cancel"), f.Cancel)
	case "subscription_update":
		AppendForm(dst, FormKey(key, "subscription_update"), f.Update)
	}
	dst.Add(FormKey(key, "type"), string(f.Kind))
}

func Test_Params(t *testing.T) {
	tests := []struct {
		params   Params
		expected string
	}{
		{
			Params{"email": "me@example.com"},
			"email=me%40example.com",
		},
		{
			Params{
				"invoice_settings": Params{
					"default_payment_method": "pm_123456",
				},
			},
			"invoice_settings[default_payment_method]=pm_123456",
		},
		{
			Params{
				"customer": "cu_123456",
				"items": []Params{
					{"price": "pr_123456"},
				},
				"expand": []string{"latest_invoice.payment_intent"},
			},
			"customer=cu_123456&expand[0]=latest_invoice.payment_intent&items[0][price]=pr_123456",
		},
		{
			Params{
				"amount":               2000,
				"currency":             "gbp",
				"payment_method_types": []string{"card"},
			},
			"amount=2000&currency=gbp&payment_method_types[0]=card",
		},
		{
			Params{"a": Params{"b": Params{"c": 1}}},
			"a[b][c]=1",
		},
		{
			Params{"xs": []int{10, 20}},
			"xs[0]=10&xs[1]=20",
		},
	}

	for i, test := range tests {
		encoded := test.params.Encode()

		if encoded != test.expected {
			t.Errorf("tests[%d] - unexpected encoding, expected=%q, got=%q\n", i, test.expected, encoded)
		}
	}
}

func Test_EncodeForm(t *testing.T) {
	expires := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)

	tests := []struct {
		params   *testParams
		expected string
	}{
		{
			&testParams{},
			"customer=",
		},
		{
			&testParams{Customer: "cus_123", Description: String("")},
			"customer=cus_123&description=",
		},
		{
			&testParams{Customer: "cus_123", Type: String("card")},
			"customer=cus_123&type=card",
		},
		{
			&testParams{Customer: "cus_123", Amount: Int64(2000), Capture: Bool(false), Currency: "GBP"},
			"customer=cus_123&amount=2000&capture=false&currency=gbp",
		},
		{
			&testParams{
				Customer: "cus_123",
				Items: []testItem{
					{ID: "si_1", Quantity: Int64(2)},
					{ID: "si_2"},
				},
			},
			"customer=cus_123&items[0][id]=si_1&items[0][quantity]=2&items[1][id]=si_2",
		},
		{
			&testParams{Customer: "cus_123", Items: []testItem{}},
			"customer=cus_123&items=",
		},
		{
			&testParams{Customer: "cus_123", Metadata: map[string]string{"k": "v", "a": "b"}},
			"customer=cus_123&metadata[a]=b&metadata[k]=v",
		},
		{
			&testParams{Customer: "cus_123", Metadata: map[string]string{}},
			"customer=cus_123&metadata=",
		},
		{
			&testParams{Customer: "cus_123", Metadata: map[string]string{"order id": "1&2"}},
			"customer=cus_123&metadata[order+id]=1%262",
		},
		{
			&testParams{Customer: "cus_123", Expires: &expires},
			"customer=cus_123&expires_at=1700000000",
		},
		{
			&testParams{Customer: "cus_123", Created: Between(1700000000, 1700100000)},
			"customer=cus_123&created[gte]=1700000000&created[lt]=1700100000",
		},
		{
			&testParams{Customer: "cus_123", Created: Exactly(1700000000)},
			"customer=cus_123&created=1700000000",
		},
		{
			&testParams{
				Customer: "cus_123",
				Flow: &testFlow{
					Kind: "subscription_cancel",
					Cancel: &struct {
						Subscription string `form:"subscription"`
					}{"sub_1"},
					Update: &struct {
						Subscription string `form:"subscription"`
					}{"sub_2"},
				},
			},
			"customer=cus_123&flow_data[subscription_cancel][subscription]=sub_1&flow_data[type]=subscription_cancel",
		},
		{
			&testParams{Customer: "cus_123", Ignored: "x", internal: "y"},
			"customer=cus_123",
		},
	}

	for i, test := range tests {
		encoded := EncodeForm(test.params).Encode()

		if encoded != test.expected {
			t.Errorf("tests[%d] - unexpected encoding, expected=%q, got=%q\n", i, test.expected, encoded)
		}
	}
}

func Test_EncodeFormAbsent(t *testing.T) {
	var metadata map[string]string

	tests := []interface{}{
		nil,
		(*testParams)(nil),
		Params{"metadata": metadata},
		struct {
			Metadata map[string]string `form:"metadata"`
		}{},
	}

	for i, test := range tests {
		if f := EncodeForm(test); f.Len() != 0 {
			t.Errorf("tests[%d] - expected empty form, got=%q\n", i, f.Encode())
		}
	}
}

func Test_Form(t *testing.T) {
	f := EncodeForm(Params{"limit": 2, "ending_before": "promo_Z"})

	f1 := f.Clone()
	f1.Del("ending_before")
	f1.Set("starting_after", "promo_B")

	if encoded := f.Encode(); encoded != "ending_before=promo_Z&limit=2" {
		t.Errorf("unexpected encoding of original form, got=%q\n", encoded)
	}

	if encoded := f1.Encode(); encoded != "limit=2&starting_after=promo_B" {
		t.Errorf("unexpected encoding of cloned form, got=%q\n", encoded)
	}

	if v, ok := f1.Get("starting_after"); !ok || v != "promo_B" {
		t.Errorf("expected starting_after=promo_B, got=%q\n", v)
	}

	nested := &Form{}
	AppendForm(nested, "scope", EncodeForm(Params{"type": "user", "user": "usr_1"}))

	if encoded := nested.Encode(); encoded != "scope[type]=user&scope[user]=usr_1" {
		t.Errorf("unexpected encoding of nested form, got=%q\n", encoded)
	}
}
