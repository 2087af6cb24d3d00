package core

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// ListDisputesParams are the parameters for listing Disputes.
type ListDisputesParams struct {
	stripeapi.ListParams

	Charge        *string               `form:"charge"`
	Created       *stripeapi.RangeQuery `form:"created"`
	PaymentIntent *string               `form:"payment_intent"`
}

type RetrieveDisputeParams struct {
	Expand []string `form:"expand"`
}

// DisputeEvidenceParams is the evidence to submit for a Dispute. The
// documentation fields take the ID of an uploaded File.
type DisputeEvidenceParams struct {
	AccessActivityLog            *string `form:"access_activity_log"`
	BillingAddress               *string `form:"billing_address"`
	CancellationPolicy           *string `form:"cancellation_policy"`
	CancellationPolicyDisclosure *string `form:"cancellation_policy_disclosure"`
	CancellationRebuttal         *string `form:"cancellation_rebuttal"`
	CustomerCommunication        *string `form:"customer_communication"`
	CustomerEmailAddress         *string `form:"customer_email_address"`
	CustomerName                 *string `form:"customer_name"`
	CustomerPurchaseIP           *string `form:"customer_purchase_ip"`
	CustomerSignature            *string `form:"customer_signature"`
	DuplicateChargeDocumentation *string `form:"duplicate_charge_documentation"`
	DuplicateChargeExplanation   *string `form:"duplicate_charge_explanation"`
	DuplicateChargeID            *string `form:"duplicate_charge_id"`
	ProductDescription           *string `form:"product_description"`
	Receipt                      *string `form:"receipt"`
	RefundPolicy                 *string `form:"refund_policy"`
	RefundPolicyDisclosure       *string `form:"refund_policy_disclosure"`
	RefundRefusalExplanation     *string `form:"refund_refusal_explanation"`
	ServiceDate                  *string `form:"service_date"`
	ServiceDocumentation         *string `form:"service_documentation"`
	ShippingAddress              *string `form:"shipping_address"`
	ShippingCarrier              *string `form:"shipping_carrier"`
	ShippingDate                 *string `form:"shipping_date"`
	ShippingDocumentation        *string `form:"shipping_documentation"`
	ShippingTrackingNumber       *string `form:"shipping_tracking_number"`
	UncategorizedFile            *string `form:"uncategorized_file"`
	UncategorizedText            *string `form:"uncategorized_text"`
}

// UpdateDisputeParams are the parameters for updating a Dispute.
type UpdateDisputeParams struct {
	Evidence *DisputeEvidenceParams `form:"evidence"`
	Expand   []string               `form:"expand"`
	Metadata stripeapi.Metadata     `form:"metadata"`
	Submit   *bool                  `form:"submit"`
}

type CloseDisputeParams struct {
	Expand []string `form:"expand"`
}

// ListDisputes lists the Disputes of the account.
type ListDisputes struct {
	stripeapi.Returns[stripeapi.List[*Dispute]]

	params ListDisputesParams
}

type RetrieveDispute struct {
	stripeapi.Returns[Dispute]

	id     DisputeID
	params RetrieveDisputeParams
}

// UpdateDispute updates the evidence of a Dispute. The evidence is staged
// until it is submitted, either by setting Submit, or once the Dispute is
// due.
type UpdateDispute struct {
	stripeapi.Returns[Dispute]

	id     DisputeID
	params UpdateDisputeParams
}

// CloseDispute closes a Dispute, accepting it as lost. This cannot be undone.
type CloseDispute struct {
	stripeapi.Returns[Dispute]

	id     DisputeID
	params CloseDisputeParams
}

var (
	_ stripeapi.Request[stripeapi.List[*Dispute]] = (*ListDisputes)(nil)
	_ stripeapi.Request[Dispute]                  = (*RetrieveDispute)(nil)
	_ stripeapi.Request[Dispute]                  = (*UpdateDispute)(nil)
	_ stripeapi.Request[Dispute]                  = (*CloseDispute)(nil)
)

func NewListDisputes() *ListDisputes {
	return &ListDisputes{}
}

// Charge filters the Disputes by the Charge they were raised for.
func (r *ListDisputes) Charge(id ChargeID) *ListDisputes {
	r.params.Charge = stripeapi.String(string(id))
	return r
}

func (r *ListDisputes) Created(q *stripeapi.RangeQuery) *ListDisputes {
	r.params.Created = q
	return r
}

func (r *ListDisputes) EndingBefore(id DisputeID) *ListDisputes {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListDisputes) Expand(fields ...string) *ListDisputes {
	r.params.Expand = fields
	return r
}

func (r *ListDisputes) Limit(n int64) *ListDisputes {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

// PaymentIntent filters the Disputes by the PaymentIntent they were raised
// for.
func (r *ListDisputes) PaymentIntent(id PaymentIntentID) *ListDisputes {
	r.params.PaymentIntent = stripeapi.String(string(id))
	return r
}

func (r *ListDisputes) StartingAfter(id DisputeID) *ListDisputes {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListDisputes) Params() *ListDisputesParams { return &r.params }

func (r *ListDisputes) Describe() stripeapi.Description {
	return stripeapi.Get("/disputes", &r.params)
}

func (r *ListDisputes) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*Dispute], error) {
	return stripeapi.Execute[stripeapi.List[*Dispute]](ctx, b, r, opts...)
}

func (r *ListDisputes) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*Dispute] {
	return stripeapi.Paginate[*Dispute](ctx, b, r.Describe(), opts...)
}

func NewRetrieveDispute(id DisputeID) *RetrieveDispute {
	return &RetrieveDispute{id: id}
}

func (r *RetrieveDispute) Expand(fields ...string) *RetrieveDispute {
	r.params.Expand = fields
	return r
}

func (r *RetrieveDispute) Describe() stripeapi.Description {
	return stripeapi.Get(stripeapi.FormatPath("/disputes/{}", string(r.id)), &r.params)
}

func (r *RetrieveDispute) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Dispute, error) {
	return stripeapi.Execute[Dispute](ctx, b, r, opts...)
}

func NewUpdateDispute(id DisputeID) *UpdateDispute {
	return &UpdateDispute{id: id}
}

func (r *UpdateDispute) Evidence(ev DisputeEvidenceParams) *UpdateDispute {
	r.params.Evidence = &ev
	return r
}

func (r *UpdateDispute) Expand(fields ...string) *UpdateDispute {
	r.params.Expand = fields
	return r
}

func (r *UpdateDispute) Metadata(m stripeapi.Metadata) *UpdateDispute {
	r.params.Metadata = m
	return r
}

// Submit sets whether the evidence is submitted to the issuer immediately.
func (r *UpdateDispute) Submit(submit bool) *UpdateDispute {
	r.params.Submit = stripeapi.Bool(submit)
	return r
}

func (r *UpdateDispute) Params() *UpdateDisputeParams { return &r.params }

func (r *UpdateDispute) Describe() stripeapi.Description {
	return stripeapi.Post(stripeapi.FormatPath("/disputes/{}", string(r.id)), &r.params)
}

func (r *UpdateDispute) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Dispute, error) {
	return stripeapi.Execute[Dispute](ctx, b, r, opts...)
}

func NewCloseDispute(id DisputeID) *CloseDispute {
	return &CloseDispute{id: id}
}

func (r *CloseDispute) Expand(fields ...string) *CloseDispute {
	r.params.Expand = fields
	return r
}

func (r *CloseDispute) Describe() stripeapi.Description {
	return stripeapi.Post(stripeapi.FormatPath("/disputes/{}/close", string(r.id)), &r.params)
}

func (r *CloseDispute) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Dispute, error) {
	return stripeapi.Execute[Dispute](ctx, b, r, opts...)
}
