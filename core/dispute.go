package core

import (
	"github.com/andrewpillar/stripeapi"
)

type DisputeID string

// DisputeStatus is the status of a Dispute.
type DisputeStatus string

// Dispute occurs when a customer questions a Charge with their card issuer.
// Evidence can be submitted to the issuer to show that the Charge was
// legitimate.
type Dispute struct {
	Amount             int64                               `json:"amount"`
	Charge             stripeapi.Expandable[Charge]        `json:"charge"`
	Created            stripeapi.Timestamp                 `json:"created"`
	Currency           stripeapi.Currency                  `json:"currency"`
	Evidence           DisputeEvidence                     `json:"evidence"`
	EvidenceDetails    DisputeEvidenceDetails              `json:"evidence_details"`
	ID                 DisputeID                           `json:"id"`
	IsChargeRefundable bool                                `json:"is_charge_refundable"`
	Livemode           bool                                `json:"livemode"`
	Metadata           stripeapi.Metadata                  `json:"metadata"`
	NetworkReasonCode  *string                             `json:"network_reason_code"`
	PaymentIntent      stripeapi.Expandable[PaymentIntent] `json:"payment_intent"`
	Reason             string                              `json:"reason"`
	Status             DisputeStatus                       `json:"status"`
}

// DisputeEvidence is the evidence submitted for a Dispute. The documentation
// fields refer to uploaded Files.
type DisputeEvidence struct {
	AccessActivityLog            *string                    `json:"access_activity_log"`
	BillingAddress               *string                    `json:"billing_address"`
	CancellationPolicy           stripeapi.Expandable[File] `json:"cancellation_policy"`
	CancellationPolicyDisclosure *string                    `json:"cancellation_policy_disclosure"`
	CancellationRebuttal         *string                    `json:"cancellation_rebuttal"`
	CustomerCommunication        stripeapi.Expandable[File] `json:"customer_communication"`
	CustomerEmailAddress         *string                    `json:"customer_email_address"`
	CustomerName                 *string                    `json:"customer_name"`
	CustomerPurchaseIP           *string                    `json:"customer_purchase_ip"`
	CustomerSignature            stripeapi.Expandable[File] `json:"customer_signature"`
	DuplicateChargeDocumentation stripeapi.Expandable[File] `json:"duplicate_charge_documentation"`
	DuplicateChargeExplanation   *string                    `json:"duplicate_charge_explanation"`
	DuplicateChargeID            *string                    `json:"duplicate_charge_id"`
	ProductDescription           *string                    `json:"product_description"`
	Receipt                      stripeapi.Expandable[File] `json:"receipt"`
	RefundPolicy                 stripeapi.Expandable[File] `json:"refund_policy"`
	RefundPolicyDisclosure       *string                    `json:"refund_policy_disclosure"`
	RefundRefusalExplanation     *string                    `json:"refund_refusal_explanation"`
	ServiceDate                  *string                    `json:"service_date"`
	ServiceDocumentation         stripeapi.Expandable[File] `json:"service_documentation"`
	ShippingAddress              *string                    `json:"shipping_address"`
	ShippingCarrier              *string                    `json:"shipping_carrier"`
	ShippingDate                 *string                    `json:"shipping_date"`
	ShippingDocumentation        stripeapi.Expandable[File] `json:"shipping_documentation"`
	ShippingTrackingNumber       *string                    `json:"shipping_tracking_number"`
	UncategorizedFile            stripeapi.Expandable[File] `json:"uncategorized_file"`
	UncategorizedText            *string                    `json:"uncategorized_text"`
}

// DisputeEvidenceDetails describes when evidence is due for a Dispute, and
// how many times it has been submitted.
type DisputeEvidenceDetails struct {
	DueBy           *stripeapi.Timestamp `json:"due_by"`
	HasEvidence     bool                 `json:"has_evidence"`
	PastDue         bool                 `json:"past_due"`
	SubmissionCount int64                `json:"submission_count"`
}

const (
	DisputeStatusLost                 DisputeStatus = "lost"
	DisputeStatusNeedsResponse        DisputeStatus = "needs_response"
	DisputeStatusPrevented            DisputeStatus = "prevented"
	DisputeStatusUnderReview          DisputeStatus = "under_review"
	DisputeStatusWarningClosed        DisputeStatus = "warning_closed"
	DisputeStatusWarningNeedsResponse DisputeStatus = "warning_needs_response"
	DisputeStatusWarningUnderReview   DisputeStatus = "warning_under_review"
	DisputeStatusWon                  DisputeStatus = "won"
)

var (
	disputeStatuses = stripeapi.NewEnumSet("dispute.status",
		DisputeStatusLost,
		DisputeStatusNeedsResponse,
		DisputeStatusPrevented,
		DisputeStatusUnderReview,
		DisputeStatusWarningClosed,
		DisputeStatusWarningNeedsResponse,
		DisputeStatusWarningUnderReview,
		DisputeStatusWon,
	)

	_ stripeapi.Object = (*Dispute)(nil)
)

func (id DisputeID) String() string { return string(id) }

func (s DisputeStatus) Known() bool { return disputeStatuses.Known(s) }

// Closed reports whether the Dispute can no longer be responded to.
func (s DisputeStatus) Closed() bool {
	switch s {
	case DisputeStatusLost, DisputeStatusWon, DisputeStatusWarningClosed, DisputeStatusPrevented:
		return true
	}
	return false
}

func (s *DisputeStatus) UnmarshalText(text []byte) error {
	return disputeStatuses.UnmarshalOpen(s, text)
}

func (d *Dispute) GetID() string { return string(d.ID) }

func (*Dispute) ObjectName() string { return "dispute" }

func (d *Dispute) UnmarshalJSON(data []byte) error {
	var d1 Dispute

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("amount", &d1.Amount),
		stripeapi.Required("charge", &d1.Charge),
		stripeapi.Required("created", &d1.Created),
		stripeapi.Required("currency", &d1.Currency),
		stripeapi.Optional("evidence", &d1.Evidence),
		stripeapi.Optional("evidence_details", &d1.EvidenceDetails),
		stripeapi.Required("id", &d1.ID),
		stripeapi.Optional("is_charge_refundable", &d1.IsChargeRefundable),
		stripeapi.Required("livemode", &d1.Livemode),
		stripeapi.Optional("metadata", &d1.Metadata),
		stripeapi.Optional("network_reason_code", &d1.NetworkReasonCode),
		stripeapi.Optional("payment_intent", &d1.PaymentIntent),
		stripeapi.Required("reason", &d1.Reason),
		stripeapi.Required("status", &d1.Status),
	)

	if err != nil {
		return err
	}
	(*d) = d1
	return nil
}

func (d Dispute) MarshalJSON() ([]byte, error) {
	type dispute Dispute
	return stripeapi.MarshalObject(d.ObjectName(), dispute(d))
}
