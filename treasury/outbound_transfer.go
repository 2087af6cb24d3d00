// Package treasury provides the Treasury resources of the Stripe API, for
// moving money in and out of financial accounts.
package treasury

import (
	"github.com/andrewpillar/stripeapi"
)

type OutboundTransferID string

// Status is the status of an OutboundTransfer. This is used both when
// receiving an OutboundTransfer, and when filtering OutboundTransfers by
// status, so unknown statuses are kept rather than rejected.
type Status string

// OutboundTransfer moves money from a financial account to a bank account
// or debit card belonging to the same entity.
type OutboundTransfer struct {
	Amount                     int64                             `json:"amount"`
	Cancelable                 bool                              `json:"cancelable"`
	Created                    stripeapi.Timestamp               `json:"created"`
	Currency                   stripeapi.Currency                `json:"currency"`
	Description                *string                           `json:"description"`
	DestinationPaymentMethod   *string                           `json:"destination_payment_method"`
	ExpectedArrivalDate        stripeapi.Timestamp               `json:"expected_arrival_date"`
	FinancialAccount           string                            `json:"financial_account"`
	HostedRegulatoryReceiptURL *string                           `json:"hosted_regulatory_receipt_url"`
	ID                         OutboundTransferID                `json:"id"`
	Livemode                   bool                              `json:"livemode"`
	Metadata                   stripeapi.Metadata                `json:"metadata"`
	ReturnedDetails            *ReturnedDetails                  `json:"returned_details"`
	StatementDescriptor        string                            `json:"statement_descriptor"`
	Status                     Status                            `json:"status"`
	StatusTransitions          StatusTransitions                 `json:"status_transitions"`
	Transaction                stripeapi.Expandable[Transaction] `json:"transaction"`
}

// ReturnedDetails describes why an OutboundTransfer was returned.
type ReturnedDetails struct {
	Code        string                            `json:"code"`
	Transaction stripeapi.Expandable[Transaction] `json:"transaction"`
}

// StatusTransitions are the times an OutboundTransfer transitioned into each
// status.
type StatusTransitions struct {
	CanceledAt *stripeapi.Timestamp `json:"canceled_at"`
	FailedAt   *stripeapi.Timestamp `json:"failed_at"`
	PostedAt   *stripeapi.Timestamp `json:"posted_at"`
	ReturnedAt *stripeapi.Timestamp `json:"returned_at"`
}

// Transaction is a movement of money in a financial account. Only the ID and
// amounts of a Transaction are decoded.
type Transaction struct {
	Amount           int64              `json:"amount"`
	Currency         stripeapi.Currency `json:"currency"`
	FinancialAccount string             `json:"financial_account"`
	ID               string             `json:"id"`
	Status           string             `json:"status"`
}

const (
	StatusCanceled   Status = "canceled"
	StatusFailed     Status = "failed"
	StatusPosted     Status = "posted"
	StatusProcessing Status = "processing"
	StatusReturned   Status = "returned"
)

var (
	statuses = stripeapi.NewEnumSet("treasury.outbound_transfer.status",
		StatusCanceled,
		StatusFailed,
		StatusPosted,
		StatusProcessing,
		StatusReturned,
	)

	_ stripeapi.Object = (*OutboundTransfer)(nil)
)

func (id OutboundTransferID) String() string { return string(id) }

func (s Status) Known() bool { return statuses.Known(s) }

func (s *Status) UnmarshalText(text []byte) error { return statuses.UnmarshalOpen(s, text) }

func (t *OutboundTransfer) GetID() string { return string(t.ID) }

func (*OutboundTransfer) ObjectName() string { return "treasury.outbound_transfer" }

func (t *OutboundTransfer) UnmarshalJSON(data []byte) error {
	var t1 OutboundTransfer

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("amount", &t1.Amount),
		stripeapi.Required("cancelable", &t1.Cancelable),
		stripeapi.Required("created", &t1.Created),
		stripeapi.Required("currency", &t1.Currency),
		stripeapi.Optional("description", &t1.Description),
		stripeapi.Optional("destination_payment_method", &t1.DestinationPaymentMethod),
		stripeapi.Optional("expected_arrival_date", &t1.ExpectedArrivalDate),
		stripeapi.Required("financial_account", &t1.FinancialAccount),
		stripeapi.Optional("hosted_regulatory_receipt_url", &t1.HostedRegulatoryReceiptURL),
		stripeapi.Required("id", &t1.ID),
		stripeapi.Required("livemode", &t1.Livemode),
		stripeapi.Optional("metadata", &t1.Metadata),
		stripeapi.Optional("returned_details", &t1.ReturnedDetails),
		stripeapi.Optional("statement_descriptor", &t1.StatementDescriptor),
		stripeapi.Required("status", &t1.Status),
		stripeapi.Optional("status_transitions", &t1.StatusTransitions),
		stripeapi.Optional("transaction", &t1.Transaction),
	)

	if err != nil {
		return err
	}
	(*t) = t1
	return nil
}

func (t OutboundTransfer) MarshalJSON() ([]byte, error) {
	type outboundTransfer OutboundTransfer
	return stripeapi.MarshalObject(t.ObjectName(), outboundTransfer(t))
}
