package core

import (
	"github.com/andrewpillar/stripeapi"
)

type ChargeID string

type PaymentIntentID string

type FileID string

// ChargeStatus is the status of a Charge.
type ChargeStatus string

// PaymentIntentStatus is the status of a PaymentIntent.
type PaymentIntentStatus string

// Charge is a single attempt to move money into the Stripe account. Only the
// commonly used fields of a Charge are decoded.
type Charge struct {
	Amount         int64                               `json:"amount"`
	AmountCaptured int64                               `json:"amount_captured"`
	AmountRefunded int64                               `json:"amount_refunded"`
	Captured       bool                                `json:"captured"`
	Created        stripeapi.Timestamp                 `json:"created"`
	Currency       stripeapi.Currency                  `json:"currency"`
	Customer       stripeapi.Expandable[Customer]      `json:"customer"`
	Description    *string                             `json:"description"`
	Disputed       bool                                `json:"disputed"`
	ID             ChargeID                            `json:"id"`
	Livemode       bool                                `json:"livemode"`
	Metadata       stripeapi.Metadata                  `json:"metadata"`
	Paid           bool                                `json:"paid"`
	PaymentIntent  stripeapi.Expandable[PaymentIntent] `json:"payment_intent"`
	Refunded       bool                                `json:"refunded"`
	Status         ChargeStatus                        `json:"status"`
}

// PaymentIntent guides the process of collecting a payment from a customer.
// Only the commonly used fields of a PaymentIntent are decoded.
type PaymentIntent struct {
	Amount         int64                          `json:"amount"`
	AmountReceived int64                          `json:"amount_received"`
	Created        stripeapi.Timestamp            `json:"created"`
	Currency       stripeapi.Currency             `json:"currency"`
	Customer       stripeapi.Expandable[Customer] `json:"customer"`
	Description    *string                        `json:"description"`
	ID             PaymentIntentID                `json:"id"`
	LatestCharge   stripeapi.Expandable[Charge]   `json:"latest_charge"`
	Livemode       bool                           `json:"livemode"`
	Metadata       stripeapi.Metadata             `json:"metadata"`
	Status         PaymentIntentStatus            `json:"status"`
}

// File is a file uploaded to Stripe, such as the evidence for a Dispute.
type File struct {
	Created  stripeapi.Timestamp `json:"created"`
	Filename *string             `json:"filename"`
	ID       FileID              `json:"id"`
	Purpose  string              `json:"purpose"`
	Size     int64               `json:"size"`
	Type     *string             `json:"type"`
	URL      *string             `json:"url"`
}

const (
	ChargeStatusFailed    ChargeStatus = "failed"
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusSucceeded ChargeStatus = "succeeded"

	PaymentIntentStatusCanceled              PaymentIntentStatus = "canceled"
	PaymentIntentStatusProcessing            PaymentIntentStatus = "processing"
	PaymentIntentStatusRequiresAction        PaymentIntentStatus = "requires_action"
	PaymentIntentStatusRequiresCapture       PaymentIntentStatus = "requires_capture"
	PaymentIntentStatusRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	PaymentIntentStatusRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	PaymentIntentStatusSucceeded             PaymentIntentStatus = "succeeded"
)

var (
	chargeStatuses = stripeapi.NewEnumSet("charge.status",
		ChargeStatusFailed,
		ChargeStatusPending,
		ChargeStatusSucceeded,
	)

	paymentIntentStatuses = stripeapi.NewEnumSet("payment_intent.status",
		PaymentIntentStatusCanceled,
		PaymentIntentStatusProcessing,
		PaymentIntentStatusRequiresAction,
		PaymentIntentStatusRequiresCapture,
		PaymentIntentStatusRequiresConfirmation,
		PaymentIntentStatusRequiresPaymentMethod,
		PaymentIntentStatusSucceeded,
	)

	_ stripeapi.Object = (*Charge)(nil)
	_ stripeapi.Object = (*PaymentIntent)(nil)
	_ stripeapi.Object = (*File)(nil)
)

func (id ChargeID) String() string { return string(id) }

func (id PaymentIntentID) String() string { return string(id) }

func (id FileID) String() string { return string(id) }

func (s ChargeStatus) Known() bool { return chargeStatuses.Known(s) }

func (s *ChargeStatus) UnmarshalText(text []byte) error { return chargeStatuses.UnmarshalOpen(s, text) }

func (s PaymentIntentStatus) Known() bool { return paymentIntentStatuses.Known(s) }

func (s *PaymentIntentStatus) UnmarshalText(text []byte) error {
	return paymentIntentStatuses.UnmarshalOpen(s, text)
}

func (c *Charge) GetID() string { return string(c.ID) }

func (*Charge) ObjectName() string { return "charge" }

func (c *Charge) UnmarshalJSON(data []byte) error {
	var c1 Charge

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("amount", &c1.Amount),
		stripeapi.Optional("amount_captured", &c1.AmountCaptured),
		stripeapi.Optional("amount_refunded", &c1.AmountRefunded),
		stripeapi.Optional("captured", &c1.Captured),
		stripeapi.Required("created", &c1.Created),
		stripeapi.Required("currency", &c1.Currency),
		stripeapi.Optional("customer", &c1.Customer),
		stripeapi.Optional("description", &c1.Description),
		stripeapi.Optional("disputed", &c1.Disputed),
		stripeapi.Required("id", &c1.ID),
		stripeapi.Required("livemode", &c1.Livemode),
		stripeapi.Optional("metadata", &c1.Metadata),
		stripeapi.Optional("paid", &c1.Paid),
		stripeapi.Optional("payment_intent", &c1.PaymentIntent),
		stripeapi.Optional("refunded", &c1.Refunded),
		stripeapi.Required("status", &c1.Status),
	)

	if err != nil {
		return err
	}
	(*c) = c1
	return nil
}

func (c Charge) MarshalJSON() ([]byte, error) {
	type charge Charge
	return stripeapi.MarshalObject(c.ObjectName(), charge(c))
}

func (pi *PaymentIntent) GetID() string { return string(pi.ID) }

func (*PaymentIntent) ObjectName() string { return "payment_intent" }

func (pi *PaymentIntent) UnmarshalJSON(data []byte) error {
	var pi1 PaymentIntent

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("amount", &pi1.Amount),
		stripeapi.Optional("amount_received", &pi1.AmountReceived),
		stripeapi.Required("created", &pi1.Created),
		stripeapi.Required("currency", &pi1.Currency),
		stripeapi.Optional("customer", &pi1.Customer),
		stripeapi.Optional("description", &pi1.Description),
		stripeapi.Required("id", &pi1.ID),
		stripeapi.Optional("latest_charge", &pi1.LatestCharge),
		stripeapi.Required("livemode", &pi1.Livemode),
		stripeapi.Optional("metadata", &pi1.Metadata),
		stripeapi.Required("status", &pi1.Status),
	)

	if err != nil {
		return err
	}
	(*pi) = pi1
	return nil
}

func (pi PaymentIntent) MarshalJSON() ([]byte, error) {
	type paymentIntent PaymentIntent
	return stripeapi.MarshalObject(pi.ObjectName(), paymentIntent(pi))
}

func (f *File) GetID() string { return string(f.ID) }

func (*File) ObjectName() string { return "file" }

func (f *File) UnmarshalJSON(data []byte) error {
	var f1 File

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("created", &f1.Created),
		stripeapi.Optional("filename", &f1.Filename),
		stripeapi.Required("id", &f1.ID),
		stripeapi.Required("purpose", &f1.Purpose),
		stripeapi.Required("size", &f1.Size),
		stripeapi.Optional("type", &f1.Type),
		stripeapi.Optional("url", &f1.URL),
	)

	if err != nil {
		return err
	}
	(*f) = f1
	return nil
}

func (f File) MarshalJSON() ([]byte, error) {
	type file File
	return stripeapi.MarshalObject(f.ObjectName(), file(f))
}
