// Package core provides the core resources of the Stripe API, such as
// customers, charges, and disputes.
package core

import (
	"github.com/andrewpillar/stripeapi"
)

type CustomerID string

// TaxExempt is the tax exemption status of a Customer.
type TaxExempt string

// Customer is the Customer resource from Stripe. Customers are used to track
// the payments, and subscriptions made by the same person or business.
type Customer struct {
	Address          *stripeapi.Address  `json:"address"`
	Balance          int64               `json:"balance"`
	Created          stripeapi.Timestamp `json:"created"`
	Currency         *stripeapi.Currency `json:"currency"`
	Delinquent       *bool               `json:"delinquent"`
	Description      *string             `json:"description"`
	Email            *string             `json:"email"`
	ID               CustomerID          `json:"id"`
	InvoicePrefix    *string             `json:"invoice_prefix"`
	Livemode         bool                `json:"livemode"`
	Metadata         stripeapi.Metadata  `json:"metadata"`
	Name             *string             `json:"name"`
	Phone            *string             `json:"phone"`
	PreferredLocales []string            `json:"preferred_locales"`
	TaxExempt        *TaxExempt          `json:"tax_exempt"`
}

// DeletedCustomer is the tombstone of a deleted Customer.
type DeletedCustomer struct {
	ID      CustomerID `json:"id"`
	Deleted bool       `json:"deleted"`
}

// MaybeDeletedCustomer is either a Customer, or the tombstone of a Customer.
type MaybeDeletedCustomer = stripeapi.MaybeDeleted[Customer, DeletedCustomer]

const (
	TaxExemptExempt  TaxExempt = "exempt"
	TaxExemptNone    TaxExempt = "none"
	TaxExemptReverse TaxExempt = "reverse"
)

var (
	taxExempts = stripeapi.NewEnumSet("customer.tax_exempt",
		TaxExemptExempt,
		TaxExemptNone,
		TaxExemptReverse,
	)

	_ stripeapi.Object = (*Customer)(nil)
	_ stripeapi.Object = (*DeletedCustomer)(nil)
)

func (id CustomerID) String() string { return string(id) }

func (t TaxExempt) Known() bool { return taxExempts.Known(t) }

func (t *TaxExempt) UnmarshalText(text []byte) error { return taxExempts.UnmarshalOpen(t, text) }

func (c *Customer) GetID() string { return string(c.ID) }

func (*Customer) ObjectName() string { return "customer" }

func (c *Customer) UnmarshalJSON(data []byte) error {
	var c1 Customer

	err := stripeapi.DecodeObject(data,
		stripeapi.Optional("address", &c1.Address),
		stripeapi.Optional("balance", &c1.Balance),
		stripeapi.Required("created", &c1.Created),
		stripeapi.Optional("currency", &c1.Currency),
		stripeapi.Optional("delinquent", &c1.Delinquent),
		stripeapi.Optional("description", &c1.Description),
		stripeapi.Optional("email", &c1.Email),
		stripeapi.Required("id", &c1.ID),
		stripeapi.Optional("invoice_prefix", &c1.InvoicePrefix),
		stripeapi.Required("livemode", &c1.Livemode),
		stripeapi.Optional("metadata", &c1.Metadata),
		stripeapi.Optional("name", &c1.Name),
		stripeapi.Optional("phone", &c1.Phone),
		stripeapi.Optional("preferred_locales", &c1.PreferredLocales),
		stripeapi.Optional("tax_exempt", &c1.TaxExempt),
	)

	if err != nil {
		return err
	}
	(*c) = c1
	return nil
}

func (c Customer) MarshalJSON() ([]byte, error) {
	type customer Customer
	return stripeapi.MarshalObject(c.ObjectName(), customer(c))
}

func (c *DeletedCustomer) GetID() string { return string(c.ID) }

func (*DeletedCustomer) ObjectName() string { return "customer" }

func (c *DeletedCustomer) UnmarshalJSON(data []byte) error {
	var c1 DeletedCustomer

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("deleted", &c1.Deleted),
		stripeapi.Required("id", &c1.ID),
	)

	if err != nil {
		return err
	}
	(*c) = c1
	return nil
}

func (c DeletedCustomer) MarshalJSON() ([]byte, error) {
	type deletedCustomer DeletedCustomer
	return stripeapi.MarshalObject(c.ObjectName(), deletedCustomer(c))
}
