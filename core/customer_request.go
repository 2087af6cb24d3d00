package core

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// TaxExemptParam is the tax exemption status given when creating, or
// updating a Customer.
type TaxExemptParam string

// CustomerParams are the parameters for creating, or updating a Customer.
type CustomerParams struct {
	Address          *stripeapi.AddressParams `form:"address"`
	Balance          *int64                   `form:"balance"`
	Description      *string                  `form:"description"`
	Email            *string                  `form:"email"`
	Expand           []string                 `form:"expand"`
	InvoicePrefix    *string                  `form:"invoice_prefix"`
	Metadata         stripeapi.Metadata       `form:"metadata"`
	Name             *string                  `form:"name"`
	PaymentMethod    *string                  `form:"payment_method"`
	Phone            *string                  `form:"phone"`
	PreferredLocales []string                 `form:"preferred_locales"`
	TaxExempt        *TaxExemptParam          `form:"tax_exempt"`
}

// ListCustomersParams are the parameters for listing Customers.
type ListCustomersParams struct {
	stripeapi.ListParams

	Created   *stripeapi.RangeQuery `form:"created"`
	Email     *string               `form:"email"`
	TestClock *string               `form:"test_clock"`
}

type RetrieveCustomerParams struct {
	Expand []string `form:"expand"`
}

// CreateCustomer creates a new Customer.
type CreateCustomer struct {
	stripeapi.Returns[Customer]

	params CustomerParams
}

// RetrieveCustomer retrieves a Customer, or its tombstone if it has been
// deleted.
type RetrieveCustomer struct {
	stripeapi.Returns[MaybeDeletedCustomer]

	id     CustomerID
	params RetrieveCustomerParams
}

// UpdateCustomer updates a Customer.
type UpdateCustomer struct {
	stripeapi.Returns[MaybeDeletedCustomer]

	id     CustomerID
	params CustomerParams
}

// DeleteCustomer permanently deletes a Customer, canceling any of its active
// subscriptions.
type DeleteCustomer struct {
	stripeapi.Returns[DeletedCustomer]

	id CustomerID
}

// ListCustomers lists the Customers of the account, sorted by creation date
// with the most recent first.
type ListCustomers struct {
	stripeapi.Returns[stripeapi.List[*Customer]]

	params ListCustomersParams
}

const (
	TaxExemptParamExempt  TaxExemptParam = "exempt"
	TaxExemptParamNone    TaxExemptParam = "none"
	TaxExemptParamReverse TaxExemptParam = "reverse"
)

var (
	taxExemptParams = stripeapi.NewEnumSet("customer.tax_exempt",
		TaxExemptParamExempt,
		TaxExemptParamNone,
		TaxExemptParamReverse,
	)

	_ stripeapi.Request[Customer]                  = (*CreateCustomer)(nil)
	_ stripeapi.Request[MaybeDeletedCustomer]      = (*RetrieveCustomer)(nil)
	_ stripeapi.Request[MaybeDeletedCustomer]      = (*UpdateCustomer)(nil)
	_ stripeapi.Request[DeletedCustomer]           = (*DeleteCustomer)(nil)
	_ stripeapi.Request[stripeapi.List[*Customer]] = (*ListCustomers)(nil)
)

func ParseTaxExemptParam(s string) (TaxExemptParam, error) { return taxExemptParams.Parse(s) }

func (t *TaxExemptParam) UnmarshalText(text []byte) error {
	return taxExemptParams.UnmarshalClosed(t, text)
}

func customerPath(id CustomerID) string {
	return stripeapi.FormatPath("/customers/{}", string(id))
}

// NewCreateCustomer returns the request to create a Customer. A Customer can
// be created without any parameters.
func NewCreateCustomer() *CreateCustomer {
	return &CreateCustomer{}
}

func (r *CreateCustomer) Address(addr stripeapi.AddressParams) *CreateCustomer {
	r.params.Address = &addr
	return r
}

func (r *CreateCustomer) Balance(n int64) *CreateCustomer {
	r.params.Balance = stripeapi.Int64(n)
	return r
}

func (r *CreateCustomer) Description(s string) *CreateCustomer {
	r.params.Description = stripeapi.String(s)
	return r
}

func (r *CreateCustomer) Email(s string) *CreateCustomer {
	r.params.Email = stripeapi.String(s)
	return r
}

func (r *CreateCustomer) Expand(fields ...string) *CreateCustomer {
	r.params.Expand = fields
	return r
}

func (r *CreateCustomer) Metadata(m stripeapi.Metadata) *CreateCustomer {
	r.params.Metadata = m
	return r
}

func (r *CreateCustomer) Name(s string) *CreateCustomer {
	r.params.Name = stripeapi.String(s)
	return r
}

// PaymentMethod sets the ID of the payment method to attach to the Customer.
func (r *CreateCustomer) PaymentMethod(id string) *CreateCustomer {
	r.params.PaymentMethod = stripeapi.String(id)
	return r
}

func (r *CreateCustomer) Phone(s string) *CreateCustomer {
	r.params.Phone = stripeapi.String(s)
	return r
}

func (r *CreateCustomer) PreferredLocales(locales ...string) *CreateCustomer {
	r.params.PreferredLocales = locales
	return r
}

func (r *CreateCustomer) TaxExempt(t TaxExemptParam) *CreateCustomer {
	r.params.TaxExempt = &t
	return r
}

func (r *CreateCustomer) Params() *CustomerParams { return &r.params }

func (r *CreateCustomer) Describe() stripeapi.Description {
	return stripeapi.Post("/customers", &r.params)
}

func (r *CreateCustomer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Customer, error) {
	return stripeapi.Execute[Customer](ctx, b, r, opts...)
}

func NewRetrieveCustomer(id CustomerID) *RetrieveCustomer {
	return &RetrieveCustomer{id: id}
}

func (r *RetrieveCustomer) Expand(fields ...string) *RetrieveCustomer {
	r.params.Expand = fields
	return r
}

func (r *RetrieveCustomer) Describe() stripeapi.Description {
	return stripeapi.Get(customerPath(r.id), &r.params)
}

func (r *RetrieveCustomer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*MaybeDeletedCustomer, error) {
	return stripeapi.Execute[MaybeDeletedCustomer](ctx, b, r, opts...)
}

// NewUpdateCustomer returns the request to update the Customer of the given
// ID. Parameters that are not set are left unchanged.
func NewUpdateCustomer(id CustomerID) *UpdateCustomer {
	return &UpdateCustomer{id: id}
}

func (r *UpdateCustomer) Address(addr stripeapi.AddressParams) *UpdateCustomer {
	r.params.Address = &addr
	return r
}

func (r *UpdateCustomer) Balance(n int64) *UpdateCustomer {
	r.params.Balance = stripeapi.Int64(n)
	return r
}

func (r *UpdateCustomer) Description(s string) *UpdateCustomer {
	r.params.Description = stripeapi.String(s)
	return r
}

func (r *UpdateCustomer) Email(s string) *UpdateCustomer {
	r.params.Email = stripeapi.String(s)
	return r
}

func (r *UpdateCustomer) Expand(fields ...string) *UpdateCustomer {
	r.params.Expand = fields
	return r
}

func (r *UpdateCustomer) InvoicePrefix(s string) *UpdateCustomer {
	r.params.InvoicePrefix = stripeapi.String(s)
	return r
}

func (r *UpdateCustomer) Metadata(m stripeapi.Metadata) *UpdateCustomer {
	r.params.Metadata = m
	return r
}

func (r *UpdateCustomer) Name(s string) *UpdateCustomer {
	r.params.Name = stripeapi.String(s)
	return r
}

func (r *UpdateCustomer) Phone(s string) *UpdateCustomer {
	r.params.Phone = stripeapi.String(s)
	return r
}

func (r *UpdateCustomer) PreferredLocales(locales ...string) *UpdateCustomer {
	r.params.PreferredLocales = locales
	return r
}

func (r *UpdateCustomer) TaxExempt(t TaxExemptParam) *UpdateCustomer {
	r.params.TaxExempt = &t
	return r
}

func (r *UpdateCustomer) Params() *CustomerParams { return &r.params }

func (r *UpdateCustomer) Describe() stripeapi.Description {
	return stripeapi.Post(customerPath(r.id), &r.params)
}

func (r *UpdateCustomer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*MaybeDeletedCustomer, error) {
	return stripeapi.Execute[MaybeDeletedCustomer](ctx, b, r, opts...)
}

func NewDeleteCustomer(id CustomerID) *DeleteCustomer {
	return &DeleteCustomer{id: id}
}

func (r *DeleteCustomer) Describe() stripeapi.Description {
	return stripeapi.Delete(customerPath(r.id))
}

func (r *DeleteCustomer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*DeletedCustomer, error) {
	return stripeapi.Execute[DeletedCustomer](ctx, b, r, opts...)
}

func NewListCustomers() *ListCustomers {
	return &ListCustomers{}
}

// Created filters the Customers by the time they were created.
func (r *ListCustomers) Created(q *stripeapi.RangeQuery) *ListCustomers {
	r.params.Created = q
	return r
}

// Email filters the Customers by their email address. This is case
// sensitive.
func (r *ListCustomers) Email(s string) *ListCustomers {
	r.params.Email = stripeapi.String(s)
	return r
}

func (r *ListCustomers) EndingBefore(id CustomerID) *ListCustomers {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListCustomers) Expand(fields ...string) *ListCustomers {
	r.params.Expand = fields
	return r
}

func (r *ListCustomers) Limit(n int64) *ListCustomers {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListCustomers) StartingAfter(id CustomerID) *ListCustomers {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListCustomers) TestClock(id string) *ListCustomers {
	r.params.TestClock = stripeapi.String(id)
	return r
}

func (r *ListCustomers) Params() *ListCustomersParams { return &r.params }

func (r *ListCustomers) Describe() stripeapi.Description {
	return stripeapi.Get("/customers", &r.params)
}

func (r *ListCustomers) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*Customer], error) {
	return stripeapi.Execute[stripeapi.List[*Customer]](ctx, b, r, opts...)
}

func (r *ListCustomers) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*Customer] {
	return stripeapi.Paginate[*Customer](ctx, b, r.Describe(), opts...)
}
