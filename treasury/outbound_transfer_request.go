package treasury

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// Network is the network an OutboundTransfer to a US bank account is sent
// over.
type Network string

// CreateOutboundTransferParams are the parameters for creating an
// OutboundTransfer.
type CreateOutboundTransferParams struct {
	Amount                          int64                      `form:"amount"`
	Currency                        stripeapi.Currency         `form:"currency"`
	Description                     *string                    `form:"description"`
	DestinationPaymentMethod        *string                    `form:"destination_payment_method"`
	DestinationPaymentMethodOptions *PaymentMethodOptionParams `form:"destination_payment_method_options"`
	Expand                          []string                   `form:"expand"`
	FinancialAccount                string                     `form:"financial_account"`
	Metadata                        stripeapi.Metadata         `form:"metadata"`
	StatementDescriptor             *string                    `form:"statement_descriptor"`
}

type PaymentMethodOptionParams struct {
	USBankAccount *USBankAccountParams `form:"us_bank_account"`
}

type USBankAccountParams struct {
	Network *Network `form:"network"`
}

// ListOutboundTransfersParams are the parameters for listing the
// OutboundTransfers of a financial account.
type ListOutboundTransfersParams struct {
	stripeapi.ListParams

	FinancialAccount string  `form:"financial_account"`
	Status           *Status `form:"status"`
}

type RetrieveOutboundTransferParams struct {
	Expand []string `form:"expand"`
}

type CreateOutboundTransfer struct {
	stripeapi.Returns[OutboundTransfer]

	params CreateOutboundTransferParams
}

type ListOutboundTransfers struct {
	stripeapi.Returns[stripeapi.List[*OutboundTransfer]]

	params ListOutboundTransfersParams
}

type RetrieveOutboundTransfer struct {
	stripeapi.Returns[OutboundTransfer]

	id     OutboundTransferID
	params RetrieveOutboundTransferParams
}

// CancelOutboundTransfer cancels an OutboundTransfer. Only an OutboundTransfer
// that is Cancelable can be canceled.
type CancelOutboundTransfer struct {
	stripeapi.Returns[OutboundTransfer]

	id     OutboundTransferID
	params RetrieveOutboundTransferParams
}

const (
	NetworkACH            Network = "ach"
	NetworkUSDomesticWire Network = "us_domestic_wire"
)

var (
	networks = stripeapi.NewEnumSet("us_bank_account.network", NetworkACH, NetworkUSDomesticWire)

	_ stripeapi.Request[OutboundTransfer]                  = (*CreateOutboundTransfer)(nil)
	_ stripeapi.Request[stripeapi.List[*OutboundTransfer]] = (*ListOutboundTransfers)(nil)
	_ stripeapi.Request[OutboundTransfer]                  = (*RetrieveOutboundTransfer)(nil)
	_ stripeapi.Request[OutboundTransfer]                  = (*CancelOutboundTransfer)(nil)
)

func ParseNetwork(s string) (Network, error) { return networks.Parse(s) }

func (n *Network) UnmarshalText(text []byte) error { return networks.UnmarshalClosed(n, text) }

func outboundTransferPath(id OutboundTransferID) string {
	return stripeapi.FormatPath("/treasury/outbound_transfers/{}", string(id))
}

// NewCreateOutboundTransfer returns the request to send the given amount out
// of the given financial account.
func NewCreateOutboundTransfer(financialAccount string, amount int64, currency stripeapi.Currency) *CreateOutboundTransfer {
	return &CreateOutboundTransfer{
		params: CreateOutboundTransferParams{
			Amount:           amount,
			Currency:         currency,
			FinancialAccount: financialAccount,
		},
	}
}

func (r *CreateOutboundTransfer) Description(s string) *CreateOutboundTransfer {
	r.params.Description = stripeapi.String(s)
	return r
}

// Destination sets the payment method the money is sent to. If the payment
// method is a US bank account then the given network is used, if not empty.
func (r *CreateOutboundTransfer) Destination(paymentMethod string, network Network) *CreateOutboundTransfer {
	r.params.DestinationPaymentMethod = stripeapi.String(paymentMethod)

	if network != "" {
		r.params.DestinationPaymentMethodOptions = &PaymentMethodOptionParams{
			USBankAccount: &USBankAccountParams{
				Network: &network,
			},
		}
	}
	return r
}

func (r *CreateOutboundTransfer) Expand(fields ...string) *CreateOutboundTransfer {
	r.params.Expand = fields
	return r
}

func (r *CreateOutboundTransfer) Metadata(m stripeapi.Metadata) *CreateOutboundTransfer {
	r.params.Metadata = m
	return r
}

func (r *CreateOutboundTransfer) StatementDescriptor(s string) *CreateOutboundTransfer {
	r.params.StatementDescriptor = stripeapi.String(s)
	return r
}

func (r *CreateOutboundTransfer) Params() *CreateOutboundTransferParams { return &r.params }

func (r *CreateOutboundTransfer) Describe() stripeapi.Description {
	return stripeapi.Post("/treasury/outbound_transfers", &r.params)
}

func (r *CreateOutboundTransfer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*OutboundTransfer, error) {
	return stripeapi.Execute[OutboundTransfer](ctx, b, r, opts...)
}

// NewListOutboundTransfers returns the request to list the OutboundTransfers
// of the given financial account.
func NewListOutboundTransfers(financialAccount string) *ListOutboundTransfers {
	return &ListOutboundTransfers{
		params: ListOutboundTransfersParams{
			FinancialAccount: financialAccount,
		},
	}
}

func (r *ListOutboundTransfers) EndingBefore(id OutboundTransferID) *ListOutboundTransfers {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListOutboundTransfers) Expand(fields ...string) *ListOutboundTransfers {
	r.params.Expand = fields
	return r
}

func (r *ListOutboundTransfers) Limit(n int64) *ListOutboundTransfers {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListOutboundTransfers) StartingAfter(id OutboundTransferID) *ListOutboundTransfers {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListOutboundTransfers) Status(s Status) *ListOutboundTransfers {
	r.params.Status = &s
	return r
}

func (r *ListOutboundTransfers) Params() *ListOutboundTransfersParams { return &r.params }

func (r *ListOutboundTransfers) Describe() stripeapi.Description {
	return stripeapi.Get("/treasury/outbound_transfers", &r.params)
}

func (r *ListOutboundTransfers) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*OutboundTransfer], error) {
	return stripeapi.Execute[stripeapi.List[*OutboundTransfer]](ctx, b, r, opts...)
}

func (r *ListOutboundTransfers) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*OutboundTransfer] {
	return stripeapi.Paginate[*OutboundTransfer](ctx, b, r.Describe(), opts...)
}

func NewRetrieveOutboundTransfer(id OutboundTransferID) *RetrieveOutboundTransfer {
	return &RetrieveOutboundTransfer{id: id}
}

func (r *RetrieveOutboundTransfer) Expand(fields ...string) *RetrieveOutboundTransfer {
	r.params.Expand = fields
	return r
}

func (r *RetrieveOutboundTransfer) Describe() stripeapi.Description {
	return stripeapi.Get(outboundTransferPath(r.id), &r.params)
}

func (r *RetrieveOutboundTransfer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*OutboundTransfer, error) {
	return stripeapi.Execute[OutboundTransfer](ctx, b, r, opts...)
}

func NewCancelOutboundTransfer(id OutboundTransferID) *CancelOutboundTransfer {
	return &CancelOutboundTransfer{id: id}
}

func (r *CancelOutboundTransfer) Expand(fields ...string) *CancelOutboundTransfer {
	r.params.Expand = fields
	return r
}

func (r *CancelOutboundTransfer) Describe() stripeapi.Description {
	return stripeapi.Post(outboundTransferPath(r.id)+"/cancel", &r.params)
}

func (r *CancelOutboundTransfer) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*OutboundTransfer, error) {
	return stripeapi.Execute[OutboundTransfer](ctx, b, r, opts...)
}
