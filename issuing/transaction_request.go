package issuing

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// ListTransactionsParams are the parameters for listing Transactions.
type ListTransactionsParams struct {
	stripeapi.ListParams

	Card       *string               `form:"card"`
	Cardholder *string               `form:"cardholder"`
	Created    *stripeapi.RangeQuery `form:"created"`
	Type       *TransactionType      `form:"type"`
}

type RetrieveTransactionParams struct {
	Expand []string `form:"expand"`
}

type UpdateTransactionParams struct {
	Expand   []string           `form:"expand"`
	Metadata stripeapi.Metadata `form:"metadata"`
}

type ListTransactions struct {
	stripeapi.Returns[stripeapi.List[*Transaction]]

	params ListTransactionsParams
}

type RetrieveTransaction struct {
	stripeapi.Returns[Transaction]

	id     TransactionID
	params RetrieveTransactionParams
}

// UpdateTransaction updates the metadata of a Transaction. Metadata is the
// only field of a Transaction that can be changed.
type UpdateTransaction struct {
	stripeapi.Returns[Transaction]

	id     TransactionID
	params UpdateTransactionParams
}

var (
	_ stripeapi.Request[stripeapi.List[*Transaction]] = (*ListTransactions)(nil)
	_ stripeapi.Request[Transaction]                  = (*RetrieveTransaction)(nil)
	_ stripeapi.Request[Transaction]                  = (*UpdateTransaction)(nil)
)

func transactionPath(id TransactionID) string {
	return stripeapi.FormatPath("/issuing/transactions/{}", string(id))
}

func NewListTransactions() *ListTransactions { return &ListTransactions{} }

func (r *ListTransactions) Card(id string) *ListTransactions {
	r.params.Card = stripeapi.String(id)
	return r
}

func (r *ListTransactions) Cardholder(id string) *ListTransactions {
	r.params.Cardholder = stripeapi.String(id)
	return r
}

func (r *ListTransactions) Created(q *stripeapi.RangeQuery) *ListTransactions {
	r.params.Created = q
	return r
}

func (r *ListTransactions) EndingBefore(id TransactionID) *ListTransactions {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListTransactions) Expand(fields ...string) *ListTransactions {
	r.params.Expand = fields
	return r
}

func (r *ListTransactions) Limit(n int64) *ListTransactions {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListTransactions) StartingAfter(id TransactionID) *ListTransactions {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListTransactions) Type(t TransactionType) *ListTransactions {
	r.params.Type = &t
	return r
}

func (r *ListTransactions) Params() *ListTransactionsParams { return &r.params }

func (r *ListTransactions) Describe() stripeapi.Description {
	return stripeapi.Get("/issuing/transactions", &r.params)
}

func (r *ListTransactions) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*Transaction], error) {
	return stripeapi.Execute[stripeapi.List[*Transaction]](ctx, b, r, opts...)
}

func (r *ListTransactions) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*Transaction] {
	return stripeapi.Paginate[*Transaction](ctx, b, r.Describe(), opts...)
}

func NewRetrieveTransaction(id TransactionID) *RetrieveTransaction {
	return &RetrieveTransaction{id: id}
}

func (r *RetrieveTransaction) Expand(fields ...string) *RetrieveTransaction {
	r.params.Expand = fields
	return r
}

func (r *RetrieveTransaction) Describe() stripeapi.Description {
	return stripeapi.Get(transactionPath(r.id), &r.params)
}

func (r *RetrieveTransaction) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Transaction, error) {
	return stripeapi.Execute[Transaction](ctx, b, r, opts...)
}

func NewUpdateTransaction(id TransactionID, m stripeapi.Metadata) *UpdateTransaction {
	return &UpdateTransaction{
		id: id,
		params: UpdateTransactionParams{
			Metadata: m,
		},
	}
}

func (r *UpdateTransaction) Expand(fields ...string) *UpdateTransaction {
	r.params.Expand = fields
	return r
}

func (r *UpdateTransaction) Params() *UpdateTransactionParams { return &r.params }

func (r *UpdateTransaction) Describe() stripeapi.Description {
	return stripeapi.Post(transactionPath(r.id), &r.params)
}

func (r *UpdateTransaction) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Transaction, error) {
	return stripeapi.Execute[Transaction](ctx, b, r, opts...)
}
