package product

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// PromotionParamsType is the type of promotion given when creating a
// PromotionCode.
type PromotionParamsType string

// ListPromotionCodesParams are the parameters for listing PromotionCodes.
type ListPromotionCodesParams struct {
	Active   *bool                 `form:"active"`
	Code     *string               `form:"code"`
	Coupon   *string               `form:"coupon"`
	Created  *stripeapi.RangeQuery `form:"created"`
	Customer *string               `form:"customer"`

	stripeapi.ListParams
}

type RetrievePromotionCodeParams struct {
	Expand []string `form:"expand"`
}

// PromotionParams is the promotion a PromotionCode applies.
type PromotionParams struct {
	Coupon *string             `form:"coupon"`
	Type   PromotionParamsType `form:"type"`
}

type CurrencyOptionParams struct {
	MinimumAmount *int64 `form:"minimum_amount"`
}

// RestrictionsParams are the restrictions placed on the redemption of a
// PromotionCode.
type RestrictionsParams struct {
	CurrencyOptions       map[stripeapi.Currency]CurrencyOptionParams `form:"currency_options"`
	FirstTimeTransaction  *bool                                       `form:"first_time_transaction"`
	MinimumAmount         *int64                                      `form:"minimum_amount"`
	MinimumAmountCurrency *stripeapi.Currency                         `form:"minimum_amount_currency"`
}

// CreatePromotionCodeParams are the parameters for creating a
// PromotionCode.
type CreatePromotionCodeParams struct {
	Active         *bool                `form:"active"`
	Code           *string              `form:"code"`
	Customer       *string              `form:"customer"`
	Expand         []string             `form:"expand"`
	ExpiresAt      *stripeapi.Timestamp `form:"expires_at"`
	MaxRedemptions *int64               `form:"max_redemptions"`
	Metadata       stripeapi.Metadata   `form:"metadata"`
	Promotion      PromotionParams      `form:"promotion"`
	Restrictions   *RestrictionsParams  `form:"restrictions"`
}

// UpdatePromotionCodeParams are the parameters for updating a
// PromotionCode. Only the currency options of the restrictions can be
// updated.
type UpdatePromotionCodeParams struct {
	Active       *bool               `form:"active"`
	Expand       []string            `form:"expand"`
	Metadata     stripeapi.Metadata  `form:"metadata"`
	Restrictions *RestrictionsParams `form:"restrictions"`
}

// ListPromotionCodes lists the PromotionCodes of the account.
type ListPromotionCodes struct {
	stripeapi.Returns[stripeapi.List[*PromotionCode]]

	params ListPromotionCodesParams
}

type RetrievePromotionCode struct {
	stripeapi.Returns[PromotionCode]

	id     PromotionCodeID
	params RetrievePromotionCodeParams
}

// CreatePromotionCode creates a PromotionCode for a Coupon.
type CreatePromotionCode struct {
	stripeapi.Returns[PromotionCode]

	params CreatePromotionCodeParams
}

type UpdatePromotionCode struct {
	stripeapi.Returns[PromotionCode]

	id     PromotionCodeID
	params UpdatePromotionCodeParams
}

const PromotionParamsCoupon PromotionParamsType = "coupon"

var (
	promotionParamsTypes = stripeapi.NewEnumSet("promotion.type", PromotionParamsCoupon)

	_ stripeapi.Request[stripeapi.List[*PromotionCode]] = (*ListPromotionCodes)(nil)
	_ stripeapi.Request[PromotionCode]                  = (*RetrievePromotionCode)(nil)
	_ stripeapi.Request[PromotionCode]                  = (*CreatePromotionCode)(nil)
	_ stripeapi.Request[PromotionCode]                  = (*UpdatePromotionCode)(nil)
)

func ParsePromotionParamsType(s string) (PromotionParamsType, error) {
	return promotionParamsTypes.Parse(s)
}

func (t *PromotionParamsType) UnmarshalText(text []byte) error {
	return promotionParamsTypes.UnmarshalClosed(t, text)
}

func promotionCodePath(id PromotionCodeID) string {
	return stripeapi.FormatPath("/promotion_codes/{}", string(id))
}

func NewListPromotionCodes() *ListPromotionCodes {
	return &ListPromotionCodes{}
}

// Active filters the PromotionCodes by whether they can be redeemed.
func (r *ListPromotionCodes) Active(active bool) *ListPromotionCodes {
	r.params.Active = stripeapi.Bool(active)
	return r
}

// Code filters the PromotionCodes by their customer facing code. This is
// case insensitive.
func (r *ListPromotionCodes) Code(code string) *ListPromotionCodes {
	r.params.Code = stripeapi.String(code)
	return r
}

func (r *ListPromotionCodes) Coupon(id CouponID) *ListPromotionCodes {
	r.params.Coupon = stripeapi.String(string(id))
	return r
}

func (r *ListPromotionCodes) Created(q *stripeapi.RangeQuery) *ListPromotionCodes {
	r.params.Created = q
	return r
}

func (r *ListPromotionCodes) Customer(id string) *ListPromotionCodes {
	r.params.Customer = stripeapi.String(id)
	return r
}

func (r *ListPromotionCodes) EndingBefore(id PromotionCodeID) *ListPromotionCodes {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListPromotionCodes) Expand(fields ...string) *ListPromotionCodes {
	r.params.Expand = fields
	return r
}

func (r *ListPromotionCodes) Limit(n int64) *ListPromotionCodes {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListPromotionCodes) StartingAfter(id PromotionCodeID) *ListPromotionCodes {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListPromotionCodes) Params() *ListPromotionCodesParams { return &r.params }

func (r *ListPromotionCodes) Describe() stripeapi.Description {
	return stripeapi.Get("/promotion_codes", &r.params)
}

// Send returns a single page of PromotionCodes.
func (r *ListPromotionCodes) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*PromotionCode], error) {
	return stripeapi.Execute[stripeapi.List[*PromotionCode]](ctx, b, r, opts...)
}

// Paginate returns an Iter over every PromotionCode matching the request.
func (r *ListPromotionCodes) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*PromotionCode] {
	return stripeapi.Paginate[*PromotionCode](ctx, b, r.Describe(), opts...)
}

func NewRetrievePromotionCode(id PromotionCodeID) *RetrievePromotionCode {
	return &RetrievePromotionCode{id: id}
}

func (r *RetrievePromotionCode) Expand(fields ...string) *RetrievePromotionCode {
	r.params.Expand = fields
	return r
}

func (r *RetrievePromotionCode) Describe() stripeapi.Description {
	return stripeapi.Get(promotionCodePath(r.id), &r.params)
}

func (r *RetrievePromotionCode) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*PromotionCode, error) {
	return stripeapi.Execute[PromotionCode](ctx, b, r, opts...)
}

// NewCreatePromotionCode returns the request to create a PromotionCode that
// applies the given Coupon.
func NewCreatePromotionCode(coupon CouponID) *CreatePromotionCode {
	return &CreatePromotionCode{
		params: CreatePromotionCodeParams{
			Promotion: PromotionParams{
				Coupon: stripeapi.String(string(coupon)),
				Type:   PromotionParamsCoupon,
			},
		},
	}
}

func (r *CreatePromotionCode) Active(active bool) *CreatePromotionCode {
	r.params.Active = stripeapi.Bool(active)
	return r
}

// Code sets the customer facing code. If not set then a code is generated.
func (r *CreatePromotionCode) Code(code string) *CreatePromotionCode {
	r.params.Code = stripeapi.String(code)
	return r
}

// Customer restricts the PromotionCode to the given customer.
func (r *CreatePromotionCode) Customer(id string) *CreatePromotionCode {
	r.params.Customer = stripeapi.String(id)
	return r
}

func (r *CreatePromotionCode) Expand(fields ...string) *CreatePromotionCode {
	r.params.Expand = fields
	return r
}

func (r *CreatePromotionCode) ExpiresAt(t stripeapi.Timestamp) *CreatePromotionCode {
	r.params.ExpiresAt = &t
	return r
}

func (r *CreatePromotionCode) MaxRedemptions(n int64) *CreatePromotionCode {
	r.params.MaxRedemptions = stripeapi.Int64(n)
	return r
}

func (r *CreatePromotionCode) Metadata(m stripeapi.Metadata) *CreatePromotionCode {
	r.params.Metadata = m
	return r
}

func (r *CreatePromotionCode) Restrictions(res RestrictionsParams) *CreatePromotionCode {
	r.params.Restrictions = &res
	return r
}

func (r *CreatePromotionCode) Params() *CreatePromotionCodeParams { return &r.params }

func (r *CreatePromotionCode) Describe() stripeapi.Description {
	return stripeapi.Post("/promotion_codes", &r.params)
}

func (r *CreatePromotionCode) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*PromotionCode, error) {
	return stripeapi.Execute[PromotionCode](ctx, b, r, opts...)
}

func NewUpdatePromotionCode(id PromotionCodeID) *UpdatePromotionCode {
	return &UpdatePromotionCode{id: id}
}

// Active sets whether the PromotionCode can be redeemed. An inactive
// PromotionCode cannot be made active again if its Coupon is no longer
// valid.
func (r *UpdatePromotionCode) Active(active bool) *UpdatePromotionCode {
	r.params.Active = stripeapi.Bool(active)
	return r
}

func (r *UpdatePromotionCode) Expand(fields ...string) *UpdatePromotionCode {
	r.params.Expand = fields
	return r
}

func (r *UpdatePromotionCode) Metadata(m stripeapi.Metadata) *UpdatePromotionCode {
	r.params.Metadata = m
	return r
}

func (r *UpdatePromotionCode) Restrictions(res RestrictionsParams) *UpdatePromotionCode {
	r.params.Restrictions = &res
	return r
}

func (r *UpdatePromotionCode) Params() *UpdatePromotionCodeParams { return &r.params }

func (r *UpdatePromotionCode) Describe() stripeapi.Description {
	return stripeapi.Post(promotionCodePath(r.id), &r.params)
}

func (r *UpdatePromotionCode) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*PromotionCode, error) {
	return stripeapi.Execute[PromotionCode](ctx, b, r, opts...)
}
