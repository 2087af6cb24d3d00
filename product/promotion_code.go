// Package product provides the resources of the Stripe API for discounting
// products, such as coupons and promotion codes.
package product

import (
	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/core"
)

type PromotionCodeID string

type CouponID string

// PromotionType is the type of promotion a PromotionCode applies.
type PromotionType string

// CouponDuration describes how long a discount applied by a Coupon lasts.
type CouponDuration string

// PromotionCode is a customer-redeemable code for a Coupon.
type PromotionCode struct {
	Active         bool                                `json:"active"`
	Code           string                              `json:"code"`
	Created        stripeapi.Timestamp                 `json:"created"`
	Customer       stripeapi.Expandable[core.Customer] `json:"customer"`
	ExpiresAt      *stripeapi.Timestamp                `json:"expires_at"`
	ID             PromotionCodeID                     `json:"id"`
	Livemode       bool                                `json:"livemode"`
	MaxRedemptions *int64                              `json:"max_redemptions"`
	Metadata       stripeapi.Metadata                  `json:"metadata"`
	Promotion      Promotion                           `json:"promotion"`
	Restrictions   Restrictions                        `json:"restrictions"`
	TimesRedeemed  int64                               `json:"times_redeemed"`
}

// Promotion is the promotion applied by a PromotionCode.
type Promotion struct {
	Coupon stripeapi.Expandable[Coupon] `json:"coupon"`
	Type   PromotionType                `json:"type"`
}

// Restrictions are the restrictions placed on the redemption of a
// PromotionCode.
type Restrictions struct {
	CurrencyOptions       map[string]CurrencyOption `json:"currency_options"`
	FirstTimeTransaction  bool                      `json:"first_time_transaction"`
	MinimumAmount         *int64                    `json:"minimum_amount"`
	MinimumAmountCurrency *stripeapi.Currency       `json:"minimum_amount_currency"`
}

type CurrencyOption struct {
	MinimumAmount int64 `json:"minimum_amount"`
}

// Coupon describes a discount that can be applied to a customer, or an
// invoice. Exactly one of AmountOff, or PercentOff will be set.
type Coupon struct {
	AmountOff        *int64               `json:"amount_off"`
	Created          stripeapi.Timestamp  `json:"created"`
	Currency         *stripeapi.Currency  `json:"currency"`
	Duration         CouponDuration       `json:"duration"`
	DurationInMonths *int64               `json:"duration_in_months"`
	ID               CouponID             `json:"id"`
	Livemode         bool                 `json:"livemode"`
	MaxRedemptions   *int64               `json:"max_redemptions"`
	Metadata         stripeapi.Metadata   `json:"metadata"`
	Name             *string              `json:"name"`
	PercentOff       *float64             `json:"percent_off"`
	RedeemBy         *stripeapi.Timestamp `json:"redeem_by"`
	TimesRedeemed    int64                `json:"times_redeemed"`
	Valid            bool                 `json:"valid"`
}

const (
	PromotionTypeCoupon PromotionType = "coupon"

	CouponDurationForever   CouponDuration = "forever"
	CouponDurationOnce      CouponDuration = "once"
	CouponDurationRepeating CouponDuration = "repeating"
)

var (
	promotionTypes = stripeapi.NewEnumSet("promotion_code.promotion.type", PromotionTypeCoupon)

	couponDurations = stripeapi.NewEnumSet("coupon.duration",
		CouponDurationForever,
		CouponDurationOnce,
		CouponDurationRepeating,
	)

	_ stripeapi.Object = (*PromotionCode)(nil)
	_ stripeapi.Object = (*Coupon)(nil)
)

func (id PromotionCodeID) String() string { return string(id) }

func (id CouponID) String() string { return string(id) }

func (t PromotionType) Known() bool { return promotionTypes.Known(t) }

func (t *PromotionType) UnmarshalText(text []byte) error { return promotionTypes.UnmarshalOpen(t, text) }

func (d CouponDuration) Known() bool { return couponDurations.Known(d) }

func (d *CouponDuration) UnmarshalText(text []byte) error { return couponDurations.UnmarshalOpen(d, text) }

func (p *PromotionCode) GetID() string { return string(p.ID) }

func (*PromotionCode) ObjectName() string { return "promotion_code" }

func (p *PromotionCode) UnmarshalJSON(data []byte) error {
	var p1 PromotionCode

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("active", &p1.Active),
		stripeapi.Required("code", &p1.Code),
		stripeapi.Required("created", &p1.Created),
		stripeapi.Optional("customer", &p1.Customer),
		stripeapi.Optional("expires_at", &p1.ExpiresAt),
		stripeapi.Required("id", &p1.ID),
		stripeapi.Required("livemode", &p1.Livemode),
		stripeapi.Optional("max_redemptions", &p1.MaxRedemptions),
		stripeapi.Optional("metadata", &p1.Metadata),
		stripeapi.Required("promotion", &p1.Promotion),
		stripeapi.Optional("restrictions", &p1.Restrictions),
		stripeapi.Optional("times_redeemed", &p1.TimesRedeemed),
	)

	if err != nil {
		return err
	}
	(*p) = p1
	return nil
}

func (p PromotionCode) MarshalJSON() ([]byte, error) {
	type promotionCode PromotionCode
	return stripeapi.MarshalObject(p.ObjectName(), promotionCode(p))
}

func (c *Coupon) GetID() string { return string(c.ID) }

func (*Coupon) ObjectName() string { return "coupon" }

func (c *Coupon) UnmarshalJSON(data []byte) error {
	var c1 Coupon

	err := stripeapi.DecodeObject(data,
		stripeapi.Optional("amount_off", &c1.AmountOff),
		stripeapi.Required("created", &c1.Created),
		stripeapi.Optional("currency", &c1.Currency),
		stripeapi.Required("duration", &c1.Duration),
		stripeapi.Optional("duration_in_months", &c1.DurationInMonths),
		stripeapi.Required("id", &c1.ID),
		stripeapi.Required("livemode", &c1.Livemode),
		stripeapi.Optional("max_redemptions", &c1.MaxRedemptions),
		stripeapi.Optional("metadata", &c1.Metadata),
		stripeapi.Optional("name", &c1.Name),
		stripeapi.Optional("percent_off", &c1.PercentOff),
		stripeapi.Optional("redeem_by", &c1.RedeemBy),
		stripeapi.Optional("times_redeemed", &c1.TimesRedeemed),
		stripeapi.Required("valid", &c1.Valid),
	)

	if err != nil {
		return err
	}
	(*c) = c1
	return nil
}

func (c Coupon) MarshalJSON() ([]byte, error) {
	type coupon Coupon
	return stripeapi.MarshalObject(c.ObjectName(), coupon(c))
}
