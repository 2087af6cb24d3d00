// Package connect provides the Connect resources of the Stripe API, for
// working with connected accounts and the apps installed on them.
package connect

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// AccountSession grants a client side application access to the embedded
// components of a connected account. The ClientSecret should be passed to the
// frontend, and never stored or logged.
type AccountSession struct {
	Account      string              `json:"account"`
	ClientSecret string              `json:"client_secret"`
	Components   Components          `json:"components"`
	ExpiresAt    stripeapi.Timestamp `json:"expires_at"`
	Livemode     bool                `json:"livemode"`
}

// Components are the embedded components enabled for an AccountSession.
type Components struct {
	AccountManagement  AccountComponent  `json:"account_management"`
	AccountOnboarding  AccountComponent  `json:"account_onboarding"`
	Documents          BaseComponent     `json:"documents"`
	NotificationBanner AccountComponent  `json:"notification_banner"`
	PaymentDetails     PaymentsComponent `json:"payment_details"`
	Payments           PaymentsComponent `json:"payments"`
	Payouts            PayoutsComponent  `json:"payouts"`
}

type BaseComponent struct {
	Enabled bool `json:"enabled"`
}

type AccountComponent struct {
	Enabled  bool `json:"enabled"`
	Features struct {
		DisableStripeUserAuthentication bool `json:"disable_stripe_user_authentication"`
		ExternalAccountCollection       bool `json:"external_account_collection"`
	} `json:"features"`
}

type PaymentsComponent struct {
	Enabled  bool `json:"enabled"`
	Features struct {
		CapturePayments                       bool `json:"capture_payments"`
		DestinationOnBehalfOfChargeManagement bool `json:"destination_on_behalf_of_charge_management"`
		DisputeManagement                     bool `json:"dispute_management"`
		RefundManagement                      bool `json:"refund_management"`
	} `json:"features"`
}

type PayoutsComponent struct {
	Enabled  bool `json:"enabled"`
	Features struct {
		DisableStripeUserAuthentication bool `json:"disable_stripe_user_authentication"`
		EditPayoutSchedule              bool `json:"edit_payout_schedule"`
		ExternalAccountCollection       bool `json:"external_account_collection"`
		InstantPayouts                  bool `json:"instant_payouts"`
		StandardPayouts                 bool `json:"standard_payouts"`
	} `json:"features"`
}

// ComponentsParams are the embedded components to enable for an
// AccountSession. Only the components that are set are sent.
type ComponentsParams struct {
	AccountManagement  *AccountComponentParams  `form:"account_management"`
	AccountOnboarding  *AccountComponentParams  `form:"account_onboarding"`
	Documents          *BaseComponentParams     `form:"documents"`
	NotificationBanner *AccountComponentParams  `form:"notification_banner"`
	PaymentDetails     *PaymentsComponentParams `form:"payment_details"`
	Payments           *PaymentsComponentParams `form:"payments"`
	Payouts            *PayoutsComponentParams  `form:"payouts"`
}

type BaseComponentParams struct {
	Enabled bool `form:"enabled"`
}

type AccountComponentParams struct {
	Enabled  bool                   `form:"enabled"`
	Features *AccountFeaturesParams `form:"features"`
}

type AccountFeaturesParams struct {
	DisableStripeUserAuthentication *bool `form:"disable_stripe_user_authentication"`
	ExternalAccountCollection       *bool `form:"external_account_collection"`
}

type PaymentsComponentParams struct {
	Enabled  bool                    `form:"enabled"`
	Features *PaymentsFeaturesParams `form:"features"`
}

type PaymentsFeaturesParams struct {
	CapturePayments                       *bool `form:"capture_payments"`
	DestinationOnBehalfOfChargeManagement *bool `form:"destination_on_behalf_of_charge_management"`
	DisputeManagement                     *bool `form:"dispute_management"`
	RefundManagement                      *bool `form:"refund_management"`
}

type PayoutsComponentParams struct {
	Enabled  bool                   `form:"enabled"`
	Features *PayoutsFeaturesParams `form:"features"`
}

type PayoutsFeaturesParams struct {
	DisableStripeUserAuthentication *bool `form:"disable_stripe_user_authentication"`
	EditPayoutSchedule              *bool `form:"edit_payout_schedule"`
	ExternalAccountCollection       *bool `form:"external_account_collection"`
	InstantPayouts                  *bool `form:"instant_payouts"`
	StandardPayouts                 *bool `form:"standard_payouts"`
}

// CreateAccountSessionParams are the parameters for creating an
// AccountSession.
type CreateAccountSessionParams struct {
	Account    string           `form:"account"`
	Components ComponentsParams `form:"components"`
	Expand     []string         `form:"expand"`
}

// CreateAccountSession creates an AccountSession for a connected account.
type CreateAccountSession struct {
	stripeapi.Returns[AccountSession]

	params CreateAccountSessionParams
}

var _ stripeapi.Request[AccountSession] = (*CreateAccountSession)(nil)

func (s *AccountSession) UnmarshalJSON(data []byte) error {
	var s1 AccountSession

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("account", &s1.Account),
		stripeapi.Required("client_secret", &s1.ClientSecret),
		stripeapi.Required("components", &s1.Components),
		stripeapi.Required("expires_at", &s1.ExpiresAt),
		stripeapi.Required("livemode", &s1.Livemode),
	)

	if err != nil {
		return err
	}
	(*s) = s1
	return nil
}

func (s AccountSession) MarshalJSON() ([]byte, error) {
	type accountSession AccountSession
	return stripeapi.MarshalObject("account_session", accountSession(s))
}

// NewCreateAccountSession returns the request to create an AccountSession for
// the given connected account with the given components enabled.
func NewCreateAccountSession(account string, components ComponentsParams) *CreateAccountSession {
	return &CreateAccountSession{
		params: CreateAccountSessionParams{
			Account:    account,
			Components: components,
		},
	}
}

func (r *CreateAccountSession) Expand(fields ...string) *CreateAccountSession {
	r.params.Expand = fields
	return r
}

func (r *CreateAccountSession) Params() *CreateAccountSessionParams { return &r.params }

func (r *CreateAccountSession) Describe() stripeapi.Description {
	return stripeapi.Post("/account_sessions", &r.params)
}

func (r *CreateAccountSession) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*AccountSession, error) {
	return stripeapi.Execute[AccountSession](ctx, b, r, opts...)
}
