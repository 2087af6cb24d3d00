// Package billing provides the billing portal resources of the Stripe API.
package billing

import (
	"github.com/andrewpillar/stripeapi"
)

// SessionID is the ID of a billing portal Session.
type SessionID string

// ConfigurationID is the ID of a billing portal Configuration.
type ConfigurationID string

// SessionLocale is the locale of a Session as received from Stripe.
type SessionLocale string

// FlowType is the type of flow a Session was created with.
type FlowType string

// AfterCompletionType is the action taken once a flow has been completed.
type AfterCompletionType string

// RetentionType is the type of retention strategy offered during a
// subscription cancellation flow.
type RetentionType string

// Session is a session of the customer portal. The URL of the session is
// where the customer is redirected to manage their billing. Sessions are
// short lived, and expire after five minutes if the URL is not visited.
type Session struct {
	Configuration stripeapi.Expandable[Configuration] `json:"configuration"`
	Created       stripeapi.Timestamp                 `json:"created"`
	Customer      string                              `json:"customer"`
	Flow          *Flow                               `json:"flow"`
	ID            SessionID                           `json:"id"`
	Livemode      bool                                `json:"livemode"`
	Locale        *SessionLocale                      `json:"locale"`
	OnBehalfOf    *string                             `json:"on_behalf_of"`
	ReturnURL     *string                             `json:"return_url"`
	URL           string                              `json:"url"`
}

// Configuration describes the functionality and behavior of a portal
// session.
type Configuration struct {
	Active           bool                `json:"active"`
	Application      *string             `json:"application"`
	Created          stripeapi.Timestamp `json:"created"`
	DefaultReturnURL *string             `json:"default_return_url"`
	ID               ConfigurationID     `json:"id"`
	IsDefault        bool                `json:"is_default"`
	Livemode         bool                `json:"livemode"`
	Metadata         stripeapi.Metadata  `json:"metadata"`
	Name             *string             `json:"name"`
	Updated          stripeapi.Timestamp `json:"updated"`
}

// Flow is the flow a Session was created with.
type Flow struct {
	AfterCompletion           FlowAfterCompletion            `json:"after_completion"`
	SubscriptionCancel        *FlowSubscriptionCancel        `json:"subscription_cancel"`
	SubscriptionUpdate        *FlowSubscriptionUpdate        `json:"subscription_update"`
	SubscriptionUpdateConfirm *FlowSubscriptionUpdateConfirm `json:"subscription_update_confirm"`
	Type                      FlowType                       `json:"type"`
}

type FlowAfterCompletion struct {
	HostedConfirmation *struct {
		CustomMessage *string `json:"custom_message"`
	} `json:"hosted_confirmation"`

	Redirect *struct {
		ReturnURL string `json:"return_url"`
	} `json:"redirect"`

	Type AfterCompletionType `json:"type"`
}

type FlowSubscriptionCancel struct {
	Retention *struct {
		CouponOffer *struct {
			Coupon string `json:"coupon"`
		} `json:"coupon_offer"`

		Type RetentionType `json:"type"`
	} `json:"retention"`

	Subscription string `json:"subscription"`
}

type FlowSubscriptionUpdate struct {
	Subscription string `json:"subscription"`
}

type FlowSubscriptionUpdateConfirm struct {
	Discounts []struct {
		Coupon        *string `json:"coupon"`
		PromotionCode *string `json:"promotion_code"`
	} `json:"discounts"`

	Items []struct {
		ID       *string `json:"id"`
		Price    *string `json:"price"`
		Quantity *int64  `json:"quantity"`
	} `json:"items"`

	Subscription string `json:"subscription"`
}

const (
	FlowTypePaymentMethodUpdate       FlowType = "payment_method_update"
	FlowTypeSubscriptionCancel        FlowType = "subscription_cancel"
	FlowTypeSubscriptionUpdate        FlowType = "subscription_update"
	FlowTypeSubscriptionUpdateConfirm FlowType = "subscription_update_confirm"

	AfterCompletionHostedConfirmation AfterCompletionType = "hosted_confirmation"
	AfterCompletionPortalHomepage     AfterCompletionType = "portal_homepage"
	AfterCompletionRedirect           AfterCompletionType = "redirect"

	RetentionCouponOffer RetentionType = "coupon_offer"
)

var (
	flowTypes = stripeapi.NewEnumSet("billing_portal.session.flow.type",
		FlowTypePaymentMethodUpdate,
		FlowTypeSubscriptionCancel,
		FlowTypeSubscriptionUpdate,
		FlowTypeSubscriptionUpdateConfirm,
	)

	afterCompletionTypes = stripeapi.NewEnumSet("billing_portal.session.flow.after_completion.type",
		AfterCompletionHostedConfirmation,
		AfterCompletionPortalHomepage,
		AfterCompletionRedirect,
	)

	retentionTypes = stripeapi.NewEnumSet("billing_portal.session.flow.subscription_cancel.retention.type",
		RetentionCouponOffer,
	)

	sessionLocales = stripeapi.NewEnumSet("billing_portal.session.locale", sessionLocaleValues()...)

	_ stripeapi.Object = (*Session)(nil)
	_ stripeapi.Object = (*Configuration)(nil)
)

func sessionLocaleValues() []SessionLocale {
	vals := make([]SessionLocale, 0, len(localeValues))

	for _, l := range localeValues {
		vals = append(vals, SessionLocale(l))
	}
	return vals
}

func (id SessionID) String() string { return string(id) }

func (id ConfigurationID) String() string { return string(id) }

func (l SessionLocale) Known() bool { return sessionLocales.Known(l) }

func (l *SessionLocale) UnmarshalText(text []byte) error { return sessionLocales.UnmarshalOpen(l, text) }

func (t FlowType) Known() bool { return flowTypes.Known(t) }

func (t *FlowType) UnmarshalText(text []byte) error { return flowTypes.UnmarshalOpen(t, text) }

func (t AfterCompletionType) Known() bool { return afterCompletionTypes.Known(t) }

func (t *AfterCompletionType) UnmarshalText(text []byte) error {
	return afterCompletionTypes.UnmarshalOpen(t, text)
}

func (t RetentionType) Known() bool { return retentionTypes.Known(t) }

func (t *RetentionType) UnmarshalText(text []byte) error { return retentionTypes.UnmarshalOpen(t, text) }

func (s *Session) GetID() string { return string(s.ID) }

func (*Session) ObjectName() string { return "billing_portal.session" }

func (s *Session) UnmarshalJSON(data []byte) error {
	var s1 Session

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("configuration", &s1.Configuration),
		stripeapi.Required("created", &s1.Created),
		stripeapi.Required("customer", &s1.Customer),
		stripeapi.Optional("flow", &s1.Flow),
		stripeapi.Required("id", &s1.ID),
		stripeapi.Required("livemode", &s1.Livemode),
		stripeapi.Optional("locale", &s1.Locale),
		stripeapi.Optional("on_behalf_of", &s1.OnBehalfOf),
		stripeapi.Optional("return_url", &s1.ReturnURL),
		stripeapi.Required("url", &s1.URL),
	)

	if err != nil {
		return err
	}
	(*s) = s1
	return nil
}

func (s Session) MarshalJSON() ([]byte, error) {
	type session Session
	return stripeapi.MarshalObject(s.ObjectName(), session(s))
}

func (c *Configuration) GetID() string { return string(c.ID) }

func (*Configuration) ObjectName() string { return "billing_portal.configuration" }

func (c *Configuration) UnmarshalJSON(data []byte) error {
	var c1 Configuration

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("active", &c1.Active),
		stripeapi.Optional("application", &c1.Application),
		stripeapi.Required("created", &c1.Created),
		stripeapi.Optional("default_return_url", &c1.DefaultReturnURL),
		stripeapi.Required("id", &c1.ID),
		stripeapi.Required("is_default", &c1.IsDefault),
		stripeapi.Required("livemode", &c1.Livemode),
		stripeapi.Optional("metadata", &c1.Metadata),
		stripeapi.Optional("name", &c1.Name),
		stripeapi.Required("updated", &c1.Updated),
	)

	if err != nil {
		return err
	}
	(*c) = c1
	return nil
}

func (c Configuration) MarshalJSON() ([]byte, error) {
	type configuration Configuration
	return stripeapi.MarshalObject(c.ObjectName(), configuration(c))
}
