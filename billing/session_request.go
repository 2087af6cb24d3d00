package billing

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// Locale is the IETF language tag of the locale a Session is displayed in.
type Locale string

// FlowDataType is the type of flow a Session is created with.
type FlowDataType string

// AfterCompletionParamsType is the action to take once a flow has been
// completed.
type AfterCompletionParamsType string

// RetentionParamsType is the type of retention strategy to offer during a
// subscription cancellation flow.
type RetentionParamsType string

// CreateSessionParams are the parameters for creating a Session.
type CreateSessionParams struct {
	Configuration *string         `form:"configuration"`
	Customer      string          `form:"customer"`
	Expand        []string        `form:"expand"`
	FlowData      *FlowDataParams `form:"flow_data"`
	Locale        *Locale         `form:"locale"`
	OnBehalfOf    *string         `form:"on_behalf_of"`
	ReturnURL     *string         `form:"return_url"`
}

// FlowDataParams sends the customer straight into a specific flow of the
// portal, rather than the portal's homepage. Only the parameters of the flow
// matching Type are sent.
type FlowDataParams struct {
	AfterCompletion           *AfterCompletionParams           `form:"after_completion"`
	SubscriptionCancel        *SubscriptionCancelParams        `form:"subscription_cancel"`
	SubscriptionUpdate        *SubscriptionUpdateParams        `form:"subscription_update"`
	SubscriptionUpdateConfirm *SubscriptionUpdateConfirmParams `form:"subscription_update_confirm"`
	Type                      FlowDataType                     `form:"type"`
}

// AfterCompletionParams configures the action taken once a flow has been
// completed. Only the parameters of the action matching Type are sent.
type AfterCompletionParams struct {
	HostedConfirmation *HostedConfirmationParams `form:"hosted_confirmation"`
	Redirect           *RedirectParams           `form:"redirect"`
	Type               AfterCompletionParamsType `form:"type"`
}

type HostedConfirmationParams struct {
	CustomMessage *string `form:"custom_message"`
}

type RedirectParams struct {
	ReturnURL string `form:"return_url"`
}

type SubscriptionCancelParams struct {
	Retention    *RetentionParams `form:"retention"`
	Subscription string           `form:"subscription"`
}

type RetentionParams struct {
	CouponOffer *CouponOfferParams  `form:"coupon_offer"`
	Type        RetentionParamsType `form:"type"`
}

type CouponOfferParams struct {
	Coupon string `form:"coupon"`
}

type SubscriptionUpdateParams struct {
	Subscription string `form:"subscription"`
}

type SubscriptionUpdateConfirmParams struct {
	Discounts    []DiscountParams   `form:"discounts"`
	Items        []UpdateItemParams `form:"items"`
	Subscription string             `form:"subscription"`
}

type DiscountParams struct {
	Coupon        *string `form:"coupon"`
	PromotionCode *string `form:"promotion_code"`
}

type UpdateItemParams struct {
	ID       string  `form:"id"`
	Price    *string `form:"price"`
	Quantity *int64  `form:"quantity"`
}

// CreateSession creates a session of the customer portal.
type CreateSession struct {
	stripeapi.Returns[Session]

	params CreateSessionParams
}

const (
	FlowDataPaymentMethodUpdate       FlowDataType = "payment_method_update"
	FlowDataSubscriptionCancel        FlowDataType = "subscription_cancel"
	FlowDataSubscriptionUpdate        FlowDataType = "subscription_update"
	FlowDataSubscriptionUpdateConfirm FlowDataType = "subscription_update_confirm"

	AfterCompletionParamsHostedConfirmation AfterCompletionParamsType = "hosted_confirmation"
	AfterCompletionParamsPortalHomepage     AfterCompletionParamsType = "portal_homepage"
	AfterCompletionParamsRedirect           AfterCompletionParamsType = "redirect"

	RetentionParamsCouponOffer RetentionParamsType = "coupon_offer"
)

var (
	localeValues = []Locale{
		"auto", "bg", "cs", "da", "de", "el", "en", "en-AU", "en-CA", "en-GB",
		"en-IE", "en-IN", "en-NZ", "en-SG", "es", "es-419", "et", "fi", "fil",
		"fr", "fr-CA", "hr", "hu", "id", "it", "ja", "ko", "lt", "lv", "ms", "mt",
		"nb", "nl", "pl", "pt", "pt-BR", "ro", "ru", "sk", "sl", "sv", "th", "tr",
		"vi", "zh", "zh-HK", "zh-TW",
	}

	locales = stripeapi.NewEnumSet("billing_portal.session.locale", localeValues...)

	flowDataTypes = stripeapi.NewEnumSet("flow_data.type",
		FlowDataPaymentMethodUpdate,
		FlowDataSubscriptionCancel,
		FlowDataSubscriptionUpdate,
		FlowDataSubscriptionUpdateConfirm,
	)

	afterCompletionParamsTypes = stripeapi.NewEnumSet("flow_data.after_completion.type",
		AfterCompletionParamsHostedConfirmation,
		AfterCompletionParamsPortalHomepage,
		AfterCompletionParamsRedirect,
	)

	_ stripeapi.Request[Session] = (*CreateSession)(nil)
	_ stripeapi.FormAppender     = FlowDataParams{}
	_ stripeapi.FormAppender     = AfterCompletionParams{}
)

// ParseLocale parses the given string into a Locale, returning an error if it
// is not a locale supported by the portal.
func ParseLocale(s string) (Locale, error) { return locales.Parse(s) }

// ParseFlowDataType parses the given string into a FlowDataType.
func ParseFlowDataType(s string) (FlowDataType, error) { return flowDataTypes.Parse(s) }

// ParseAfterCompletionParamsType parses the given string into an
// AfterCompletionParamsType.
func ParseAfterCompletionParamsType(s string) (AfterCompletionParamsType, error) {
	return afterCompletionParamsTypes.Parse(s)
}

func (l *Locale) UnmarshalText(text []byte) error { return locales.UnmarshalClosed(l, text) }

func (t *FlowDataType) UnmarshalText(text []byte) error { return flowDataTypes.UnmarshalClosed(t, text) }

func (t *AfterCompletionParamsType) UnmarshalText(text []byte) error {
	return afterCompletionParamsTypes.UnmarshalClosed(t, text)
}

// PaymentMethodUpdateFlow returns the flow for updating the customer's
// payment method.
func PaymentMethodUpdateFlow() *FlowDataParams {
	return &FlowDataParams{
		Type: FlowDataPaymentMethodUpdate,
	}
}

// SubscriptionCancelFlow returns the flow for canceling the given
// subscription.
func SubscriptionCancelFlow(subscription string) *FlowDataParams {
	return &FlowDataParams{
		Type: FlowDataSubscriptionCancel,
		SubscriptionCancel: &SubscriptionCancelParams{
			Subscription: subscription,
		},
	}
}

// SubscriptionUpdateFlow returns the flow for updating the given
// subscription.
func SubscriptionUpdateFlow(subscription string) *FlowDataParams {
	return &FlowDataParams{
		Type: FlowDataSubscriptionUpdate,
		SubscriptionUpdate: &SubscriptionUpdateParams{
			Subscription: subscription,
		},
	}
}

// SubscriptionUpdateConfirmFlow returns the flow for confirming the given
// update to the given subscription.
func SubscriptionUpdateConfirmFlow(subscription string, items ...UpdateItemParams) *FlowDataParams {
	return &FlowDataParams{
		Type: FlowDataSubscriptionUpdateConfirm,
		SubscriptionUpdateConfirm: &SubscriptionUpdateConfirmParams{
			Items:        items,
			Subscription: subscription,
		},
	}
}

// AppendForm implements the stripeapi.FormAppender interface.
func (p FlowDataParams) AppendForm(f *stripeapi.Form, key string) {
	stripeapi.AppendForm(f, stripeapi.FormKey(key, "after_completion"), p.AfterCompletion)

	switch p.Type {
	case FlowDataSubscriptionCancel:
		stripeapi.AppendForm(f, stripeapi.FormKey(key, "subscription_cancel"), p.SubscriptionCancel)
	case FlowDataSubscriptionUpdate:
		stripeapi.AppendForm(f, stripeapi.FormKey(key, "subscription_update"), p.SubscriptionUpdate)
	case FlowDataSubscriptionUpdateConfirm:
		stripeapi.AppendForm(f, stripeapi.FormKey(key, "subscription_update_confirm"), p.SubscriptionUpdateConfirm)
	}
	f.Add(stripeapi.FormKey(key, "type"), string(p.Type))
}

// AppendForm implements the stripeapi.FormAppender interface.
func (p AfterCompletionParams) AppendForm(f *stripeapi.Form, key string) {
	switch p.Type {
	case AfterCompletionParamsHostedConfirmation:
		stripeapi.AppendForm(f, stripeapi.FormKey(key, "hosted_confirmation"), p.HostedConfirmation)
	case AfterCompletionParamsRedirect:
		stripeapi.AppendForm(f, stripeapi.FormKey(key, "redirect"), p.Redirect)
	}
	f.Add(stripeapi.FormKey(key, "type"), string(p.Type))
}

// NewCreateSession returns the request to create a portal Session for the
// given customer.
func NewCreateSession(customer string) *CreateSession {
	return &CreateSession{
		params: CreateSessionParams{
			Customer: customer,
		},
	}
}

// Configuration sets the ID of the portal Configuration to use.
func (r *CreateSession) Configuration(id string) *CreateSession {
	r.params.Configuration = stripeapi.String(id)
	return r
}

// Expand sets the fields of the response to expand.
func (r *CreateSession) Expand(fields ...string) *CreateSession {
	r.params.Expand = fields
	return r
}

// FlowData sets the flow the customer is sent into.
func (r *CreateSession) FlowData(flow *FlowDataParams) *CreateSession {
	r.params.FlowData = flow
	return r
}

// Locale sets the locale of the portal.
func (r *CreateSession) Locale(l Locale) *CreateSession {
	r.params.Locale = &l
	return r
}

// OnBehalfOf sets the connected account the Session is created for.
func (r *CreateSession) OnBehalfOf(account string) *CreateSession {
	r.params.OnBehalfOf = stripeapi.String(account)
	return r
}

// ReturnURL sets the URL the customer is redirected to when they leave the
// portal.
func (r *CreateSession) ReturnURL(url string) *CreateSession {
	r.params.ReturnURL = stripeapi.String(url)
	return r
}

// Params returns the parameters of the request.
func (r *CreateSession) Params() *CreateSessionParams { return &r.params }

func (r *CreateSession) Describe() stripeapi.Description {
	return stripeapi.Post("/billing_portal/sessions", &r.params)
}

// Send creates the Session.
func (r *CreateSession) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*Session, error) {
	return stripeapi.Execute[Session](ctx, b, r, opts...)
}
