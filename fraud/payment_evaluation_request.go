package fraud

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// MoneyMovementType is the type of money movement of an evaluated payment.
type MoneyMovementType string

// CustomerPresence is whether the customer was present when a card payment
// was made.
type CustomerPresence string

// CardPaymentType is the type of a card payment.
type CardPaymentType string

// CreatePaymentEvaluationParams are the parameters for creating a
// PaymentEvaluation.
type CreatePaymentEvaluationParams struct {
	ClientDeviceMetadataDetails *ClientDeviceMetadataParams `form:"client_device_metadata_details"`
	CustomerDetails             CustomerDetailsParams       `form:"customer_details"`
	Expand                      []string                    `form:"expand"`
	Metadata                    stripeapi.Metadata          `form:"metadata"`
	PaymentDetails              PaymentDetailsParams        `form:"payment_details"`
}

type ClientDeviceMetadataParams struct {
	RadarSession string `form:"radar_session"`
}

// CustomerDetailsParams describe the customer making the payment. Either
// Customer, or some of the other details should be set.
type CustomerDetailsParams struct {
	Customer        *string `form:"customer"`
	CustomerAccount *string `form:"customer_account"`
	Email           *string `form:"email"`
	Name            *string `form:"name"`
	Phone           *string `form:"phone"`
}

type PaymentDetailsParams struct {
	Amount               int64                       `form:"amount"`
	Currency             stripeapi.Currency          `form:"currency"`
	Description          *string                     `form:"description"`
	MoneyMovementDetails *MoneyMovementDetailsParams `form:"money_movement_details"`
	PaymentMethodDetails PaymentMethodDetailsParams  `form:"payment_method_details"`
	ShippingDetails      *ShippingDetailsParams      `form:"shipping_details"`
	StatementDescriptor  *string                     `form:"statement_descriptor"`
}

type MoneyMovementDetailsParams struct {
	Card              *CardMoneyMovementParams `form:"card"`
	MoneyMovementType MoneyMovementType        `form:"money_movement_type"`
}

type CardMoneyMovementParams struct {
	CustomerPresence *CustomerPresence `form:"customer_presence"`
	PaymentType      *CardPaymentType  `form:"payment_type"`
}

type PaymentMethodDetailsParams struct {
	BillingDetails *BillingDetailsParams `form:"billing_details"`
	PaymentMethod  string                `form:"payment_method"`
}

type BillingDetailsParams struct {
	Address *stripeapi.AddressParams `form:"address"`
	Email   *string                  `form:"email"`
	Name    *string                  `form:"name"`
	Phone   *string                  `form:"phone"`
}

type ShippingDetailsParams struct {
	Address *stripeapi.AddressParams `form:"address"`
	Name    *string                  `form:"name"`
	Phone   *string                  `form:"phone"`
}

// CreatePaymentEvaluation asks Radar to evaluate the fraud risk of a payment.
type CreatePaymentEvaluation struct {
	stripeapi.Returns[PaymentEvaluation]

	params CreatePaymentEvaluationParams
}

const (
	MoneyMovementCard MoneyMovementType = "card"

	CustomerOffSession CustomerPresence = "off_session"
	CustomerOnSession  CustomerPresence = "on_session"

	CardPaymentOneOff         CardPaymentType = "one_off"
	CardPaymentRecurring      CardPaymentType = "recurring"
	CardPaymentSetupOneOff    CardPaymentType = "setup_one_off"
	CardPaymentSetupRecurring CardPaymentType = "setup_recurring"
)

var (
	moneyMovementTypes = stripeapi.NewEnumSet("payment_details.money_movement_details.money_movement_type", MoneyMovementCard)

	customerPresences = stripeapi.NewEnumSet("payment_details.money_movement_details.card.customer_presence",
		CustomerOffSession,
		CustomerOnSession,
	)

	cardPaymentTypes = stripeapi.NewEnumSet("payment_details.money_movement_details.card.payment_type",
		CardPaymentOneOff,
		CardPaymentRecurring,
		CardPaymentSetupOneOff,
		CardPaymentSetupRecurring,
	)

	_ stripeapi.Request[PaymentEvaluation] = (*CreatePaymentEvaluation)(nil)
)

func ParseMoneyMovementType(s string) (MoneyMovementType, error) { return moneyMovementTypes.Parse(s) }

func ParseCustomerPresence(s string) (CustomerPresence, error) { return customerPresences.Parse(s) }

func ParseCardPaymentType(s string) (CardPaymentType, error) { return cardPaymentTypes.Parse(s) }

func (t *MoneyMovementType) UnmarshalText(text []byte) error {
	return moneyMovementTypes.UnmarshalClosed(t, text)
}

func (p *CustomerPresence) UnmarshalText(text []byte) error {
	return customerPresences.UnmarshalClosed(p, text)
}

func (t *CardPaymentType) UnmarshalText(text []byte) error {
	return cardPaymentTypes.UnmarshalClosed(t, text)
}

// NewCreatePaymentEvaluation returns the request to evaluate the payment of
// the given amount, made with the given payment method by the given customer.
func NewCreatePaymentEvaluation(customer CustomerDetailsParams, amount int64, currency stripeapi.Currency, paymentMethod string) *CreatePaymentEvaluation {
	return &CreatePaymentEvaluation{
		params: CreatePaymentEvaluationParams{
			CustomerDetails: customer,
			PaymentDetails: PaymentDetailsParams{
				Amount:   amount,
				Currency: currency,
				PaymentMethodDetails: PaymentMethodDetailsParams{
					PaymentMethod: paymentMethod,
				},
			},
		},
	}
}

// ClientDeviceMetadata sets the Radar session collected from the customer's
// device.
func (r *CreatePaymentEvaluation) ClientDeviceMetadata(radarSession string) *CreatePaymentEvaluation {
	r.params.ClientDeviceMetadataDetails = &ClientDeviceMetadataParams{
		RadarSession: radarSession,
	}
	return r
}

func (r *CreatePaymentEvaluation) BillingDetails(details BillingDetailsParams) *CreatePaymentEvaluation {
	r.params.PaymentDetails.PaymentMethodDetails.BillingDetails = &details
	return r
}

func (r *CreatePaymentEvaluation) Description(s string) *CreatePaymentEvaluation {
	r.params.PaymentDetails.Description = stripeapi.String(s)
	return r
}

func (r *CreatePaymentEvaluation) Expand(fields ...string) *CreatePaymentEvaluation {
	r.params.Expand = fields
	return r
}

func (r *CreatePaymentEvaluation) Metadata(m stripeapi.Metadata) *CreatePaymentEvaluation {
	r.params.Metadata = m
	return r
}

// CardMoneyMovement describes the payment as a card payment.
func (r *CreatePaymentEvaluation) CardMoneyMovement(presence CustomerPresence, typ CardPaymentType) *CreatePaymentEvaluation {
	r.params.PaymentDetails.MoneyMovementDetails = &MoneyMovementDetailsParams{
		Card: &CardMoneyMovementParams{
			CustomerPresence: &presence,
			PaymentType:      &typ,
		},
		MoneyMovementType: MoneyMovementCard,
	}
	return r
}

func (r *CreatePaymentEvaluation) ShippingDetails(details ShippingDetailsParams) *CreatePaymentEvaluation {
	r.params.PaymentDetails.ShippingDetails = &details
	return r
}

func (r *CreatePaymentEvaluation) StatementDescriptor(s string) *CreatePaymentEvaluation {
	r.params.PaymentDetails.StatementDescriptor = stripeapi.String(s)
	return r
}

func (r *CreatePaymentEvaluation) Params() *CreatePaymentEvaluationParams { return &r.params }

func (r *CreatePaymentEvaluation) Describe() stripeapi.Description {
	return stripeapi.Post("/radar/payment_evaluations", &r.params)
}

func (r *CreatePaymentEvaluation) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*PaymentEvaluation, error) {
	return stripeapi.Execute[PaymentEvaluation](ctx, b, r, opts...)
}
