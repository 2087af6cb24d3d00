// Package fraud provides the Radar resources of the Stripe API, for
// evaluating the fraud risk of payments.
package fraud

import (
	"github.com/andrewpillar/stripeapi"
)

type PaymentEvaluationID string

// CheckResult is the result of a check performed on a card, such as a CVC or
// postal code check.
type CheckResult string

// RejectReason is the reason given by a card issuer for a network decline.
type RejectReason string

// OutcomeType is the type of outcome of a PaymentEvaluation.
type OutcomeType string

// RecommendedAction is the action Radar recommends taking for a payment.
type RecommendedAction string

// PaymentEvaluation is the result of Radar evaluating the fraud risk of a
// payment processed outside of Stripe.
type PaymentEvaluation struct {
	CreatedAt       stripeapi.Timestamp `json:"created_at"`
	CustomerDetails *CustomerDetails    `json:"customer_details"`
	ID              PaymentEvaluationID `json:"id"`
	Insights        Insights            `json:"insights"`
	Livemode        bool                `json:"livemode"`
	Metadata        stripeapi.Metadata  `json:"metadata"`
	Outcome         *Outcome            `json:"outcome"`
	PaymentDetails  *PaymentDetails     `json:"payment_details"`
}

type CustomerDetails struct {
	Customer *string `json:"customer"`
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
}

type PaymentDetails struct {
	Amount              int64              `json:"amount"`
	Currency            stripeapi.Currency `json:"currency"`
	Description         *string            `json:"description"`
	StatementDescriptor *string            `json:"statement_descriptor"`
	PaymentMethodDetails struct {
		PaymentMethod string `json:"payment_method"`
	} `json:"payment_method_details"`
}

// Insights are the risk signals Radar derived for a PaymentEvaluation.
type Insights struct {
	CardTesting *struct {
		RiskScore int64 `json:"risk_score"`
	} `json:"card_testing"`

	EvaluatedAt stripeapi.Timestamp `json:"evaluated_at"`

	FraudulentDispute *struct {
		RecommendedAction RecommendedAction `json:"recommended_action"`
		RiskScore         int64             `json:"risk_score"`
	} `json:"fraudulent_dispute"`
}

// Outcome is the outcome of the payment that was evaluated, as reported back
// to Radar. Only the field matching the Type will be set.
type Outcome struct {
	Rejected *struct {
		Card *RejectedCard `json:"card"`
	} `json:"rejected"`

	Succeeded *struct {
		Card *SucceededCard `json:"card"`
	} `json:"succeeded"`

	Type OutcomeType `json:"type"`
}

type SucceededCard struct {
	AddressLine1Check      CheckResult `json:"address_line1_check"`
	AddressPostalCodeCheck CheckResult `json:"address_postal_code_check"`
	CVCCheck               CheckResult `json:"cvc_check"`
}

type RejectedCard struct {
	AddressLine1Check      CheckResult  `json:"address_line1_check"`
	AddressPostalCodeCheck CheckResult  `json:"address_postal_code_check"`
	CVCCheck               CheckResult  `json:"cvc_check"`
	Reason                 RejectReason `json:"reason"`
}

const (
	CheckFail        CheckResult = "fail"
	CheckPass        CheckResult = "pass"
	CheckUnavailable CheckResult = "unavailable"
	CheckUnchecked   CheckResult = "unchecked"

	RejectAuthenticationFailed RejectReason = "authentication_failed"
	RejectDoNotHonor           RejectReason = "do_not_honor"
	RejectExpired              RejectReason = "expired"
	RejectIncorrectCVC         RejectReason = "incorrect_cvc"
	RejectIncorrectNumber      RejectReason = "incorrect_number"
	RejectIncorrectPostalCode  RejectReason = "incorrect_postal_code"
	RejectInsufficientFunds    RejectReason = "insufficient_funds"
	RejectInvalidAccount       RejectReason = "invalid_account"
	RejectLostCard             RejectReason = "lost_card"
	RejectOther                RejectReason = "other"
	RejectProcessingError      RejectReason = "processing_error"
	RejectReportedStolen       RejectReason = "reported_stolen"
	RejectTryAgainLater        RejectReason = "try_again_later"

	OutcomeRejected  OutcomeType = "rejected"
	OutcomeSucceeded OutcomeType = "succeeded"

	ActionBlock    RecommendedAction = "block"
	ActionContinue RecommendedAction = "continue"
)

var (
	checkResults = stripeapi.NewEnumSet("radar.payment_evaluation.check",
		CheckFail,
		CheckPass,
		CheckUnavailable,
		CheckUnchecked,
	)

	rejectReasons = stripeapi.NewEnumSet("radar.payment_evaluation.outcome.rejected.card.reason",
		RejectAuthenticationFailed,
		RejectDoNotHonor,
		RejectExpired,
		RejectIncorrectCVC,
		RejectIncorrectNumber,
		RejectIncorrectPostalCode,
		RejectInsufficientFunds,
		RejectInvalidAccount,
		RejectLostCard,
		RejectOther,
		RejectProcessingError,
		RejectReportedStolen,
		RejectTryAgainLater,
	)

	outcomeTypes = stripeapi.NewEnumSet("radar.payment_evaluation.outcome.type",
		OutcomeRejected,
		OutcomeSucceeded,
	)

	recommendedActions = stripeapi.NewEnumSet("radar.payment_evaluation.recommended_action",
		ActionBlock,
		ActionContinue,
	)

	_ stripeapi.Object = (*PaymentEvaluation)(nil)
)

func (id PaymentEvaluationID) String() string { return string(id) }

func (r CheckResult) Known() bool { return checkResults.Known(r) }

func (r *CheckResult) UnmarshalText(text []byte) error { return checkResults.UnmarshalOpen(r, text) }

func (r RejectReason) Known() bool { return rejectReasons.Known(r) }

func (r *RejectReason) UnmarshalText(text []byte) error { return rejectReasons.UnmarshalOpen(r, text) }

func (t OutcomeType) Known() bool { return outcomeTypes.Known(t) }

func (t *OutcomeType) UnmarshalText(text []byte) error { return outcomeTypes.UnmarshalOpen(t, text) }

func (a RecommendedAction) Known() bool { return recommendedActions.Known(a) }

func (a *RecommendedAction) UnmarshalText(text []byte) error {
	return recommendedActions.UnmarshalOpen(a, text)
}

func (e *PaymentEvaluation) GetID() string { return string(e.ID) }

func (*PaymentEvaluation) ObjectName() string { return "radar.payment_evaluation" }

func (e *PaymentEvaluation) UnmarshalJSON(data []byte) error {
	var e1 PaymentEvaluation

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("created_at", &e1.CreatedAt),
		stripeapi.Optional("customer_details", &e1.CustomerDetails),
		stripeapi.Required("id", &e1.ID),
		stripeapi.Required("insights", &e1.Insights),
		stripeapi.Required("livemode", &e1.Livemode),
		stripeapi.Optional("metadata", &e1.Metadata),
		stripeapi.Optional("outcome", &e1.Outcome),
		stripeapi.Optional("payment_details", &e1.PaymentDetails),
	)

	if err != nil {
		return err
	}
	(*e) = e1
	return nil
}

func (e PaymentEvaluation) MarshalJSON() ([]byte, error) {
	type paymentEvaluation PaymentEvaluation
	return stripeapi.MarshalObject(e.ObjectName(), paymentEvaluation(e))
}
