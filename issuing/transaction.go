// Package issuing provides the Issuing resources of the Stripe API, for the
// transactions made with cards issued through Stripe.
package issuing

import (
	"github.com/andrewpillar/stripeapi"
)

type TransactionID string

// Wallet is the digital wallet used for a Transaction.
type Wallet string

// TransactionType is the type of a Transaction.
type TransactionType string

// Transaction is a capture or refund made with an issued card.
type Transaction struct {
	Amount           int64                           `json:"amount"`
	AmountDetails    *AmountDetails                  `json:"amount_details"`
	Authorization    stripeapi.Expandable[Reference] `json:"authorization"`
	Card             stripeapi.Expandable[Reference] `json:"card"`
	Cardholder       stripeapi.Expandable[Reference] `json:"cardholder"`
	Created          stripeapi.Timestamp             `json:"created"`
	Currency         stripeapi.Currency              `json:"currency"`
	Dispute          stripeapi.Expandable[Reference] `json:"dispute"`
	ID               TransactionID                   `json:"id"`
	Livemode         bool                            `json:"livemode"`
	MerchantAmount   int64                           `json:"merchant_amount"`
	MerchantCurrency stripeapi.Currency              `json:"merchant_currency"`
	MerchantData     MerchantData                    `json:"merchant_data"`
	Metadata         stripeapi.Metadata              `json:"metadata"`
	Type             TransactionType                 `json:"type"`
	Wallet           *Wallet                         `json:"wallet"`
}

type AmountDetails struct {
	ATMFee         *int64 `json:"atm_fee"`
	CashbackAmount *int64 `json:"cashback_amount"`
}

// MerchantData describes the merchant a Transaction was made with.
type MerchantData struct {
	Category   string  `json:"category"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Name       *string `json:"name"`
	NetworkID  string  `json:"network_id"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

// Reference is an expanded object related to a Transaction, such as its card
// or cardholder. Only the ID and type of the object are decoded.
type Reference struct {
	ID     string `json:"id"`
	Object string `json:"object"`
}

const (
	WalletApplePay   Wallet = "apple_pay"
	WalletGooglePay  Wallet = "google_pay"
	WalletSamsungPay Wallet = "samsung_pay"

	TransactionCapture TransactionType = "capture"
	TransactionRefund  TransactionType = "refund"
)

var (
	wallets = stripeapi.NewEnumSet("issuing.transaction.wallet",
		WalletApplePay,
		WalletGooglePay,
		WalletSamsungPay,
	)

	transactionTypes = stripeapi.NewEnumSet("issuing.transaction.type",
		TransactionCapture,
		TransactionRefund,
	)

	_ stripeapi.Object = (*Transaction)(nil)
)

func (id TransactionID) String() string { return string(id) }

func (w Wallet) Known() bool { return wallets.Known(w) }

func (w *Wallet) UnmarshalText(text []byte) error { return wallets.UnmarshalOpen(w, text) }

func (t TransactionType) Known() bool { return transactionTypes.Known(t) }

func (t *TransactionType) UnmarshalText(text []byte) error {
	return transactionTypes.UnmarshalOpen(t, text)
}

func (t *Transaction) GetID() string { return string(t.ID) }

func (*Transaction) ObjectName() string { return "issuing.transaction" }

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var t1 Transaction

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("amount", &t1.Amount),
		stripeapi.Optional("amount_details", &t1.AmountDetails),
		stripeapi.Optional("authorization", &t1.Authorization),
		stripeapi.Required("card", &t1.Card),
		stripeapi.Optional("cardholder", &t1.Cardholder),
		stripeapi.Required("created", &t1.Created),
		stripeapi.Required("currency", &t1.Currency),
		stripeapi.Optional("dispute", &t1.Dispute),
		stripeapi.Required("id", &t1.ID),
		stripeapi.Required("livemode", &t1.Livemode),
		stripeapi.Optional("merchant_amount", &t1.MerchantAmount),
		stripeapi.Optional("merchant_currency", &t1.MerchantCurrency),
		stripeapi.Optional("merchant_data", &t1.MerchantData),
		stripeapi.Optional("metadata", &t1.Metadata),
		stripeapi.Required("type", &t1.Type),
		stripeapi.Optional("wallet", &t1.Wallet),
	)

	if err != nil {
		return err
	}
	(*t) = t1
	return nil
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	type transaction Transaction
	return stripeapi.MarshalObject(t.ObjectName(), transaction(t))
}
