package stripeapi

import (
	"strings"
	"time"

	"github.com/stripe/stripe-go/v72"
)

// Currency is a three-letter ISO currency code. Currencies are always sent to
// Stripe in lowercase.
type Currency string

// Timestamp is a point in time as seconds since the Unix epoch, the way Stripe
// represents every date in its API.
type Timestamp int64

// Metadata is the set of key/value pairs that can be attached to most objects
// in Stripe.
type Metadata map[string]string

// Address is the postal address shared by many objects in Stripe.
type Address struct {
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	PostalCode *string `json:"postal_code"`
	State      *string `json:"state"`
}

// AddressParams is the postal address as given in a request.
type AddressParams struct {
	City       *string `form:"city"`
	Country    *string `form:"country"`
	Line1      *string `form:"line1"`
	Line2      *string `form:"line2"`
	PostalCode *string `form:"postal_code"`
	State      *string `form:"state"`
}

// Deleted is the tombstone returned in place of an object that has been
// deleted.
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

var (
	_ FormAppender = Currency("")
	_ FormAppender = Timestamp(0)
)

// String returns a pointer to the given string, for setting optional
// parameters.
func String(s string) *string { return stripe.String(s) }

// Int64 returns a pointer to the given int64.
func Int64(i int64) *int64 { return stripe.Int64(i) }

// Bool returns a pointer to the given bool.
func Bool(b bool) *bool { return stripe.Bool(b) }

// TimestampOf returns the Timestamp for the given time.
func TimestampOf(t time.Time) Timestamp { return Timestamp(t.Unix()) }

func (c Currency) AppendForm(f *Form, key string) {
	f.Add(key, strings.ToLower(string(c)))
}

func (t Timestamp) AppendForm(f *Form, key string) {
	AppendForm(f, key, int64(t))
}

// Time returns the Timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

func (d *Deleted) UnmarshalJSON(data []byte) error {
	var d1 Deleted

	err := DecodeObject(data,
		Required("id", &d1.ID),
		Required("deleted", &d1.Deleted),
	)

	if err != nil {
		return err
	}
	(*d) = d1
	return nil
}

// GetID returns the ID of the deleted object.
func (d *Deleted) GetID() string { return d.ID }
