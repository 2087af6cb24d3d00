package connect

import (
	"github.com/andrewpillar/stripeapi"
)

type AppsSecretID string

// ScopeType is the type of scope a secret is stored in, as received from
// Stripe.
type ScopeType string

// AppsSecret is a secret stored by a Stripe App. Secrets are scoped either to
// the account the App is installed on, or to a single user of that account.
type AppsSecret struct {
	Created   stripeapi.Timestamp  `json:"created"`
	Deleted   *bool                `json:"deleted"`
	ExpiresAt *stripeapi.Timestamp `json:"expires_at"`
	ID        AppsSecretID         `json:"id"`
	Livemode  bool                 `json:"livemode"`
	Name      string               `json:"name"`
	Payload   *string              `json:"payload"`
	Scope     Scope                `json:"scope"`
}

// Scope is the scope of an AppsSecret. User is only set if the Type is
// ScopeTypeUser.
type Scope struct {
	Type ScopeType `json:"type"`
	User *string   `json:"user"`
}

const (
	ScopeTypeAccount ScopeType = "account"
	ScopeTypeUser    ScopeType = "user"
)

var (
	scopeTypes = stripeapi.NewEnumSet("apps.secret.scope.type", ScopeTypeAccount, ScopeTypeUser)

	_ stripeapi.Object = (*AppsSecret)(nil)
)

func (id AppsSecretID) String() string { return string(id) }

func (t ScopeType) Known() bool { return scopeTypes.Known(t) }

func (t *ScopeType) UnmarshalText(text []byte) error { return scopeTypes.UnmarshalOpen(t, text) }

func (s *AppsSecret) GetID() string { return string(s.ID) }

func (*AppsSecret) ObjectName() string { return "apps.secret" }

func (s *AppsSecret) UnmarshalJSON(data []byte) error {
	var s1 AppsSecret

	err := stripeapi.DecodeObject(data,
		stripeapi.Required("created", &s1.Created),
		stripeapi.Optional("deleted", &s1.Deleted),
		stripeapi.Optional("expires_at", &s1.ExpiresAt),
		stripeapi.Required("id", &s1.ID),
		stripeapi.Required("livemode", &s1.Livemode),
		stripeapi.Required("name", &s1.Name),
		stripeapi.Optional("payload", &s1.Payload),
		stripeapi.Required("scope", &s1.Scope),
	)

	if err != nil {
		return err
	}
	(*s) = s1
	return nil
}

func (s AppsSecret) MarshalJSON() ([]byte, error) {
	type appsSecret AppsSecret
	return stripeapi.MarshalObject(s.ObjectName(), appsSecret(s))
}
