package connect

import (
	"context"

	"github.com/andrewpillar/stripeapi"
)

// ScopeParamsType is the type of scope given in a request for secrets.
type ScopeParamsType string

// ScopeParams is the scope of the secrets being requested. User must be set
// if the Type is ScopeParamsUser.
type ScopeParams struct {
	Type ScopeParamsType `form:"type"`
	User *string         `form:"user"`
}

// ListSecretsParams are the parameters for listing the secrets in a scope.
type ListSecretsParams struct {
	stripeapi.ListParams

	Scope ScopeParams `form:"scope"`
}

// FindSecretParams are the parameters for finding a secret by name.
type FindSecretParams struct {
	Expand []string    `form:"expand"`
	Name   string      `form:"name"`
	Scope  ScopeParams `form:"scope"`
}

// CreateSecretParams are the parameters for creating, or replacing a secret.
type CreateSecretParams struct {
	Expand    []string             `form:"expand"`
	ExpiresAt *stripeapi.Timestamp `form:"expires_at"`
	Name      string               `form:"name"`
	Payload   string               `form:"payload"`
	Scope     ScopeParams          `form:"scope"`
}

// DeleteSecretWhereParams are the parameters for deleting a secret by name.
type DeleteSecretWhereParams struct {
	Expand []string    `form:"expand"`
	Name   string      `form:"name"`
	Scope  ScopeParams `form:"scope"`
}

// ListSecrets lists the secrets stored in a scope. The payloads of the
// secrets are not returned.
type ListSecrets struct {
	stripeapi.Returns[stripeapi.List[*AppsSecret]]

	params ListSecretsParams
}

// FindSecret finds a secret by its name within a scope. This is the only way
// of retrieving the payload of a secret.
type FindSecret struct {
	stripeapi.Returns[AppsSecret]

	params FindSecretParams
}

// CreateSecret creates a secret, replacing any existing secret of the same
// name within the scope.
type CreateSecret struct {
	stripeapi.Returns[AppsSecret]

	params CreateSecretParams
}

// DeleteSecretWhere deletes the secret of the given name within a scope.
type DeleteSecretWhere struct {
	stripeapi.Returns[AppsSecret]

	params DeleteSecretWhereParams
}

const (
	ScopeParamsAccount ScopeParamsType = "account"
	ScopeParamsUser    ScopeParamsType = "user"
)

var (
	scopeParamsTypes = stripeapi.NewEnumSet("scope.type", ScopeParamsAccount, ScopeParamsUser)

	_ stripeapi.Request[stripeapi.List[*AppsSecret]] = (*ListSecrets)(nil)
	_ stripeapi.Request[AppsSecret]                  = (*FindSecret)(nil)
	_ stripeapi.Request[AppsSecret]                  = (*CreateSecret)(nil)
	_ stripeapi.Request[AppsSecret]                  = (*DeleteSecretWhere)(nil)
)

func ParseScopeParamsType(s string) (ScopeParamsType, error) { return scopeParamsTypes.Parse(s) }

func (t *ScopeParamsType) UnmarshalText(text []byte) error {
	return scopeParamsTypes.UnmarshalClosed(t, text)
}

// AccountScope returns the scope of the account the App is installed on.
func AccountScope() ScopeParams {
	return ScopeParams{Type: ScopeParamsAccount}
}

// UserScope returns the scope of the given user.
func UserScope(user string) ScopeParams {
	return ScopeParams{
		Type: ScopeParamsUser,
		User: stripeapi.String(user),
	}
}

func NewListSecrets(scope ScopeParams) *ListSecrets {
	return &ListSecrets{
		params: ListSecretsParams{
			Scope: scope,
		},
	}
}

func (r *ListSecrets) EndingBefore(id AppsSecretID) *ListSecrets {
	r.params.EndingBefore = stripeapi.String(string(id))
	return r
}

func (r *ListSecrets) Expand(fields ...string) *ListSecrets {
	r.params.Expand = fields
	return r
}

func (r *ListSecrets) Limit(n int64) *ListSecrets {
	r.params.Limit = stripeapi.Int64(n)
	return r
}

func (r *ListSecrets) StartingAfter(id AppsSecretID) *ListSecrets {
	r.params.StartingAfter = stripeapi.String(string(id))
	return r
}

func (r *ListSecrets) Params() *ListSecretsParams { return &r.params }

func (r *ListSecrets) Describe() stripeapi.Description {
	return stripeapi.Get("/apps/secrets", &r.params)
}

func (r *ListSecrets) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*stripeapi.List[*AppsSecret], error) {
	return stripeapi.Execute[stripeapi.List[*AppsSecret]](ctx, b, r, opts...)
}

func (r *ListSecrets) Paginate(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) *stripeapi.Iter[*AppsSecret] {
	return stripeapi.Paginate[*AppsSecret](ctx, b, r.Describe(), opts...)
}

func NewFindSecret(name string, scope ScopeParams) *FindSecret {
	return &FindSecret{
		params: FindSecretParams{
			Name:  name,
			Scope: scope,
		},
	}
}

func (r *FindSecret) Expand(fields ...string) *FindSecret {
	r.params.Expand = fields
	return r
}

func (r *FindSecret) Params() *FindSecretParams { return &r.params }

func (r *FindSecret) Describe() stripeapi.Description {
	return stripeapi.Get("/apps/secrets/find", &r.params)
}

func (r *FindSecret) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*AppsSecret, error) {
	return stripeapi.Execute[AppsSecret](ctx, b, r, opts...)
}

func NewCreateSecret(name, payload string, scope ScopeParams) *CreateSecret {
	return &CreateSecret{
		params: CreateSecretParams{
			Name:    name,
			Payload: payload,
			Scope:   scope,
		},
	}
}

func (r *CreateSecret) Expand(fields ...string) *CreateSecret {
	r.params.Expand = fields
	return r
}

// ExpiresAt sets the time the secret expires, after which it is deleted.
func (r *CreateSecret) ExpiresAt(t stripeapi.Timestamp) *CreateSecret {
	r.params.ExpiresAt = &t
	return r
}

func (r *CreateSecret) Params() *CreateSecretParams { return &r.params }

func (r *CreateSecret) Describe() stripeapi.Description {
	return stripeapi.Post("/apps/secrets", &r.params)
}

func (r *CreateSecret) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*AppsSecret, error) {
	return stripeapi.Execute[AppsSecret](ctx, b, r, opts...)
}

func NewDeleteSecretWhere(name string, scope ScopeParams) *DeleteSecretWhere {
	return &DeleteSecretWhere{
		params: DeleteSecretWhereParams{
			Name:  name,
			Scope: scope,
		},
	}
}

func (r *DeleteSecretWhere) Expand(fields ...string) *DeleteSecretWhere {
	r.params.Expand = fields
	return r
}

func (r *DeleteSecretWhere) Params() *DeleteSecretWhereParams { return &r.params }

func (r *DeleteSecretWhere) Describe() stripeapi.Description {
	return stripeapi.Post("/apps/secrets/delete", &r.params)
}

func (r *DeleteSecretWhere) Send(ctx context.Context, b stripeapi.Backend, opts ...stripeapi.RequestOption) (*AppsSecret, error) {
	return stripeapi.Execute[AppsSecret](ctx, b, r, opts...)
}
