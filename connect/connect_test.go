package connect

import (
	"context"
	"net/http"
	"testing"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/internal/stripetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretJSON = `{
	"id": "appsecret_1",
	"object": "apps.secret",
	"created": 1700000000,
	"expires_at": null,
	"livemode": false,
	"name": "api-token",
	"payload": "s3cr3t",
	"scope": {"type": "user", "user": "usr_1"}
}`

func newClient(srv *stripetest.Server) stripeapi.Client {
	return stripeapi.NewClient(stripeapi.DefaultAPIVersion, "sk_test_123",
		stripeapi.WithEndpoint(srv.Endpoint()),
		stripeapi.WithHTTPClient(srv.Client()),
	)
}

func TestFindSecret(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("GET", "/apps/secrets/find", http.StatusOK, secretJSON)

	secret, err := NewFindSecret("api-token", UserScope("usr_1")).Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", *secret.Payload)
	assert.Equal(t, ScopeTypeUser, secret.Scope.Type)
	assert.Equal(t, "usr_1", *secret.Scope.User)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "name=api-token&scope[type]=user&scope[user]=usr_1", req.RawQuery)
	assert.Equal(t, "", req.Body)
}

func TestSecretParams(t *testing.T) {
	tests := []struct {
		desc     stripeapi.Description
		path     string
		expected string
	}{
		{
			NewListSecrets(AccountScope()).Limit(5).Describe(),
			"/apps/secrets",
			"limit=5&scope[type]=account",
		},
		{
			NewCreateSecret("api-token", "s3cr3t", UserScope("usr_1")).ExpiresAt(1700000000).Describe(),
			"/apps/secrets",
			"expires_at=1700000000&name=api-token&payload=s3cr3t&scope[type]=user&scope[user]=usr_1",
		},
		{
			NewDeleteSecretWhere("api-token", AccountScope()).Describe(),
			"/apps/secrets/delete",
			"name=api-token&scope[type]=account",
		},
	}

	for i, test := range tests {
		assert.Equal(t, test.path, test.desc.Path, "tests[%d]", i)
		assert.Equal(t, test.expected, test.desc.Form().Encode(), "tests[%d]", i)
	}

	_, err := ParseScopeParamsType("team")
	assert.Error(t, err)
}

func TestDeleteSecretWhere(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/apps/secrets/delete", http.StatusOK, `{
		"id": "appsecret_1",
		"object": "apps.secret",
		"created": 1700000000,
		"deleted": true,
		"livemode": false,
		"name": "api-token",
		"scope": {"type": "organization"}
	}`)

	secret, err := NewDeleteSecretWhere("api-token", AccountScope()).Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	require.NotNil(t, secret.Deleted)
	assert.True(t, *secret.Deleted)
	assert.Nil(t, secret.Payload)
	assert.False(t, secret.Scope.Type.Known())
	assert.Equal(t, ScopeType("organization"), secret.Scope.Type)
}

func TestCreateAccountSession(t *testing.T) {
	srv := stripetest.NewServer(t)
	srv.Handle("POST", "/account_sessions", http.StatusOK, `{
		"object": "account_session",
		"account": "acct_1",
		"client_secret": "_secret",
		"components": {
			"account_onboarding": {"enabled": true, "features": {"external_account_collection": true}},
			"payments": {"enabled": true, "features": {"refund_management": true, "dispute_management": false}}
		},
		"expires_at": 1700001800,
		"livemode": false
	}`)

	sess, err := NewCreateAccountSession("acct_1", ComponentsParams{
		AccountOnboarding: &AccountComponentParams{Enabled: true},
		Payments: &PaymentsComponentParams{
			Enabled: true,
			Features: &PaymentsFeaturesParams{
				RefundManagement: stripeapi.Bool(true),
			},
		},
	}).Send(context.Background(), newClient(srv))

	require.NoError(t, err)
	assert.Equal(t, "acct_1", sess.Account)
	assert.True(t, sess.Components.AccountOnboarding.Features.ExternalAccountCollection)
	assert.True(t, sess.Components.Payments.Features.RefundManagement)
	assert.False(t, sess.Components.Payouts.Enabled)

	req, ok := srv.LastRequest()
	require.True(t, ok)

	assert.Equal(t, "account=acct_1&components[account_onboarding][enabled]=true&components[payments][enabled]=true&components[payments][features][refund_management]=true", req.Body)
}
