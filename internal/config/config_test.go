package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]interface{}
		err      error
	}{
		{"secret key", map[string]interface{}{"api_key": "sk_test_123"}, nil},
		{"restricted key", map[string]interface{}{"api_key": " rk_test_123 "}, nil},
		{"no key", map[string]interface{}{}, ErrNoAPIKey},
		{"publishable key", map[string]interface{}{"api_key": "pk_test_123"}, ErrBadAPIKey},
		{"negative rate", map[string]interface{}{"api_key": "sk_test_123", "rate_limit": -1}, ErrBadRateLimit},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := viper.New()
			v.SetDefault("concurrency", 4)

			for k, val := range test.settings {
				v.Set(k, val)
			}

			cfg, err := Load(v)

			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, []string{"sk_test_123", "rk_test_123"}, cfg.APIKey)
		})
	}
}

func TestSetupFile(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_env")
	t.Setenv("STRIPE_ACCOUNT", "")

	file := filepath.Join(t.TempDir(), "stripeapi.yaml")

	err := os.WriteFile(file, []byte("account: acct_123\nrate_limit: 25\nlog_format: json\n"), 0o600)
	require.NoError(t, err)

	v := viper.New()

	require.NoError(t, Setup(v, file))

	cfg, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "sk_test_env", cfg.APIKey)
	assert.Equal(t, "acct_123", cfg.Account)
	assert.Equal(t, float64(25), cfg.RateLimit)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://api.stripe.com/v1", cfg.APIBase)
	assert.Greater(t, cfg.Concurrency, 10)
}

func TestSetupMissingFile(t *testing.T) {
	v := viper.New()

	err := Setup(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
