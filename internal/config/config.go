// Package config loads the configuration of the command line client from
// flags, the environment, an optional config file, and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stripe/stripe-go/v72"
	"golang.org/x/time/rate"

	"github.com/andrewpillar/stripeapi"
)

type Config struct {
	APIKey      string
	APIVersion  string
	Account     string
	APIBase     string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
	RateLimit   float64
	Concurrency int
}

// envs maps each key to the environment variable it is read from.
var envs = map[string]string{
	"api_key":      "STRIPE_SECRET_KEY",
	"api_version":  "STRIPE_API_VERSION",
	"account":      "STRIPE_ACCOUNT",
	"api_base":     "STRIPE_API_BASE",
	"database_url": "DATABASE_URL",
	"log_level":    "STRIPEAPI_LOG_LEVEL",
	"log_format":   "STRIPEAPI_LOG_FORMAT",
	"rate_limit":   "STRIPEAPI_RATE_LIMIT",
	"concurrency":  "STRIPEAPI_CONCURRENCY",
}

var (
	ErrNoAPIKey     = errors.New("api key is required, set STRIPE_SECRET_KEY")
	ErrBadAPIKey    = errors.New("api key must be a secret key (sk_) or a restricted key (rk_)")
	ErrBadRateLimit = errors.New("rate limit cannot be negative")
)

// Setup prepares the given viper instance for Load. If file is empty then the
// config file is looked for as .stripeapi in the home directory. A .env file
// in the working directory is loaded into the environment if present.
func Setup(v *viper.Viper, file string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := homedir.Dir()

		if err != nil {
			return err
		}

		v.AddConfigPath(home)
		v.SetConfigName(".stripeapi")
	}

	v.SetDefault("api_version", stripeapi.DefaultAPIVersion)
	v.SetDefault("api_base", stripe.APIURL+"/v1")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("rate_limit", 0)
	v.SetDefault("concurrency", runtime.GOMAXPROCS(0)+10)

	for key, env := range envs {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notfound viper.ConfigFileNotFoundError

		// An explicitly given file must exist.
		if file != "" || !errors.As(err, &notfound) {
			return fmt.Errorf("read config %s: %w", filepath.Base(v.ConfigFileUsed()), err)
		}
	}
	return nil
}

// Load reads the Config from the given viper instance and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		APIKey:      strings.TrimSpace(v.GetString("api_key")),
		APIVersion:  v.GetString("api_version"),
		Account:     v.GetString("account"),
		APIBase:     v.GetString("api_base"),
		DatabaseURL: v.GetString("database_url"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		RateLimit:   v.GetFloat64("rate_limit"),
		Concurrency: v.GetInt("concurrency"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}

	if !strings.HasPrefix(c.APIKey, "sk_") && !strings.HasPrefix(c.APIKey, "rk_") {
		return ErrBadAPIKey
	}

	if c.RateLimit < 0 {
		return ErrBadRateLimit
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}

// Client returns the Client configured by the Config, logging to the given
// logger.
func (c *Config) Client(log logrus.FieldLogger) stripeapi.Client {
	opts := []stripeapi.Option{
		stripeapi.WithLogger(log),
	}

	if c.APIBase != "" {
		opts = append(opts, stripeapi.WithEndpoint(c.APIBase))
	}

	if c.Account != "" {
		opts = append(opts, stripeapi.WithAccount(c.Account))
	}

	if c.RateLimit > 0 {
		opts = append(opts, stripeapi.WithRateLimit(rate.Limit(c.RateLimit), 1))
	}
	return stripeapi.NewClient(c.APIVersion, c.APIKey, opts...)
}
