// Package cli implements the stripeapi command line client.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/internal/config"
	"github.com/andrewpillar/stripeapi/internal/logging"
)

// app is the state shared between commands once the configuration has been
// loaded.
type app struct {
	v        *viper.Viper
	cfgFile  string
	dump     bool
	out      io.Writer
	progress io.Writer

	cfg    *config.Config
	log    *logrus.Logger
	client stripeapi.Client
}

// Execute creates the root command tree and runs it.
func Execute(ctx context.Context, version string) error {
	a := &app{
		v:        viper.New(),
		out:      os.Stdout,
		progress: os.Stderr,
	}
	return newRootCmd(a, version).ExecuteContext(ctx)
}

func newRootCmd(a *app, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stripeapi",
		Short:   "Make typed requests to the Stripe API",
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := cmd.PersistentFlags()

	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.stripeapi.yaml)")
	flags.BoolVar(&a.dump, "dump", false, "dump the decoded Go values instead of printing JSON")
	flags.String("api-key", "", "the secret key to authenticate with")
	flags.String("account", "", "the connected account to make requests on behalf of")
	flags.String("log-level", "", "the level to log at")
	flags.String("log-format", "", "the format to log in, either text or json")

	a.v.BindPFlag("api_key", flags.Lookup("api-key"))
	a.v.BindPFlag("account", flags.Lookup("account"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("log_format", flags.Lookup("log-format"))

	cmd.AddCommand(newRequestCmd(a))
	cmd.AddCommand(newPortalSessionCmd(a))
	cmd.AddCommand(newPromotionCodesCmd(a))
	cmd.AddCommand(newDisputesCmd(a))
	cmd.AddCommand(newTerminalLocationsCmd(a))
	cmd.AddCommand(newIssuingTransactionsCmd(a))
	cmd.AddCommand(newSyncCmd(a))

	return cmd
}

func (a *app) setup() error {
	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)

	if err != nil {
		return err
	}

	log, err := logging.SetupLogging(cfg.LogLevel, cfg.LogFormat)

	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.client = cfg.Client(log)
	return nil
}

// print writes the given value to the output of the app as indented JSON, or
// as a spew dump if --dump was given.
func (a *app) print(v interface{}) error {
	if a.dump {
		spew.Fdump(a.out, v)
		return nil
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
