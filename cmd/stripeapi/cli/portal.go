package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi/billing"
)

func newPortalSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal-session",
		Short: "Manage billing portal sessions",
	}

	var (
		customer      string
		returnURL     string
		locale        string
		configuration string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a billing portal session for a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := billing.NewCreateSession(customer)

			if returnURL != "" {
				req.ReturnURL(returnURL)
			}

			if configuration != "" {
				req.Configuration(configuration)
			}

			if locale != "" {
				l, err := billing.ParseLocale(locale)

				if err != nil {
					return err
				}
				req.Locale(l)
			}

			sess, err := req.Send(cmd.Context(), a.client)

			if err != nil {
				return err
			}
			return a.print(sess)
		},
	}

	create.Flags().StringVar(&customer, "customer", "", "the customer to create the session for")
	create.Flags().StringVar(&returnURL, "return-url", "", "the URL to return to from the portal")
	create.Flags().StringVar(&locale, "locale", "", "the locale to display the portal in")
	create.Flags().StringVar(&configuration, "configuration", "", "the portal configuration to use")
	create.MarkFlagRequired("customer")

	cmd.AddCommand(create)
	return cmd
}
