package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi/issuing"
)

func newIssuingTransactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issuing-transactions",
		Short: "Manage issuing transactions",
	}

	var expand []string

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve an issuing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := issuing.NewRetrieveTransaction(issuing.TransactionID(args[0])).
				Expand(expand...).
				Send(cmd.Context(), a.client)

			if err != nil {
				return err
			}

			if txn.Wallet != nil && !txn.Wallet.Known() {
				a.log.WithField("wallet", *txn.Wallet).Warn("transaction made with an unrecognized wallet")
			}
			return a.print(txn)
		},
	}

	get.Flags().StringSliceVar(&expand, "expand", nil, "the fields of the transaction to expand")

	cmd.AddCommand(get)
	return cmd
}
