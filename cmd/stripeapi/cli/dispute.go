package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/core"
)

func newDisputesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disputes",
		Short: "Manage disputes",
	}

	var (
		charge        string
		paymentIntent string
		after         int64
		before        int64
		limit         int64
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List every dispute, paging through the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := core.NewListDisputes().Limit(limit)

			if charge != "" {
				req.Charge(core.ChargeID(charge))
			}

			if paymentIntent != "" {
				req.PaymentIntent(core.PaymentIntentID(paymentIntent))
			}

			if q := createdRange(after, before); q != nil {
				req.Created(q)
			}

			disputes, err := stripeapi.Collect(req.Paginate(cmd.Context(), a.client))

			if err != nil {
				return err
			}
			return a.print(disputes)
		},
	}

	list.Flags().StringVar(&charge, "charge", "", "only list disputes for the given charge")
	list.Flags().StringVar(&paymentIntent, "payment-intent", "", "only list disputes for the given payment intent")
	list.Flags().Int64Var(&after, "created-after", 0, "only list disputes created at or after the given unix time")
	list.Flags().Int64Var(&before, "created-before", 0, "only list disputes created before the given unix time")
	list.Flags().Int64Var(&limit, "limit", 100, "the number of disputes to request per page")

	closeCmd := &cobra.Command{
		Use:   "close ID",
		Short: "Close a dispute, accepting it as lost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := core.NewCloseDispute(core.DisputeID(args[0])).Send(cmd.Context(), a.client)

			if err != nil {
				return err
			}
			return a.print(d)
		},
	}

	cmd.AddCommand(list, closeCmd)
	return cmd
}

// createdRange returns the RangeQuery for the given bounds, or nil if neither
// bound is set.
func createdRange(after, before int64) *stripeapi.RangeQuery {
	switch {
	case after > 0 && before > 0:
		return stripeapi.Between(stripeapi.Timestamp(after), stripeapi.Timestamp(before))
	case after > 0:
		t := stripeapi.Timestamp(after)
		return &stripeapi.RangeQuery{Gte: &t}
	case before > 0:
		return stripeapi.Before(stripeapi.Timestamp(before))
	}
	return nil
}
