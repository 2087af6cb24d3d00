package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/product"
)

func newPromotionCodesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promotion-codes",
		Short: "Manage promotion codes",
	}

	var (
		active   bool
		code     string
		coupon   string
		customer string
		limit    int64
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List every promotion code, paging through the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := product.NewListPromotionCodes().Limit(limit)

			if cmd.Flags().Changed("active") {
				req.Active(active)
			}

			if code != "" {
				req.Code(code)
			}

			if coupon != "" {
				req.Coupon(product.CouponID(coupon))
			}

			if customer != "" {
				req.Customer(customer)
			}

			codes, err := stripeapi.Collect(req.Paginate(cmd.Context(), a.client))

			if err != nil {
				return err
			}
			return a.print(codes)
		},
	}

	list.Flags().BoolVar(&active, "active", false, "only list codes that are, or are not active")
	list.Flags().StringVar(&code, "code", "", "only list codes with the given code")
	list.Flags().StringVar(&coupon, "coupon", "", "only list codes for the given coupon")
	list.Flags().StringVar(&customer, "customer", "", "only list codes restricted to the given customer")
	list.Flags().Int64Var(&limit, "limit", 100, "the number of codes to request per page")

	cmd.AddCommand(list)
	return cmd
}
