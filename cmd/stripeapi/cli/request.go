package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi"
)

func newRequestCmd(a *app) *cobra.Command {
	var (
		data           []string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Make a request to an arbitrary endpoint",
		Long: `Make a request to an arbitrary endpoint of the Stripe API. Parameters are
given as key=value pairs, nested parameters use brackets in the key,

    stripeapi request POST /customers -d email=jane@example.com -d metadata[plan]=pro`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseData(data)

			if err != nil {
				return err
			}

			ctx := cmd.Context()
			path := args[1]

			var body []byte

			switch strings.ToUpper(args[0]) {
			case "GET":
				body, err = a.client.Get(ctx, path, params)
			case "POST":
				if idempotencyKey == "" {
					idempotencyKey = stripeapi.NewIdempotencyKey()
				}
				body, err = a.client.Post(ctx, path, params, stripeapi.IdempotencyKey(idempotencyKey))
			case "DELETE":
				body, err = a.client.Delete(ctx, path)
			default:
				return fmt.Errorf("unsupported method %q", args[0])
			}

			if err != nil {
				return err
			}

			var buf bytes.Buffer

			if err := json.Indent(&buf, body, "", "  "); err != nil {
				return err
			}

			buf.WriteByte('\n')

			_, err = a.out.Write(buf.Bytes())
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&data, "data", "d", nil, "a key=value parameter to send")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "the idempotency key for a POST request (default is a random key)")

	return cmd
}

func parseData(data []string) (stripeapi.Params, error) {
	params := make(stripeapi.Params)

	for _, kv := range data {
		k, v, ok := strings.Cut(kv, "=")

		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", kv)
		}
		params[k] = v
	}
	return params, nil
}
