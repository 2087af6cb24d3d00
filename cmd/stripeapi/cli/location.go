package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/terminal"
)

func newTerminalLocationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminal-locations",
		Short: "Manage terminal locations",
	}

	var file string

	get := &cobra.Command{
		Use:   "get [ID...]",
		Short: "Retrieve terminal locations, including the tombstones of deleted ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := readIDs(args, file)

			if err != nil {
				return err
			}

			locs, err := stripeapi.RetrieveAll(cmd.Context(), ids, a.cfg.Concurrency,
				func(ctx context.Context, id string) (*terminal.MaybeDeletedLocation, error) {
					return terminal.NewRetrieveLocation(terminal.LocationID(id)).Send(ctx, a.client)
				},
				a.logError,
			)

			if err != nil {
				return err
			}
			return a.print(compact(locs))
		},
	}

	del := &cobra.Command{
		Use:   "delete [ID...]",
		Short: "Delete terminal locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := readIDs(args, file)

			if err != nil {
				return err
			}

			deleted, err := stripeapi.RetrieveAll(cmd.Context(), ids, a.cfg.Concurrency,
				func(ctx context.Context, id string) (*terminal.DeletedLocation, error) {
					return terminal.NewDeleteLocation(terminal.LocationID(id)).Send(ctx, a.client)
				},
				a.logError,
			)

			if err != nil {
				return err
			}
			return a.print(compact(deleted))
		},
	}

	for _, c := range []*cobra.Command{get, del} {
		c.Flags().StringVarP(&file, "file", "f", "", "read the IDs from the given file, one per line")
	}

	cmd.AddCommand(get, del)
	return cmd
}

// readIDs returns the given IDs, along with any read from the given file.
func readIDs(args []string, file string) ([]string, error) {
	ids := append([]string{}, args...)

	if file != "" {
		f, err := os.Open(file)

		if err != nil {
			return nil, err
		}

		defer f.Close()

		more, err := stripeapi.ReadIDs(f)

		if err != nil {
			return nil, err
		}
		ids = append(ids, more...)
	}

	if len(ids) == 0 {
		return nil, errNoIDs
	}
	return ids, nil
}

// compact drops the nil results left by IDs that could not be retrieved.
func compact[T any](objs []*T) []*T {
	res := make([]*T, 0, len(objs))

	for _, obj := range objs {
		if obj != nil {
			res = append(res, obj)
		}
	}
	return res
}
