package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/andrewpillar/stripeapi"
	"github.com/andrewpillar/stripeapi/core"
	"github.com/andrewpillar/stripeapi/product"
	"github.com/andrewpillar/stripeapi/store"
	"github.com/andrewpillar/stripeapi/terminal"
)

type syncer struct {
	object string
	sync   func(context.Context, stripeapi.Backend, store.Store) (int, error)
}

// syncers are the resources that can be synced, the type of object each is
// stored as, and the functions that sync them into a Store.
var syncers = map[string]syncer{
	"promotion-codes": {
		object: "promotion_code",
		sync: func(ctx context.Context, b stripeapi.Backend, s store.Store) (int, error) {
			return store.Sync(s, product.NewListPromotionCodes().Limit(100).Paginate(ctx, b))
		},
	},
	"disputes": {
		object: "dispute",
		sync: func(ctx context.Context, b stripeapi.Backend, s store.Store) (int, error) {
			return store.Sync(s, core.NewListDisputes().Limit(100).Paginate(ctx, b))
		},
	},
	"terminal-locations": {
		object: "terminal.location",
		sync: func(ctx context.Context, b stripeapi.Backend, s store.Store) (int, error) {
			return store.Sync(s, terminal.NewListLocations().Limit(100).Paginate(ctx, b))
		},
	},
}

// progressStore increments a progress bar for each Object put into the
// underlying Store.
type progressStore struct {
	store.Store

	bar *mpb.Bar
}

func (s progressStore) Put(obj stripeapi.Object) error {
	if err := s.Store.Put(obj); err != nil {
		return err
	}

	s.bar.Increment()
	return nil
}

func newSyncCmd(a *app) *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:       "sync RESOURCE",
		Short:     "Mirror every object of a resource into the database",
		Long:      "Mirror every object of a resource into the database given by DATABASE_URL. The resource is one of promotion-codes, disputes, or terminal-locations. Objects in the database that were not seen during the sync are reported as stale, and removed with --prune.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"promotion-codes", "disputes", "terminal-locations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sy, ok := syncers[args[0]]

			if !ok {
				return fmt.Errorf("cannot sync unknown resource %q", args[0])
			}

			s, closeStore, err := a.openStore()

			if err != nil {
				return err
			}

			defer closeStore()

			p := mpb.NewWithContext(cmd.Context(), mpb.WithOutput(a.progress))

			bar := p.New(0, mpb.BarStyle(),
				mpb.PrependDecorators(decor.Name(args[0], decor.WCSyncSpaceR)),
				mpb.AppendDecorators(decor.CurrentNoUnit("%d synced")),
			)

			start := time.Now()

			n, err := sy.sync(cmd.Context(), a.client, progressStore{Store: s, bar: bar})

			if err != nil {
				bar.Abort(false)
			} else {
				bar.SetTotal(-1, true)
			}
			p.Wait()

			if err != nil {
				return err
			}

			stale, err := store.Stale(s, sy.object, start)

			if err != nil {
				return err
			}

			log := a.log.WithField("resource", args[0])

			for _, r := range stale {
				if !prune {
					log.WithField("id", r.ID).Warn("stale object")
					continue
				}

				if err := s.Remove(r.ID); err != nil {
					return err
				}
				log.WithField("id", r.ID).Info("pruned stale object")
			}

			log.WithField("count", n).WithField("stale", len(stale)).Info("sync complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&prune, "prune", false, "remove stale objects from the database")
	return cmd
}

// openStore opens the Store objects are synced into. Without a database URL
// the objects are held in memory, and are lost once the command exits.
func (a *app) openStore() (store.Store, func(), error) {
	if a.cfg.DatabaseURL == "" {
		a.log.Warn("no database_url configured, syncing into memory")
		return store.NewMemory(), func() {}, nil
	}

	db, err := sql.Open("pgx", a.cfg.DatabaseURL)

	if err != nil {
		return nil, nil, err
	}

	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.PSQL{DB: db}, func() { db.Close() }, nil
}
