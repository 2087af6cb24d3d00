package store

import (
	"database/sql"
	"time"

	"github.com/andrewpillar/query"

	"github.com/andrewpillar/stripeapi"
)

// PSQL provides a way of storing Stripe objects within PostgreSQL. Using this
// implementation of the Store interface requires the following schema, which
// Migrate will create,
//
//     CREATE TABLE stripe_objects (
//         id        VARCHAR NOT NULL UNIQUE,
//         object    VARCHAR NOT NULL,
//         livemode  BOOLEAN NOT NULL DEFAULT FALSE,
//         data      JSONB NOT NULL,
//         synced_at TIMESTAMP NOT NULL
//     );
type PSQL struct {
	*sql.DB
}

var (
	_ Store = (*PSQL)(nil)

	objectTable = "stripe_objects"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		r    Record
		data []byte
	)

	if err := sc.Scan(&r.ID, &r.Object, &r.Livemode, &data, &r.SyncedAt); err != nil {
		return nil, err
	}

	r.Data = data
	return &r, nil
}

// Put will put the given Object into the stripe_objects table. If the Object
// already exists then its data is updated.
func (p PSQL) Put(obj stripeapi.Object) error {
	r, err := newRecord(obj)

	if err != nil {
		return err
	}

	q := query.Select(
		query.Columns("id"),
		query.From(objectTable),
		query.Where("id", "=", query.Arg(r.ID)),
	)

	var id string

	if err := p.QueryRow(q.Build(), q.Args()...).Scan(&id); err != nil {
		if err != sql.ErrNoRows {
			return err
		}
	}

	if id == "" {
		q = query.Insert(
			objectTable,
			query.Columns("id", "object", "livemode", "data", "synced_at"),
			query.Values(r.ID, r.Object, r.Livemode, string(r.Data), r.SyncedAt),
		)

		_, err := p.Exec(q.Build(), q.Args()...)
		return err
	}

	q = query.Update(
		objectTable,
		query.Set("livemode", query.Arg(r.Livemode)),
		query.Set("data", query.Arg(string(r.Data))),
		query.Set("synced_at", query.Arg(r.SyncedAt)),
		query.Where("id", "=", query.Arg(r.ID)),
	)

	_, err = p.Exec(q.Build(), q.Args()...)
	return err
}

func (p PSQL) Remove(id string) error {
	q := query.Delete(objectTable, query.Where("id", "=", query.Arg(id)))

	_, err := p.Exec(q.Build(), q.Args()...)
	return err
}

// Lookup will lookup the Object with the given ID in the stripe_objects
// table.
func (p PSQL) Lookup(id string) (*Record, bool, error) {
	q := query.Select(
		query.Columns("*"),
		query.From(objectTable),
		query.Where("id", "=", query.Arg(id)),
	)

	r, err := scanRecord(p.QueryRow(q.Build(), q.Args()...))

	if err != nil {
		if err != sql.ErrNoRows {
			return nil, false, err
		}
		return nil, false, nil
	}
	return r, true, nil
}

func (p PSQL) records(opts ...query.Option) ([]*Record, error) {
	opts = append([]query.Option{
		query.From(objectTable),
	}, opts...)

	q := query.Select(query.Columns("*"), opts...)

	rows, err := p.Query(q.Build(), q.Args()...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	rr := make([]*Record, 0)

	for rows.Next() {
		r, err := scanRecord(rows)

		if err != nil {
			return nil, err
		}
		rr = append(rr, r)
	}
	return rr, rows.Err()
}

// Objects returns every Record of the given object type from the
// stripe_objects table, most recently synced first.
func (p PSQL) Objects(objectType string) ([]*Record, error) {
	return p.records(
		query.Where("object", "=", query.Arg(objectType)),
		query.OrderDesc("synced_at"),
	)
}

// Since returns the Records of the given object type synced after the given
// time.
func (p PSQL) Since(objectType string, t time.Time) ([]*Record, error) {
	return p.records(
		query.Where("object", "=", query.Arg(objectType)),
		query.Where("synced_at", ">", query.Arg(t)),
		query.OrderDesc("synced_at"),
	)
}
