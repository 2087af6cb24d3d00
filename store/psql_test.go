package store

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/andrewpillar/stripeapi/terminal"
)

func newStore(t *testing.T) (PSQL, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()

	if err != nil {
		t.Fatal(err)
	}
	return PSQL{
		DB: db,
	}, mock
}

func Test_Lookup(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	tests := []struct {
		id            string
		expectedQuery string
		expectedOk    bool
		row           []driver.Value
	}{
		{
			"tml_123456",
			"SELECT * FROM stripe_objects WHERE (id = $1)",
			true,
			[]driver.Value{
				"tml_123456",
				"terminal.location",
				false,
				[]byte(`{"object":"terminal.location","id":"tml_123456","display_name":"HQ"}`),
				time.Now(),
			},
		},
		{
			"tml_654321",
			"SELECT * FROM stripe_objects WHERE (id = $1)",
			false,
			[]driver.Value{},
		},
	}

	for i, test := range tests {
		rows := sqlmock.NewRows([]string{"id", "object", "livemode", "data", "synced_at"})

		if len(test.row) > 0 {
			rows.AddRow(test.row...)
		}
		mock.ExpectQuery(regexp.QuoteMeta(test.expectedQuery)).WithArgs(test.id).WillReturnRows(rows)

		r, ok, err := store.Lookup(test.id)

		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s\n", i, err)
		}

		if ok != test.expectedOk {
			t.Errorf("tests[%d] - expected lookup to be ok=%v, it was not\n", i, test.expectedOk)
			continue
		}

		if ok && r.ID != test.id {
			t.Errorf("tests[%d] - unexpected record id, expected=%q, got=%q\n", i, test.id, r.ID)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func Test_Put(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	loc := &terminal.Location{
		ID:          "tml_123456",
		DisplayName: "HQ",
		Livemode:    true,
	}

	tests := []struct {
		existing     []driver.Value
		expectedExec string
	}{
		{[]driver.Value{}, "INSERT INTO stripe_objects"},
		{[]driver.Value{"tml_123456"}, "UPDATE stripe_objects"},
	}

	for i, test := range tests {
		rows := sqlmock.NewRows([]string{"id"})

		if len(test.existing) > 0 {
			rows.AddRow(test.existing...)
		}

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM stripe_objects WHERE (id = $1)")).
			WithArgs("tml_123456").
			WillReturnRows(rows)
		mock.ExpectExec(regexp.QuoteMeta(test.expectedExec)).WillReturnResult(sqlmock.NewResult(0, 1))

		if err := store.Put(loc); err != nil {
			t.Fatalf("tests[%d] - unexpected error: %s\n", i, err)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func Test_PutNoID(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	if err := store.Put(&terminal.Location{}); err != ErrNoID {
		t.Fatalf("unexpected error, expected=%v, got=%v\n", ErrNoID, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func Test_Remove(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stripe_objects")).
		WithArgs("tml_gone").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Remove("tml_gone"); err != nil {
		t.Fatal(err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func Test_Objects(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	rows := sqlmock.NewRows([]string{"id", "object", "livemode", "data", "synced_at"}).
		AddRow("tml_2", "terminal.location", false, []byte(`{"id":"tml_2"}`), time.Now()).
		AddRow("tml_1", "terminal.location", false, []byte(`{"id":"tml_1"}`), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM stripe_objects WHERE (object = $1)")).
		WithArgs("terminal.location").
		WillReturnRows(rows)

	rr, err := store.Objects("terminal.location")

	if err != nil {
		t.Fatal(err)
	}

	if len(rr) != 2 {
		t.Fatalf("unexpected records, expected=%d, got=%d\n", 2, len(rr))
	}

	if rr[0].ID != "tml_2" {
		t.Errorf("unexpected first record, expected=%q, got=%q\n", "tml_2", rr[0].ID)
	}
}

func Test_Since(t *testing.T) {
	store, mock := newStore(t)
	defer store.DB.Close()

	since := time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "object", "livemode", "data", "synced_at"}).
		AddRow("tml_1", "terminal.location", false, []byte(`{"id":"tml_1"}`), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM stripe_objects WHERE (object = $1 AND synced_at > $2)")).
		WithArgs("terminal.location", since).
		WillReturnRows(rows)

	rr, err := store.Since("terminal.location", since)

	if err != nil {
		t.Fatal(err)
	}

	if len(rr) != 1 || rr[0].ID != "tml_1" {
		t.Errorf("unexpected records, got=%v\n", rr)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
