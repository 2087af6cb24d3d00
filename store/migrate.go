package store

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the schema migrations for the stripe_objects table to the
// given database. Migrations that have already been applied are skipped.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")

	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})

	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)

	if err != nil {
		return err
	}

	pre, _, err := m.Version()

	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	post, _, err := m.Version()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"pre_version":  pre,
		"post_version": post,
	}).Debug("store migrated")
	return nil
}
