package db

import (
	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-planner/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version.
func Migrate(addr string) error {
	return MigrateTo(addr, migrations.Version)
}

// MigrateTo moves the schema at addr up or down to version. Version 0 drops
// everything.
func MigrateTo(addr string, version uint) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "open migrations")
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return errors.Wrap(err, "connect migrate")
	}
	defer mg.Close()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if version == 0 {
		err = mg.Down()
	} else {
		err = mg.Migrate(version)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
