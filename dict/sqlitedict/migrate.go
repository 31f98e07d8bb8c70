package sqlitedict

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// newMigrate opens a migrator with its own connection. Closing the
// migrator closes that connection, so it never shares the store's pool.
func newMigrate(path string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	return m, nil
}

func closeMigrate(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	return errors.Join(srcErr, dbErr)
}

// Migrate applies every pending schema migration to the database at path.
func Migrate(path string) error {
	m, err := newMigrate(path)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("apply migrations: %w", err)
	}
	return errors.Join(err, closeMigrate(m))
}

// SchemaVersion reports the applied migration version of the database at
// path. A fresh database reports 0.
func SchemaVersion(path string) (uint, error) {
	m, err := newMigrate(path)
	if err != nil {
		return 0, err
	}

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		v, err = 0, nil
	}
	if err == nil && dirty {
		err = fmt.Errorf("schema version %d is dirty", v)
	}
	return v, errors.Join(err, closeMigrate(m))
}
