package postgres

import (
	"embed"
	"log/slog"

	"storefront/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

const migrationsTable = "storefront_schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateUp applies every pending migration.
func MigrateUp(db *gorm.DB, logger *slog.Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema is up to date")

			return nil
		}

		return errors.Wrap(err, "could not run migrations")
	}

	version, dirty, _ := m.Version()
	logger.Info("Database migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(db *gorm.DB, steps int, logger *slog.Logger) error {
	if steps <= 0 {
		return errors.New("steps must be positive")
	}

	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "could not roll back migrations")
	}
	logger.Info("Database migrations rolled back", slog.Int("steps", steps))

	return nil
}

// The migrator is not closed: closing it would close the shared *sql.DB.
func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "could not open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{
		MigrationsTable: migrationsTable,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "could not create migrate instance")
	}

	return m, nil
}
