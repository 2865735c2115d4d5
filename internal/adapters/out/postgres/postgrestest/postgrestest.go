// Package postgrestest starts a throwaway PostgreSQL container with the production
// schema applied, for integration test suites.
package postgrestest

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"deliveryhub/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated PostgreSQL instance running in a container.
type Database struct {
	container *tcpostgres.PostgresContainer

	// URL is a postgres:// connection string usable by lib/pq and golang-migrate.
	URL string
	DB  *gorm.DB
	SQL *sql.DB
}

// Start runs postgres:15-alpine, applies the embedded migrations and opens a GORM connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Join(err, container.Terminate(ctx))
	}

	if err = postgres.MigrateUp(url); err != nil {
		return nil, errors.Join(err, container.Terminate(ctx))
	}

	gormDB, sqlDB, err := postgres.Open(ctx, url, postgres.DefaultPoolConfig())
	if err != nil {
		return nil, errors.Join(err, container.Terminate(ctx))
	}

	return &Database{
		container: container,
		URL:       url,
		DB:        gormDB,
		SQL:       sqlDB,
	}, nil
}

// Reset empties every table and restarts the id sequences.
func (d *Database) Reset(ctx context.Context) error {
	return d.DB.WithContext(ctx).Exec(
		"TRUNCATE TABLE pedido_detalles, pedidos, productos, repartidores, clientes, usuarios RESTART IDENTITY CASCADE",
	).Error
}

// Terminate closes the pool and removes the container.
func (d *Database) Terminate(ctx context.Context) error {
	return errors.Join(d.SQL.Close(), d.container.Terminate(ctx))
}
