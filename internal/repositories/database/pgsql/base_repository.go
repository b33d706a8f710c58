package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool for all repositories.
// The record-store collections are read-only from this service; only the
// dashboard's own tables are ever written.
type BaseRepository struct {
	Pool *pgxpool.Pool
}
