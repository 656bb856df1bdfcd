package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PSQL builds queries with Postgres positional placeholders.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const EventsTable = "events"

// PGX is the root database handle: queryable itself and able to open
// transactions.
type PGX interface {
	Queryable
	GetPool(ctx context.Context) *pgxpool.Pool
	BeginTx(ctx context.Context, txOptions *pgx.TxOptions) (Tx, error)
}

type Tx interface {
	Queryable
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Queryable is the operation set repositories run against, satisfied by both
// the pool and a transaction.
type Queryable interface {
	Exec(ctx context.Context, sqlizer sq.Sqlizer) (pgconn.CommandTag, error)
	Get(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error
	Select(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error
	ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}
