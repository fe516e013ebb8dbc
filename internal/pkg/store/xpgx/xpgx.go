package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool wraps pgxpool so stores can execute squirrel builders directly.
type Pool struct {
	*pgxpool.Pool
}

func Connect(ctx context.Context, url string) (*Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	return &Pool{pool}, nil
}

func (p *Pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}

	return p.Exec(ctx, sql, args...)
}

// Getx runs the query and scans the single resulting row into T by column name.
func Getx[T any](ctx context.Context, p *Pool, q squirrel.Sqlizer) (*T, error) {
	rows, err := queryx(ctx, p, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx runs the query and scans all resulting rows into []*T by column name.
func Selectx[T any](ctx context.Context, p *Pool, q squirrel.Sqlizer) ([]*T, error) {
	rows, err := queryx(ctx, p, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}

func queryx(ctx context.Context, p *Pool, q squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	return p.Query(ctx, sql, args...)
}
