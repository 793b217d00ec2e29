package repository

import (
	"context"

	"hotel-board/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// statement is any goqu dataset.
type statement interface {
	ToSQL() (string, []any, error)
}

func from(table any) *goqu.SelectDataset {
	return db.Dialect.From(table).Prepared(true)
}

func insertInto(table any) *goqu.InsertDataset {
	return db.Dialect.Insert(table).Prepared(true)
}

func update(table any) *goqu.UpdateDataset {
	return db.Dialect.Update(table).Prepared(true)
}

func deleteFrom(table any) *goqu.DeleteDataset {
	return db.Dialect.Delete(table).Prepared(true)
}

func exec(ctx context.Context, dbtx db.DBTX, st statement) (pgconn.CommandTag, error) {
	query, args, err := st.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return dbtx.Exec(ctx, query, args...)
}

func query(ctx context.Context, dbtx db.DBTX, st statement) (pgx.Rows, error) {
	query, args, err := st.ToSQL()
	if err != nil {
		return nil, err
	}
	return dbtx.Query(ctx, query, args...)
}

// queryRow reports build errors through Scan like pgx does for query errors.
func queryRow(ctx context.Context, dbtx db.DBTX, st statement) pgx.Row {
	query, args, err := st.ToSQL()
	if err != nil {
		return errRow{err: err}
	}
	return dbtx.QueryRow(ctx, query, args...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
