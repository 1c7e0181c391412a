package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

// forUpdate locks the selected rows until commit when ctx carries a transaction.
func forUpdate(ctx context.Context, db *postgres.DB, query squirrel.SelectBuilder) squirrel.SelectBuilder {
	if db.InTx(ctx) {
		return query.Suffix("FOR UPDATE")
	}
	return query
}

func exec(ctx context.Context, db *postgres.DB, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	tag, err := db.Conn(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return tag, parseError(err)
	}
	return tag, nil
}

func queryRow(ctx context.Context, db *postgres.DB, query squirrel.Sqlizer, dest ...any) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	return parseError(db.Conn(ctx).QueryRow(ctx, sql, args...).Scan(dest...))
}

func queryRows(ctx context.Context, db *postgres.DB, query squirrel.Sqlizer, scan func(pgx.Rows) error) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	rows, err := db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return parseError(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return parseError(rows.Err())
}

func idStrings[S ~string](ids []S) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func parseError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return serviceerrors.NewConflictError("duplicate key error")
		case pgerrcode.ForeignKeyViolation:
			return serviceerrors.NewNotFoundError("referenced entity not found")
		case pgerrcode.CheckViolation:
			return serviceerrors.NewUnprocessableEntityError("value violates constraint " + pgErr.ConstraintName)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return serviceerrors.NewConflictError("concurrent update, retry")
		}
	}
	return err
}
