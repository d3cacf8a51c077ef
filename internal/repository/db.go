package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("unique constraint violation")
	ErrForeignKey = errors.New("foreign key constraint violation")
	ErrCheck      = errors.New("check constraint violation")
)

// DBTX is satisfied by *pgxpool.Pool and by pgxmock pools in tests
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// classify maps driver errors onto the repository sentinel errors. The
// driver error stays in the chain for logging.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w (%s): %w", ErrDuplicate, pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w (%s): %w", ErrForeignKey, pgErr.ConstraintName, err)
		case pgCheckViolation:
			return fmt.Errorf("%w (%s): %w", ErrCheck, pgErr.ConstraintName, err)
		}
	}
	return err
}

// ConstraintName returns the violated constraint of a classified error, or ""
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
