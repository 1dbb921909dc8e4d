package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
)

// Postgres error codes recognized as typed failures. The database
// constraints back up the application-level checks; when one fires, the
// caller gets the same error kind either way.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgForeignKeyViolation:
		return httperr.InvalidRequestError("referenced entity does not exist")
	case pgUniqueViolation:
		return httperr.ConflictError("entity already exists")
	case pgCheckViolation:
		return httperr.InvalidRequestError("value violates a data constraint")
	}
	return err
}
