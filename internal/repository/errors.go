package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды postgres, которые репозитории переводят в доменные ошибки.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation = "23505"
	PgErrCheckViolation  = "23514"
)

// IsConstraintViolation ошибка postgres с кодом code на ограничении constraint.
// Пустой constraint совпадает с любым ограничением.
func IsConstraintViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && (constraint == "" || pgErr.ConstraintName == constraint)
}
