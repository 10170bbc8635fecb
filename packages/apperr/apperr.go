// Package apperr carries the storage failure taxonomy and its HTTP mapping.
// Every repository call resolves to success, NotFound, ConstraintViolation or
// Other; handlers translate through Status and Message without inspecting
// driver errors themselves.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// NotFoundError names the entity kind that was missing so the response can
// say which lookup failed (the address default-fee path reports
// "neighborhood", not "address").
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConstraintViolationError wraps a database-reported integrity failure
// (foreign key, unique, check, not-null).
type ConstraintViolationError struct {
	Detail string
}

func (e *ConstraintViolationError) Error() string {
	return e.Detail
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// Postgres integrity constraint violation codes are class 23.
const pgIntegrityClass = "23"

// FromStorage converts a gorm/pgx error into the taxonomy. entity names the
// row kind the query was after.
func FromStorage(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgIntegrityClass {
		detail := pgErr.Message
		if pgErr.Detail != "" {
			detail = fmt.Sprintf("%s (%s)", pgErr.Message, pgErr.Detail)
		}
		return &ConstraintViolationError{Detail: detail}
	}

	return err
}

// Status maps a taxonomy error to an HTTP status code. Constraint violations
// report 500 by default; strictClientErrors switches them to 400 for callers
// that want FK/unique failures blamed on the request.
func Status(err error, strictClientErrors bool) int {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return fiber.StatusNotFound
	}

	var cv *ConstraintViolationError
	if errors.As(err, &cv) {
		if strictClientErrors {
			return fiber.StatusBadRequest
		}
		return fiber.StatusInternalServerError
	}

	return fiber.StatusInternalServerError
}

// Message is the short human-readable string sent over the wire.
func Message(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}

	var cv *ConstraintViolationError
	if errors.As(err, &cv) {
		return cv.Detail
	}

	return "Internal server error"
}
