package apperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error is the uniform failure value the stores hand to the HTTP boundary.
type Error struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

func (e *Error) Error() string { return e.Msg }

func New(status int, msg string) *Error { return &Error{Status: status, Msg: msg} }

func BadRequest(msg string) *Error { return New(http.StatusBadRequest, msg) }

func NotFound(msg string) *Error { return New(http.StatusNotFound, msg) }

// SQLSTATE classes the engine reports for inputs that pass app-side validation
// but still violate a column type or constraint.
const (
	pgInvalidTextRepresentation = "22P02"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// From normalizes a failure into an *Error. Domain errors pass through unchanged;
// translated gorm errors and raw Postgres errors are classified; anything else
// becomes a 500 for the boundary to log. Never retried here.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Not Found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NotFound("Referenced resource does not exist")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(http.StatusConflict, "Already exists")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return BadRequest("Invalid Identifier")
		case pgForeignKeyViolation:
			return NotFound("Referenced resource does not exist")
		case pgUniqueViolation:
			return New(http.StatusConflict, "Already exists")
		}
	}

	return New(http.StatusInternalServerError, "Internal Server Error")
}
