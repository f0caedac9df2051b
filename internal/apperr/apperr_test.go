package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "domain error passes through unchanged",
			err:        NotFound("Article Not Found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Article Not Found",
		},
		{
			name:       "wrapped domain error still unwraps",
			err:        fmt.Errorf("store: %w", BadRequest("Invalid Identifier")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid Identifier",
		},
		{
			name:       "record not found",
			err:        gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "foreign key violation",
			err:        gorm.ErrForeignKeyViolated,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicated key",
			err:        gorm.ErrDuplicatedKey,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "engine invalid text representation",
			err:        &pgconn.PgError{Code: "22P02"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid Identifier",
		},
		{
			name:       "engine foreign key violation",
			err:        &pgconn.PgError{Code: "23503"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "engine unique violation",
			err:        &pgconn.PgError{Code: "23505"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "anything else is fatal",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			if got.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", got.Status, tt.wantStatus)
			}
			if tt.wantMsg != "" && got.Msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", got.Msg, tt.wantMsg)
			}
		})
	}
}

func TestErrorImplementsError(t *testing.T) {
	var err error = New(http.StatusTeapot, "short and stout")
	if err.Error() != "short and stout" {
		t.Errorf("unexpected Error() %q", err.Error())
	}
}
