package httperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestBusinessErrors(t *testing.T) {
	err := fmt.Errorf("save: %w", ErrBusiness("invalid_state"))

	if !IsBusiness(err, "invalid_state") {
		t.Fatalf("expected wrapped business error to match")
	}
	if IsBusiness(err, "other") {
		t.Fatalf("expected code mismatch")
	}
	if BusinessCode(err) != "invalid_state" {
		t.Fatalf("unexpected code %q", BusinessCode(err))
	}
	if BusinessCode(fmt.Errorf("plain")) != "" {
		t.Fatalf("expected empty code for plain errors")
	}
}

func TestBusinessStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrBusiness("invalid_month"), http.StatusBadRequest},
		{fmt.Errorf("toggle: %w", ErrNotFound("student_not_found")), http.StatusNotFound},
		{fmt.Errorf("plain"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		if got := businessStatus(tt.err); got != tt.want {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.want, got)
		}
	}

	if !IsBusiness(ErrNotFound("student_not_found"), "student_not_found") {
		t.Fatalf("not-found errors must still match by code")
	}
}

func TestPgClassification(t *testing.T) {
	conflict := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	denied := &pgconn.PgError{Code: "42501"}
	missing := &pgconn.PgError{Code: "42703"}

	if !IsConflict(conflict) {
		t.Fatalf("expected unique violation to be a conflict")
	}
	if !IsPolicyDenied(denied) || IsPolicyDenied(conflict) {
		t.Fatalf("policy classification mismatch")
	}
	if !IsSchemaMismatch(missing) {
		t.Fatalf("expected undefined column to be a schema mismatch")
	}
	if PgCode(fmt.Errorf("boom")) != "" {
		t.Fatalf("expected empty code for non-pg errors")
	}
}
