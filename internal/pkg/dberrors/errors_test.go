package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "rooms_number_block_unique"}

	if !IsDuplicateConstraintError(dup, "rooms_number_block_unique") {
		t.Error("expected match on the named unique constraint")
	}
	if IsDuplicateConstraintError(dup, "users_email_key") {
		t.Error("expected mismatch for a different constraint name")
	}
	if IsDuplicateConstraintError(errors.New("plain"), "rooms_number_block_unique") {
		t.Error("expected non-pg errors to not match")
	}
	wrapped := fmt.Errorf("insert: %w", dup)
	if !IsDuplicateConstraintError(wrapped, "rooms_number_block_unique") {
		t.Error("expected wrapped pg errors to match")
	}
}

func TestIsCheckViolation(t *testing.T) {
	chk := &pgconn.PgError{Code: "23514", ConstraintName: "leaves_date_range"}

	if !IsCheckViolation(chk, "leaves_date_range") {
		t.Error("expected match on the named check constraint")
	}
	if IsCheckViolation(chk, "rooms_occupied_bounds") {
		t.Error("expected mismatch for a different constraint name")
	}
	if IsCheckViolation(&pgconn.PgError{Code: "23505", ConstraintName: "leaves_date_range"}, "leaves_date_range") {
		t.Error("expected unique violations to not match as check violations")
	}
}
