package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	t.Parallel()

	err := NewForbidden("nope")
	mapped := ToDomainError(err)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if ToDomainError(wrapped).Code != "FORBIDDEN" {
		t.Fatalf("wrapped DomainError not unwrapped")
	}
}

func TestToDomainError_NoRowsBecomesNotFound(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_UniqueViolationBecomesConflict(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505"}
	mapped := ToDomainError(pgErr)
	if mapped.Code != "CONFLICT" || mapped.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Message != "internal server error" {
		t.Fatalf("internal details must not leak: %q", mapped.Message)
	}
}
