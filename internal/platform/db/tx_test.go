package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTxFromContext_Nil(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Error("expected nil tx from empty context")
	}
}

func TestTxFromContext_WithWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not-a-tx")
	if tx := TxFromContext(ctx); tx != nil {
		t.Error("expected nil when context value is wrong type")
	}
}

func TestPoolTx_NoPool(t *testing.T) {
	err := NewPoolTx(nil).RunInTx(context.Background(), func(context.Context) error { return nil })
	if err == nil {
		t.Error("expected error when no pool is configured")
	}
}

func TestNoTx_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	if err := (NoTx{}).RunInTx(context.Background(), func(context.Context) error { return want }); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_medico_crm"}
	wrapped := fmt.Errorf("insert medico: %w", pgErr)

	if !IsUniqueViolation(wrapped, "") {
		t.Error("expected unique violation")
	}
	if !IsUniqueViolation(wrapped, "uq_medico_crm") {
		t.Error("expected constraint match")
	}
	if IsUniqueViolation(wrapped, "uq_paciente_cpf") {
		t.Error("expected constraint mismatch")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}, "") {
		t.Error("foreign key violation is not a unique violation")
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)) {
		t.Error("expected wrapped ErrNoRows to match")
	}
	if IsNoRows(errors.New("other")) {
		t.Error("unexpected match")
	}
}
