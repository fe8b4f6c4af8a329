package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	duplicate := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_patients_patient_code",
	}

	if !isDuplicateKeyError(duplicate, "patient_code") {
		t.Error("expected unique violation on patient_code to be detected")
	}

	if !isDuplicateKeyError(fmt.Errorf("create failed: %w", duplicate), "patient_code") {
		t.Error("expected wrapped unique violation to be detected")
	}

	if isDuplicateKeyError(duplicate, "radiograph") {
		t.Error("expected mismatched constraint name to be ignored")
	}

	foreignKey := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "idx_patients_patient_code",
	}
	if isDuplicateKeyError(foreignKey, "patient_code") {
		t.Error("expected non unique-violation code to be ignored")
	}

	if isDuplicateKeyError(errors.New("connection refused"), "patient_code") {
		t.Error("expected plain error to be ignored")
	}
}
