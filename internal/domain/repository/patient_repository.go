package repository

import (
	"context"
	"errors"
	"time"

	"radiograph-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicatePatientCode is returned by Create when the supplied patient
// code is already taken. The Postgres unique-violation is translated to this
// error inside the repository so callers never inspect engine codes.
var ErrDuplicatePatientCode = errors.New("patient code already exists")

type PatientRepository interface {
	// Create inserts the patient together with its radiographs in a single
	// transaction and assigns the store id.
	Create(ctx context.Context, patient *entity.Patient) error

	// FindAll returns every patient, most recently created first, with
	// radiographs preloaded in submission order.
	FindAll(ctx context.Context) ([]entity.Patient, error)

	// FindByID looks a patient up by its store-assigned id. Returns
	// (nil, nil) when no patient matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)

	// FindByIDOrCode resolves idOrCode deterministically: when it parses as
	// a UUID the store id is tried first, then the external patient code.
	// Returns (nil, nil) when neither matches.
	FindByIDOrCode(ctx context.Context, idOrCode string) (*entity.Patient, error)

	// UpdateRadiographStatus performs a targeted update addressed by
	// (patient id, radiograph id), setting notified_at only when non-nil.
	// It returns the number of radiograph rows affected; zero means the
	// radiograph does not exist on that patient.
	UpdateRadiographStatus(ctx context.Context, patientID uuid.UUID, radiographID, status string, notifiedAt *time.Time) (int64, error)
}
