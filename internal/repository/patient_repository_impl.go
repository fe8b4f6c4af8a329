package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"radiograph-service/internal/domain/entity"
	domainRepo "radiograph-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	for i := range patient.Radiographs {
		patient.Radiographs[i].Position = i
		if patient.Radiographs[i].Status == "" {
			patient.Radiographs[i].Status = entity.StatusPending
		}
	}

	// GORM inserts the patient and its radiographs in one transaction.
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		if isDuplicateKeyError(err, "patient_code") {
			return domainRepo.ErrDuplicatePatientCode
		}
		return err
	}
	return nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	err := r.db.WithContext(ctx).
		Preload("Radiographs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).
		Preload("Radiographs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) findByCode(ctx context.Context, code string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).
		Preload("Radiographs", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("patient_code = ?", code).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// FindByIDOrCode tries the store id first when idOrCode is a well-formed
// UUID, then falls back to the external patient code.
func (r *patientRepository) FindByIDOrCode(ctx context.Context, idOrCode string) (*entity.Patient, error) {
	if id, err := uuid.Parse(idOrCode); err == nil {
		patient, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			return patient, nil
		}
	}
	return r.findByCode(ctx, idOrCode)
}

func (r *patientRepository) UpdateRadiographStatus(ctx context.Context, patientID uuid.UUID, radiographID, status string, notifiedAt *time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notifiedAt != nil {
		updates["notified_at"] = *notifiedAt
	}

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Targeted update addressed by (patient_id, radiograph_id); no
		// read-modify-write of the whole patient, so concurrent updates to
		// sibling radiographs cannot lose each other.
		res := tx.Model(&entity.Radiograph{}).
			Where("patient_id = ? AND radiograph_id = ?", patientID, radiographID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Model(&entity.Patient{}).
			Where("id = ?", patientID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
