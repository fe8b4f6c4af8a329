package usecase

import (
	"context"
	"errors"
	"time"

	"radiograph-service/internal/converter"
	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/domain/entity"
	"radiograph-service/internal/domain/repository"
	"radiograph-service/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrRadiographNotFound = errors.New("radiograph not found")
	ErrPatientCodeExists  = errors.New("patient code already exists")
	ErrInvalidStatus      = errors.New("invalid radiograph status")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, idOrCode string) (*dto.PatientResponse, error)
	UpdateRadiographStatus(ctx context.Context, idOrCode, radiographID, status string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	cache       *service.PatientCache
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	cache *service.PatientCache,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		cache:       cache,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := converter.CreateRequestToPatient(req)

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicatePatientCode) {
			return nil, ErrPatientCodeExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponse(patients), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, idOrCode string) (*dto.PatientResponse, error) {
	if cached, ok := u.cache.Get(ctx, idOrCode); ok {
		return cached, nil
	}

	patient, err := u.patientRepo.FindByIDOrCode(ctx, idOrCode)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	resp := converter.PatientToResponse(patient)
	u.cache.Set(ctx, idOrCode, resp)

	return resp, nil
}

// UpdateRadiographStatus sets the status of one radiograph. Every transition
// to ready stamps NotifiedAt with the current time, including a repeated
// ready: the operation is deliberately not idempotent for that field.
func (u *patientUsecase) UpdateRadiographStatus(ctx context.Context, idOrCode, radiographID, status string) (*dto.PatientResponse, error) {
	if !entity.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	patient, err := u.patientRepo.FindByIDOrCode(ctx, idOrCode)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var notifiedAt *time.Time
	if status == entity.StatusReady {
		now := time.Now()
		notifiedAt = &now
	}

	affected, err := u.patientRepo.UpdateRadiographStatus(ctx, patient.ID, radiographID, status, notifiedAt)
	if err != nil {
		u.log.Warnf("Failed to update radiograph status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRadiographNotFound
	}

	u.cache.Invalidate(ctx, patient.ID.String(), patient.PatientCode)

	updated, err := u.patientRepo.FindByID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to reload patient: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(updated), nil
}
