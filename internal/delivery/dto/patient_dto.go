package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateRadiographRequest is one radiograph supplied at patient creation.
// estado may be omitted and defaults to pending.
type CreateRadiographRequest struct {
	RadiographID string `json:"idRadiografia" validate:"required"`
	ExamType     string `json:"tipoExamen" validate:"required,oneof=chest lumbar_spine skull abdomen"`
	Status       string `json:"estado" validate:"omitempty,oneof=pending ready reviewed"`
}

type CreatePatientRequest struct {
	PatientCode string                    `json:"idPaciente" validate:"required"`
	Name        string                    `json:"nombre" validate:"required"`
	Radiographs []CreateRadiographRequest `json:"radiografias" validate:"omitempty,dive"`
}

type UpdateRadiographStatusRequest struct {
	Status string `json:"estado" validate:"required,oneof=pending ready reviewed"`
}

// RadiographResponse keeps fechaNotificacion explicit: it renders as null
// until the radiograph first becomes ready.
type RadiographResponse struct {
	RadiographID string     `json:"idRadiografia"`
	ExamType     string     `json:"tipoExamen"`
	Status       string     `json:"estado"`
	NotifiedAt   *time.Time `json:"fechaNotificacion"`
}

type PatientResponse struct {
	ID          uuid.UUID            `json:"id"`
	PatientCode string               `json:"idPaciente"`
	Name        string               `json:"nombre"`
	Radiographs []RadiographResponse `json:"radiografias"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}
