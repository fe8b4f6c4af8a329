package converter

import (
	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	radiographs := make([]dto.RadiographResponse, len(patient.Radiographs))
	for i, r := range patient.Radiographs {
		radiographs[i] = dto.RadiographResponse{
			RadiographID: r.RadiographID,
			ExamType:     r.ExamType,
			Status:       r.Status,
			NotifiedAt:   r.NotifiedAt,
		}
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		PatientCode: patient.PatientCode,
		Name:        patient.Name,
		Radiographs: radiographs,
		CreatedAt:   patient.CreatedAt,
		UpdatedAt:   patient.UpdatedAt,
	}
}

// PatientsToResponse converts a slice of Patient entities, preserving order
func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// CreateRequestToPatient builds a Patient entity from a creation request.
// Radiograph statuses default to pending when omitted.
func CreateRequestToPatient(req *dto.CreatePatientRequest) *entity.Patient {
	radiographs := make([]entity.Radiograph, len(req.Radiographs))
	for i, r := range req.Radiographs {
		status := r.Status
		if status == "" {
			status = entity.StatusPending
		}
		radiographs[i] = entity.Radiograph{
			RadiographID: r.RadiographID,
			ExamType:     r.ExamType,
			Status:       status,
		}
	}

	return &entity.Patient{
		PatientCode: req.PatientCode,
		Name:        req.Name,
		Radiographs: radiographs,
	}
}
