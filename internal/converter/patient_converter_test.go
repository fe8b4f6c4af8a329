package converter

import (
	"testing"
	"time"

	"radiograph-service/internal/delivery/dto"
	"radiograph-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateRequestToPatient_DefaultsStatusToPending(t *testing.T) {
	req := &dto.CreatePatientRequest{
		PatientCode: "PAC-001",
		Name:        "Ana Torres",
		Radiographs: []dto.CreateRadiographRequest{
			{RadiographID: "R1", ExamType: entity.ExamChest},
			{RadiographID: "R2", ExamType: entity.ExamSkull, Status: entity.StatusReady},
		},
	}

	patient := CreateRequestToPatient(req)

	assert.Equal(t, "PAC-001", patient.PatientCode)
	assert.Equal(t, "Ana Torres", patient.Name)
	assert.Len(t, patient.Radiographs, 2)
	assert.Equal(t, entity.StatusPending, patient.Radiographs[0].Status)
	assert.Equal(t, entity.StatusReady, patient.Radiographs[1].Status)
	assert.Nil(t, patient.Radiographs[0].NotifiedAt)
}

func TestCreateRequestToPatient_NoRadiographs(t *testing.T) {
	patient := CreateRequestToPatient(&dto.CreatePatientRequest{
		PatientCode: "PAC-002",
		Name:        "Luis Vega",
	})

	assert.NotNil(t, patient.Radiographs)
	assert.Empty(t, patient.Radiographs)
}

func TestPatientToResponse(t *testing.T) {
	notified := time.Now()
	patient := &entity.Patient{
		ID:          uuid.New(),
		PatientCode: "PAC-003",
		Name:        "Marta Ruiz",
		Radiographs: []entity.Radiograph{
			{RadiographID: "R1", ExamType: entity.ExamAbdomen, Status: entity.StatusReady, NotifiedAt: &notified},
		},
	}

	resp := PatientToResponse(patient)

	assert.Equal(t, patient.ID, resp.ID)
	assert.Equal(t, "PAC-003", resp.PatientCode)
	assert.Len(t, resp.Radiographs, 1)
	assert.Equal(t, entity.StatusReady, resp.Radiographs[0].Status)
	assert.Equal(t, &notified, resp.Radiographs[0].NotifiedAt)
}

func TestPatientToResponse_Nil(t *testing.T) {
	assert.Nil(t, PatientToResponse(nil))
}

func TestPatientsToResponse_PreservesOrder(t *testing.T) {
	patients := []entity.Patient{
		{ID: uuid.New(), PatientCode: "PAC-B"},
		{ID: uuid.New(), PatientCode: "PAC-A"},
	}

	responses := PatientsToResponse(patients)

	assert.Len(t, responses, 2)
	assert.Equal(t, "PAC-B", responses[0].PatientCode)
	assert.Equal(t, "PAC-A", responses[1].PatientCode)
}
