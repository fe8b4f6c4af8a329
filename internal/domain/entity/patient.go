package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the top-level record. Radiographs belong exclusively to their
// patient: they are created with the patient and never moved or deleted.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientCode string    `gorm:"type:varchar(64);uniqueIndex:idx_patients_patient_code;not null" json:"patient_code"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Radiographs []Radiograph `gorm:"foreignKey:PatientID" json:"radiographs,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
