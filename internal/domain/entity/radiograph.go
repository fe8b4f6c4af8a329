package entity

import (
	"time"

	"github.com/google/uuid"
)

// Radiograph is one imaging order embedded in a patient. RadiographID is
// unique within the owning patient only; Position preserves submission order.
type Radiograph struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_radiographs_patient_radiograph" json:"-"`
	RadiographID string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_radiographs_patient_radiograph" json:"radiograph_id"`
	ExamType     string     `gorm:"type:varchar(32);not null" json:"exam_type"`
	Status       string     `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	Position     int        `gorm:"not null" json:"-"`
	NotifiedAt   *time.Time `json:"notified_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Radiograph) TableName() string {
	return "radiographs"
}

// Status constants
const (
	StatusPending  = "pending"
	StatusReady    = "ready"
	StatusReviewed = "reviewed"
)

// Exam type constants
const (
	ExamChest       = "chest"
	ExamLumbarSpine = "lumbar_spine"
	ExamSkull       = "skull"
	ExamAbdomen     = "abdomen"
)

// IsValidStatus reports whether s is one of the allowed processing statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReady, StatusReviewed:
		return true
	}
	return false
}

// IsValidExamType reports whether s is one of the supported study types.
func IsValidExamType(s string) bool {
	switch s {
	case ExamChest, ExamLumbarSpine, ExamSkull, ExamAbdomen:
		return true
	}
	return false
}
