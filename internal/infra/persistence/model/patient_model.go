package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel is the GORM-specific struct for the 'patients' table.
type PatientModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Age           int        `gorm:"not null"`
	BloodGroup    string     `gorm:"type:varchar(2);not null"`
	RhFactor      string     `gorm:"type:varchar(8);not null"`
	City          string     `gorm:"type:varchar(64);not null;index"`
	Contact       string     `gorm:"type:varchar(64)"`
	Diagnosis     string     `gorm:"type:text"`
	TreatmentPlan string     `gorm:"type:text"`
	AdmissionDate *time.Time `gorm:"type:date"`
	NeedsMatch    bool       `gorm:"not null"`
	CreatedAt     time.Time  `gorm:"not null;index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
