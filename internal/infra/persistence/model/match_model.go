package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchModel is the GORM-specific struct for the 'matches' table.
// The unique indexes keep a donor and a patient in at most one live match each.
type MatchModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	PatientID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_patient_id"`
	DonorID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_matches_donor_id"`
	DonorBloodLabel   string    `gorm:"type:varchar(3);not null"`
	PatientBloodLabel string    `gorm:"type:varchar(3);not null"`
	City              string    `gorm:"type:varchar(64);not null"`
	CreatedAt         time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
