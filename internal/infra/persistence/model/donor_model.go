// Package model holds the GORM table mappings for the record store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DonorModel is the GORM-specific struct for the 'donors' table.
type DonorModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name               string     `gorm:"type:varchar(255);not null"`
	BloodGroup         string     `gorm:"type:varchar(2);not null"`
	RhFactor           string     `gorm:"type:varchar(8);not null"`
	LastDonationDate   *time.Time `gorm:"type:date"`
	WeightKg           float64    `gorm:"type:numeric(6,2);not null"`
	HemoglobinGdl      float64    `gorm:"type:numeric(5,2);not null"`
	City               string     `gorm:"type:varchar(64);not null;index"`
	Contact            string     `gorm:"type:varchar(64)"`
	OngoingMedications string     `gorm:"type:text"`
	ChronicDiseases    string     `gorm:"type:text"`
	Allergies          string     `gorm:"type:text"`
	IsAvailable        bool       `gorm:"not null"`
	Eligible           string     `gorm:"type:varchar(3);not null"`
	CreatedAt          time.Time  `gorm:"not null;index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}
