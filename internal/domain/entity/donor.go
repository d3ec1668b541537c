package entity

import (
	"time"

	"github.com/google/uuid"
)

// Eligibility is the Yes/No donation verdict stored on a donor.
type Eligibility string

const (
	EligibilityYes Eligibility = "Yes"
	EligibilityNo  Eligibility = "No"
)

// Bool reports whether the verdict is Yes.
func (e Eligibility) Bool() bool {
	return e == EligibilityYes
}

// Donor represents a registered blood donor.
type Donor struct {
	ID                 uuid.UUID    `json:"id"`
	Name               string       `json:"name"`
	Blood              BloodProfile `json:"blood"`
	// LastDonationDate is nil when the donor never donated or the date is unknown.
	LastDonationDate   *time.Time   `json:"last_donation_date,omitempty"`
	WeightKg           float64      `json:"weight_kg"`
	HemoglobinGdl      float64      `json:"hemoglobin_gdl"`
	City               City         `json:"city"`
	Contact            string       `json:"contact"`
	OngoingMedications string       `json:"ongoing_medications"`
	ChronicDiseases    string       `json:"chronic_diseases"`
	Allergies          string       `json:"allergies"`
	// IsAvailable is false exactly while a live match reserves the donor.
	IsAvailable        bool         `json:"is_available"`
	// Eligible is derived from weight, hemoglobin and last donation date on every save.
	Eligible           Eligibility  `json:"eligible"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}
