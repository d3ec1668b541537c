package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a patient waiting for a compatible donor.
type Patient struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	Blood         BloodProfile `json:"blood"`
	City          City         `json:"city"`
	Contact       string       `json:"contact"`
	Diagnosis     string       `json:"diagnosis,omitempty"`
	TreatmentPlan string       `json:"treatment_plan,omitempty"`
	AdmissionDate *time.Time   `json:"admission_date,omitempty"`
	NeedsMatch    bool         `json:"needs_match"` // True until a live match exists for the patient.
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
