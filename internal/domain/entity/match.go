package entity

import (
	"time"

	"github.com/google/uuid"
)

// Match is a confirmed reservation of one donor for one patient.
// The blood labels and city are snapshots taken at confirmation time.
type Match struct {
	ID                uuid.UUID `json:"id"`
	PatientID         uuid.UUID `json:"patient_id"`
	DonorID           uuid.UUID `json:"donor_id"`
	DonorBloodLabel   string    `json:"donor_blood_label"`
	PatientBloodLabel string    `json:"patient_blood_label"`
	City              City      `json:"city"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewMatch builds a match for the pair with a fresh random id.
func NewMatch(patient *Patient, donor *Donor, now time.Time) *Match {
	return &Match{
		ID:                uuid.New(),
		PatientID:         patient.ID,
		DonorID:           donor.ID,
		DonorBloodLabel:   donor.Blood.Label(),
		PatientBloodLabel: patient.Blood.Label(),
		City:              patient.City,
		CreatedAt:         now,
	}
}
