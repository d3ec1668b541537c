package firestore

import (
	"time"

	"bloodbank/internal/domain/entity"

	"github.com/google/uuid"
)

type donorDoc struct {
	Name               string     `firestore:"name"`
	BloodGroup         string     `firestore:"blood_group"`
	RhFactor           string     `firestore:"rh_factor"`
	LastDonationDate   *time.Time `firestore:"last_donation_date"`
	WeightKg           float64    `firestore:"weight_kg"`
	HemoglobinGdl      float64    `firestore:"hemoglobin_gdl"`
	City               string     `firestore:"city"`
	Contact            string     `firestore:"contact"`
	OngoingMedications string     `firestore:"ongoing_medications"`
	ChronicDiseases    string     `firestore:"chronic_diseases"`
	Allergies          string     `firestore:"allergies"`
	IsAvailable        bool       `firestore:"is_available"`
	Eligible           string     `firestore:"eligible"`
	CreatedAt          time.Time  `firestore:"created_at"`
	UpdatedAt          time.Time  `firestore:"updated_at"`
}

type patientDoc struct {
	Name          string     `firestore:"name"`
	Age           int        `firestore:"age"`
	BloodGroup    string     `firestore:"blood_group"`
	RhFactor      string     `firestore:"rh_factor"`
	City          string     `firestore:"city"`
	Contact       string     `firestore:"contact"`
	Diagnosis     string     `firestore:"diagnosis"`
	TreatmentPlan string     `firestore:"treatment_plan"`
	AdmissionDate *time.Time `firestore:"admission_date"`
	NeedsMatch    bool       `firestore:"needs_match"`
	CreatedAt     time.Time  `firestore:"created_at"`
	UpdatedAt     time.Time  `firestore:"updated_at"`
}

type matchDoc struct {
	PatientID         string    `firestore:"patient_id"`
	DonorID           string    `firestore:"donor_id"`
	DonorBloodLabel   string    `firestore:"donor_blood_label"`
	PatientBloodLabel string    `firestore:"patient_blood_label"`
	City              string    `firestore:"city"`
	CreatedAt         time.Time `firestore:"created_at"`
}

// --- Mapper Functions ---

func fromDonorDomain(d *entity.Donor) *donorDoc {
	return &donorDoc{
		Name:               d.Name,
		BloodGroup:         string(d.Blood.Group),
		RhFactor:           string(d.Blood.Rh),
		LastDonationDate:   d.LastDonationDate,
		WeightKg:           d.WeightKg,
		HemoglobinGdl:      d.HemoglobinGdl,
		City:               string(d.City),
		Contact:            d.Contact,
		OngoingMedications: d.OngoingMedications,
		ChronicDiseases:    d.ChronicDiseases,
		Allergies:          d.Allergies,
		IsAvailable:        d.IsAvailable,
		Eligible:           string(d.Eligible),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func toDonorDomain(id uuid.UUID, doc *donorDoc) *entity.Donor {
	return &entity.Donor{
		ID:   id,
		Name: doc.Name,
		Blood: entity.BloodProfile{
			Group: entity.BloodGroup(doc.BloodGroup),
			Rh:    entity.RhFactor(doc.RhFactor),
		},
		LastDonationDate:   doc.LastDonationDate,
		WeightKg:           doc.WeightKg,
		HemoglobinGdl:      doc.HemoglobinGdl,
		City:               entity.City(doc.City),
		Contact:            doc.Contact,
		OngoingMedications: doc.OngoingMedications,
		ChronicDiseases:    doc.ChronicDiseases,
		Allergies:          doc.Allergies,
		IsAvailable:        doc.IsAvailable,
		Eligible:           entity.Eligibility(doc.Eligible),
		CreatedAt:          doc.CreatedAt,
		UpdatedAt:          doc.UpdatedAt,
	}
}

func fromPatientDomain(p *entity.Patient) *patientDoc {
	return &patientDoc{
		Name:          p.Name,
		Age:           p.Age,
		BloodGroup:    string(p.Blood.Group),
		RhFactor:      string(p.Blood.Rh),
		City:          string(p.City),
		Contact:       p.Contact,
		Diagnosis:     p.Diagnosis,
		TreatmentPlan: p.TreatmentPlan,
		AdmissionDate: p.AdmissionDate,
		NeedsMatch:    p.NeedsMatch,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toPatientDomain(id uuid.UUID, doc *patientDoc) *entity.Patient {
	return &entity.Patient{
		ID:   id,
		Name: doc.Name,
		Age:  doc.Age,
		Blood: entity.BloodProfile{
			Group: entity.BloodGroup(doc.BloodGroup),
			Rh:    entity.RhFactor(doc.RhFactor),
		},
		City:          entity.City(doc.City),
		Contact:       doc.Contact,
		Diagnosis:     doc.Diagnosis,
		TreatmentPlan: doc.TreatmentPlan,
		AdmissionDate: doc.AdmissionDate,
		NeedsMatch:    doc.NeedsMatch,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func fromMatchDomain(m *entity.Match) *matchDoc {
	return &matchDoc{
		PatientID:         m.PatientID.String(),
		DonorID:           m.DonorID.String(),
		DonorBloodLabel:   m.DonorBloodLabel,
		PatientBloodLabel: m.PatientBloodLabel,
		City:              string(m.City),
		CreatedAt:         m.CreatedAt,
	}
}

func toMatchDomain(id uuid.UUID, doc *matchDoc) (*entity.Match, error) {
	patientID, err := uuid.Parse(doc.PatientID)
	if err != nil {
		return nil, err
	}
	donorID, err := uuid.Parse(doc.DonorID)
	if err != nil {
		return nil, err
	}

	return &entity.Match{
		ID:                id,
		PatientID:         patientID,
		DonorID:           donorID,
		DonorBloodLabel:   doc.DonorBloodLabel,
		PatientBloodLabel: doc.PatientBloodLabel,
		City:              entity.City(doc.City),
		CreatedAt:         doc.CreatedAt,
	}, nil
}
