package matching

import (
	"bloodbank/internal/domain/entity"
	"bloodbank/internal/errors"

	"github.com/google/uuid"
)

// Reasons a donor–patient pair cannot be matched.
var (
	ErrDonorUnavailable  = errors.New("donor is reserved by another match")
	ErrDonorIneligible   = errors.New("donor is not eligible to donate")
	ErrDonorMatched      = errors.New("donor is referenced by a live match")
	ErrPatientSatisfied  = errors.New("patient already has a confirmed match")
	ErrPatientMatched    = errors.New("patient is referenced by a live match")
	ErrCityMismatch      = errors.New("donor and patient are in different cities")
	ErrBloodIncompatible = errors.New("donor blood is incompatible with the patient")
)

// CheckPair returns the first reason the donor cannot currently be matched to the patient,
// or nil. Eligibility is read from donor.Eligible; callers refresh it beforehand.
func CheckPair(patient *entity.Patient, donor *entity.Donor) error {
	switch {
	case !donor.IsAvailable:
		return ErrDonorUnavailable
	case !patient.NeedsMatch:
		return ErrPatientSatisfied
	case !donor.Eligible.Bool():
		return ErrDonorIneligible
	case donor.City != patient.City:
		return ErrCityMismatch
	case !ProfilesCompatible(donor.Blood, patient.Blood):
		return ErrBloodIncompatible
	default:
		return nil
	}
}

// CandidatesFor returns, in input order, every donor that is available, eligible, in the
// patient's city, blood compatible and not referenced by a live match. The result is never
// nil so an empty candidate set is distinguishable from one never computed.
func CandidatesFor(patient *entity.Patient, donors []*entity.Donor, liveMatches []*entity.Match) []*entity.Donor {
	reserved := make(map[uuid.UUID]struct{}, len(liveMatches))
	for _, m := range liveMatches {
		reserved[m.DonorID] = struct{}{}
	}

	candidates := make([]*entity.Donor, 0)
	for _, donor := range donors {
		if !donor.IsAvailable || !donor.Eligible.Bool() {
			continue
		}
		if donor.City != patient.City {
			continue
		}
		if !ProfilesCompatible(donor.Blood, patient.Blood) {
			continue
		}
		if _, ok := reserved[donor.ID]; ok {
			continue
		}
		candidates = append(candidates, donor)
	}

	return candidates
}
