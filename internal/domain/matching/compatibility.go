package matching

import "bloodbank/internal/domain/entity"

// aboDonors maps each recipient group to the donor groups it may receive from.
var aboDonors = map[entity.BloodGroup][]entity.BloodGroup{
	entity.BloodGroupO:  {entity.BloodGroupO},
	entity.BloodGroupA:  {entity.BloodGroupA, entity.BloodGroupO},
	entity.BloodGroupB:  {entity.BloodGroupB, entity.BloodGroupO},
	entity.BloodGroupAB: {entity.BloodGroupA, entity.BloodGroupB, entity.BloodGroupAB, entity.BloodGroupO},
}

// ABOCompatible reports whether a donor group may donate to a recipient group.
func ABOCompatible(donor, recipient entity.BloodGroup) bool {
	for _, g := range aboDonors[recipient] {
		if g == donor {
			return true
		}
	}

	return false
}

// RhCompatible reports whether a donor Rh factor may donate to a recipient Rh factor.
// Negative recipients only take negative donors; positive recipients take either.
func RhCompatible(donor, recipient entity.RhFactor) bool {
	switch recipient {
	case entity.RhNegative:
		return donor == entity.RhNegative
	case entity.RhPositive:
		return donor.IsValid()
	default:
		return false
	}
}

// IsCompatible reports whether the donor may donate to the patient: ABO and Rh must both hold.
func IsCompatible(donorGroup entity.BloodGroup, donorRh entity.RhFactor, patientGroup entity.BloodGroup, patientRh entity.RhFactor) bool {
	return ABOCompatible(donorGroup, patientGroup) && RhCompatible(donorRh, patientRh)
}

// ProfilesCompatible is IsCompatible for two blood profiles.
func ProfilesCompatible(donor, patient entity.BloodProfile) bool {
	return IsCompatible(donor.Group, donor.Rh, patient.Group, patient.Rh)
}
