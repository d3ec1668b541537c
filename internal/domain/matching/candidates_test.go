package matching

import (
	"math/rand/v2"
	"testing"

	"bloodbank/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonor(group entity.BloodGroup, rh entity.RhFactor, city entity.City) *entity.Donor {
	return &entity.Donor{
		ID:          uuid.New(),
		Blood:       entity.BloodProfile{Group: group, Rh: rh},
		City:        city,
		IsAvailable: true,
		Eligible:    entity.EligibilityYes,
	}
}

func newPatient(group entity.BloodGroup, rh entity.RhFactor, city entity.City) *entity.Patient {
	return &entity.Patient{
		ID:         uuid.New(),
		Blood:      entity.BloodProfile{Group: group, Rh: rh},
		City:       city,
		NeedsMatch: true,
	}
}

func TestCandidatesFor_FiltersAndKeepsInputOrder(t *testing.T) {
	patient := newPatient(entity.BloodGroupA, entity.RhNegative, "Lahore")

	first := newDonor(entity.BloodGroupO, entity.RhNegative, "Lahore")
	wrongCity := newDonor(entity.BloodGroupO, entity.RhNegative, "Karachi")
	wrongRh := newDonor(entity.BloodGroupA, entity.RhPositive, "Lahore")
	wrongABO := newDonor(entity.BloodGroupB, entity.RhNegative, "Lahore")
	reserved := newDonor(entity.BloodGroupA, entity.RhNegative, "Lahore")
	reserved.IsAvailable = false
	ineligible := newDonor(entity.BloodGroupA, entity.RhNegative, "Lahore")
	ineligible.Eligible = entity.EligibilityNo
	staleFlag := newDonor(entity.BloodGroupA, entity.RhNegative, "Lahore")
	last := newDonor(entity.BloodGroupA, entity.RhNegative, "Lahore")

	donors := []*entity.Donor{first, wrongCity, wrongRh, wrongABO, reserved, ineligible, staleFlag, last}
	live := []*entity.Match{{ID: uuid.New(), DonorID: staleFlag.ID, PatientID: uuid.New()}}

	got := CandidatesFor(patient, donors, live)

	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, last.ID, got[1].ID)
}

func TestCandidatesFor_EmptyIsNotNil(t *testing.T) {
	patient := newPatient(entity.BloodGroupO, entity.RhNegative, "Quetta")

	got := CandidatesFor(patient, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = CandidatesFor(patient, []*entity.Donor{newDonor(entity.BloodGroupA, entity.RhNegative, "Quetta")}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCandidatesFor_CityMatchIsExact(t *testing.T) {
	patient := newPatient(entity.BloodGroupAB, entity.RhPositive, "Multan")
	donor := newDonor(entity.BloodGroupO, entity.RhNegative, "multan")

	assert.Empty(t, CandidatesFor(patient, []*entity.Donor{donor}, nil))
}

func TestCandidatesFor_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	donors := randomDonors(rng, 60)
	patient := newPatient(entity.BloodGroupAB, entity.RhPositive, entity.Cities[0])

	assert.Equal(t, CandidatesFor(patient, donors, nil), CandidatesFor(patient, donors, nil))
}

func TestCandidatesFor_GeneratedPools(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))

	for round := 0; round < 200; round++ {
		donors := randomDonors(rng, 1+rng.IntN(40))
		patient := newPatient(
			entity.BloodGroups[rng.IntN(len(entity.BloodGroups))],
			entity.RhFactors[rng.IntN(len(entity.RhFactors))],
			entity.Cities[rng.IntN(3)],
		)

		var live []*entity.Match
		for _, d := range donors {
			if rng.IntN(8) == 0 {
				live = append(live, &entity.Match{ID: uuid.New(), DonorID: d.ID})
			}
		}

		for _, c := range CandidatesFor(patient, donors, live) {
			assert.True(t, c.IsAvailable)
			assert.Equal(t, patient.City, c.City)
			assert.True(t, ProfilesCompatible(c.Blood, patient.Blood))
			for _, m := range live {
				assert.NotEqual(t, m.DonorID, c.ID)
			}
		}
	}
}

func TestCheckPair(t *testing.T) {
	base := func() (*entity.Patient, *entity.Donor) {
		return newPatient(entity.BloodGroupB, entity.RhPositive, "Peshawar"),
			newDonor(entity.BloodGroupO, entity.RhPositive, "Peshawar")
	}

	patient, donor := base()
	assert.NoError(t, CheckPair(patient, donor))

	tests := []struct {
		name   string
		mutate func(*entity.Patient, *entity.Donor)
		want   error
	}{
		{name: "donor reserved", mutate: func(_ *entity.Patient, d *entity.Donor) { d.IsAvailable = false }, want: ErrDonorUnavailable},
		{name: "patient satisfied", mutate: func(p *entity.Patient, _ *entity.Donor) { p.NeedsMatch = false }, want: ErrPatientSatisfied},
		{name: "donor ineligible", mutate: func(_ *entity.Patient, d *entity.Donor) { d.Eligible = entity.EligibilityNo }, want: ErrDonorIneligible},
		{name: "different city", mutate: func(_ *entity.Patient, d *entity.Donor) { d.City = "Sialkot" }, want: ErrCityMismatch},
		{name: "incompatible", mutate: func(_ *entity.Patient, d *entity.Donor) { d.Blood.Group = entity.BloodGroupA }, want: ErrBloodIncompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patient, donor := base()
			tt.mutate(patient, donor)
			assert.ErrorIs(t, CheckPair(patient, donor), tt.want)
		})
	}
}

func randomDonors(rng *rand.Rand, n int) []*entity.Donor {
	donors := make([]*entity.Donor, 0, n)
	for range n {
		d := newDonor(
			entity.BloodGroups[rng.IntN(len(entity.BloodGroups))],
			entity.RhFactors[rng.IntN(len(entity.RhFactors))],
			entity.Cities[rng.IntN(3)],
		)
		d.IsAvailable = rng.IntN(4) != 0
		if rng.IntN(5) == 0 {
			d.Eligible = entity.EligibilityNo
		}
		donors = append(donors, d)
	}

	return donors
}
