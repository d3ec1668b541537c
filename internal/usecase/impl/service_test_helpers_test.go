package impl

import (
	"io"
	"log/slog"
	"time"

	"bloodbank/internal/domain/entity"

	"github.com/google/uuid"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func daysBefore(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, -days)

	return &t
}

func eligibleDonor(group entity.BloodGroup, rh entity.RhFactor, city entity.City) *entity.Donor {
	return &entity.Donor{
		ID:               uuid.New(),
		Name:             "Donor",
		Blood:            entity.BloodProfile{Group: group, Rh: rh},
		LastDonationDate: daysBefore(testNow, 120),
		WeightKg:         70,
		HemoglobinGdl:    14,
		City:             city,
		IsAvailable:      true,
		Eligible:         entity.EligibilityYes,
		CreatedAt:        testNow.Add(-time.Hour),
	}
}

func waitingPatient(group entity.BloodGroup, rh entity.RhFactor, city entity.City) *entity.Patient {
	return &entity.Patient{
		ID:         uuid.New(),
		Name:       "Patient",
		Age:        40,
		Blood:      entity.BloodProfile{Group: group, Rh: rh},
		City:       city,
		NeedsMatch: true,
		CreatedAt:  testNow.Add(-time.Hour),
	}
}
