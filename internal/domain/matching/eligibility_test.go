package matching

import (
	"fmt"
	"testing"
	"time"

	"bloodbank/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var evalNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func daysAgo(days int) *time.Time {
	t := time.Date(evalNow.Year(), evalNow.Month(), evalNow.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	return &t
}

func TestEvaluateEligibility_WeightOutOfRange(t *testing.T) {
	for _, weight := range []string{"39.99", "0", "-70", "200.01", "250", "abc", "", "70kg", "NaN", "Inf"} {
		t.Run(weight, func(t *testing.T) {
			assert.Equal(t, entity.EligibilityNo, EvaluateEligibility(weight, "14", nil, evalNow))
		})
	}
}

func TestEvaluateEligibility_WeightBoundariesInclusive(t *testing.T) {
	for _, weight := range []string{"40", "200", " 70.5 "} {
		t.Run(weight, func(t *testing.T) {
			assert.Equal(t, entity.EligibilityYes, EvaluateEligibility(weight, "14", nil, evalNow))
		})
	}
}

func TestEvaluateEligibility_LowHemoglobin(t *testing.T) {
	for _, h := range []float64{0, 10, 12.49, 12.4999} {
		t.Run(fmt.Sprint(h), func(t *testing.T) {
			assert.Equal(t, entity.EligibilityNo, EvaluateMeasurements(70, h, nil, evalNow))
		})
	}

	assert.Equal(t, entity.EligibilityYes, EvaluateMeasurements(70, 12.5, nil, evalNow))
	assert.Equal(t, entity.EligibilityNo, EvaluateEligibility("70", "twelve", nil, evalNow))
}

func TestEvaluateEligibility_DonationIntervalBoundary(t *testing.T) {
	assert.Equal(t, entity.EligibilityNo, EvaluateEligibility("70", "14", daysAgo(89), evalNow))
	assert.Equal(t, entity.EligibilityYes, EvaluateEligibility("70", "14", daysAgo(90), evalNow))
	assert.Equal(t, entity.EligibilityYes, EvaluateEligibility("70", "14", daysAgo(365), evalNow))
}

func TestEvaluateEligibility_NoLastDonation(t *testing.T) {
	assert.Equal(t, entity.EligibilityYes, EvaluateEligibility("70", "14", nil, evalNow))
}

func TestEvaluateEligibility_FutureDonationDate(t *testing.T) {
	future := evalNow.AddDate(0, 0, 3)
	assert.Equal(t, entity.EligibilityNo, EvaluateEligibility("70", "14", &future, evalNow))
}

func TestDaysSince_TruncatesTowardZero(t *testing.T) {
	then := evalNow.Add(-(89*24*time.Hour + 23*time.Hour))
	assert.Equal(t, 89, DaysSince(then, evalNow))
	assert.Equal(t, 90, DaysSince(evalNow.Add(-90*24*time.Hour), evalNow))
}

func TestEvaluateDonor_UsesStoredMeasurements(t *testing.T) {
	donor := &entity.Donor{WeightKg: 55, HemoglobinGdl: 13.1, LastDonationDate: daysAgo(120)}
	assert.Equal(t, entity.EligibilityYes, EvaluateDonor(donor, evalNow))

	donor.LastDonationDate = daysAgo(10)
	assert.Equal(t, entity.EligibilityNo, EvaluateDonor(donor, evalNow))
}
