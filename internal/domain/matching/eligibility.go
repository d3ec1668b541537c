// Package matching holds the pure donor eligibility and donor–patient compatibility rules.
// Nothing in this package performs I/O or logs.
package matching

import (
	"math"
	"strconv"
	"strings"
	"time"

	"bloodbank/internal/domain/entity"
)

const (
	MinWeightKg          = 40.0
	MaxWeightKg          = 200.0
	MinHemoglobinGdl     = 12.5
	MinDaysSinceDonation = 90
)

const hoursPerDay = 24

// EvaluateEligibility computes the donation verdict from free-form weight and hemoglobin
// values. Values that do not parse as finite decimals yield No.
func EvaluateEligibility(weightKg, hemoglobinGdl string, lastDonation *time.Time, now time.Time) entity.Eligibility {
	weight, ok := ParseMeasurement(weightKg)
	if !ok {
		return entity.EligibilityNo
	}

	hemoglobin, ok := ParseMeasurement(hemoglobinGdl)
	if !ok {
		return entity.EligibilityNo
	}

	return EvaluateMeasurements(weight, hemoglobin, lastDonation, now)
}

// EvaluateMeasurements applies the eligibility rules in order, short-circuiting on the
// first failure: weight in [40, 200] kg, hemoglobin >= 12.5 g/dL, and at least 90 whole
// days since the last donation when one is recorded.
func EvaluateMeasurements(weightKg, hemoglobinGdl float64, lastDonation *time.Time, now time.Time) entity.Eligibility {
	if !isFinite(weightKg) || weightKg < MinWeightKg || weightKg > MaxWeightKg {
		return entity.EligibilityNo
	}

	if !isFinite(hemoglobinGdl) || hemoglobinGdl < MinHemoglobinGdl {
		return entity.EligibilityNo
	}

	if lastDonation != nil && DaysSince(*lastDonation, now) < MinDaysSinceDonation {
		return entity.EligibilityNo
	}

	return entity.EligibilityYes
}

// EvaluateDonor evaluates the donor's stored measurements at now.
func EvaluateDonor(donor *entity.Donor, now time.Time) entity.Eligibility {
	return EvaluateMeasurements(donor.WeightKg, donor.HemoglobinGdl, donor.LastDonationDate, now)
}

// DaysSince returns the whole days elapsed from then to now, truncated toward zero.
func DaysSince(then, now time.Time) int {
	return int(now.Sub(then).Hours() / hoursPerDay)
}

// ParseMeasurement parses a free-form decimal. Surrounding whitespace is ignored;
// anything else that is not a finite number is rejected.
func ParseMeasurement(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !isFinite(value) {
		return 0, false
	}

	return value, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
