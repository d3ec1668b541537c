package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"bloodbank/internal/delivery/api/response"
	"bloodbank/internal/domain/entity"
	"bloodbank/internal/domain/matching"

	"github.com/labstack/echo/v4"
)

// CheckHandler exposes the pure eligibility and compatibility rules.
type CheckHandler struct {
	now func() time.Time
}

// NewCheckHandler is the constructor for CheckHandler
func NewCheckHandler() *CheckHandler {
	return &CheckHandler{now: time.Now}
}

// EligibilityRequest keeps every field raw so malformed input evaluates to No instead of
// failing the bind.
type EligibilityRequest struct {
	WeightKg         json.RawMessage `json:"weight_kg"`
	HemoglobinGdl    json.RawMessage `json:"hemoglobin_gdl"`
	LastDonationDate json.RawMessage `json:"last_donation_date"`
}

// EligibilityResponse is the verdict for an EligibilityRequest.
type EligibilityResponse struct {
	Eligible entity.Eligibility `json:"eligible"`
}

// CompatibilityRequest names a donor and a patient blood profile.
type CompatibilityRequest struct {
	DonorBloodGroup   string `json:"donor_blood_group" validate:"required,blood_group"`
	DonorRhFactor     string `json:"donor_rh_factor" validate:"required,rh_factor"`
	PatientBloodGroup string `json:"patient_blood_group" validate:"required,blood_group"`
	PatientRhFactor   string `json:"patient_rh_factor" validate:"required,rh_factor"`
}

// CompatibilityResponse tells whether the donor can give to the patient.
type CompatibilityResponse struct {
	Compatible bool `json:"compatible"`
}

// EvaluateEligibility handles POST /eligibility/evaluate
func (h *CheckHandler) EvaluateEligibility(c echo.Context) error {
	var req EligibilityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	eligible := entity.EligibilityNo
	if lastDonation, ok := lastDonationDate(req.LastDonationDate); ok {
		eligible = matching.EvaluateEligibility(measurementText(req.WeightKg), measurementText(req.HemoglobinGdl), lastDonation, h.now())
	}

	return response.Success(c, http.StatusOK, EligibilityResponse{Eligible: eligible})
}

// CheckCompatibility handles POST /compatibility
func (h *CheckHandler) CheckCompatibility(c echo.Context) error {
	var req CompatibilityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	compatible := matching.IsCompatible(
		entity.BloodGroup(req.DonorBloodGroup), entity.RhFactor(req.DonorRhFactor),
		entity.BloodGroup(req.PatientBloodGroup), entity.RhFactor(req.PatientRhFactor),
	)

	return response.Success(c, http.StatusOK, CompatibilityResponse{Compatible: compatible})
}
