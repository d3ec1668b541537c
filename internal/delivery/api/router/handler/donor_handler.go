package handler

import (
	"net/http"

	"bloodbank/internal/delivery/api/response"
	"bloodbank/internal/domain/entity"
	"bloodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonorHandlerParams holds dependencies for DonorHandler, injected by Fx.
type DonorHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
}

// DonorHandler serves the donor registry.
type DonorHandler struct {
	registryUC usecase.RegistryUsecase
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(params DonorHandlerParams) *DonorHandler {
	return &DonorHandler{
		registryUC: params.RegistryUC,
	}
}

// DonorRequest is the body of donor create and update requests.
// Eligibility is never accepted from the caller.
type DonorRequest struct {
	Name               string      `json:"name" validate:"required"`
	BloodGroup         string      `json:"blood_group" validate:"required,blood_group"`
	RhFactor           string      `json:"rh_factor" validate:"required,rh_factor"`
	LastDonationDate   *Date       `json:"last_donation_date"`
	WeightKg           Measurement `json:"weight_kg" validate:"required"`
	HemoglobinGdl      Measurement `json:"hemoglobin_gdl" validate:"required"`
	City               string      `json:"city" validate:"required,city"`
	Contact            string      `json:"contact" validate:"required"`
	OngoingMedications string      `json:"ongoing_medications"`
	ChronicDiseases    string      `json:"chronic_diseases"`
	Allergies          string      `json:"allergies"`
}

func (req *DonorRequest) toInput() *usecase.DonorInput {
	return &usecase.DonorInput{
		Name:               req.Name,
		BloodGroup:         entity.BloodGroup(req.BloodGroup),
		RhFactor:           entity.RhFactor(req.RhFactor),
		LastDonationDate:   req.LastDonationDate.timePtr(),
		WeightKg:           string(req.WeightKg),
		HemoglobinGdl:      string(req.HemoglobinGdl),
		City:               entity.City(req.City),
		Contact:            req.Contact,
		OngoingMedications: req.OngoingMedications,
		ChronicDiseases:    req.ChronicDiseases,
		Allergies:          req.Allergies,
	}
}

// RegisterDonor handles POST /donors
func (h *DonorHandler) RegisterDonor(c echo.Context) error {
	var req DonorRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	donor, err := h.registryUC.RegisterDonor(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, donor)
}

// ListDonors handles GET /donors
func (h *DonorHandler) ListDonors(c echo.Context) error {
	donors, err := h.registryUC.ListDonors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, donors)
}

// GetDonor handles GET /donors/:id
func (h *DonorHandler) GetDonor(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donor ID")
	}

	donor, err := h.registryUC.GetDonor(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donor)
}

// UpdateDonor handles PUT /donors/:id
func (h *DonorHandler) UpdateDonor(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donor ID")
	}

	var req DonorRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	donor, err := h.registryUC.UpdateDonor(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donor)
}

// DeleteDonor handles DELETE /donors/:id
func (h *DonorHandler) DeleteDonor(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid donor ID")
	}

	if err := h.registryUC.DeleteDonor(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
