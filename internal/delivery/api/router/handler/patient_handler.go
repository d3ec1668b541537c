package handler

import (
	"net/http"

	"bloodbank/internal/delivery/api/response"
	"bloodbank/internal/domain/entity"
	"bloodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PatientHandlerParams holds dependencies for PatientHandler, injected by Fx.
type PatientHandlerParams struct {
	fx.In

	RegistryUC usecase.RegistryUsecase
	MatchUC    usecase.MatchUsecase
}

// PatientHandler serves the patient registry and per-patient candidate lists.
type PatientHandler struct {
	registryUC usecase.RegistryUsecase
	matchUC    usecase.MatchUsecase
}

// NewPatientHandler is the constructor for PatientHandler
func NewPatientHandler(params PatientHandlerParams) *PatientHandler {
	return &PatientHandler{
		registryUC: params.RegistryUC,
		matchUC:    params.MatchUC,
	}
}

// PatientRequest is the body of patient create and update requests.
type PatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Age           int    `json:"age" validate:"gte=0"`
	BloodGroup    string `json:"blood_group" validate:"required,blood_group"`
	RhFactor      string `json:"rh_factor" validate:"required,rh_factor"`
	City          string `json:"city" validate:"required,city"`
	Contact       string `json:"contact" validate:"required"`
	Diagnosis     string `json:"diagnosis"`
	TreatmentPlan string `json:"treatment_plan"`
	AdmissionDate *Date  `json:"admission_date"`
}

func (req *PatientRequest) toInput() *usecase.PatientInput {
	return &usecase.PatientInput{
		Name:          req.Name,
		Age:           req.Age,
		BloodGroup:    entity.BloodGroup(req.BloodGroup),
		RhFactor:      entity.RhFactor(req.RhFactor),
		City:          entity.City(req.City),
		Contact:       req.Contact,
		Diagnosis:     req.Diagnosis,
		TreatmentPlan: req.TreatmentPlan,
		AdmissionDate: req.AdmissionDate.timePtr(),
	}
}

// RegisterPatient handles POST /patients
func (h *PatientHandler) RegisterPatient(c echo.Context) error {
	var req PatientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	patient, err := h.registryUC.RegisterPatient(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, patient)
}

// ListPatients handles GET /patients
func (h *PatientHandler) ListPatients(c echo.Context) error {
	patients, err := h.registryUC.ListPatients(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, patients)
}

// GetPatient handles GET /patients/:id
func (h *PatientHandler) GetPatient(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	patient, err := h.registryUC.GetPatient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}

// UpdatePatient handles PUT /patients/:id
func (h *PatientHandler) UpdatePatient(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	var req PatientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	patient, err := h.registryUC.UpdatePatient(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, patient)
}

// DeletePatient handles DELETE /patients/:id
func (h *PatientHandler) DeletePatient(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	if err := h.registryUC.DeletePatient(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCandidates handles GET /patients/:id/candidates
func (h *PatientHandler) GetCandidates(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid patient ID")
	}

	candidates, err := h.matchUC.Candidates(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, candidates)
}
