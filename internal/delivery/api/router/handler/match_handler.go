package handler

import (
	"net/http"

	"bloodbank/internal/delivery/api/response"
	"bloodbank/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
}

// MatchHandler serves the match lifecycle and the match board.
type MatchHandler struct {
	matchUC usecase.MatchUsecase
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
	}
}

// ConfirmMatchRequest is the body of POST /matches.
type ConfirmMatchRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	DonorID   string `json:"donor_id" validate:"required,uuid"`
}

// ConfirmMatch handles POST /matches
func (h *MatchHandler) ConfirmMatch(c echo.Context) error {
	var req ConfirmMatchRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	match, err := h.matchUC.ConfirmMatch(c.Request().Context(), uuid.MustParse(req.PatientID), uuid.MustParse(req.DonorID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, match)
}

// ReleaseMatch handles DELETE /matches/:id
func (h *MatchHandler) ReleaseMatch(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	if err := h.matchUC.ReleaseMatch(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetMatch handles GET /matches/:id
func (h *MatchHandler) GetMatch(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid match ID")
	}

	match, err := h.matchUC.GetMatch(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, match)
}

// ListMatches handles GET /matches
func (h *MatchHandler) ListMatches(c echo.Context) error {
	matches, err := h.matchUC.ListMatches(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, matches)
}

// GetBoard handles GET /matches/board
func (h *MatchHandler) GetBoard(c echo.Context) error {
	board, err := h.matchUC.Board(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, board)
}
