package handler

import (
	"net/http"

	"workbench/internal/delivery/api/response"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EvaluationHandlerParams holds dependencies for EvaluationHandler, injected by Fx.
type EvaluationHandlerParams struct {
	fx.In

	EvaluationUC usecase.EvaluationUsecase
}

// EvaluationHandler serves business idea evaluation
type EvaluationHandler struct {
	evaluationUC usecase.EvaluationUsecase
}

// NewEvaluationHandler is the constructor for EvaluationHandler
func NewEvaluationHandler(params EvaluationHandlerParams) *EvaluationHandler {
	return &EvaluationHandler{evaluationUC: params.EvaluationUC}
}

// EvaluateRequest represents the request body for an idea evaluation
type EvaluateRequest struct {
	Idea string `json:"idea" validate:"required"`
}

// Evaluate scores an idea from 0 to 10
func (h *EvaluationHandler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	evaluation, err := h.evaluationUC.EvaluateIdea(c.Request().Context(), req.Idea)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, evaluation)
}
