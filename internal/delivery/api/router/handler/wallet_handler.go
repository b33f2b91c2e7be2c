package handler

import (
	"encoding/json"
	"net/http"

	"workbench/internal/delivery/api/response"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
}

// WalletHandler serves the Xaman signing endpoints
type WalletHandler struct {
	walletUC usecase.WalletUsecase
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{walletUC: params.WalletUC}
}

// PaymentRequest represents the request body for a payment. Amount accepts a JSON number or numeric string.
type PaymentRequest struct {
	Destination string      `json:"destination" validate:"required"`
	Amount      json.Number `json:"amount" validate:"required"`
	Account     string      `json:"account" validate:"required"`
}

// MintRequest represents the request body for an NFT mint
type MintRequest struct {
	URI string `json:"uri" validate:"required"`
}

// SignIn creates a sign-in request
func (h *WalletHandler) SignIn(c echo.Context) error {
	payload, err := h.walletUC.SignIn(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Payment creates a payment request
func (h *WalletHandler) Payment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object with a numeric amount")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	payload, err := h.walletUC.RequestPayment(c.Request().Context(), &usecase.PaymentInput{
		Account:     req.Account,
		Destination: req.Destination,
		Amount:      req.Amount.String(),
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Mint creates an NFT mint request
func (h *WalletHandler) Mint(c echo.Context) error {
	var req MintRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	payload, err := h.walletUC.MintNFT(c.Request().Context(), req.URI)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Status polls a signing request by uuid
func (h *WalletHandler) Status(c echo.Context) error {
	uuid := c.QueryParam("uuid")
	if uuid == "" {
		return domainerrors.ErrInvalidInput.WithDetails("uuid is required")
	}

	status, err := h.walletUC.PayloadStatus(c.Request().Context(), uuid)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, status)
}
