package handler

import (
	"io"
	"net/http"

	"workbench/internal/delivery/api/response"
	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PinningHandlerParams holds dependencies for PinningHandler, injected by Fx.
type PinningHandlerParams struct {
	fx.In

	PinningUC usecase.PinningUsecase
}

// PinningHandler serves file uploads and locally pinned content
type PinningHandler struct {
	pinningUC usecase.PinningUsecase
}

// NewPinningHandler is the constructor for PinningHandler
func NewPinningHandler(params PinningHandlerParams) *PinningHandler {
	return &PinningHandler{pinningUC: params.PinningUC}
}

// Upload pins the multipart "file" field under the optional "name" field
func (h *PinningHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	pinned, err := h.pinningUC.PinFile(c.Request().Context(), &entity.PinUpload{
		Name:        c.FormValue("name"),
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     content,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, pinned)
}

// GetPin serves content stored by the local pinning provider
func (h *PinningHandler) GetPin(c echo.Context) error {
	content, contentType, err := h.pinningUC.ReadPin(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	return c.Blob(http.StatusOK, contentType, content)
}
