package handler

import (
	"log/slog"
	"net/http"

	"workbench/internal/delivery/api/response"
	deliverycontext "workbench/internal/delivery/context"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler holds dependencies for guestbook handlers
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest represents the request body for posting a comment
type CreateCommentRequest struct {
	Author  string `json:"author" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest represents the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ListComments returns every comment, newest first
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentUC.ListComments(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, comments)
}

// CreateComment posts a new comment
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, comment)
}

// UpdateComment replaces the content of a comment. Requires authentication.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return domainerrors.ErrInvalidInput.WithDetails("comment id is required")
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body must be a JSON object")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.commentUC.UpdateComment(c.Request().Context(), id, req.Content); err != nil {
		return err
	}

	h.audit(c, "Comment updated", id)

	return response.OK(c)
}

// DeleteComment removes a comment. Requires authentication.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return domainerrors.ErrInvalidInput.WithDetails("comment id is required")
	}

	if err := h.commentUC.DeleteComment(c.Request().Context(), id); err != nil {
		return err
	}

	h.audit(c, "Comment deleted", id)

	return response.OK(c)
}

func (h *CommentHandler) audit(c echo.Context, msg, id string) {
	attrs := []any{slog.String("comment_id", id)}
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		attrs = append(attrs, slog.String("admin", principal.Username))
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info(msg, attrs...)
}
