// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"workbench/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for comment persistence.
var (
	// ErrCommentNotFound is returned when no comment has the given ID.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrInvalidCommentID is returned when an ID is not a well-formed store identifier.
	ErrInvalidCommentID = errors.New("invalid comment id")
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// CreateComment persists a new comment and fills in its ID.
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// ListComments returns every comment, most recent first.
	ListComments(ctx context.Context) ([]*entity.Comment, error)

	// UpdateCommentContent replaces the content and sets updatedAt.
	UpdateCommentContent(ctx context.Context, id, content string, updatedAt time.Time) error

	// DeleteComment permanently removes a comment.
	DeleteComment(ctx context.Context, id string) error
}
