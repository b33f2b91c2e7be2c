package usecase

import (
	"context"

	"workbench/internal/domain/entity"
)

// CreateCommentInput is the public submission of a new comment.
type CreateCommentInput struct {
	Author  string
	Content string
}

// CommentUsecase defines the guestbook use cases.
type CommentUsecase interface {
	// CreateComment stores a new comment stamped with the current time.
	CreateComment(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)

	// ListComments returns all comments, newest first.
	ListComments(ctx context.Context) ([]*entity.Comment, error)

	// UpdateComment replaces the content of an existing comment.
	UpdateComment(ctx context.Context, id, content string) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, id string) error
}
