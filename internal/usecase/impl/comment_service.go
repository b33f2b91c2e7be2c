package impl

import (
	"context"
	"time"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/repository"
	"workbench/internal/usecase"

	"github.com/pkg/errors"
)

type commentService struct {
	commentRepo repository.CommentRepository
	now         func() time.Time
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo repository.CommentRepository) usecase.CommentUsecase {
	return newCommentService(commentRepo, time.Now)
}

func newCommentService(commentRepo repository.CommentRepository, now func() time.Time) *commentService {
	return &commentService{
		commentRepo: commentRepo,
		now:         now,
	}
}

// CreateComment stores a new comment. Author and content are kept verbatim.
func (s *commentService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if input == nil || input.Author == "" || input.Content == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("author and content are required")
	}

	comment := &entity.Comment{
		Author:    input.Author,
		Content:   input.Content,
		CreatedAt: s.now(),
	}

	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListComments returns all comments, newest first.
func (s *commentService) ListComments(ctx context.Context) ([]*entity.Comment, error) {
	comments, err := s.commentRepo.ListComments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	if comments == nil {
		comments = []*entity.Comment{}
	}

	return comments, nil
}

// UpdateComment replaces the content and stamps the edit time.
func (s *commentService) UpdateComment(ctx context.Context, id, content string) error {
	if id == "" {
		return domainerrors.ErrInvalidInput.WithDetails("comment id is required")
	}

	if content == "" {
		return domainerrors.ErrInvalidInput.WithDetails("content is required")
	}

	if err := s.commentRepo.UpdateCommentContent(ctx, id, content, s.now()); err != nil {
		return mapCommentRepoError(err, "failed to update comment")
	}

	return nil
}

// DeleteComment removes a comment; a second delete of the same id reports not found.
func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	if id == "" {
		return domainerrors.ErrInvalidInput.WithDetails("comment id is required")
	}

	if err := s.commentRepo.DeleteComment(ctx, id); err != nil {
		return mapCommentRepoError(err, "failed to delete comment")
	}

	return nil
}

func mapCommentRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrCommentNotFound):
		return domainerrors.ErrCommentNotFound
	case errors.Is(err, repository.ErrInvalidCommentID):
		return domainerrors.ErrInvalidInput.WithDetails("invalid comment id")
	default:
		return errors.Wrap(err, message)
	}
}
