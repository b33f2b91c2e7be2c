package usecase

import (
	"context"

	"workbench/internal/domain/entity"
)

// EvaluationUsecase scores business ideas.
type EvaluationUsecase interface {
	EvaluateIdea(ctx context.Context, idea string) (*entity.IdeaEvaluation, error)
}
