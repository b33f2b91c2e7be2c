package impl

import (
	"context"
	"log/slog"
	"strings"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	"workbench/internal/usecase"
)

type evaluationService struct {
	evaluator service.IdeaEvaluator
	logger    *slog.Logger
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService(evaluator service.IdeaEvaluator, logger *slog.Logger) usecase.EvaluationUsecase {
	return &evaluationService{
		evaluator: evaluator,
		logger:    logger,
	}
}

// EvaluateIdea asks the evaluator for a 0-10 credibility score.
func (s *evaluationService) EvaluateIdea(ctx context.Context, idea string) (*entity.IdeaEvaluation, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("idea is required")
	}

	if !s.evaluator.Configured() {
		return nil, domainerrors.ErrServiceNotConfigured.WithDetails("openai")
	}

	evaluation, err := s.evaluator.Evaluate(ctx, idea)
	if err != nil {
		return nil, upstreamError(s.logger, "openai", err)
	}

	return evaluation, nil
}
