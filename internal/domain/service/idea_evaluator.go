package service

import (
	"context"

	"workbench/internal/domain/entity"
)

// IdeaEvaluator scores the credibility of a business idea through an LLM.
type IdeaEvaluator interface {
	// Configured reports whether provider credentials are present.
	Configured() bool

	Evaluate(ctx context.Context, idea string) (*entity.IdeaEvaluation, error)
}
