package entity

import "math"

const (
	// MinIdeaScore and MaxIdeaScore bound an evaluation score.
	MinIdeaScore = 0
	MaxIdeaScore = 10

	// DefaultFeedback is used when the evaluator returns no feedback.
	DefaultFeedback = "No feedback provided."
)

// IdeaEvaluation is the normalized credibility verdict for a business idea.
type IdeaEvaluation struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// NewIdeaEvaluation rounds and clamps a raw score into [0,10] and defaults empty feedback.
func NewIdeaEvaluation(rawScore float64, feedback string) IdeaEvaluation {
	// Clamp before converting; out-of-range float to int conversion is implementation-defined.
	score := int(math.Round(math.Max(MinIdeaScore, math.Min(MaxIdeaScore, rawScore))))

	if feedback == "" {
		feedback = DefaultFeedback
	}

	return IdeaEvaluation{Score: score, Feedback: feedback}
}
