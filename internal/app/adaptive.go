package app

import (
	"context"

	"quiz-mastery/internal/domain"
)

// TierThreshold maps an inclusive minimum average score to a tier.
type TierThreshold struct {
	MinAverage float64
	Tier       domain.Tier
}

// DefaultTierThresholds returns the built-in difficulty ladder, highest
// bound first.
func DefaultTierThresholds() []TierThreshold {
	return []TierThreshold{
		{MinAverage: 90, Tier: domain.TierExpert},
		{MinAverage: 75, Tier: domain.TierAdvanced},
		{MinAverage: 60, Tier: domain.TierIntermediate},
		{MinAverage: 0, Tier: domain.TierBeginner},
	}
}

// TierQuiz pins a tier to one fixed quiz within a category.
type TierQuiz struct {
	Category string
	QuizID   string
}

// DefaultTierQuizzes returns the fixed tier-to-quiz mapping. There is no
// randomization or blending across tiers.
func DefaultTierQuizzes() map[domain.Tier]TierQuiz {
	return map[domain.Tier]TierQuiz{
		domain.TierBeginner:     {Category: "beginner", QuizID: "yaml-basics"},
		domain.TierIntermediate: {Category: "intermediate", QuizID: "multi-container"},
		domain.TierAdvanced:     {Category: "advanced", QuizID: "production-deployment"},
		domain.TierExpert:       {Category: "expert", QuizID: "kubernetes-migration"},
	}
}

// AdaptiveSelector picks a difficulty tier from a user's historical average
// and resolves the tier's fixed quiz.
type AdaptiveSelector struct {
	thresholds []TierThreshold
	quizzes    map[domain.Tier]TierQuiz
	source     QuizSource
}

func NewAdaptiveSelector(source QuizSource, thresholds []TierThreshold, quizzes map[domain.Tier]TierQuiz) *AdaptiveSelector {
	return &AdaptiveSelector{thresholds: thresholds, quizzes: quizzes, source: source}
}

// TierFor resolves the tier for an identity with the given average score.
// Guests always play the lowest tier.
func (s *AdaptiveSelector) TierFor(id domain.Identity, average float64) domain.Tier {
	if id.IsGuest() {
		return domain.TierBeginner
	}
	for _, t := range s.thresholds {
		if average >= t.MinAverage {
			return t.Tier
		}
	}
	return domain.TierBeginner
}

// Select returns the fixed quiz for the identity's tier.
func (s *AdaptiveSelector) Select(ctx context.Context, id domain.Identity, average float64) (domain.Tier, domain.Quiz, error) {
	tier := s.TierFor(id, average)
	pick, ok := s.quizzes[tier]
	if !ok {
		return tier, domain.Quiz{}, domain.ErrQuizNotFound
	}
	quizzes, err := s.source.QuizzesFor(ctx, pick.Category)
	if err != nil {
		return tier, domain.Quiz{}, err
	}
	for _, quiz := range quizzes {
		if quiz.ID == pick.QuizID {
			return tier, quiz, nil
		}
	}
	return tier, domain.Quiz{}, domain.ErrQuizNotFound
}
