package app

import (
	"context"

	"quiz-mastery/internal/domain"
)

// Document keys for the three persisted JSON documents.
const (
	DocUsers        = "users"
	DocLeaderboard  = "leaderboard"
	DocAchievements = "achievements"
)

// DocumentStore abstracts durable JSON document storage (file, Redis, etc).
// Load reports whether the key was present; an absent key leaves out
// untouched so callers keep their default value. Documents are rewritten in
// full on every Save.
type DocumentStore interface {
	Load(ctx context.Context, key string, out any) (bool, error)
	Save(ctx context.Context, key string, doc any) error
}

// QuizSource provides the ordered quiz list for a category. An unknown
// category yields an empty list, not an error.
type QuizSource interface {
	QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error)
}

// Prompter suspends the session until the user enters a line. An empty
// line is a valid answer.
type Prompter interface {
	Ask(prompt string) (string, error)
}
