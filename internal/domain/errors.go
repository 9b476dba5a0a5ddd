package domain

import "errors"

var (
	// ErrEmptyQuiz is returned when a quiz has no questions; the attempt is
	// aborted before any record is created.
	ErrEmptyQuiz = errors.New("quiz has no questions")
	// ErrQuizNotFound indicates quiz content could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrUnknownAchievement indicates a grant referenced a key missing from
	// the catalog.
	ErrUnknownAchievement = errors.New("achievement not in catalog")
)
