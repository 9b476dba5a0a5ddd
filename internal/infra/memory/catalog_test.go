package memory

import (
	"context"
	"testing"
	"time"

	"quiz-mastery/internal/domain"
)

type countingSource struct {
	QuizSource
	calls int
}

func (s *countingSource) QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error) {
	s.calls++
	return s.QuizSource.QuizzesFor(ctx, category)
}

func TestCachingQuizSourceCaches(t *testing.T) {
	source := &countingSource{
		QuizSource: NewStaticQuizSource(BuiltinCategories()),
	}
	cached := NewCachingQuizSource(source, time.Minute)

	if _, err := cached.QuizzesFor(context.Background(), "beginner"); err != nil {
		t.Fatalf("get quizzes: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected source hit once, got %d", source.calls)
	}

	if _, err := cached.QuizzesFor(context.Background(), "beginner"); err != nil {
		t.Fatalf("get quizzes 2: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected cache hit, source calls %d", source.calls)
	}
}

func TestStaticSourceUnknownCategoryIsEmpty(t *testing.T) {
	source := NewStaticQuizSource(BuiltinCategories())
	quizzes, err := source.QuizzesFor(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("unknown category must not error: %v", err)
	}
	if len(quizzes) != 0 {
		t.Fatalf("expected empty list, got %d quizzes", len(quizzes))
	}
}

func TestBuiltinBanksCoverAdaptiveTiers(t *testing.T) {
	categories := BuiltinCategories()
	for _, category := range []string{"beginner", "intermediate", "advanced", "expert"} {
		quizzes := categories[category]
		if len(quizzes) == 0 {
			t.Fatalf("category %s has no quizzes", category)
		}
		for _, quiz := range quizzes {
			if len(quiz.Questions) == 0 {
				t.Fatalf("quiz %s has no questions", quiz.ID)
			}
			for _, q := range quiz.Questions {
				if q.Correct < 0 || q.Correct >= len(q.Options) {
					t.Fatalf("quiz %s: correct index %d out of range", quiz.ID, q.Correct)
				}
			}
		}
	}
}
