package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"quiz-mastery/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuizSource loads quiz JSONB rows from Postgres, ordered within their
// category.
type QuizSource struct {
	pool *pgxpool.Pool
}

func NewQuizSource(pool *pgxpool.Pool) *QuizSource {
	return &QuizSource{pool: pool}
}

// QuizzesFor returns every quiz in a category. An unknown category yields
// an empty list, not an error.
func (s *QuizSource) QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error) {
	rows, err := s.pool.Query(ctx, `SELECT data FROM quizzes WHERE category=$1 ORDER BY position, id`, category)
	if err != nil {
		return nil, fmt.Errorf("query quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []domain.Quiz{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		var quiz domain.Quiz
		if err := json.Unmarshal(raw, &quiz); err != nil {
			return nil, fmt.Errorf("unmarshal quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quizzes: %w", err)
	}
	return quizzes, nil
}
