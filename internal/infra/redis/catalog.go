package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"quiz-mastery/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// QuizSource fetches quiz content for a category from a backing store
// (e.g., Postgres).
type QuizSource interface {
	QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error)
}

// CachingQuizSource caches each category's quiz list as serialized JSON in
// Redis and falls back to the backing source on cache miss.
// Lists are stored as: SET quiz:category:{category} {json} EX ttl
type CachingQuizSource struct {
	client *redis.Client
	source QuizSource
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCachingQuizSource(client *redis.Client, source QuizSource, ttl time.Duration) *CachingQuizSource {
	return &CachingQuizSource{
		client: client,
		source: source,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *CachingQuizSource) QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error) {
	key := c.key(category)

	if quizzes, ok := c.fromCache(ctx, key); ok {
		return quizzes, nil
	}

	result, err, _ := c.sf.Do(category, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if quizzes, ok := c.fromCache(ctx, key); ok {
			return quizzes, nil
		}

		quizzes, err := c.source.QuizzesFor(ctx, category)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(quizzes); err == nil {
			_ = c.client.Set(ctx, key, data, c.ttlWithJitter()).Err()
		}
		return quizzes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Quiz), nil
}

func (c *CachingQuizSource) fromCache(ctx context.Context, key string) ([]domain.Quiz, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var quizzes []domain.Quiz
	if err := json.Unmarshal(data, &quizzes); err != nil {
		return nil, false
	}
	return quizzes, true
}

func (c *CachingQuizSource) key(category string) string {
	return "quiz:category:" + category
}

func (c *CachingQuizSource) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
