package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quiz-mastery/internal/domain"
	"golang.org/x/sync/singleflight"
)

// QuizSource fetches quiz content for a category from a backing store.
type QuizSource interface {
	QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error)
}

// CachingQuizSource caches category quiz lists with TTL to avoid repeated
// backing-store hits.
type CachingQuizSource struct {
	source QuizSource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedCategory
}

type cachedCategory struct {
	quizzes   []domain.Quiz
	expiresAt time.Time
}

func NewCachingQuizSource(source QuizSource, ttl time.Duration) *CachingQuizSource {
	return &CachingQuizSource{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedCategory),
	}
}

func (c *CachingQuizSource) QuizzesFor(ctx context.Context, category string) ([]domain.Quiz, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[category]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.quizzes, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(category, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[category]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.quizzes, nil
		}
		c.mu.RUnlock()

		quizzes, err := c.source.QuizzesFor(ctx, category)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[category] = cachedCategory{
			quizzes:   quizzes,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return quizzes, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Quiz), nil
}

func (c *CachingQuizSource) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

// StaticQuizSource serves quiz lists from a fixed in-memory map. Unknown
// categories yield an empty list.
type StaticQuizSource struct {
	categories map[string][]domain.Quiz
}

func NewStaticQuizSource(categories map[string][]domain.Quiz) *StaticQuizSource {
	return &StaticQuizSource{categories: categories}
}

func (s *StaticQuizSource) QuizzesFor(_ context.Context, category string) ([]domain.Quiz, error) {
	return s.categories[category], nil
}
