package app

import (
	"context"
	"log"
	"time"

	"quiz-mastery/internal/domain"
)

// Notification carries the display payload emitted when an achievement is
// unlocked.
type Notification struct {
	Name        string
	Description string
	Points      int
}

// ProgressEngine owns all persisted mutation of user records, achievement
// idempotence and the derived leaderboard. Durable state is read once at
// construction and rewritten in full on every mutation; storage failures
// are logged and the session continues on in-memory state.
type ProgressEngine struct {
	store   DocumentStore
	catalog domain.AchievementCatalog
	clock   func() time.Time
	notify  func(Notification)

	users map[string]*domain.User
	board []domain.LeaderboardEntry
}

func NewProgressEngine(ctx context.Context, store DocumentStore, catalog domain.AchievementCatalog, notify func(Notification)) *ProgressEngine {
	return NewProgressEngineWithClock(ctx, store, catalog, notify, time.Now)
}

// NewProgressEngineWithClock allows deterministic timestamps in tests.
func NewProgressEngineWithClock(ctx context.Context, store DocumentStore, catalog domain.AchievementCatalog, notify func(Notification), now func() time.Time) *ProgressEngine {
	if notify == nil {
		notify = func(Notification) {}
	}
	e := &ProgressEngine{
		store:   store,
		catalog: catalog,
		clock:   now,
		notify:  notify,
		users:   make(map[string]*domain.User),
	}
	if _, err := store.Load(ctx, DocUsers, &e.users); err != nil {
		log.Printf("load %s: %v (starting from defaults)", DocUsers, err)
	}
	if _, err := store.Load(ctx, DocLeaderboard, &e.board); err != nil {
		log.Printf("load %s: %v (starting from defaults)", DocLeaderboard, err)
	}
	// The achievements document is kept for interoperability with older data
	// directories; current logic only cares that it exists.
	var achievementsDoc map[string]domain.AchievementDefinition
	if found, err := store.Load(ctx, DocAchievements, &achievementsDoc); err != nil {
		log.Printf("load %s: %v (ignored)", DocAchievements, err)
	} else if !found {
		e.save(ctx, DocAchievements, map[string]domain.AchievementDefinition(catalog))
	}
	return e
}

// Catalog returns the immutable achievement catalog the engine was built
// with.
func (e *ProgressEngine) Catalog() domain.AchievementCatalog { return e.catalog }

// User returns a copy of the record for id, if one exists. Guests never
// have a record.
func (e *ProgressEngine) User(id domain.Identity) (domain.User, bool) {
	if id.IsGuest() {
		return domain.User{}, false
	}
	u, ok := e.users[string(id)]
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

// Resolve loads or creates the record for a non-guest identity, refreshing
// the last-active timestamp, and persists before returning. It reports
// whether the record was newly created.
func (e *ProgressEngine) Resolve(ctx context.Context, id domain.Identity) (domain.User, bool) {
	if id.IsGuest() {
		return domain.User{}, false
	}
	now := e.clock()
	if u, ok := e.users[string(id)]; ok {
		u.LastActive = now
		e.save(ctx, DocUsers, e.users)
		return *u, false
	}
	u := &domain.User{
		Name:         string(id),
		Achievements: []domain.AchievementRecord{},
		History:      []domain.Attempt{},
		JoinedAt:     now,
		LastActive:   now,
	}
	e.users[string(id)] = u
	e.save(ctx, DocUsers, e.users)
	return *u, true
}

// AverageFor returns the identity's current average score, zero for guests
// and unknown users.
func (e *ProgressEngine) AverageFor(id domain.Identity) float64 {
	if u, ok := e.users[string(id)]; ok && !id.IsGuest() {
		return u.AverageScore
	}
	return 0
}

// BestScore returns the best score and attempt count an identity has logged
// for a quiz.
func (e *ProgressEngine) BestScore(id domain.Identity, quizID string) (best, attempts int, ok bool) {
	u, exists := e.users[string(id)]
	if id.IsGuest() || !exists {
		return 0, 0, false
	}
	for _, a := range u.History {
		if a.QuizID != quizID {
			continue
		}
		attempts++
		if a.Score > best {
			best = a.Score
		}
	}
	return best, attempts, attempts > 0
}

// RecordAttempt appends an attempt to the identity's history, recomputes
// the aggregates, persists the user document and refreshes the
// leaderboard. Guest attempts are discarded.
func (e *ProgressEngine) RecordAttempt(ctx context.Context, id domain.Identity, attempt domain.Attempt) {
	if id.IsGuest() {
		return
	}
	u, ok := e.users[string(id)]
	if !ok {
		return
	}
	u.History = append(u.History, attempt)
	u.TotalQuizzes++
	u.TotalScore += attempt.Score
	u.AverageScore = float64(u.TotalScore) / float64(u.TotalQuizzes)
	u.LastActive = attempt.CompletedAt
	e.save(ctx, DocUsers, e.users)

	e.board = Rank(e.board, EntryFor(*u))
	e.save(ctx, DocLeaderboard, e.board)
}

// GrantAchievement awards key to the identity if the catalog declares it
// and the identity does not already hold it. Granting is idempotent by
// construction; repeated calls with the same key are no-ops.
func (e *ProgressEngine) GrantAchievement(ctx context.Context, id domain.Identity, key string) {
	if id.IsGuest() {
		return
	}
	u, ok := e.users[string(id)]
	if !ok {
		return
	}
	def, ok := e.catalog.Lookup(key)
	if !ok {
		return
	}
	for _, earned := range u.Achievements {
		if earned.Key == key {
			return
		}
	}
	u.Achievements = append(u.Achievements, domain.AchievementRecord{
		Key:         def.Key,
		Name:        def.Name,
		Description: def.Description,
		Points:      def.Points,
		EarnedAt:    e.clock(),
	})
	e.save(ctx, DocUsers, e.users)
	e.notify(Notification{Name: def.Name, Description: def.Description, Points: def.Points})
}

// Leaderboard returns a copy of the full ranked entry set.
func (e *ProgressEngine) Leaderboard() []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, len(e.board))
	copy(out, e.board)
	return out
}

func (e *ProgressEngine) save(ctx context.Context, key string, doc any) {
	if err := e.store.Save(ctx, key, doc); err != nil {
		log.Printf("save %s: %v (continuing with in-memory state)", key, err)
	}
}
