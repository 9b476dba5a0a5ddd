package domain

import "time"

// GuestName is the reserved identity for anonymous play. Guest progress is
// never persisted and never appears on the leaderboard.
const GuestName = "guest"

// Identity is the resolved user key for a session: either a persisted
// username or the ephemeral guest sentinel.
type Identity string

// IsGuest reports whether the identity is the ephemeral guest sentinel.
func (id Identity) IsGuest() bool { return string(id) == GuestName }

// User is the persisted per-player record. AverageScore is always
// TotalScore/TotalQuizzes and is recomputed on every attempt, never
// authored independently of its inputs.
type User struct {
	Name         string              `json:"name"`
	TotalScore   int                 `json:"totalScore"`
	TotalQuizzes int                 `json:"totalQuizzes"`
	AverageScore float64             `json:"averageScore"`
	Achievements []AchievementRecord `json:"achievements"`
	History      []Attempt           `json:"quizHistory"`
	JoinedAt     time.Time           `json:"joinDate"`
	LastActive   time.Time           `json:"lastActive"`
}

// Attempt is one completed run through a quiz. Immutable once created.
type Attempt struct {
	QuizID      string    `json:"quizId"`
	Score       int       `json:"score"` // integer percentage, 0-100
	Correct     int       `json:"correctAnswers"`
	Total       int       `json:"totalQuestions"`
	Seconds     int       `json:"time"`
	CompletedAt time.Time `json:"date"`
}

// AchievementDefinition is a static catalog entry. Only the fact of earning
// one is persisted per user.
type AchievementDefinition struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

// AchievementRecord is a per-user earned achievement. At most one record
// per (user, key) pair exists.
type AchievementRecord struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	EarnedAt    time.Time `json:"dateEarned"`
}

// LeaderboardEntry is a derived projection of a User. The leaderboard owns
// no data of its own and can be rebuilt from user records alone.
type LeaderboardEntry struct {
	Username     string  `json:"username"`
	TotalScore   int     `json:"totalScore"`
	AverageScore float64 `json:"averageScore"`
	TotalQuizzes int     `json:"totalQuizzes"`
	Achievements int     `json:"achievements"`
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions. Supplied externally and treated as
// read-only input by the runner.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Tier is a named difficulty bucket derived from a user's average score.
type Tier string

const (
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
	TierExpert       Tier = "Expert"
)
