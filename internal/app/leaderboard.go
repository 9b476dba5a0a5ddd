package app

import (
	"sort"

	"quiz-mastery/internal/domain"
)

// EntryFor projects a user record onto its leaderboard entry.
func EntryFor(u domain.User) domain.LeaderboardEntry {
	return domain.LeaderboardEntry{
		Username:     u.Name,
		TotalScore:   u.TotalScore,
		AverageScore: u.AverageScore,
		TotalQuizzes: u.TotalQuizzes,
		Achievements: len(u.Achievements),
	}
}

// Rank replaces any entry with the same username, inserts the updated one
// and returns the re-sorted set. Ordering is average score descending, then
// quiz count descending. Exact ties on both keys keep insertion order
// (stable sort), so the longest-standing entry ranks first.
func Rank(entries []domain.LeaderboardEntry, updated domain.LeaderboardEntry) []domain.LeaderboardEntry {
	next := make([]domain.LeaderboardEntry, 0, len(entries)+1)
	for _, entry := range entries {
		if entry.Username != updated.Username {
			next = append(next, entry)
		}
	}
	next = append(next, updated)

	sort.SliceStable(next, func(i, j int) bool {
		if next[i].AverageScore != next[j].AverageScore {
			return next[i].AverageScore > next[j].AverageScore
		}
		return next[i].TotalQuizzes > next[j].TotalQuizzes
	})
	return next
}

// Top returns at most n leading entries. The full set stays canonical; only
// display is truncated.
func Top(entries []domain.LeaderboardEntry, n int) []domain.LeaderboardEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
