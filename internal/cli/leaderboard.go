package cli

import (
	"fmt"
	"os"

	"quiz-mastery/internal/app"
	"quiz-mastery/internal/config"
	"quiz-mastery/internal/domain"
	"github.com/spf13/cobra"
)

// NewLeaderboardCmd prints the top 10 without starting a session.
func NewLeaderboardCmd(configPath, dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the current top 10",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, _, err := buildStore(cfg, *dataDir)
			if err != nil {
				return err
			}

			var board []domain.LeaderboardEntry
			if _, err := store.Load(cmd.Context(), app.DocLeaderboard, &board); err != nil {
				return err
			}
			if len(board) == 0 {
				fmt.Fprintln(os.Stdout, "No attempts recorded yet.")
				return nil
			}
			for i, entry := range app.Top(board, 10) {
				fmt.Fprintf(os.Stdout, "%2d. %-20s %6.1f%% avg  %d quizzes  %d achievements\n",
					i+1, entry.Username, entry.AverageScore, entry.TotalQuizzes, entry.Achievements)
			}
			return nil
		},
	}
}
