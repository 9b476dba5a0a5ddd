package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configPath string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envData := os.Getenv("QUIZ_DATA_DIR")
	if envData == "" {
		envData = "quiz-data"
	}
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}

	cmd := &cobra.Command{
		Use:   "quiz-mastery",
		Short: "Interactive Docker & YAML trivia with achievements and a leaderboard",
	}

	cmd.PersistentFlags().StringVar(&dataDir, "data", envData, "directory for persisted quiz data")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewPlayCmd(&configPath, &dataDir))
	cmd.AddCommand(NewLeaderboardCmd(&configPath, &dataDir))
	cmd.AddCommand(NewMigrateCmd(&configPath))
	return cmd
}
