package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-mastery/internal/app"
	"quiz-mastery/internal/config"
	"quiz-mastery/internal/domain"
	filestore "quiz-mastery/internal/infra/file"
	"quiz-mastery/internal/infra/memory"
	pgsource "quiz-mastery/internal/infra/postgres"
	redisinfra "quiz-mastery/internal/infra/redis"
	"quiz-mastery/internal/transport/console"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewPlayCmd builds the CLI subcommand that runs one interactive session.
func NewPlayCmd(configPath, dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start an interactive quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), *configPath, *dataDir)
		},
	}
}

func runSession(ctx context.Context, configPath, dataDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Interrupt cancels ctx; the session ends before the next question or
	// menu step (a blocked prompt read finishes first).
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	store, redisClient, err := buildStore(cfg, dataDir)
	if err != nil {
		return err
	}

	source, pool, err := buildQuizSource(ctx, cfg, redisClient)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	out := os.Stdout
	prompter := console.NewPrompter(os.Stdin, out)
	notify := func(n app.Notification) {
		fmt.Fprintf(out, "\nAchievement Unlocked: %s\n%s (+%d points)\n", n.Name, n.Description, n.Points)
	}

	progress := app.NewProgressEngine(ctx, store, domain.DefaultAchievements(), notify)
	pause := config.Duration(cfg.Quiz.Pause, 1500*time.Millisecond)
	runner := app.NewRunner(prompter, out, progress, pause)
	adaptive := app.NewAdaptiveSelector(source, app.DefaultTierThresholds(), app.DefaultTierQuizzes())
	controller := app.NewController(prompter, out, progress, source, runner, adaptive, memory.WeeklyChallenge())

	fmt.Fprintln(out, "Docker & YAML Mastery - Interactive Quiz")
	fmt.Fprintln(out, "Test your knowledge, earn achievements, climb the rankings.")
	fmt.Fprintln(out)
	return controller.Run(ctx)
}

// buildStore picks Redis-backed document storage when configured, falling
// back to JSON files in the data directory.
func buildStore(cfg config.Config, dataDir string) (app.DocumentStore, *redis.Client, error) {
	if cfg.Storage.Dir != "" {
		dataDir = cfg.Storage.Dir
	}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisinfra.NewStore(client), client, nil
	}
	store, err := filestore.NewStore(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return store, nil, nil
}

// buildQuizSource loads quiz content from Postgres when configured,
// otherwise from the bundled question banks, with a TTL cache in front
// either way.
func buildQuizSource(ctx context.Context, cfg config.Config, redisClient *redis.Client) (app.QuizSource, *pgxpool.Pool, error) {
	ttl := config.Duration(cfg.Quiz.TTL, 10*time.Minute)

	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, err
		}
		backing := pgsource.NewQuizSource(pool)
		if redisClient != nil {
			return redisinfra.NewCachingQuizSource(redisClient, backing, ttl), pool, nil
		}
		return memory.NewCachingQuizSource(backing, ttl), pool, nil
	}

	return memory.NewStaticQuizSource(memory.BuiltinCategories()), nil, nil
}
