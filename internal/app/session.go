package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"quiz-mastery/internal/domain"
)

// Controller resolves a user identity for the process lifetime and drives
// the menu state machine until the user exits.
type Controller struct {
	prompter Prompter
	out      io.Writer
	progress *ProgressEngine
	source   QuizSource
	runner   *Runner
	adaptive *AdaptiveSelector
	weekly   domain.Quiz

	identity domain.Identity
}

func NewController(prompter Prompter, out io.Writer, progress *ProgressEngine, source QuizSource, runner *Runner, adaptive *AdaptiveSelector, weekly domain.Quiz) *Controller {
	return &Controller{
		prompter: prompter,
		out:      out,
		progress: progress,
		source:   source,
		runner:   runner,
		adaptive: adaptive,
		weekly:   weekly,
	}
}

// Run drives one interactive session from identity resolution to exit.
// Cancelling ctx ends the session before the next menu step.
func (c *Controller) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.resolveIdentity(ctx); err != nil {
		return err
	}
	state := MenuState{Kind: StateMain}
	for state.Kind != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := c.step(ctx, state)
		if err != nil {
			return err
		}
		state = next
	}
	fmt.Fprintln(c.out, "\nThanks for learning with Docker & YAML Mastery!")
	return nil
}

// resolveIdentity maps blank input to the guest sentinel; any other input
// is trimmed and loaded or created, with a durable write before play
// starts.
func (c *Controller) resolveIdentity(ctx context.Context) error {
	input, err := c.prompter.Ask("Enter your username (or press Enter for guest): ")
	if err != nil {
		return err
	}
	name := strings.TrimSpace(input)
	if name == "" {
		c.identity = domain.Identity(domain.GuestName)
		fmt.Fprintln(c.out, "\nPlaying as guest (progress will not be saved)")
		return nil
	}

	c.identity = domain.Identity(name)
	if c.identity.IsGuest() {
		fmt.Fprintln(c.out, "\nPlaying as guest (progress will not be saved)")
		return nil
	}

	user, created := c.progress.Resolve(ctx, c.identity)
	if created {
		fmt.Fprintf(c.out, "\nWelcome to Docker & YAML Mastery, %s!\n", name)
		c.progress.GrantAchievement(ctx, c.identity, domain.AchievementFirstQuiz)
	} else {
		fmt.Fprintf(c.out, "\nWelcome back, %s!\n", name)
		fmt.Fprintf(c.out, "Your stats: %d quizzes, %.1f%% average\n", user.TotalQuizzes, user.AverageScore)
	}
	return nil
}

func (c *Controller) step(ctx context.Context, state MenuState) (MenuState, error) {
	switch state.Kind {
	case StateMain:
		return c.stepMain(ctx, state)
	case StateCategory:
		return c.stepCategory(ctx, state)
	case StateLeaderboard:
		c.renderLeaderboard()
		return c.pauseThenBack(state)
	case StateAchievements:
		c.renderAchievements()
		return c.pauseThenBack(state)
	case StateStats:
		c.renderStats()
		return c.pauseThenBack(state)
	default:
		// StateResults is handled inline by the quiz flows.
		return MenuState{Kind: StateMain}, nil
	}
}

func (c *Controller) stepMain(ctx context.Context, state MenuState) (MenuState, error) {
	fmt.Fprint(c.out, `
Main Menu:
1. Beginner Quizzes (YAML Basics, Docker Fundamentals)
2. Intermediate Quizzes (Multi-container, Networking)
3. Advanced Quizzes (Production, Security, Performance)
4. Expert Challenges (Kubernetes, CI/CD, Architecture)
5. View Leaderboard
6. View Achievements
7. Personal Stats
8. Weekly Challenge
9. Adaptive Quiz
10. Exit
`)
	choice, err := c.prompter.Ask("Select an option (1-10): ")
	if err != nil {
		return state, err
	}
	action := ParseMainMenuChoice(strings.TrimSpace(choice))
	if invalid, ok := action.(InvalidChoice); ok {
		fmt.Fprintf(c.out, "\nInvalid choice %q. Please try again.\n", invalid.Choice)
	}

	next := Transition(state, action)
	if next.Kind != StateResults {
		return next, nil
	}

	switch action.(type) {
	case StartWeekly:
		fmt.Fprintln(c.out, "\nWeekly Challenge: complete it to earn bonus points!")
		return c.playQuiz(ctx, next, c.weekly)
	case StartAdaptive:
		tier, quiz, err := c.adaptive.Select(ctx, c.identity, c.progress.AverageFor(c.identity))
		if err != nil {
			fmt.Fprintf(c.out, "\nAdaptive quiz unavailable: %v\n", err)
			return MenuState{Kind: StateMain}, nil
		}
		fmt.Fprintf(c.out, "\nAdaptive Quiz - difficulty adjusted to your level: %s\n", tier)
		return c.playQuiz(ctx, next, quiz)
	}
	return next, nil
}

func (c *Controller) stepCategory(ctx context.Context, state MenuState) (MenuState, error) {
	quizzes, err := c.source.QuizzesFor(ctx, state.Category)
	if err != nil {
		log.Printf("load quizzes for %q: %v", state.Category, err)
		quizzes = nil
	}

	fmt.Fprintf(c.out, "\n%s Quizzes:\n", strings.ToUpper(state.Category))
	if len(quizzes) == 0 {
		fmt.Fprintln(c.out, "(no quizzes available)")
	}
	for i, quiz := range quizzes {
		status := "Not attempted"
		if best, _, ok := c.progress.BestScore(c.identity, quiz.ID); ok {
			status = fmt.Sprintf("Best: %d%%", best)
		}
		fmt.Fprintf(c.out, "%d. %s [%s]\n", i+1, quiz.Title, status)
	}

	choice, err := c.prompter.Ask("\nSelect a quiz (number) or 0 to go back: ")
	if err != nil {
		return state, err
	}
	trimmed := strings.TrimSpace(choice)
	if trimmed == "0" {
		return Transition(state, GoBack{}), nil
	}
	idx, err := strconv.Atoi(trimmed)
	if err != nil || idx < 1 || idx > len(quizzes) {
		fmt.Fprintln(c.out, "Invalid choice.")
		return state, nil
	}
	return c.playQuiz(ctx, Transition(state, StartQuiz{}), quizzes[idx-1])
}

// playQuiz runs the quiz (including its repeat loop) and returns to the
// main menu. An empty quiz is a configuration error fatal for this attempt
// only.
func (c *Controller) playQuiz(ctx context.Context, state MenuState, quiz domain.Quiz) (MenuState, error) {
	if err := c.runner.Play(ctx, c.identity, quiz); err != nil {
		if errors.Is(err, domain.ErrEmptyQuiz) {
			fmt.Fprintf(c.out, "\nCannot start quiz: %v\n", err)
			return MenuState{Kind: StateMain}, nil
		}
		return state, err
	}
	return Transition(MenuState{Kind: StateResults}, GoBack{}), nil
}

func (c *Controller) pauseThenBack(state MenuState) (MenuState, error) {
	if _, err := c.prompter.Ask("\nPress Enter to continue..."); err != nil {
		return state, err
	}
	return Transition(state, GoBack{}), nil
}

func (c *Controller) renderLeaderboard() {
	fmt.Fprintln(c.out, "\nDocker & YAML Mastery Leaderboard")
	fmt.Fprintln(c.out, "Rank | Username          | Avg Score | Quizzes | Achievements")
	fmt.Fprintln(c.out, "-----|-------------------|-----------|---------|-------------")
	for i, entry := range Top(c.progress.Leaderboard(), 10) {
		name := entry.Username
		if runes := []rune(name); len(runes) > 17 {
			name = string(runes[:17])
		}
		fmt.Fprintf(c.out, "%4d | %-17s | %8.1f%% | %7d | %12d\n",
			i+1, name, entry.AverageScore, entry.TotalQuizzes, entry.Achievements)
	}
}

func (c *Controller) renderAchievements() {
	fmt.Fprintln(c.out, "\nAvailable Achievements")
	user, _ := c.progress.User(c.identity)

	catalog := c.progress.Catalog()
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		def := catalog[key]
		status := "[ ]"
		for _, earned := range user.Achievements {
			if earned.Key == key {
				status = "[x]"
				break
			}
		}
		fmt.Fprintf(c.out, "%s %s (%d pts)\n    %s\n", status, def.Name, def.Points, def.Description)
	}
}

func (c *Controller) renderStats() {
	user, ok := c.progress.User(c.identity)
	if !ok {
		fmt.Fprintln(c.out, "\nPersonal stats are not available for guest users.")
		return
	}

	fmt.Fprintf(c.out, "\nPersonal Stats for %s\n", user.Name)
	fmt.Fprintf(c.out, "Total Quizzes: %d\n", user.TotalQuizzes)
	fmt.Fprintf(c.out, "Average Score: %.1f%%\n", user.AverageScore)
	fmt.Fprintf(c.out, "Achievements: %d\n", len(user.Achievements))
	fmt.Fprintf(c.out, "Member Since: %s\n", user.JoinedAt.Format("2006-01-02"))
	fmt.Fprintf(c.out, "Last Active: %s\n", user.LastActive.Format("2006-01-02"))

	if n := len(user.Achievements); n > 0 {
		fmt.Fprintln(c.out, "\nRecent Achievements:")
		start := n - 3
		if start < 0 {
			start = 0
		}
		for _, a := range user.Achievements[start:] {
			fmt.Fprintf(c.out, "   %s - %s\n", a.Name, a.Description)
		}
	}
}
