package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"quiz-mastery/internal/app"
	"quiz-mastery/internal/domain"
	"quiz-mastery/internal/infra/memory"
)

func newControllerHarness(t *testing.T, answers []string, weekly domain.Quiz) (*app.Controller, *app.ProgressEngine, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	prompter := &scriptedPrompter{answers: answers}
	store := memory.NewStore()
	engine := app.NewProgressEngineWithClock(context.Background(), store, domain.DefaultAchievements(), nil, testClock())
	clock := &stepClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), step: time.Second}
	runner := app.NewRunnerWithClock(prompter, out, engine, 0, clock.Now, func(time.Duration) {})
	source := memory.NewStaticQuizSource(memory.BuiltinCategories())
	adaptive := app.NewAdaptiveSelector(source, app.DefaultTierThresholds(), app.DefaultTierQuizzes())
	controller := app.NewController(prompter, out, engine, source, runner, adaptive, weekly)
	return controller, engine, out
}

func TestFullSessionFlow(t *testing.T) {
	answers := []string{
		"alice",   // identity
		"1",       // beginner category
		"1",       // YAML Basics (2 questions)
		"b", "b",  // both correct
		"n",       // no repeat
		"banana",  // invalid menu choice
		"5",       // leaderboard
		"",        // press enter
		"7",       // stats
		"",        // press enter
		"10",      // exit
	}
	controller, engine, out := newControllerHarness(t, answers, memory.WeeklyChallenge())

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("session: %v", err)
	}

	u, ok := engine.User(domain.Identity("alice"))
	if !ok {
		t.Fatal("alice should be persisted")
	}
	if u.TotalQuizzes != 1 || u.AverageScore != 100.0 {
		t.Fatalf("bad aggregates: %+v", u)
	}
	keys := achievementKeys(u)
	wantKeys := map[string]bool{domain.AchievementFirstQuiz: false, domain.AchievementPerfectScore: false}
	for _, k := range keys {
		if _, ok := wantKeys[k]; ok {
			wantKeys[k] = true
		}
	}
	for k, seen := range wantKeys {
		if !seen {
			t.Fatalf("expected %s to be granted, have %v", k, keys)
		}
	}

	text := out.String()
	for _, want := range []string{
		"Welcome to Docker & YAML Mastery, alice!",
		"Invalid choice",
		"alice",
		"Personal Stats for alice",
		"Thanks for learning",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestGuestSessionLeavesNoRecord(t *testing.T) {
	answers := []string{
		"",       // blank username -> guest
		"1",      // beginner
		"2",      // Docker Fundamentals (1 question)
		"c",      // correct
		"n",      // no repeat
		"10",     // exit
	}
	controller, engine, out := newControllerHarness(t, answers, memory.WeeklyChallenge())

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(engine.Leaderboard()) != 0 {
		t.Fatalf("guest must not create a leaderboard entry: %+v", engine.Leaderboard())
	}
	if _, ok := engine.User(domain.Identity(domain.GuestName)); ok {
		t.Fatal("guest user record must not exist")
	}
	if !strings.Contains(out.String(), "Playing as guest") {
		t.Fatalf("missing guest notice:\n%s", out.String())
	}
}

func TestEmptyWeeklyQuizReturnsToMenu(t *testing.T) {
	answers := []string{
		"alice",
		"8",  // weekly challenge, configured empty
		"10", // exit still reachable
	}
	controller, engine, out := newControllerHarness(t, answers, domain.Quiz{ID: "weekly", Title: "Broken"})

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("session should survive a misconfigured quiz: %v", err)
	}
	u, _ := engine.User(domain.Identity("alice"))
	if len(u.History) != 0 {
		t.Fatalf("no attempt should be recorded for an empty quiz: %+v", u.History)
	}
	if !strings.Contains(out.String(), "Cannot start quiz") {
		t.Fatalf("missing configuration error notice:\n%s", out.String())
	}
}

func TestAdaptiveMenuUsesTierQuiz(t *testing.T) {
	answers := []string{
		"alice",
		"9",      // adaptive quiz; fresh user -> Beginner -> yaml-basics
		"b", "b", // both correct
		"n",
		"10",
	}
	controller, engine, out := newControllerHarness(t, answers, memory.WeeklyChallenge())

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("session: %v", err)
	}
	u, _ := engine.User(domain.Identity("alice"))
	if len(u.History) != 1 || u.History[0].QuizID != "yaml-basics" {
		t.Fatalf("adaptive should run the beginner quiz, got %+v", u.History)
	}
	if !strings.Contains(out.String(), "Beginner") {
		t.Fatalf("tier notice missing:\n%s", out.String())
	}
}

func TestRunReturnsOnCanceledContext(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := &scriptedPrompter{answers: []string{"alice", "1", "1", "b", "b", "n", "10"}}
	store := memory.NewStore()
	engine := app.NewProgressEngineWithClock(context.Background(), store, domain.DefaultAchievements(), nil, testClock())
	runner := app.NewRunnerWithClock(prompter, out, engine, 0, testClock(), func(time.Duration) {})
	source := memory.NewStaticQuizSource(memory.BuiltinCategories())
	adaptive := app.NewAdaptiveSelector(source, app.DefaultTierThresholds(), app.DefaultTierQuizzes())
	controller := app.NewController(prompter, out, engine, source, runner, adaptive, memory.WeeklyChallenge())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := controller.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if prompter.next != 0 {
		t.Fatalf("canceled session must not consume prompts, read %d", prompter.next)
	}
}

func TestLeaderboardTruncatesLongNamesByRune(t *testing.T) {
	// 25 Cyrillic runes; a byte-based cut at 17 would split one in half.
	name := "ЕленаПрекрасная-Премудрая"
	answers := []string{
		name,
		"1", "1", // beginner, YAML Basics
		"b", "b", // both correct
		"n",
		"5", "", // leaderboard, press enter
		"10",
	}
	controller, _, out := newControllerHarness(t, answers, memory.WeeklyChallenge())

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("session: %v", err)
	}
	text := out.String()
	if !utf8.ValidString(text) {
		t.Fatalf("output contains invalid UTF-8:\n%s", text)
	}
	if !strings.Contains(text, "| ЕленаПрекрасная-П |") {
		t.Fatalf("expected rune-truncated name in leaderboard:\n%s", text)
	}
}

func TestUnknownCategoryShowsEmptyListing(t *testing.T) {
	out := &bytes.Buffer{}
	prompter := &scriptedPrompter{answers: []string{"alice", "1", "0", "10"}}
	store := memory.NewStore()
	engine := app.NewProgressEngineWithClock(context.Background(), store, domain.DefaultAchievements(), nil, testClock())
	runner := app.NewRunnerWithClock(prompter, out, engine, 0, testClock(), func(time.Duration) {})
	source := memory.NewStaticQuizSource(map[string][]domain.Quiz{}) // nothing authored
	adaptive := app.NewAdaptiveSelector(source, app.DefaultTierThresholds(), app.DefaultTierQuizzes())
	controller := app.NewController(prompter, out, engine, source, runner, adaptive, memory.WeeklyChallenge())

	if err := controller.Run(context.Background()); err != nil {
		t.Fatalf("empty category must not crash: %v", err)
	}
	if !strings.Contains(out.String(), "no quizzes available") {
		t.Fatalf("missing empty-category notice:\n%s", out.String())
	}
}
