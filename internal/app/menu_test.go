package app_test

import (
	"testing"

	"quiz-mastery/internal/app"
)

func TestTransitionMainMenu(t *testing.T) {
	main := app.MenuState{Kind: app.StateMain}

	cases := []struct {
		action app.MenuAction
		want   app.MenuState
	}{
		{app.ChooseCategory{Category: "beginner"}, app.MenuState{Kind: app.StateCategory, Category: "beginner"}},
		{app.ShowLeaderboard{}, app.MenuState{Kind: app.StateLeaderboard}},
		{app.ShowAchievements{}, app.MenuState{Kind: app.StateAchievements}},
		{app.ShowStats{}, app.MenuState{Kind: app.StateStats}},
		{app.StartWeekly{}, app.MenuState{Kind: app.StateResults}},
		{app.StartAdaptive{}, app.MenuState{Kind: app.StateResults}},
		{app.Quit{}, app.MenuState{Kind: app.StateExit}},
		{app.InvalidChoice{Choice: "banana"}, app.MenuState{Kind: app.StateMain}},
	}
	for _, tc := range cases {
		if got := app.Transition(main, tc.action); got != tc.want {
			t.Fatalf("%T: want %+v, got %+v", tc.action, tc.want, got)
		}
	}
}

func TestTransitionCategoryAndResults(t *testing.T) {
	category := app.MenuState{Kind: app.StateCategory, Category: "expert"}
	if got := app.Transition(category, app.StartQuiz{}); got.Kind != app.StateResults {
		t.Fatalf("category+start: got %+v", got)
	}
	if got := app.Transition(category, app.GoBack{}); got.Kind != app.StateMain {
		t.Fatalf("category+back: got %+v", got)
	}

	results := app.MenuState{Kind: app.StateResults}
	if got := app.Transition(results, app.RepeatQuiz{}); got.Kind != app.StateResults {
		t.Fatalf("results+repeat: got %+v", got)
	}
	if got := app.Transition(results, app.GoBack{}); got.Kind != app.StateMain {
		t.Fatalf("results+back: got %+v", got)
	}
}

func TestTransitionViewersReturnToMain(t *testing.T) {
	for _, kind := range []app.StateKind{app.StateLeaderboard, app.StateAchievements, app.StateStats} {
		state := app.MenuState{Kind: kind}
		if got := app.Transition(state, app.GoBack{}); got.Kind != app.StateMain {
			t.Fatalf("state %v + back: got %+v", kind, got)
		}
		// Anything unrecognized re-enters the main menu.
		if got := app.Transition(state, app.StartQuiz{}); got.Kind != app.StateMain {
			t.Fatalf("state %v + bogus action: got %+v", kind, got)
		}
	}
}

func TestQuitHonoredFromAnyState(t *testing.T) {
	for _, kind := range []app.StateKind{app.StateMain, app.StateCategory, app.StateResults, app.StateLeaderboard, app.StateAchievements, app.StateStats} {
		if got := app.Transition(app.MenuState{Kind: kind}, app.Quit{}); got.Kind != app.StateExit {
			t.Fatalf("quit from %v: got %+v", kind, got)
		}
	}
}

func TestParseMainMenuChoice(t *testing.T) {
	if a, ok := app.ParseMainMenuChoice("1").(app.ChooseCategory); !ok || a.Category != "beginner" {
		t.Fatalf("choice 1: got %#v", app.ParseMainMenuChoice("1"))
	}
	if _, ok := app.ParseMainMenuChoice("5").(app.ShowLeaderboard); !ok {
		t.Fatalf("choice 5: got %#v", app.ParseMainMenuChoice("5"))
	}
	if _, ok := app.ParseMainMenuChoice("10").(app.Quit); !ok {
		t.Fatalf("choice 10: got %#v", app.ParseMainMenuChoice("10"))
	}
	if a, ok := app.ParseMainMenuChoice("42").(app.InvalidChoice); !ok || a.Choice != "42" {
		t.Fatalf("choice 42: got %#v", app.ParseMainMenuChoice("42"))
	}
}
