package app

// StateKind enumerates the menu state machine's states. StateMain is
// initial; StateExit is terminal.
type StateKind int

const (
	StateMain StateKind = iota
	StateCategory
	StateResults
	StateLeaderboard
	StateAchievements
	StateStats
	StateExit
)

// MenuState is the current position in the menu machine. Category is set
// only for StateCategory.
type MenuState struct {
	Kind     StateKind
	Category string
}

// MenuAction is the tagged union of things a user can do at the menu.
type MenuAction interface{ isMenuAction() }

type (
	// ChooseCategory opens the quiz listing for a difficulty category.
	ChooseCategory struct{ Category string }
	// StartQuiz begins an attempt and lands on the results screen.
	StartQuiz struct{}
	// RepeatQuiz re-enters the same quiz from the results screen.
	RepeatQuiz struct{}
	// ShowLeaderboard opens the ranking view.
	ShowLeaderboard struct{}
	// ShowAchievements opens the achievements view.
	ShowAchievements struct{}
	// ShowStats opens the personal stats view.
	ShowStats struct{}
	// StartWeekly runs the weekly challenge quiz.
	StartWeekly struct{}
	// StartAdaptive runs the difficulty-adapted quiz.
	StartAdaptive struct{}
	// GoBack returns to the main menu.
	GoBack struct{}
	// Quit ends the session.
	Quit struct{}
	// InvalidChoice records unrecognized input; it re-enters the main menu.
	InvalidChoice struct{ Choice string }
)

func (ChooseCategory) isMenuAction()   {}
func (StartQuiz) isMenuAction()        {}
func (RepeatQuiz) isMenuAction()       {}
func (ShowLeaderboard) isMenuAction()  {}
func (ShowAchievements) isMenuAction() {}
func (ShowStats) isMenuAction()        {}
func (StartWeekly) isMenuAction()      {}
func (StartAdaptive) isMenuAction()    {}
func (GoBack) isMenuAction()           {}
func (Quit) isMenuAction()             {}
func (InvalidChoice) isMenuAction()    {}

// Transition is the pure menu transition function. Unrecognized
// combinations re-enter the main menu; Quit is honored from any state.
func Transition(state MenuState, action MenuAction) MenuState {
	if _, ok := action.(Quit); ok {
		return MenuState{Kind: StateExit}
	}
	switch state.Kind {
	case StateMain:
		switch a := action.(type) {
		case ChooseCategory:
			return MenuState{Kind: StateCategory, Category: a.Category}
		case ShowLeaderboard:
			return MenuState{Kind: StateLeaderboard}
		case ShowAchievements:
			return MenuState{Kind: StateAchievements}
		case ShowStats:
			return MenuState{Kind: StateStats}
		case StartWeekly, StartAdaptive:
			return MenuState{Kind: StateResults}
		}
	case StateCategory:
		switch action.(type) {
		case StartQuiz:
			return MenuState{Kind: StateResults}
		case GoBack:
			return MenuState{Kind: StateMain}
		}
	case StateResults:
		switch action.(type) {
		case RepeatQuiz:
			return MenuState{Kind: StateResults}
		case GoBack:
			return MenuState{Kind: StateMain}
		}
	case StateLeaderboard, StateAchievements, StateStats:
		if _, ok := action.(GoBack); ok {
			return MenuState{Kind: StateMain}
		}
	}
	return MenuState{Kind: StateMain}
}

// ParseMainMenuChoice maps a numbered main-menu choice to its action.
func ParseMainMenuChoice(choice string) MenuAction {
	switch choice {
	case "1":
		return ChooseCategory{Category: "beginner"}
	case "2":
		return ChooseCategory{Category: "intermediate"}
	case "3":
		return ChooseCategory{Category: "advanced"}
	case "4":
		return ChooseCategory{Category: "expert"}
	case "5":
		return ShowLeaderboard{}
	case "6":
		return ShowAchievements{}
	case "7":
		return ShowStats{}
	case "8":
		return StartWeekly{}
	case "9":
		return StartAdaptive{}
	case "10":
		return Quit{}
	default:
		return InvalidChoice{Choice: choice}
	}
}
