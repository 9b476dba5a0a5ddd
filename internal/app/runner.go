package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"quiz-mastery/internal/domain"
)

// Runner executes one quiz start-to-finish, grading answers immediately,
// tracking the consecutive-correct streak and producing an attempt record.
type Runner struct {
	prompter Prompter
	out      io.Writer
	progress *ProgressEngine
	clock    func() time.Time
	sleep    func(time.Duration)
	pause    time.Duration
}

func NewRunner(prompter Prompter, out io.Writer, progress *ProgressEngine, pause time.Duration) *Runner {
	return NewRunnerWithClock(prompter, out, progress, pause, time.Now, time.Sleep)
}

// NewRunnerWithClock allows deterministic timing in tests.
func NewRunnerWithClock(prompter Prompter, out io.Writer, progress *ProgressEngine, pause time.Duration, now func() time.Time, sleep func(time.Duration)) *Runner {
	return &Runner{
		prompter: prompter,
		out:      out,
		progress: progress,
		clock:    now,
		sleep:    sleep,
		pause:    pause,
	}
}

// Play runs the quiz and then offers the repeat loop. Each repetition is an
// independent attempt with its own record.
func (r *Runner) Play(ctx context.Context, id domain.Identity, quiz domain.Quiz) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.runOnce(ctx, id, quiz); err != nil {
			return err
		}
		again, err := r.prompter.Ask("\nTake this quiz again? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(strings.TrimSpace(again), "y") {
			return nil
		}
	}
}

func (r *Runner) runOnce(ctx context.Context, id domain.Identity, quiz domain.Quiz) error {
	total := len(quiz.Questions)
	if total == 0 {
		return fmt.Errorf("quiz %q: %w", quiz.ID, domain.ErrEmptyQuiz)
	}

	fmt.Fprintf(r.out, "\nStarting quiz: %s\n", quiz.Title)
	fmt.Fprintf(r.out, "%d questions\n", total)

	var (
		correct    int
		streak     int
		bestStreak int
		elapsed    time.Duration
	)

	for i, question := range quiz.Questions {
		if err := ctx.Err(); err != nil {
			return err
		}
		questionStart := r.clock()
		ok, err := r.askQuestion(question, i+1, total)
		if err != nil {
			return err
		}
		elapsed += r.clock().Sub(questionStart)

		if ok {
			correct++
			streak++
			if streak > bestStreak {
				bestStreak = streak
			}
			// Milestones fire on the crossing, mid-quiz, exactly once.
			if streak == 5 {
				r.progress.GrantAchievement(ctx, id, domain.AchievementStreak5)
			}
			if streak == 10 {
				r.progress.GrantAchievement(ctx, id, domain.AchievementStreak10)
			}
		} else {
			streak = 0
		}
		r.sleep(r.pause)
	}

	seconds := int(elapsed / time.Second)
	score := int(math.Round(100 * float64(correct) / float64(total)))

	fmt.Fprintf(r.out, "\nQuiz complete: %s\n", quiz.Title)
	fmt.Fprintf(r.out, "Score: %d%% (%d/%d)\n", score, correct, total)
	fmt.Fprintf(r.out, "Time: %d seconds\n", seconds)
	fmt.Fprintf(r.out, "Best streak: %d\n", bestStreak)
	fmt.Fprintf(r.out, "Grade: %s\n", gradeFor(score))

	if score == 100 {
		r.progress.GrantAchievement(ctx, id, domain.AchievementPerfectScore)
	}
	if seconds < 300 && total >= 10 {
		r.progress.GrantAchievement(ctx, id, domain.AchievementSpeedDemon)
	}

	r.progress.RecordAttempt(ctx, id, domain.Attempt{
		QuizID:      quiz.ID,
		Score:       score,
		Correct:     correct,
		Total:       total,
		Seconds:     seconds,
		CompletedAt: r.clock(),
	})
	return nil
}

func (r *Runner) askQuestion(q domain.Question, current, total int) (bool, error) {
	fmt.Fprintf(r.out, "\nQuestion %d/%d:\n%s\n\n", current, total, q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(r.out, "%c. %s\n", 'A'+i, option)
	}

	answer, err := r.prompter.Ask(fmt.Sprintf("\nYour answer (A-%c): ", 'A'+len(q.Options)-1))
	if err != nil {
		return false, err
	}

	// Unparseable input counts as incorrect rather than re-prompting.
	idx, ok := answerIndex(answer, len(q.Options))
	if ok && idx == q.Correct {
		fmt.Fprintln(r.out, "Correct!")
		if q.Explanation != "" {
			fmt.Fprintln(r.out, q.Explanation)
		}
		return true, nil
	}

	fmt.Fprintf(r.out, "Incorrect. The correct answer is %c.\n", 'A'+q.Correct)
	if q.Explanation != "" {
		fmt.Fprintln(r.out, q.Explanation)
	}
	return false, nil
}

// answerIndex maps a single-letter answer, case-insensitively, to an option
// index within [0, options).
func answerIndex(answer string, options int) (int, bool) {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) != 1 {
		return 0, false
	}
	c := strings.ToUpper(trimmed)[0]
	idx := int(c - 'A')
	if idx < 0 || idx >= options {
		return 0, false
	}
	return idx, true
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "F"
	}
}
