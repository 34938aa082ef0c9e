package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/caexamhub/caprep/internal/quiz"
	"github.com/caexamhub/caprep/internal/toast"
)

// Quiz runs one interactive quiz attempt: present each question, read an
// option number (empty input skips), then offer save/retake/close on the
// result screen. The countdown runs in the engine; if time expires while
// the user is reading, the pending submission is a no-op and the result
// screen shows the timed-out score.
func (a *App) Quiz(ctx context.Context) error {
	a.engine.OnFinish(func(phase quiz.Phase, _ int) {
		if phase == quiz.PhaseTimedOut {
			a.notifier.Notify("Time is up!", toast.SeverityInfo)
		}
	})

	a.engine.Start(ctx)
	defer a.engine.Close()

	for {
		if err := a.questionLoop(); err != nil {
			return err
		}

		retake, err := a.resultScreen(ctx)
		if err != nil {
			return err
		}
		if !retake {
			return nil
		}
		a.engine.Retake(ctx)
	}
}

func (a *App) questionLoop() error {
	for {
		q, ok := a.engine.Question()
		if !ok {
			return nil
		}
		snap := a.engine.Snapshot()

		fmt.Printf("\n[%s remaining] Q%d/%d: %s\n",
			formatSeconds(snap.RemainingSeconds), snap.QuestionIndex+1, snap.TotalQuestions, q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		answer, err := getSimpleText(a.reader, "Answer (number, empty to skip)", os.Stdout)
		if err != nil {
			return err
		}

		choice := quiz.NoAnswer
		if answer != "" {
			n, err := strconv.Atoi(answer)
			if err != nil || n < 1 || n > len(q.Options) {
				printlnFn("Please enter a number between 1 and", len(q.Options))
				continue
			}
			choice = n - 1
		}
		a.engine.SubmitAnswer(choice)
	}
}

// resultScreen shows the final score and reads the follow-up action.
// It returns true when the user wants a fresh attempt.
func (a *App) resultScreen(ctx context.Context) (bool, error) {
	for {
		snap := a.engine.Snapshot()
		if snap.Phase != quiz.PhaseCompleted && snap.Phase != quiz.PhaseTimedOut {
			return false, nil
		}

		fmt.Printf("\nYour score: %d/%d\n", snap.Score, snap.TotalQuestions)
		action, err := getSimpleText(a.reader, "save / retake / close", os.Stdout)
		if err != nil {
			return false, err
		}

		switch action {
		case "save":
			_, err := a.engine.SaveResult(ctx)
			return false, err
		case "retake":
			return true, nil
		case "close", "":
			return false, nil
		default:
			printlnFn("Unknown action:", action)
		}
	}
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
