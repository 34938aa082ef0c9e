package cli

import (
	"context"
	"fmt"
)

// Dashboard prints the quiz history, the progress metric, and the saved
// resource list for the current user.
func (a *App) Dashboard(ctx context.Context) error {
	user, err := a.sessions.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		printlnFn("Login to see your dashboard.")
		return nil
	}

	fmt.Printf("\nDashboard for %s (joined %s)\n", user.DisplayName, user.JoinedAt.Format("2 Jan 2006"))

	printlnFn("\nQuiz history:")
	history := a.dashboard.HistoryView(user)
	if len(history) == 0 {
		printlnFn("  No quizzes taken yet.")
	} else {
		for _, h := range history {
			fmt.Printf("  %s: %d/%d\n", h.Date.Format("2 Jan 2006"), h.Score, h.Total)
		}
		fmt.Printf("  Average score: %.1f\n", a.dashboard.ProgressMetric(user))
	}

	printlnFn("\nSaved resources:")
	saved, err := a.dashboard.SavedResourcesView(ctx)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		printlnFn("  No saved resources.")
	} else {
		for _, r := range saved {
			fmt.Printf("  [%d] %s (%s) — %s\n", r.ID, r.Title, r.Level, r.URL)
		}
	}
	return nil
}
