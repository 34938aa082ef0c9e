package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Resources lists the static catalog with saved markers.
func (a *App) Resources(ctx context.Context) error {
	saved, err := a.resources.List(ctx)
	if err != nil {
		return err
	}
	savedIDs := make(map[int]bool, len(saved))
	for _, s := range saved {
		savedIDs[s.ID] = true
	}

	printlnFn("\nResource catalog:")
	for _, r := range a.catalog {
		marker := " "
		if savedIDs[r.ID] {
			marker = "*"
		}
		fmt.Printf("%s [%d] %-12s %s — %s\n", marker, r.ID, r.Level, r.Title, r.Description)
	}
	printlnFn("\n(* saved; use 'save <id>' / 'remove <id>')")
	return nil
}

// SaveResource bookmarks a catalog entry by id.
func (a *App) SaveResource(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: save <id>")
		return nil
	}
	return a.resources.Save(ctx, id)
}

// RemoveResource drops a bookmark by id.
func (a *App) RemoveResource(ctx context.Context, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		printlnFn("Usage: remove <id>")
		return nil
	}
	return a.resources.Remove(ctx, id)
}
