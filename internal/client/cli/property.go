package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/metrics"
)

// Show fetches one property and renders it with its derived metrics.
// Fetching re-seeds the reconciler: the server's snapshot wins between
// interactions.
func (a *App) Show(ctx context.Context, arg string) error {
	id, err := parsePropertyID(arg)
	if err != nil {
		fmt.Println("Usage: show <property id>")
		return nil
	}

	p, err := a.properties.Get(ctx, id)
	if err != nil {
		return err
	}

	a.reconciler.Track(*p)
	a.renderDetail(*p, metrics.Derive(*p))
	return nil
}

// ToggleFavorite flips the favorite state of a property. The flip is applied
// optimistically; on server failure the reconciler reverts it and the error
// is surfaced here.
func (a *App) ToggleFavorite(ctx context.Context, arg string) error {
	id, err := parsePropertyID(arg)
	if err != nil {
		fmt.Println("Usage: fav <property id>")
		return nil
	}

	if err := a.reconciler.Toggle(ctx, id); err != nil {
		fmt.Println("Favorite change was not saved and has been reverted.")
		return err
	}

	if a.reconciler.IsFavorited(id) {
		fmt.Printf("Property %d added to favorites.\n", id)
	} else {
		fmt.Printf("Property %d removed from favorites.\n", id)
	}
	return nil
}

// Favorites lists the user's favorites with their property snapshots.
func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.favs.List(ctx)
	if err != nil {
		return err
	}

	if len(favs) == 0 {
		fmt.Println("No favorites yet. Use 'fav <id>' from a search.")
		return nil
	}

	for _, f := range favs {
		a.renderListRow(f.Property)
	}
	return nil
}

func parsePropertyID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
