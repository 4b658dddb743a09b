package favorites

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

// ---- fake API ----

// fakeAPI implements API with per-call hooks so tests can control the order
// in which server responses settle.
type fakeAPI struct {
	mu sync.Mutex

	addFn    func(ctx context.Context, propertyID int64) (*models.Favorite, error)
	removeFn func(ctx context.Context, favoriteID int64) error
	listFn   func(ctx context.Context) ([]models.Favorite, error)

	addCalls    []int64
	removeCalls []int64
}

func (f *fakeAPI) AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error) {
	f.mu.Lock()
	f.addCalls = append(f.addCalls, propertyID)
	fn := f.addFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, propertyID)
	}
	return &models.Favorite{ID: 1000 + propertyID, PropertyID: propertyID}, nil
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	f.mu.Lock()
	f.removeCalls = append(f.removeCalls, favoriteID)
	fn := f.removeFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, favoriteID)
	}
	return nil
}

func (f *fakeAPI) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	f.mu.Lock()
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, nil
}

func newTestReconciler(t *testing.T) (*Reconciler, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(api, log), api
}

// ---- tests ----

func TestToggle_AddsWhenUnfavorited(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	require.NoError(t, r.Toggle(context.Background(), 7))

	require.True(t, r.IsFavorited(7))
	require.Equal(t, []int64{7}, api.addCalls)
	require.Empty(t, api.removeCalls)
}

func TestToggle_RemovesByFavoriteID(t *testing.T) {
	r, api := newTestReconciler(t)
	r.TrackFavorite(models.Favorite{ID: 55, PropertyID: 7})

	require.NoError(t, r.Toggle(context.Background(), 7))

	require.False(t, r.IsFavorited(7))
	require.Equal(t, []int64{55}, api.removeCalls, "removal must use the favorite-record id")
}

func TestToggle_ResolvesFavoriteIDViaListing(t *testing.T) {
	r, api := newTestReconciler(t)
	// Server said favorited, but the listing endpoint does not carry the
	// favorite-record id.
	r.Track(models.Property{ID: 7, IsFavorited: true})
	api.listFn = func(ctx context.Context) ([]models.Favorite, error) {
		return []models.Favorite{
			{ID: 31, PropertyID: 3},
			{ID: 77, PropertyID: 7},
		}, nil
	}

	require.NoError(t, r.Toggle(context.Background(), 7))
	require.Equal(t, []int64{77}, api.removeCalls)
}

func TestToggle_RollsBackOnFailure(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	boom := errors.New("boom")
	api.addFn = func(ctx context.Context, propertyID int64) (*models.Favorite, error) {
		return nil, boom
	}

	err := r.Toggle(context.Background(), 7)
	require.ErrorIs(t, err, boom)
	require.False(t, r.IsFavorited(7), "optimistic flip must be reverted")
}

func TestToggle_OptimisticFlipIsImmediate(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	entered := make(chan struct{})
	release := make(chan struct{})
	api.addFn = func(ctx context.Context, propertyID int64) (*models.Favorite, error) {
		close(entered)
		<-release
		return &models.Favorite{ID: 1, PropertyID: propertyID}, nil
	}

	done := make(chan error, 1)
	go func() { done <- r.Toggle(context.Background(), 7) }()

	<-entered
	require.True(t, r.IsFavorited(7), "local state must flip before the server resolves")

	close(release)
	require.NoError(t, <-done)
	require.True(t, r.IsFavorited(7))
}

func TestToggle_LastSettledWins(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	slowEntered := make(chan struct{})
	slowRelease := make(chan struct{})
	api.addFn = func(ctx context.Context, propertyID int64) (*models.Favorite, error) {
		close(slowEntered)
		<-slowRelease // slow add response
		return &models.Favorite{ID: 1, PropertyID: propertyID}, nil
	}
	api.listFn = func(ctx context.Context) ([]models.Favorite, error) {
		return []models.Favorite{{ID: 1, PropertyID: 7}}, nil
	}

	// First toggle: -> Favorited, slow.
	first := make(chan error, 1)
	go func() { first <- r.Toggle(context.Background(), 7) }()
	<-slowEntered

	// Second toggle: -> Unfavorited, fast; settles first.
	require.NoError(t, r.Toggle(context.Background(), 7))
	require.False(t, r.IsFavorited(7))

	// The superseded slow response arrives later and must not overwrite.
	close(slowRelease)
	require.NoError(t, <-first)
	require.False(t, r.IsFavorited(7), "slow superseded response must not win")
}

func TestToggle_SupersededFailureDoesNotRollBackNewerState(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	slowEntered := make(chan struct{})
	slowRelease := make(chan struct{})
	boom := errors.New("boom")
	api.addFn = func(ctx context.Context, propertyID int64) (*models.Favorite, error) {
		close(slowEntered)
		<-slowRelease
		return nil, boom // slow failure
	}
	api.listFn = func(ctx context.Context) ([]models.Favorite, error) {
		return []models.Favorite{{ID: 1, PropertyID: 7}}, nil
	}

	first := make(chan error, 1)
	go func() { first <- r.Toggle(context.Background(), 7) }()
	<-slowEntered

	// Fast second toggle settles Unfavorited.
	require.NoError(t, r.Toggle(context.Background(), 7))
	require.False(t, r.IsFavorited(7))

	close(slowRelease)
	require.ErrorIs(t, <-first, boom, "the caller still gets the failure")
	require.False(t, r.IsFavorited(7), "stale rollback must not clobber newer settled state")
}

func TestOnChange_NotifiedOnSuccessOnly(t *testing.T) {
	r, api := newTestReconciler(t)
	r.Track(models.Property{ID: 7, IsFavorited: false})

	var mu sync.Mutex
	notified := 0
	r.OnChange(func() {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	require.NoError(t, r.Toggle(context.Background(), 7))
	mu.Lock()
	require.Equal(t, 1, notified)
	mu.Unlock()

	api.removeFn = func(ctx context.Context, favoriteID int64) error {
		return errors.New("boom")
	}
	require.Error(t, r.Toggle(context.Background(), 7))
	mu.Lock()
	require.Equal(t, 1, notified, "failed toggles must not notify listeners")
	mu.Unlock()
}

func TestTrack_ReseedOverridesLocalState(t *testing.T) {
	r, _ := newTestReconciler(t)

	r.Track(models.Property{ID: 7, IsFavorited: true})
	require.True(t, r.IsFavorited(7))

	// A re-fetch reporting unfavorited supersedes the local flag.
	r.Track(models.Property{ID: 7, IsFavorited: false})
	require.False(t, r.IsFavorited(7))
}
