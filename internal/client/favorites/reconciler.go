// Package favorites reconciles the locally displayed favorite flag of each
// property against the server of record.
//
// A toggle flips the local state immediately and issues the server call in
// the caller's goroutine; on failure the flip is rolled back and the error
// returned for user-visible messaging. Concurrent toggles for the same
// property are allowed: ordering is enforced by a generation counter so that
// the final displayed state always matches the most recently settled server
// response, never a slow superseded one.
package favorites

import (
	"context"
	"fmt"
	"sync"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

// API is the slice of the server client the reconciler depends on.
//
// Removal contract: the server keys removal by the favorite-record ID. The
// reconciler accepts property IDs from its callers and resolves them itself,
// from the add response when it created the record, otherwise by listing the
// user's favorites.
type API interface {
	AddFavorite(ctx context.Context, propertyID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
}

// state is the per-property record. favoriteID is zero when the record ID is
// unknown locally. settledGen holds the generation of the newest settled
// toggle; responses from older generations are discarded.
type state struct {
	favorited  bool
	favoriteID int64
	settledGen uint64
}

// Reconciler tracks favorite state for the properties currently in view.
type Reconciler struct {
	mu        sync.Mutex
	api       API
	log       logging.Logger
	states    map[int64]*state
	gen       uint64
	listeners []func()
}

func New(api API, log logging.Logger) *Reconciler {
	return &Reconciler{
		api:    api,
		log:    log,
		states: make(map[int64]*state),
	}
}

// Track seeds the state for a property from its server-reported snapshot.
// A re-fetch of the same property overrides local state, as the server wins
// between interactions.
func (r *Reconciler) Track(p models.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.ensure(p.ID)
	st.favorited = p.IsFavorited
	if !p.IsFavorited {
		st.favoriteID = 0
	}
}

// TrackFavorite seeds state from a favorites-list record, which also carries
// the favorite-record ID needed for removal.
func (r *Reconciler) TrackFavorite(f models.Favorite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.ensure(f.PropertyID)
	st.favorited = true
	st.favoriteID = f.ID
}

// IsFavorited returns the currently displayed state for the property,
// including any optimistic flips that have not settled yet.
func (r *Reconciler) IsFavorited(propertyID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.states[propertyID]
	return ok && st.favorited
}

// OnChange registers a listener notified after every successfully settled
// toggle, so aggregate views such as the favorites list can refresh.
func (r *Reconciler) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Toggle flips the favorite state of the property optimistically and issues
// the corresponding server call: add when transitioning to favorited, remove
// when transitioning back. On failure the flip is reverted and the error
// returned; the toggle is never retried automatically.
//
// Toggle blocks until its own server call settles. Callers that need a
// responsive UI run it in a goroutine; IsFavorited reflects the optimistic
// state as soon as Toggle has been entered.
func (r *Reconciler) Toggle(ctx context.Context, propertyID int64) error {
	r.mu.Lock()
	st := r.ensure(propertyID)
	prev := st.favorited
	target := !prev
	st.favorited = target // optimistic flip
	r.gen++
	gen := r.gen
	favoriteID := st.favoriteID
	r.mu.Unlock()

	var (
		created *models.Favorite
		err     error
	)
	if target {
		created, err = r.api.AddFavorite(ctx, propertyID)
	} else {
		id := favoriteID
		if id == 0 {
			id, err = r.resolveFavoriteID(ctx, propertyID)
		}
		if err == nil {
			err = r.api.RemoveFavorite(ctx, id)
		}
	}

	return r.settle(ctx, propertyID, gen, prev, target, created, err)
}

// settle applies the outcome of one toggle's server call. A response older
// than the newest settled one is discarded: its state (and any rollback) is
// superseded, only its error is still reported to the caller.
func (r *Reconciler) settle(ctx context.Context, propertyID int64, gen uint64, prev, target bool, created *models.Favorite, err error) error {
	r.mu.Lock()
	st := r.ensure(propertyID)

	if gen <= st.settledGen {
		r.mu.Unlock()
		r.log.Debug(ctx, "discarding superseded favorite response", "property_id", propertyID, "gen", gen)
		return err
	}
	st.settledGen = gen

	if err != nil {
		st.favorited = prev // rollback the optimistic flip
		r.mu.Unlock()
		return fmt.Errorf("favorite toggle failed: %w", err)
	}

	st.favorited = target
	switch {
	case created != nil:
		st.favoriteID = created.ID
	case !target:
		st.favoriteID = 0
	}
	listeners := append([]func(){}, r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return nil
}

// resolveFavoriteID maps a property ID to its favorite-record ID via the
// favorites listing. Needed when the record was created in another session
// (the listing endpoints only report the boolean flag).
func (r *Reconciler) resolveFavoriteID(ctx context.Context, propertyID int64) (int64, error) {
	favs, err := r.api.ListFavorites(ctx)
	if err != nil {
		return 0, fmt.Errorf("resolving favorite record: %w", err)
	}
	for _, f := range favs {
		if f.PropertyID == propertyID {
			return f.ID, nil
		}
	}
	return 0, fmt.Errorf("no favorite record for property %d", propertyID)
}

// ensure returns the state record for propertyID, creating an unfavorited
// one if the property was never tracked. Callers must hold r.mu.
func (r *Reconciler) ensure(propertyID int64) *state {
	st, ok := r.states[propertyID]
	if !ok {
		st = &state{}
		r.states[propertyID] = st
	}
	return st
}
