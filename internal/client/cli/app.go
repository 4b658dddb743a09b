// Package cli implements the interactive terminal client for RentIQ:
// a read–eval–print loop over the application services, plus rendering of
// listings, derived metrics, and the favorites view.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/api"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/config"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/favorites"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/repositories/metadata"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/search"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/services"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/session"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/store"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/logging"
)

// App wires the client components together and holds the state of the
// interactive session: the last search, its paging position, and the current
// user's email for the prompt.
type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	session    *session.Manager
	auth       services.AuthService
	properties services.PropertyService
	profiles   services.ProfileService
	favs       services.FavoriteService
	reconciler *favorites.Reconciler
	reader     *bufio.Reader

	userEmail    string
	lastCriteria search.Criteria
	lastResults  []models.Property
	page         services.Page
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local store: %w", err)
	}

	sess := session.NewManager(metadata.NewSQLiteRepository(db), log)
	if err := sess.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient := api.NewRESTClient(cfg.ServerEndpointURL, sess, cfg.RequestTimeout, log)
	reconciler := favorites.New(apiClient, log)

	a := &App{
		config:     cfg,
		log:        log,
		db:         db,
		session:    sess,
		auth:       services.NewAuthService(apiClient, sess),
		properties: services.NewPropertyService(apiClient),
		profiles:   services.NewProfileService(apiClient),
		favs:       services.NewFavoriteService(apiClient, reconciler),
		reconciler: reconciler,
		reader:     bufio.NewReader(os.Stdin),
		page:       services.Page{Limit: services.DefaultPageSize},
	}
	if a.isLoggedIn() {
		a.userEmail = sess.Email()
	}

	sess.SetNavigateToLogin(func() {
		a.userEmail = ""
		fmt.Println("Session expired, please log in again.")
	})

	return a, nil
}

// Run starts the REPL and blocks until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.root(ctx)
}

// Close releases the local database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Token()
	return ok
}

// status builds the prompt decoration, e.g. "(investor@example.com)".
func (a *App) status() string {
	if a.userEmail != "" {
		return fmt.Sprintf("(%s)", a.userEmail)
	}
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return ""
}
