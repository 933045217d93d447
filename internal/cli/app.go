package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"societymarket/internal/common"
	"societymarket/internal/config"
	"societymarket/internal/logging"
	"societymarket/internal/models"
	"societymarket/internal/seed"
	"societymarket/internal/services"
	"societymarket/internal/storage"

	_ "modernc.org/sqlite"
)

// App bundles the marketplace services behind the interactive REPL.
type App struct {
	config   *config.Config
	auth     services.AuthService
	products services.ProductService
	db       *sql.DB
	reader   *bufio.Reader
}

// NewApp opens the local database, seeds demo data on first run, restores
// any persisted session, and returns a ready-to-run App.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store := storage.New(db, logger)
	seed.Initialize(ctx, store, logger)

	auth := services.NewAuthService(store, logger, c.SimulatedLatency)
	auth.Init(ctx)

	products := services.NewProductService(store, logger, c.SimulatedLatency)

	return &App{
		config:   c,
		auth:     auth,
		products: products,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

// requireUser returns the session user. When anonymous it tells the user to
// log in and fails with common.ErrorNotAuthenticated.
func (a *App) requireUser() (*models.User, error) {
	u := a.auth.CurrentUser()
	if u == nil {
		fmt.Println("Please login first.")
		return nil, common.ErrorNotAuthenticated
	}
	return u, nil
}
