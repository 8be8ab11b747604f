package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sunyue-dev/time-exchange/internal/brain"
	"github.com/sunyue-dev/time-exchange/internal/capture"
	"github.com/sunyue-dev/time-exchange/internal/config"
	"github.com/sunyue-dev/time-exchange/internal/feed"
	"github.com/sunyue-dev/time-exchange/internal/logging"
	"github.com/sunyue-dev/time-exchange/internal/repositories/identity"
	"github.com/sunyue-dev/time-exchange/internal/router"
	"github.com/sunyue-dev/time-exchange/internal/share"

	_ "modernc.org/sqlite"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App wires the screens to their collaborators.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	db     *sql.DB
	store  identity.Store
	router *router.Router
	gen    brain.Generator
	source feed.Source
	share  *share.Service
	camera capture.Device

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application: opens the local store, loads any persisted
// identity to choose the initial screen, and constructs the generation
// client. A missing or unusable API key degrades to fallback-only content
// instead of failing startup.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := identity.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store := identity.NewSQLiteStore(db, log)

	rt := router.New(store, cfg.InterruptEvery, log)
	if err := rt.Start(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	var gen brain.Generator
	if cfg.GeminiAPIKey == "" {
		log.Warn(ctx, "no API key configured, running with fallback content only")
		gen = brain.FallbackGenerator{}
	} else if gc, err := brain.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.TextModel, cfg.ImageModel, log); err != nil {
		log.Warn(ctx, "generation client unavailable, running with fallback content only", "error", err)
		gen = brain.FallbackGenerator{}
	} else {
		gen = gc
	}

	return &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		store:  store,
		router: rt,
		gen:    gen,
		source: feed.NewStaticSource(),
		share:  share.NewService(cfg.QRServiceEndpoint, log),
		camera: capture.DefaultDevice(),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Close releases the local store.
func (a *App) Close() error {
	return a.db.Close()
}

// Run drives the screen loop until the user exits. Each screen function
// blocks on user input and returns true when the user asked to leave the
// application.
func (a *App) Run(ctx context.Context) {
	if !isTerminal(int(os.Stdin.Fd())) {
		a.log.Warn(ctx, "stdin is not a terminal, interactive prompts may misbehave")
	}

	for {
		var done bool
		switch a.router.Current() {
		case router.ScreenOnboarding:
			done = a.onboardingScreen(ctx)
		case router.ScreenFeed:
			done = a.feedScreen(ctx)
		case router.ScreenPost:
			done = a.postScreen(ctx)
		case router.ScreenFeedback:
			done = a.feedbackScreen(ctx)
		case router.ScreenInterrupt:
			done = a.interruptScreen(ctx)
		case router.ScreenProfile:
			done = a.profileScreen(ctx)
		}
		if done {
			return
		}
	}
}
