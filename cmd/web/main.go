package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/mkorpela/liftplan/internal/envstruct"
	"github.com/mkorpela/liftplan/internal/errors"
	"github.com/mkorpela/liftplan/internal/flightrecorder"
	"github.com/mkorpela/liftplan/internal/logging"
	"github.com/mkorpela/liftplan/internal/profile"
	"github.com/mkorpela/liftplan/internal/recommend"
	"github.com/mkorpela/liftplan/internal/sqlite"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	profileService   *profile.Service
	recommendService *recommend.Service
	flightRecorder   *flightrecorder.Service
	requestTimeout   time.Duration
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"LIFTPLAN_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"LIFTPLAN_SQLITE_URL" envDefault:"./liftplan.sqlite3"`
	// OpenAIAPIKey enables LLM-backed program recommendations. Empty means
	// the deterministic fallback recommender is used.
	OpenAIAPIKey string `env:"LIFTPLAN_OPENAI_API_KEY" envDefault:""`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `env:"LIFTPLAN_TIMEOUT_SECONDS" envDefault:"5"`
	// TracesDir is where timeout flight recorder traces are written. Empty
	// disables flight recording.
	TracesDir string `env:"LIFTPLAN_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			MinAge:          0,
			MaxBytes:        0,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "create flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	app := application{
		logger:           logger,
		sessionManager:   initializeSessionManager(db),
		profileService:   profile.NewService(db, logger),
		recommendService: recommend.NewService(cfg.OpenAIAPIKey, logger),
		flightRecorder:   recorder,
		requestTimeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 90 * 24 * time.Hour                                           //nolint:mnd // program runs 12 weeks
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	_, debug := os.LookupEnv("LIFTPLAN_DEBUG")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   debug,
		Level:       level,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
