// Package cli is the terminal client: a REPL over the request pipeline and
// session manager, with terminal stand-ins for the UI's toast and navigation
// side channels.
package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/Sakee8848/property-management-ai/internal/client/api"
	"github.com/Sakee8848/property-management-ai/internal/client/config"
	"github.com/Sakee8848/property-management-ai/internal/client/mock"
	"github.com/Sakee8848/property-management-ai/internal/client/session"
	"github.com/Sakee8848/property-management-ai/internal/client/storage"
	"github.com/Sakee8848/property-management-ai/internal/logging"
)

// dbFile is the local client database holding the persisted session.
const dbFile = "assistant.db"

type App struct {
	config   *config.Config
	sessions *session.Manager
	pipeline api.Doer
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the client: local database, session manager, simulated
// backend, live transport, and the pipeline binding them together. The
// stored session is restored before the first prompt.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, dbFile)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(db, log)

	out := os.Stdout
	pipeline := api.NewPipeline(api.Deps{
		Router:    api.SimulationRouter(func() bool { return cfg.UseSimulatedBackend }),
		Transport: api.NewHTTPTransport(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout}),
		Simulated: mock.NewBackend(log),
		Session:   sessions,
		Notifier:  NewToastNotifier(out),
		Navigator: NewLoginNavigator(out),
		Logger:    log,
	})
	sessions.UseTransport(pipeline)

	if err := sessions.Restore(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		sessions: sessions,
		pipeline: pipeline,
		reader:   bufio.NewReader(os.Stdin),
		out:      out,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Token() != ""
}

func (a *App) promptName() string {
	if p := a.sessions.Profile(); p != nil {
		return p.Username
	}
	return "guest"
}
