package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/avelev/schoolguard/internal/client/api"
	"github.com/avelev/schoolguard/internal/client/config"
	"github.com/avelev/schoolguard/internal/client/services"
	"github.com/avelev/schoolguard/internal/client/session"
	"github.com/avelev/schoolguard/internal/logging"
)

// App holds the wired services behind the admin console.
type App struct {
	config        *config.Config
	auth          services.AuthService
	dashboard     services.DashboardService
	volunteers    services.VolunteerService
	notifications services.NotificationService
	reader        *bufio.Reader
}

// NewApp builds the console: opens the session database, resolves the
// backend base URL once, and wires the services over a shared API client.
func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	apiClient := api.NewHTTPClient(api.ResolveBaseURL(c.ServerHost, c.RemoteOrigin), logger)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := apiClient.Ping(pingCtx); err != nil {
		log.Printf("backend unreachable: %s", err.Error())
	}

	return &App{
		config:        c,
		auth:          services.NewAuthService(apiClient, store, logger),
		dashboard:     services.NewDashboardService(apiClient, logger, c.PollInterval),
		volunteers:    services.NewVolunteerService(apiClient, logger),
		notifications: services.NewNotificationService(apiClient, logger),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.State() == services.StateAuthenticated
}

// Run restores a remembered session, then hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	if err := a.auth.Bootstrap(ctx); err != nil {
		log.Printf("could not restore session: %s", err.Error())
	}
	a.Root(ctx)
}
