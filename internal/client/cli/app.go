package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ivycraft/navigator/internal/client/client"
	"github.com/ivycraft/navigator/internal/client/config"
	"github.com/ivycraft/navigator/internal/client/services"
	"github.com/ivycraft/navigator/internal/client/storage"
	"github.com/ivycraft/navigator/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   io.Closer
	notes   *services.Notifications
	session *services.SessionManager
	tracker *services.Tracker
	essays  *services.Essays
	courses *services.CoursePlanner
	upgrade *services.UpgradeService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	repo, closer, err := storage.Open(ctx, c, log)
	if err != nil {
		log.Error(ctx, "error opening credential store", "error", err)
		return nil, err
	}

	notes := services.NewNotifications()
	backend := client.NewMemoryBackend(client.WithDelay(c.AuthDelay))
	store := services.NewCredentialStore(repo, c.StoreKey, log)
	session := services.NewSessionManager(backend, store, notes, log)

	a := &App{
		config:  c,
		log:     log,
		store:   closer,
		notes:   notes,
		session: session,
		tracker: services.NewTracker(session, notes, c.GenerateDelay),
		essays:  services.NewEssays(session, notes, c.GenerateDelay),
		courses: services.NewCoursePlanner(session, notes, c.GenerateDelay),
		upgrade: services.NewUpgradeService(session, notes, c.UpgradeDelay, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	notes.Subscribe(a.printNotification)
	return a, nil
}

func (a *App) printNotification(n services.Notification) {
	fmt.Fprintf(a.out, "[%s] %s: %s\n", n.Kind, n.Title, n.Detail)
}

// Run restores the stored session and blocks in the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "error closing credential store", "error", err)
		}
	}()

	a.session.Restore(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateAuthenticated
}

func (a *App) status() string {
	id, ok := a.session.Identity()
	if !ok {
		return "guest"
	}
	if a.session.IsPremium() {
		return id.Email + " (premium)"
	}
	return id.Email
}
