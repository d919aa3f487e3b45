package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/store"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe of the watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	client client.Client
	store  *store.NoteStore
	reader *bufio.Reader
	out    io.Writer

	// draft holds the staged form values between commands.
	draft models.Draft

	modeMu sync.Mutex
	Mode   Mode
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewRESTClient(c.ServerURL)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	s := store.New(cl,
		store.WithLogger(logger),
		store.WithCallTimeout(c.RequestTimeout),
	)
	logger = logger.With("module", "cli")

	a := &App{
		config: c,
		logger: logger,
		client: cl,
		store:  s,
		reader: bufio.NewReader(in),
		out:    out,
		draft:  models.NewDraft(),
		Mode:   ModeOnline,
	}

	s.Subscribe(func(snap store.Snapshot) {
		logger.Debug(context.Background(), "note store changed",
			"notes", len(snap.Notes), "filter", snap.Filter, "editing", snap.EditingID, "loading", snap.Loading)
	})

	return a
}

func (a *App) mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.Mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// Run loads the notes, starts the connectivity watcher and blocks in the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.client.Close(); err != nil {
			a.logger.Warn(ctx, "closing client", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Notes CLI (type 'help' for commands)")

	_ = a.Reload(ctx)

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.client.Ping(pingCtx)
	cancel()

	if err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) getStatus() string {
	s := fmt.Sprintf("%s %s", a.mode(), a.store.Filter())
	if id, ok := a.store.EditingID(); ok {
		s += " editing " + id
	}
	if a.store.Busy() {
		s += " busy"
	}
	return fmt.Sprintf("(%s)", s)
}
