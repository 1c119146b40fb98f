package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/bankclient/internal/client/bus"
	"github.com/dmitrijs2005/bankclient/internal/client/client"
	"github.com/dmitrijs2005/bankclient/internal/client/config"
	"github.com/dmitrijs2005/bankclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bankclient/internal/client/services"
	"github.com/dmitrijs2005/bankclient/internal/client/session"
	"github.com/dmitrijs2005/bankclient/internal/client/view"
	"github.com/dmitrijs2005/bankclient/internal/filex"
	"github.com/dmitrijs2005/bankclient/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	store   session.Store
	bus     *bus.Bus
	gateway *services.AuthGateway
	home    *view.Controller
	header  *Header
	reader  *bufio.Reader
	out     io.Writer

	mu   sync.Mutex
	page services.Route
}

// NewApp opens the session database and connects the services to the API
// at c.ServerURL.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.SessionDBPath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", path, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewPersistentStore(metadata.NewSQLiteRepository(db))

	a := newApp(c, log, api, store, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, store session.Store, in io.Reader, out io.Writer) *App {
	b := bus.New()
	a := &App{
		config: c,
		log:    log,
		store:  store,
		bus:    b,
		reader: bufio.NewReader(in),
		out:    out,
		page:   services.RouteLanding,
	}

	a.gateway = services.NewAuthGateway(api, store, b, log,
		services.WithNavigator(a),
		services.WithStateHook(a.onAttempt),
	)
	a.home = view.NewController(store, b, services.NewAccountResolver(api, log), log)
	a.header = NewHeader(store, b, log)
	return a
}

// Run shows the home page and blocks in the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.header.Activate(ctx)
	if err := a.home.Activate(ctx); err != nil {
		return err
	}

	a.println("Bank client (type 'help' for commands)")
	a.Navigate(ctx, services.RouteLanding)

	runREPL(ctx, a, a.header.Status, a.reader)
	return nil
}

// Close detaches the screens from the bus and closes the session database.
func (a *App) Close() {
	a.home.Deactivate()
	a.header.Deactivate()
	a.home.Wait()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "close session db", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.header.LoggedIn()
}

func (a *App) onAttempt(at services.Attempt) {
	if at.State == services.InFlight && at.Op != "logout" {
		a.println("Please wait...")
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
