package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/trananh2004/shopfront/internal/client/config"
	"github.com/trananh2004/shopfront/internal/client/rest"
	"github.com/trananh2004/shopfront/internal/client/services"
	"github.com/trananh2004/shopfront/internal/client/session"
	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/logging"
)

// Mode reflects store reachability as seen by the liveness watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the services together and owns the interactive loop state.
type App struct {
	config   *config.Config
	session  *session.Store
	auth     services.AuthService
	profiles services.ProfileService
	products services.ProductService
	log      logging.Logger
	reader   *bufio.Reader
	Mode     Mode
}

// NewApp builds the full client stack from configuration: REST client,
// session store, and the three application services.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient := rest.NewHTTPClient(c.StoreBaseURL, c.RequestTimeout)
	store := session.NewStore()

	// Session markers are local to this process, so a throwaway random
	// signing key is sufficient.
	markerKey := common.GenerateRandByteArray(32)

	return &App{
		config:   c,
		session:  store,
		auth:     services.NewAuthService(apiClient, store, markerKey, c.SessionTokenValidity),
		profiles: services.NewProfileService(apiClient, store, log),
		products: services.NewProductService(apiClient),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		Mode:     ModeOnline,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// StartOnlineStatusWatcher periodically pings the store and flips Mode
// accordingly. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
