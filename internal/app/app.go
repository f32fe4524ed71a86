// Package app wires configuration, database, routes and middleware into
// a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/ddrozdov/nparcade/internal/config"
	"github.com/ddrozdov/nparcade/internal/database"
	"github.com/ddrozdov/nparcade/internal/middleware"
	"github.com/ddrozdov/nparcade/internal/puzzle"
)

type App struct {
	logger     *slog.Logger
	router     *mux.Router
	db         *pgxpool.Pool
	cookies    *config.Cookies
	jwt        *config.JWT
	ws         *config.WebSocket
	families   map[puzzle.Kind]puzzle.Config
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		router:     mux.NewRouter(),
		migrations: migrations,
	}
}

// Start runs the server until ctx is canceled, then drains connections
// for up to 30 seconds.
func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	cookies, err := config.NewCookies()
	if err != nil {
		return err
	}
	a.cookies = cookies

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}
	a.jwt = jwt

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	families, err := config.LoadFamilies()
	if err != nil {
		return err
	}
	a.families = families

	a.loadRoutes()

	server := &http.Server{
		Addr: config.Addr(),
		Handler: middleware.Wrap(
			a.router,
			middleware.Auth(a.logger, cookies, jwt),
			middleware.Logging(a.logger),
			middleware.Cors(),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", server.Addr))
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
