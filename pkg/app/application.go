package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"lawnmow/pkg/config"
	"lawnmow/pkg/contracts"
	"lawnmow/pkg/middleware"
)

type Application struct {
	cfg        *config.Config
	server     *http.Server
	onShutdown []func()
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetHandlers registers every handler on a shared router and wraps it
// in the middleware chain. CORS sits outside content-type validation
// so preflight requests are answered before any body checks.
func (a *Application) SetHandlers(handlers ...contracts.Handler) {
	router := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	var httpHandler http.Handler = router
	httpHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(httpHandler)
	httpHandler = middleware.ContentTypeValidation(a.cfg.Log)(httpHandler)
	httpHandler = middleware.CORS()(httpHandler)
	httpHandler = middleware.RequestLogging(a.cfg.Log)(httpHandler)
	httpHandler = middleware.Recovery(a.cfg.Log)(httpHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

// RegisterOnShutdown queues a cleanup hook run during graceful shutdown.
func (a *Application) RegisterOnShutdown(fn func()) {
	a.onShutdown = append(a.onShutdown, fn)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	for _, fn := range a.onShutdown {
		fn()
	}
	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped gracefully")
}
