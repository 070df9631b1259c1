package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/de-tools/learn-atlas/pkg/handlers/report"
	learnatlasmiddleware "github.com/de-tools/learn-atlas/pkg/server/middleware"
	reportsvc "github.com/de-tools/learn-atlas/pkg/services/report"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

type Dependencies struct {
	Registry  templates.Registry
	Generator reportsvc.Generator
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the reporting API routes onto a chi router.
func ConfigureRouter(config Config) *chi.Mux {
	reportHandler := handlers.NewHandler(config.Dependencies.Registry, config.Dependencies.Generator)

	router := chi.NewRouter()

	router.Use(learnatlasmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", reportHandler.ListTemplates)
		r.Post("/reports/{template}/generate", reportHandler.GenerateReport)
		r.Post("/reports/{template}/export", reportHandler.ExportReport)
	})

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger: &config.Dependencies.Logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
