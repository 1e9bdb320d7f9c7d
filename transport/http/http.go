package http

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"staybook/config"
	"staybook/shared/constant"
	"staybook/transport/http/middleware"
	"staybook/transport/http/response"
	"staybook/transport/http/router"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ServerState is an indicator of whether the server is in its up,
// graceful shutdown, or cleanup state.
type ServerState int

const (
	// ServerStateReady indicates that the server is ready to serve.
	ServerStateReady ServerState = iota + 1
	// ServerStateInGracePeriod indicates that the server is in its grace
	// period before being shut down.
	ServerStateInGracePeriod
	// ServerStateInCleanupPeriod indicates that the server no longer
	// accepts requests and is cleaning up its internal state.
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState

	middleware middleware.AppMiddleware
	mux        *chi.Mux
}

func New(
	config *config.Config,
	router router.Router,
	appMiddleware middleware.AppMiddleware,
) *HTTP {
	return &HTTP{
		Config:     config,
		Router:     router,
		middleware: appMiddleware,
	}
}

// Handler builds the full request handler including middleware. Exposed so
// tests can exercise the routing stack without binding a port.
func (h *HTTP) Handler() http.Handler {
	if h.mux == nil {
		h.setupRoutes()
	}

	return h.mux
}

// Serve starts the HTTP server and blocks until shutdown completes.
func (h *HTTP) Serve() {
	h.setupRoutes()
	h.State = ServerStateReady

	addr := fmt.Sprintf("%s:%s", h.Config.Server.Host, h.Config.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Starting up HTTP server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	h.respondToSigterm(server)
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()

	mux.Use(h.middleware.RequestID)
	mux.Use(h.middleware.Logger)
	mux.Use(h.middleware.Recover)
	mux.Use(h.middleware.CORS())
	mux.Use(h.middleware.Tracing)

	mux.Get("/health", h.HealthCheck)

	h.Router.SetupRoutes(mux)

	h.mux = mux
}

func (h *HTTP) respondToSigterm(server *http.Server) {
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info().Msg("Received SIGTERM")

	h.State = ServerStateInGracePeriod
	gracePeriod := time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second
	log.Info().Dur("grace_period", gracePeriod).Msg("Entering grace period")
	time.Sleep(gracePeriod)

	h.State = ServerStateInCleanupPeriod
	cleanupPeriod := time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds) * time.Second
	log.Info().Dur("cleanup_period", cleanupPeriod).Msg("Entering cleanup period")

	ctx, cancel := context.WithTimeout(context.Background(), cleanupPeriod)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}

	log.Info().Msg("Cleanup complete, shutting down")
}

// HealthCheck performs a health check on the server.
// @Summary Health Check
// @Description Health check endpoint reporting the server state.
// @Tags server
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	switch h.State {
	case ServerStateInGracePeriod:
		response.WithMessage(w, http.StatusOK, "SHUTTING DOWN")
	case ServerStateInCleanupPeriod:
		w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		response.WithMessage(w, http.StatusOK, "OK")
	}
}
