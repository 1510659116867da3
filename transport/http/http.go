package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"siesta/config"
	"siesta/infras/sqlite"
	syncSvc "siesta/internal/domains/sync/service"
	"siesta/internal/netmon"
	"siesta/shared/constant"
	"siesta/transport/http/middleware"
	"siesta/transport/http/response"
	"siesta/transport/http/router"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	DB         *sqlite.Connection
	Monitor    netmon.Monitor
	Sync       syncSvc.Sync
	middleware middleware.AppMiddleware
	State      ServerState
	mux        *chi.Mux
	server     *http.Server
}

func New(cfg *config.Config, r router.Router, db *sqlite.Connection, monitor netmon.Monitor, sync syncSvc.Sync, mw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		DB:         db,
		Monitor:    monitor,
		Sync:       sync,
		middleware: mw,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.Monitor.Start(context.Background())
	h.Sync.Start(context.Background())

	addr := net.JoinHostPort("0.0.0.0", h.Config.Server.Port)
	h.server = &http.Server{
		Addr:              addr,
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) setup() {
	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{constant.Asterix},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{constant.RequestHeaderContentType, constant.RequestHeaderAPIKey, constant.RequestHeaderRequestID},
	}))
	h.mux.Use(h.middleware.Tracing)
	h.mux.Use(h.middleware.Identity)

	h.mux.Get("/health", h.HealthCheck)

	h.mux.Group(func(routerGroup chi.Router) {
		routerGroup.Use(h.middleware.APIKey)
		h.Router.SetupRoutes(routerGroup)
	})
}

// HealthCheck reports whether the server can serve traffic.
// @Summary Health check
// @Description Report server and local store health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Healthy"
// @Failure 503 {object} response.Message "Unhealthy or shutting down"
// @Router /health [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	if err := h.DB.DB.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("local store ping failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	gracePeriod := h.Config.Server.Shutdown.GracePeriodSeconds
	if gracePeriod == 0 {
		gracePeriod = constant.DefaultShutdownGracePeriodSeconds
	}

	cleanupPeriod := h.Config.Server.Shutdown.CleanupPeriodSeconds
	if cleanupPeriod == 0 {
		cleanupPeriod = constant.DefaultShutdownCleanupPeriodSeconds
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", gracePeriod).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(gracePeriod) * time.Second)

	log.Info().Int64("seconds", cleanupPeriod).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	h.Sync.Stop()
	h.Monitor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cleanupPeriod)*time.Second)
	defer cancel()

	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown failed")
		}
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
