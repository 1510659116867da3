package sync

import (
	"net/http"
	"siesta/infras/otel"
	archiveSvc "siesta/internal/domains/archive/service"
	syncSvc "siesta/internal/domains/sync/service"
	"siesta/internal/netmon"
	"siesta/shared/constant"
	"siesta/shared/failure"
	"siesta/shared/validator"
	"siesta/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type NetworkStatusResponse struct {
	Classification string `json:"classification"`
	Reachable      bool   `json:"reachable"`
}

type Handler struct {
	sync    syncSvc.Sync
	archive archiveSvc.Archive
	monitor netmon.Monitor
	otel    otel.Otel
}

func New(sync syncSvc.Sync, archive archiveSvc.Archive, monitor netmon.Monitor, otel otel.Otel) Handler {
	return Handler{
		sync:    sync,
		archive: archive,
		monitor: monitor,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Post("/drain", handler.RequestDrain)
		routerGroup.Get("/network", handler.GetNetworkStatus)
	})

	router.Post("/archives/{date}", handler.ArchiveDay)
}

// RequestDrain nudges the orchestrator to run a drain cycle soon.
// @Summary Request a sync drain cycle
// @Description Ask the orchestrator to drain pending records soon. Returns immediately; a cycle already in flight absorbs the request.
// @Tags Sync
// @Produce json
// @Success 202 {object} response.Message "Drain requested"
// @Router /v1/sync/drain [post]
// @Security ApiKeyAuth
func (handler *Handler) RequestDrain(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestDrain")
	defer scope.End()

	handler.sync.RequestDrain()

	response.WithMessage(w, http.StatusAccepted, "Drain requested")
}

// GetNetworkStatus reports the current connectivity classification.
// @Summary Get network status
// @Description Return the connectivity classification the sync gate currently sees.
// @Tags Sync
// @Produce json
// @Success 200 {object} response.Data[NetworkStatusResponse] "Network status"
// @Router /v1/sync/network [get]
// @Security ApiKeyAuth
func (handler *Handler) GetNetworkStatus(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNetworkStatus")
	defer scope.End()

	classification := handler.monitor.Classification()

	response.WithJSON(w, http.StatusOK, NetworkStatusResponse{
		Classification: classification.String(),
		Reachable:      classification != netmon.Offline,
	})
}

// ArchiveDay uploads a day's bookings to object storage.
// @Summary Archive a day of bookings
// @Description Snapshot all bookings dated on the given day to object storage.
// @Tags Sync
// @Produce json
// @Param date path string true "Day to archive (YYYY-MM-DD)"
// @Success 200 {object} response.Message "Day archived"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/archives/{date} [post]
// @Security ApiKeyAuth
func (handler *Handler) ArchiveDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ArchiveDay")
	defer scope.End()

	date := chi.URLParam(r, "date")

	if err := validator.ValidateVar(date, "required,dateonly"); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("date must be formatted YYYY-MM-DD"))

		return
	}

	if err := handler.archive.ArchiveDay(ctx, date); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to archive day")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Day archived")
}
