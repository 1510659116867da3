package pricing

import (
	"net/http"
	"siesta/infras/otel"
	"siesta/internal/domains/pricing/service"
	"siesta/shared/constant"
	"siesta/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type SettingsResponse struct {
	AdminID         string  `json:"admin_id"`
	RateOneName     string  `json:"rate_one_name"`
	RateOneAmount   float64 `json:"rate_one_amount"`
	RateTwoName     string  `json:"rate_two_name"`
	RateTwoAmount   float64 `json:"rate_two_amount"`
	AdvanceRequired bool    `json:"advance_required"`
	AdvancePercent  float64 `json:"advance_percent"`
	LastSynced      string  `json:"last_synced"`
}

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Post("/refresh", handler.RefreshSettings)
	})

	router.Post("/pricing-tiers/refresh", handler.RefreshTiers)
}

// GetSettings returns the operator settings snapshot.
// @Summary Get settings
// @Description Return the operator settings snapshot, refreshing from the remote service when the local copy is older than the TTL.
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Data[SettingsResponse] "Settings snapshot"
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/settings [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetSettings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, SettingsResponse{
		AdminID:         settings.AdminID,
		RateOneName:     settings.RateOneName,
		RateOneAmount:   settings.RateOneAmount,
		RateTwoName:     settings.RateTwoName,
		RateTwoAmount:   settings.RateTwoAmount,
		AdvanceRequired: settings.AdvanceRequired,
		AdvancePercent:  settings.AdvancePercent,
		LastSynced:      settings.LastSynced.Format(constant.DateFormat),
	})
}

// RefreshSettings forces a remote settings fetch.
// @Summary Refresh settings
// @Description Fetch the settings snapshot from the remote service and replace the local copy regardless of its age.
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Message "Settings refreshed"
// @Failure 503 {object} response.Error
// @Router /v1/settings/refresh [post]
// @Security ApiKeyAuth
func (handler *Handler) RefreshSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshSettings")
	defer scope.End()

	if _, err := handler.service.RefreshSettings(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh settings")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Settings refreshed")
}

// RefreshTiers replaces the local pricing tier set from the remote service.
// @Summary Refresh pricing tiers
// @Description Fetch the operator's pricing tiers from the remote service, wholesale replacing the local set.
// @Tags Pricing
// @Produce json
// @Success 200 {object} response.Message "Pricing tiers refreshed"
// @Failure 500 {object} response.Error
// @Router /v1/pricing-tiers/refresh [post]
// @Security ApiKeyAuth
func (handler *Handler) RefreshTiers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshTiers")
	defer scope.End()

	if err := handler.service.RefreshTiers(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh pricing tiers")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Pricing tiers refreshed")
}
