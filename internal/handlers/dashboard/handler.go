package dashboard

import (
	"net/http"

	"autocare/infras/otel"
	"autocare/internal/domains/dashboard/model/dto"
	"autocare/internal/domains/dashboard/service"
	"autocare/shared/constant"
	"autocare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/dashboard", handler.GetStats)
	router.Get("/health", handler.GetHealth)
}

// GetStats returns the dashboard summary.
// @Summary Dashboard statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	var (
		stats dto.StatsResponse
		err   error
	)

	if stats, err = handler.service.Stats(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, stats)
}

// GetHealth reports dependency health and runtime figures.
// @Summary System health
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.HealthResponse]
// @Failure 503 {object} response.Data[dto.HealthResponse]
// @Router /api/admin/health [get]
// @Security BearerAuth
func (handler *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	health := handler.service.Health(ctx)

	code := http.StatusOK
	if !health.Healthy() {
		code = http.StatusServiceUnavailable

		scope.SetAttribute("health.status", health.Status)
	}

	response.WithJSON(w, r, code, health)
}
