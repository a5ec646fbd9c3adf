package carservice

import (
	"net/http"

	"autocare/infras/otel"
	"autocare/internal/domains/carservice/model/dto"
	"autocare/internal/domains/carservice/service"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/validator"
	"autocare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CarService
	otel    otel.Otel
}

func New(service service.CarService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetService)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllServices)
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/{id}", handler.GetAnyService)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})
}

// GetServices lists the active catalogue.
// @Summary List services
// @Description List active services, optionally filtered by category, featured flag or search term.
// @Tags Services
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Category"
// @Param featured query bool false "Featured only"
// @Param search query string false "Search by name"
// @Param lang query string false "Response language"
// @Success 200 {object} response.Paginated[dto.ServiceResponse]
// @Failure 500 {object} response.Error
// @Router /api/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, true, "GetServices")
}

// GetAllServices lists the whole catalogue, inactive services included.
// @Summary List all services
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Category"
// @Param featured query bool false "Featured only"
// @Param active query bool false "Active flag"
// @Param search query string false "Search by name"
// @Success 200 {object} response.Paginated[dto.ServiceResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /api/admin/services [get]
// @Security BearerAuth
func (handler *Handler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, false, "GetAllServices")
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, publicOnly bool, name string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(dto.SortColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(r)

	services, err := handler.service.GetAll(ctx, queryParams, filter.FilterGroup(publicOnly))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithPage(w, r, services)
}

// GetService returns one active service.
// @Summary Get a service
// @Tags Services
// @Produce json
// @Param id path string true "Service ID"
// @Param lang query string false "Response language"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /api/services/{id} [get]
func (handler *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	handler.get(w, r, false, "GetService")
}

// GetAnyService returns a service whether or not it is active.
// @Summary Get any service
// @Tags Admin
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /api/admin/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAnyService(w http.ResponseWriter, r *http.Request) {
	handler.get(w, r, true, "GetAnyService")
}

func (handler *Handler) get(w http.ResponseWriter, r *http.Request, includeInactive bool, name string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, err := shared.PathID(r, "service not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	service, err := handler.service.Get(ctx, id, includeInactive)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, service)
}

// CreateService adds a service to the catalogue.
// @Summary Create a service
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Router /api/admin/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	service, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service created")

	response.WithJSON(w, r, http.StatusCreated, service)
}

// UpdateService edits a service.
// @Summary Update a service
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Changes"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	req := dto.UpdateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := shared.PathID(r, "service not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	service, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, service)
}

// DeleteService removes a service that no booking references.
// @Summary Delete a service
// @Tags Admin
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error "Service is still booked"
// @Failure 404 {object} response.Error
// @Router /api/admin/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id, err := shared.PathID(r, "service not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
