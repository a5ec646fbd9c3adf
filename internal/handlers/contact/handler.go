package contact

import (
	"net/http"

	"autocare/infras/otel"
	"autocare/internal/domains/contact/model/dto"
	"autocare/internal/domains/contact/service"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/validator"
	"autocare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitContact)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/contacts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContacts)
		routerGroup.Get("/{id}", handler.GetContact)
		routerGroup.Patch("/{id}/status", handler.UpdateContactStatus)
		routerGroup.Delete("/{id}", handler.DeleteContact)
	})
}

// SubmitContact stores a message from the public contact form.
// @Summary Send a message
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Message"
// @Success 201 {object} response.Data[dto.ContactResponse]
// @Failure 400 {object} response.Error
// @Router /api/contact [post]
func (handler *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	contact, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusCreated, contact)
}

// GetContacts lists received messages.
// @Summary List contact messages
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Status" Enums(new, read, replied)
// @Param search query string false "Name, email or subject"
// @Success 200 {object} response.Paginated[dto.ContactResponse]
// @Failure 400 {object} response.Error
// @Router /api/admin/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(dto.SortColumns...)

	filter := dto.ListFilter{}
	if err := filter.FromRequest(r); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	contacts, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(w, err)

		return
	}

	response.WithPage(w, r, contacts)
}

// GetContact returns one message.
// @Summary Get a contact message
// @Tags Admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Data[dto.ContactResponse]
// @Failure 404 {object} response.Error
// @Router /api/admin/contacts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContact")
	defer scope.End()

	id, err := shared.PathID(r, "contact message not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	contact, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact message")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, contact)
}

// UpdateContactStatus marks a message read or replied.
// @Summary Update a contact message status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Data[dto.ContactResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/contacts/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := shared.PathID(r, "contact message not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	contact, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, contact)
}

// DeleteContact removes a message.
// @Summary Delete a contact message
// @Tags Admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/admin/contacts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id, err := shared.PathID(r, "contact message not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact message")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Contact message deleted successfully")
}
