package blog

import (
	"net/http"

	"autocare/infras/otel"
	"autocare/internal/domains/blog/model/dto"
	"autocare/internal/domains/blog/service"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/validator"
	"autocare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/{slug}", handler.GetPostBySlug)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/blog", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAllPosts)
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Get("/{id}", handler.GetPost)
		routerGroup.Patch("/{id}", handler.UpdatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// GetPosts lists published posts.
// @Summary List blog posts
// @Tags Blog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param tag query string false "Tag"
// @Param search query string false "Search by title"
// @Param lang query string false "Response language"
// @Success 200 {object} response.Paginated[dto.BlogResponse]
// @Router /api/blog [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, true, "GetPosts")
}

// GetAllPosts lists every post, drafts included.
// @Summary List all blog posts
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param tag query string false "Tag"
// @Param published query bool false "Published flag"
// @Param search query string false "Search by title"
// @Success 200 {object} response.Paginated[dto.BlogResponse]
// @Router /api/admin/blog [get]
// @Security BearerAuth
func (handler *Handler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, false, "GetAllPosts")
}

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, publicOnly bool, name string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(dto.SortColumns...)

	filter := dto.ListFilter{}
	filter.FromRequest(r)

	posts, err := handler.service.GetAll(ctx, queryParams, filter.FilterGroup(publicOnly))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog posts")

		response.WithError(w, err)

		return
	}

	response.WithPage(w, r, posts)
}

// GetPostBySlug returns one published post.
// @Summary Get a blog post
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Param lang query string false "Response language"
// @Success 200 {object} response.Data[dto.BlogResponse]
// @Failure 404 {object} response.Error
// @Router /api/blog/{slug} [get]
func (handler *Handler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostBySlug")
	defer scope.End()

	post, err := handler.service.GetBySlug(ctx, chi.URLParam(r, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, post)
}

// GetPost returns a post by ID, drafts included.
// @Summary Get any blog post
// @Tags Admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.BlogResponse]
// @Failure 404 {object} response.Error
// @Router /api/admin/blog/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPost")
	defer scope.End()

	id, err := shared.PathID(r, "blog post not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, post)
}

// CreatePost writes a new post.
// @Summary Create a blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Post"
// @Success 201 {object} response.Data[dto.BlogResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Slug already taken"
// @Router /api/admin/blog [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	req := dto.CreateBlogRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	post, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog post created")

	response.WithJSON(w, r, http.StatusCreated, post)
}

// UpdatePost edits a post.
// @Summary Update a blog post
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdateBlogRequest true "Changes"
// @Success 200 {object} response.Data[dto.BlogResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/admin/blog/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	req := dto.UpdateBlogRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id, err := shared.PathID(r, "blog post not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	post, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, r, http.StatusOK, post)
}

// DeletePost removes a post.
// @Summary Delete a blog post
// @Tags Admin
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/admin/blog/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id, err := shared.PathID(r, "blog post not found")
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog post")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blog post deleted successfully")
}
