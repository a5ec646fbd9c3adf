package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"autocare/config"
	"autocare/infras/otel"
	"autocare/internal/domains/blog/model"
	"autocare/internal/domains/blog/model/dto"
	"autocare/internal/domains/blog/repository"
	"autocare/shared"
	"autocare/shared/cache"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/slug"
	"autocare/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBlog    = "blog:get"
	cacheGetAllBlog = "blog:gets"

	defaultAuthor = "AutoCare Team"
)

type Blog interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.BlogResponse], error)
	GetBySlug(ctx context.Context, slug string) (dto.BlogResponse, error)
	Get(ctx context.Context, id string) (dto.BlogResponse, error)
	Create(ctx context.Context, req dto.CreateBlogRequest) (dto.BlogResponse, error)
	Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (dto.BlogResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Blog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Blog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Blog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.BlogResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlog, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for blogs")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blogs")

		return res, fmt.Errorf("failed to count blogs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blogs")

		return res, fmt.Errorf("failed to get blogs: %w", err)
	}

	res = gDto.NewPage(models, total, params, dto.ToBlogResponse)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

// GetBySlug returns a published post. Drafts are reported as missing.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBlog, slug)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	blog, err := s.repo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldSlug, Operator: gDto.FilterOperatorEq, Value: slug, Table: model.TableName},
			gDto.Filter{Field: model.FieldPublished, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog by slug")

		return res, fmt.Errorf("failed to get blog by slug: %w", err)
	}

	if blog.ID == "" {
		return res, failure.NotFound("blog post not found")
	}

	res.FromModel(blog)

	go s.save(context.WithoutCancel(ctx), cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	blog, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog")

		return res, fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.ID == "" {
		return res, failure.NotFound("blog post not found")
	}

	res.FromModel(blog)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogRequest) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}

	if postSlug == "" {
		return res, failure.BadRequestFromString("slug is required when the title has no latin characters")
	}

	if err = s.ensureSlugFree(ctx, postSlug, ""); err != nil {
		return res, err
	}

	author := req.Author
	if author == "" {
		author = s.defaultAuthor()
	}

	blog := req.ToModel(shared.Actor(ctx), postSlug, author)

	if err = s.repo.Insert(ctx, blog); err != nil {
		log.Error().Err(err).Msg("failed to create blog")

		return res, fmt.Errorf("failed to create blog: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), "")

	res.FromModel(blog)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog")

		return res, fmt.Errorf("failed to get blog: %w", err)
	}

	if current.ID == "" {
		return res, failure.NotFound("blog post not found")
	}

	if req.Slug != nil && *req.Slug != current.Slug {
		if err = s.ensureSlugFree(ctx, *req.Slug, id); err != nil {
			return res, err
		}
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))

	if req.Tags != nil {
		fields[model.FieldTags] = dto.NormalizeTags(req.Tags)
	}

	if req.Published != nil && *req.Published && current.PublishedAt == nil {
		fields[model.FieldPublishedAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update blog")

		return res, fmt.Errorf("failed to update blog: %w", err)
	}

	blog, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload blog")

		return res, fmt.Errorf("failed to reload blog: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), current.Slug)

	res.FromModel(blog)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldSlug)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blog")

		return fmt.Errorf("failed to get blog: %w", err)
	}

	if current.ID == "" {
		return failure.NotFound("blog post not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete blog")

		return fmt.Errorf("failed to delete blog: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), current.Slug)

	return nil
}

// ensureSlugFree fails with a conflict when another post, other than exceptID, owns postSlug.
func (s *serviceImpl) ensureSlugFree(ctx context.Context, postSlug, exceptID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldSlug, Operator: gDto.FilterOperatorEq, Value: postSlug, Table: model.TableName},
		},
	}

	if exceptID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableName,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blog slug")

		return fmt.Errorf("failed to check blog slug: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("slug %q is already in use", postSlug))
	}

	return nil
}

func (s *serviceImpl) defaultAuthor() string {
	if s.cfg.App.Name != "" {
		return s.cfg.App.Name
	}

	return defaultAuthor
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save blog to cache")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, postSlug string) {
	if postSlug != "" {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBlog, postSlug)); err != nil {
			log.Error().Err(err).Msg("failed to delete blog from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBlog)
}
