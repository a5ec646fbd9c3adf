package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"autocare/config"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	"autocare/internal/domains/contact/model"
	"autocare/internal/domains/contact/model/dto"
	"autocare/internal/domains/contact/repository"
	"autocare/shared"
	"autocare/shared/cache"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGetAllContact = "contact:gets"

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (gDto.Page[dto.ContactResponse], error)
	Get(ctx context.Context, id string) (dto.ContactResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.ContactResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Contact
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Contact, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Contact {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		kafka: kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to save contact message")

		return res, fmt.Errorf("failed to save contact message: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c)
		s.publish(c, contact)
	}()

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (res gDto.Page[dto.ContactResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	group := filter.FilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, params, group)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")

		return res, fmt.Errorf("failed to count contact messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact messages")

		return res, fmt.Errorf("failed to get contact messages: %w", err)
	}

	res = gDto.NewPage(models, total, params, dto.ToContactResponse)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact messages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contact, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Contact, error) {
	contact, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact message")

		return contact, fmt.Errorf("failed to get contact message: %w", err)
	}

	if contact.ID == "" {
		return contact, failure.NotFound("contact message not found")
	}

	return contact, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsValidStatus(req.Status) {
		return res, failure.BadRequestFromString("status must be one of new read replied")
	}

	contact, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if contact.Status != req.Status {
		err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to update contact status")

			return res, fmt.Errorf("failed to update contact status: %w", err)
		}

		contact.Status = req.Status
		contact.ModifiedAt = timezone.Now()
		contact.ModifiedBy = shared.Actor(ctx)

		go s.invalidate(context.WithoutCancel(ctx))
	}

	res.FromModel(contact)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact message exists")

		return fmt.Errorf("failed to check if contact message exists: %w", err)
	}

	if !exist {
		return failure.NotFound("contact message not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete contact message")

		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx))

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, contact model.Contact) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+constant.EventContactSubmitted)
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Contact, kafka.Message{
		Key: contact.ID,
		Value: kafka.Event[dto.Event]{
			Type:       constant.EventContactSubmitted,
			OccurredAt: timezone.Now(),
			Payload:    dto.NewEvent(contact),
		},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("contactId", contact.ID).Msg("failed to publish contact event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllContact)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDashboard)
}
