package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"autocare/config"
	"autocare/infras/kafka"
	"autocare/infras/otel"
	"autocare/internal/domains/booking/model"
	"autocare/internal/domains/booking/model/dto"
	"autocare/internal/domains/booking/repository"
	serviceModel "autocare/internal/domains/carservice/model"
	serviceRepo "autocare/internal/domains/carservice/repository"
	"autocare/shared"
	"autocare/shared/cache"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (gDto.Page[dto.BookingResponse], error)
	GetMine(ctx context.Context, params gDto.QueryParams, userID string) (gDto.Page[dto.BookingResponse], error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	serviceRepo serviceRepo.CarService
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(
	repo repository.Booking,
	serviceRepo serviceRepo.CarService,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, err := s.serviceRepo.Get(ctx, shared.FilterByID(req.ServiceID, serviceModel.FieldID, serviceModel.TableName),
		serviceModel.FieldID, serviceModel.FieldName, serviceModel.FieldNameAr, serviceModel.FieldActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked service")

		return res, fmt.Errorf("failed to get booked service: %w", err)
	}

	if service.ID == "" || !service.Active {
		return res, failure.BadRequestFromString("service does not exist or is not available")
	}

	actor := shared.Actor(ctx)

	var userID *string
	if actor != constant.ContextGuest {
		userID = &actor
	}

	booking, err := req.ToModel(actor, userID)
	if err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ServiceName = &service.Name
	booking.ServiceNameAr = service.NameAr

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateListings(c)
		s.publish(c, constant.EventBookingCreated, dto.NewEvent(booking, ""))
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.ListFilter) (res gDto.Page[dto.BookingResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, filter.FilterGroup())
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams, userID string) (res gDto.Page[dto.BookingResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" || userID == constant.ContextGuest {
		return res, failure.Unauthorized("authentication required")
	}

	filter := dto.ListFilter{UserID: userID}

	return s.list(ctx, params, filter.FilterGroup())
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.BookingResponse], err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = gDto.NewPage(models, total, params, dto.ToBookingResponse)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found")
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !model.IsValidStatus(req.Status) {
		return res, failure.BadRequestFromString("status must be one of pending confirmed in-progress completed cancelled")
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound("booking not found")
	}

	previous := booking.Status
	if previous == req.Status {
		res.FromModel(booking)

		return res, nil
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = shared.Actor(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)
		s.publish(c, constant.EventBookingStatusChanged, dto.NewEvent(booking, previous))
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, payload dto.Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
	defer scope.End()

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, kafka.Message{
		Key: payload.ID,
		Value: kafka.Event[dto.Event]{
			Type:       eventType,
			OccurredAt: timezone.Now(),
			Payload:    payload,
		},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", eventType).Str("bookingId", payload.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	s.invalidateListings(ctx)
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDashboard)
}
