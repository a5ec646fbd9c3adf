package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"autocare/config"
	"autocare/infras/otel"
	bookingModel "autocare/internal/domains/booking/model"
	bookingDto "autocare/internal/domains/booking/model/dto"
	bookingRepo "autocare/internal/domains/booking/repository"
	serviceModel "autocare/internal/domains/carservice/model"
	serviceRepo "autocare/internal/domains/carservice/repository"
	contactModel "autocare/internal/domains/contact/model"
	contactRepo "autocare/internal/domains/contact/repository"
	"autocare/internal/domains/dashboard/model/dto"
	userRepo "autocare/internal/domains/user/repository"
	"autocare/shared"
	"autocare/shared/cache"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKeyStats = "stats"
	recentLimit   = 5
	pingTimeout   = 2 * time.Second
)

// Pinger is anything whose liveness can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Health(ctx context.Context) dto.HealthResponse
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
	serviceRepo serviceRepo.CarService
	contactRepo contactRepo.Contact
	db          Pinger
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	startedAt   time.Time
}

func New(
	bookingRepo bookingRepo.Booking,
	userRepo userRepo.User,
	serviceRepo serviceRepo.CarService,
	contactRepo contactRepo.Contact,
	db Pinger,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		contactRepo: contactRepo,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		startedAt:   timezone.Now(),
	}
}

type countQuery struct {
	name   string
	dest   *int
	count  func(ctx context.Context, filter gDto.FilterGroup) (int, error)
	filter gDto.FilterGroup
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheKeyDashboard, cacheKeyStats)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	monthStart := timezone.StartOfMonth(timezone.Now())

	queries := []countQuery{
		{name: "bookings", dest: &res.TotalBookings, count: s.bookingRepo.Count},
		{name: "pending bookings", dest: &res.PendingBookings, count: s.bookingRepo.Count, filter: bookingStatus(bookingModel.StatusPending)},
		{name: "confirmed bookings", dest: &res.ConfirmedBookings, count: s.bookingRepo.Count, filter: bookingStatus(bookingModel.StatusConfirmed)},
		{name: "in-progress bookings", dest: &res.InProgressBookings, count: s.bookingRepo.Count, filter: bookingStatus(bookingModel.StatusInProgress)},
		{name: "completed bookings", dest: &res.CompletedBookings, count: s.bookingRepo.Count, filter: bookingStatus(bookingModel.StatusCompleted)},
		{name: "cancelled bookings", dest: &res.CancelledBookings, count: s.bookingRepo.Count, filter: bookingStatus(bookingModel.StatusCancelled)},
		{name: "users", dest: &res.TotalUsers, count: s.userRepo.Count},
		{name: "services", dest: &res.TotalServices, count: s.serviceRepo.Count},
		{
			name:   "active services",
			dest:   &res.ActiveServices,
			count:  s.serviceRepo.Count,
			filter: shared.FilterEq(serviceModel.FieldActive, true, serviceModel.TableName),
		},
		{name: "contacts", dest: &res.TotalContacts, count: s.contactRepo.Count},
		{
			name:   "new contacts",
			dest:   &res.NewContacts,
			count:  s.contactRepo.Count,
			filter: shared.FilterEq(contactModel.FieldStatus, contactModel.StatusNew, contactModel.TableName),
		},
		{name: "monthly bookings", dest: &res.MonthlyBookings, count: s.bookingRepo.Count, filter: since(bookingModel.TableName, monthStart)},
		{name: "monthly contacts", dest: &res.MonthlyContacts, count: s.contactRepo.Count, filter: since(contactModel.TableName, monthStart)},
	}

	group, gctx := errgroup.WithContext(ctx)

	for _, query := range queries {
		group.Go(func() error {
			total, err := query.count(gctx, query.filter)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", query.name, err)
			}

			*query.dest = total

			return nil
		})
	}

	var recent []bookingModel.Booking

	group.Go(func() error {
		var err error

		recent, err = s.bookingRepo.GetAll(gctx, gDto.QueryParams{
			Page:    1,
			Limit:   recentLimit,
			SortBy:  constant.FieldCreatedAt,
			SortDir: gDto.SortDirDesc,
		}, gDto.FilterGroup{})
		if err != nil {
			return fmt.Errorf("failed to get recent bookings: %w", err)
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build dashboard stats")

		return dto.StatsResponse{}, fmt.Errorf("failed to build dashboard stats: %w", err)
	}

	res.RecentBookings = make([]bookingDto.BookingResponse, 0, len(recent))
	for _, booking := range recent {
		res.RecentBookings = append(res.RecentBookings, bookingDto.ToBookingResponse(booking))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.DashboardTTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Health(ctx context.Context) dto.HealthResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Health")
	defer scope.End()

	var res dto.HealthResponse

	var group errgroup.Group

	group.Go(func() error {
		res.Database = probe(ctx, s.db)

		return nil
	})
	group.Go(func() error {
		res.Cache = probe(ctx, s.cache)

		return nil
	})

	_ = group.Wait()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	res.UptimeSeconds = int64(time.Since(s.startedAt).Seconds())
	res.Memory = dto.MemoryStats{AllocBytes: mem.Alloc, SysBytes: mem.Sys, NumGC: mem.NumGC}
	res.Goroutines = runtime.NumGoroutine()

	res.Status = constant.HealthStatusUp
	if res.Database.Status != constant.HealthStatusUp || res.Cache.Status != constant.HealthStatusUp {
		res.Status = constant.HealthStatusDown
	}

	return res
}

func probe(ctx context.Context, target Pinger) dto.ComponentHealth {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := target.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		log.Warn().Err(err).Msg("health probe failed")

		return dto.ComponentHealth{Status: constant.HealthStatusDown, LatencyMs: latency, Error: err.Error()}
	}

	return dto.ComponentHealth{Status: constant.HealthStatusUp, LatencyMs: latency}
}

func bookingStatus(status string) gDto.FilterGroup {
	return shared.FilterEq(bookingModel.FieldStatus, status, bookingModel.TableName)
}

func since(table string, start time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "since",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
				Table:    table,
			},
		},
	}
}
