package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	authDto "autocare/internal/domains/auth/model/dto"
	blogModel "autocare/internal/domains/blog/model"
	blogRepo "autocare/internal/domains/blog/repository"
	bookingModel "autocare/internal/domains/booking/model"
	serviceModel "autocare/internal/domains/carservice/model"
	serviceRepo "autocare/internal/domains/carservice/repository"
	contactModel "autocare/internal/domains/contact/model"
	userModel "autocare/internal/domains/user/model"
	userRepo "autocare/internal/domains/user/repository"
	"autocare/shared"
	"autocare/shared/constant"
	"autocare/shared/password"
	"autocare/shared/slug"

	"github.com/rs/zerolog/log"
)

const defaultAuthor = "AutoCare Team"

var ErrMissingAdminCredentials = errors.New("admin email and password are required")

// Truncater empties tables before a reseed.
type Truncater interface {
	Truncate(ctx context.Context, tables ...string) error
}

type Options struct {
	Reset         bool
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Result counts the rows a run actually inserted.
type Result struct {
	Admin    bool
	Services int
	Posts    int
}

type Seeder struct {
	users     userRepo.User
	services  serviceRepo.CarService
	blogs     blogRepo.Blog
	truncater Truncater
}

func New(users userRepo.User, services serviceRepo.CarService, blogs blogRepo.Blog, truncater Truncater) *Seeder {
	return &Seeder{
		users:     users,
		services:  services,
		blogs:     blogs,
		truncater: truncater,
	}
}

// Run inserts the admin account, the service catalogue and sample posts. Rows that already exist
// (by email, name and slug) are left alone, so running twice is harmless.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var result Result

	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return result, ErrMissingAdminCredentials
	}

	if opts.Reset {
		tables := []string{
			bookingModel.TableName,
			contactModel.TableName,
			blogModel.TableName,
			serviceModel.TableName,
			userModel.TableName,
		}

		if err := s.truncater.Truncate(ctx, tables...); err != nil {
			return result, fmt.Errorf("failed to reset tables: %w", err)
		}

		log.Warn().Strs("tables", tables).Msg("Tables truncated")
	}

	created, err := s.seedAdmin(ctx, opts)
	if err != nil {
		return result, err
	}

	result.Admin = created

	if result.Services, err = s.seedServices(ctx); err != nil {
		return result, err
	}

	if result.Posts, err = s.seedPosts(ctx); err != nil {
		return result, err
	}

	return result, nil
}

func (s *Seeder) seedAdmin(ctx context.Context, opts Options) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))

	exists, err := s.users.Exist(ctx, shared.FilterEq(userModel.FieldEmail, email, userModel.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	if exists {
		log.Info().Str("email", email).Msg("Admin already present, skipping")

		return false, nil
	}

	hashed, err := password.Hash(opts.AdminPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	register := authDto.RegisterRequest{Name: opts.AdminName, Email: email}
	admin := register.ToUserModel(hashed)
	admin.Role = constant.RoleAdmin
	admin.CreatedBy = constant.ContextSeed
	admin.ModifiedBy = constant.ContextSeed

	if err = s.users.Insert(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to insert admin: %w", err)
	}

	log.Info().Str("email", email).Msg("Admin created")

	return true, nil
}

func (s *Seeder) seedServices(ctx context.Context) (int, error) {
	var missing []serviceModel.CarService

	for _, req := range services() {
		exists, err := s.services.Exist(ctx, shared.FilterEq(serviceModel.FieldName, req.Name, serviceModel.TableName))
		if err != nil {
			return 0, fmt.Errorf("failed to check service %q: %w", req.Name, err)
		}

		if !exists {
			missing = append(missing, req.ToModel(constant.ContextSeed))
		}
	}

	if len(missing) == 0 {
		return 0, nil
	}

	if err := s.services.InsertBulk(ctx, missing); err != nil {
		return 0, fmt.Errorf("failed to insert services: %w", err)
	}

	log.Info().Int("count", len(missing)).Msg("Services created")

	return len(missing), nil
}

func (s *Seeder) seedPosts(ctx context.Context) (int, error) {
	inserted := 0

	for _, req := range posts() {
		postSlug := slug.Make(req.Title)

		exists, err := s.blogs.Exist(ctx, shared.FilterEq(blogModel.FieldSlug, postSlug, blogModel.TableName))
		if err != nil {
			return inserted, fmt.Errorf("failed to check post %q: %w", postSlug, err)
		}

		if exists {
			continue
		}

		if err = s.blogs.Insert(ctx, req.ToModel(constant.ContextSeed, postSlug, defaultAuthor)); err != nil {
			return inserted, fmt.Errorf("failed to insert post %q: %w", postSlug, err)
		}

		inserted++
	}

	log.Info().Int("count", inserted).Msg("Blog posts created")

	return inserted, nil
}
