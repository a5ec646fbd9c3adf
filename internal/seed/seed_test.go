package seed_test

import (
	"context"
	"errors"
	"testing"

	blogMocks "autocare/internal/domains/blog/mocks"
	blogModel "autocare/internal/domains/blog/model"
	serviceMocks "autocare/internal/domains/carservice/mocks"
	serviceModel "autocare/internal/domains/carservice/model"
	userMocks "autocare/internal/domains/user/mocks"
	userModel "autocare/internal/domains/user/model"
	"autocare/internal/seed"
	"autocare/shared/constant"
	"autocare/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTruncater struct {
	tables []string
	err    error
}

func (f *fakeTruncater) Truncate(_ context.Context, tables ...string) error {
	f.tables = tables

	return f.err
}

type fixture struct {
	seeder    *seed.Seeder
	users     *userMocks.MockUser
	services  *serviceMocks.MockCarService
	blogs     *blogMocks.MockBlog
	truncater *fakeTruncater
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		users:     userMocks.NewMockUser(ctrl),
		services:  serviceMocks.NewMockCarService(ctrl),
		blogs:     blogMocks.NewMockBlog(ctrl),
		truncater: &fakeTruncater{},
	}
	f.seeder = seed.New(f.users, f.services, f.blogs, f.truncater)

	return f
}

var opts = seed.Options{
	AdminName:     "Administrator",
	AdminEmail:    " Admin@AutoCare.test ",
	AdminPassword: "s3cret-pass",
}

func TestRun_MissingCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.seeder.Run(context.Background(), seed.Options{AdminEmail: "a@b.c"})
	assert.ErrorIs(t, err, seed.ErrMissingAdminCredentials)
}

func TestRun_EmptyDatabase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, admin userModel.User) error {
		assert.Equal(t, "admin@autocare.test", admin.Email)
		assert.Equal(t, constant.RoleAdmin, admin.Role)
		assert.True(t, admin.Active)
		assert.Equal(t, constant.ContextSeed, admin.CreatedBy)
		assert.NoError(t, password.Verify(opts.AdminPassword, admin.Password))

		return nil
	})

	f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(6)
	f.services.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rows []serviceModel.CarService) error {
		assert.Len(t, rows, 6)

		for _, row := range rows {
			assert.NotEmpty(t, row.ID)
			assert.NotNil(t, row.NameAr)
			assert.True(t, row.Active)
		}

		return nil
	})

	f.blogs.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	f.blogs.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, post blogModel.Blog) error {
		assert.NotEmpty(t, post.Slug)
		assert.True(t, post.Published)
		assert.NotNil(t, post.PublishedAt)

		return nil
	}).Times(2)

	result, err := f.seeder.Run(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Admin: true, Services: 6, Posts: 2}, result)
	assert.Nil(t, f.truncater.tables)
}

func TestRun_AlreadySeeded(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(6)
	f.blogs.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	result, err := f.seeder.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, result)
}

func TestRun_Reset(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(6)
	f.blogs.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)

	withReset := opts
	withReset.Reset = true

	_, err := f.seeder.Run(context.Background(), withReset)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bookings", "contacts", "blogs", "services", "users"}, f.truncater.tables)
}

func TestRun_Errors(t *testing.T) {
	errDB := errors.New("db down")

	t.Run("reset", func(t *testing.T) {
		f := newFixture(t)
		f.truncater.err = errDB

		withReset := opts
		withReset.Reset = true

		_, err := f.seeder.Run(context.Background(), withReset)
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("admin lookup", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errDB)

		_, err := f.seeder.Run(context.Background(), opts)
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("service insert", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(6)
		f.services.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(errDB)

		result, err := f.seeder.Run(context.Background(), opts)
		assert.ErrorIs(t, err, errDB)
		assert.Zero(t, result.Services)
	})
}
