package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autocare/config"
	"autocare/infras/otel/mocks"
	blogMocks "autocare/internal/domains/blog/mocks"
	"autocare/internal/domains/blog/model"
	"autocare/internal/domains/blog/model/dto"
	"autocare/internal/domains/blog/service"
	"autocare/shared/cache"
	cacheMocks "autocare/shared/cache/mocks"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	gModel "autocare/shared/model"
)

func newService(t *testing.T) (service.Blog, *blogMocks.MockBlog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := blogMocks.NewMockBlog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Name = "AutoCare"

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func draft() model.Blog {
	return model.Blog{
		ID:       "blog-1",
		Title:    "Winter tyre tips",
		Slug:     "winter-tyre-tips",
		Excerpt:  "Stay safe",
		Content:  "Check your tread depth.",
		Author:   "AutoCare",
		Tags:     []string{"tyres"},
		Metadata: gModel.NewMetadata("admin-1"),
	}
}

func TestBlogService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBlogRequest
		setupMock func(*blogMocks.MockBlog)
		wantSlug  string
		wantCode  int
	}{
		{
			name: "slug derived from title",
			req:  dto.CreateBlogRequest{Title: "Winter Tyre Tips!", Excerpt: "e", Content: "c", Published: true, Tags: []string{"Tyres", "tyres "}},
			setupMock: func(m *blogMocks.MockBlog) {
				m.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, blog model.Blog) error {
						assert.Equal(t, "winter-tyre-tips", blog.Slug)
						assert.Equal(t, "AutoCare", blog.Author)
						assert.Equal(t, []string{"tyres"}, []string(blog.Tags))
						assert.NotNil(t, blog.PublishedAt)

						return nil
					})
			},
			wantSlug: "winter-tyre-tips",
		},
		{
			name: "explicit slug kept",
			req:  dto.CreateBlogRequest{Title: "Winter Tyre Tips", Slug: "tyres-2025", Excerpt: "e", Content: "c"},
			setupMock: func(m *blogMocks.MockBlog) {
				m.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, blog model.Blog) error {
						assert.Nil(t, blog.PublishedAt)

						return nil
					})
			},
			wantSlug: "tyres-2025",
		},
		{
			name: "duplicate slug",
			req:  dto.CreateBlogRequest{Title: "Winter Tyre Tips", Excerpt: "e", Content: "c"},
			setupMock: func(m *blogMocks.MockBlog) {
				m.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "title without latin characters",
			req:       dto.CreateBlogRequest{Title: "نصائح الشتاء", Excerpt: "e", Content: "c"},
			setupMock: func(*blogMocks.MockBlog) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(adminCtx(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
		})
	}
}

func TestBlogService_Update_PublishStampsOnce(t *testing.T) {
	publish := true

	t.Run("first publish", func(t *testing.T) {
		svc, mockRepo := newService(t)

		published := draft()
		published.Published = true

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldPublishedAt)
				assert.Equal(t, &publish, fields[model.FieldPublished])

				return nil
			})
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(published, nil)

		res, err := svc.Update(adminCtx(), dto.UpdateBlogRequest{Published: &publish}, "blog-1")
		require.NoError(t, err)
		assert.True(t, res.Published)
	})

	t.Run("republish keeps original timestamp", func(t *testing.T) {
		svc, mockRepo := newService(t)

		first := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
		current := draft()
		current.PublishedAt = &first

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldPublishedAt)

				return nil
			})
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		_, err := svc.Update(adminCtx(), dto.UpdateBlogRequest{Published: &publish}, "blog-1")
		require.NoError(t, err)
	})
}

func TestBlogService_Update_Errors(t *testing.T) {
	taken := "taken-slug"

	svc, mockRepo := newService(t)

	_, err := svc.Update(adminCtx(), dto.UpdateBlogRequest{}, "blog-1")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

	_, err = svc.Update(adminCtx(), dto.UpdateBlogRequest{Slug: &taken}, "blog-404")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(draft(), nil)
	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err = svc.Update(adminCtx(), dto.UpdateBlogRequest{Slug: &taken}, "blog-1")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBlogService_GetBySlug(t *testing.T) {
	svc, mockRepo := newService(t)

	published := draft()
	published.Published = true

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Blog, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(blogs.slug = :slug AND blogs.published = :published)", where)
			assert.Equal(t, "winter-tyre-tips", args["slug"])

			return published, nil
		})

	res, err := svc.GetBySlug(context.Background(), "winter-tyre-tips")
	require.NoError(t, err)
	assert.Equal(t, "blog-1", res.ID)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

	_, err = svc.GetBySlug(context.Background(), "draft-post")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBlogService_GetAll(t *testing.T) {
	svc, mockRepo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 2}

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Blog{draft(), draft()}, nil)

	page, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, []string{"tyres"}, page.Data[0].Tags)
}

func TestBlogService_Delete(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldSlug).Return(draft(), nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(adminCtx(), "blog-1"))

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldSlug).Return(model.Blog{}, nil)

	err := svc.Delete(adminCtx(), "blog-404")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
