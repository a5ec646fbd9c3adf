package blog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autocare/infras/otel/mocks"
	"autocare/internal/domains/blog/model/dto"
	serviceMocks "autocare/internal/domains/blog/service/mocks"
	handler "autocare/internal/handlers/blog"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/i18n"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockBlog) {
	t.Helper()

	mockService := serviceMocks.NewMockBlog(gomock.NewController(t))
	h := handler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.Router(r)
		r.Route("/admin", h.AdminRouter)
	})

	return router, mockService
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGetPosts_PublicListingOnlyPublished(t *testing.T) {
	router, mockService := newRouter(t)

	unpublished := false
	want := dto.ListFilter{Tag: "brakes", Published: &unpublished}

	mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), want.FilterGroup(true)).
		Return(gDto.Page[dto.BlogResponse]{Page: 1, Pages: 1}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/blog?tag=%20Brakes%20&published=false", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPostBySlug(t *testing.T) {
	t.Run("localized", func(t *testing.T) {
		router, mockService := newRouter(t)

		titleAr := "العناية بالمكابح"
		mockService.EXPECT().GetBySlug(gomock.Any(), "brake-care").Return(dto.BlogResponse{
			ID:        "p-1",
			Title:     "Brake care",
			TitleAr:   &titleAr,
			Slug:      "brake-care",
			Tags:      []string{"brakes"},
			Published: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/blog/brake-care", nil)
		req = req.WithContext(i18n.WithLanguage(context.Background(), i18n.New("ar")))

		rec := serve(router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, titleAr, body.Data["title"])
		assert.Equal(t, []any{"brakes"}, body.Data["tags"])
	})

	t.Run("unknown slug", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().GetBySlug(gomock.Any(), "missing").Return(dto.BlogResponse{}, failure.NotFound("blog post not found"))

		rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/blog/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BlogResponse{}, failure.Conflict("blog already exists"))

	body := `{"title":"Brake care","excerpt":"Keep your brakes healthy","content":"Check pads every 10,000 km and replace fluid yearly."}`
	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/admin/blog", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMalformedPostID(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"title":"Brake care"}`
	rec := serve(router, httptest.NewRequest(http.MethodPatch, "/api/admin/blog/brake-care", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
