package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autocare/config"
	"autocare/infras/otel/mocks"
	"autocare/shared/cache"
	cacheMocks "autocare/shared/cache/mocks"
	"autocare/shared/constant"
	"autocare/shared/i18n"
	"autocare/transport/http/middleware"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		header   string
		fallback string
		wantCode string
		wantRTL  bool
	}{
		{name: "query parameter", target: "/?lang=ar", header: "en-US", fallback: "en", wantCode: "ar", wantRTL: true},
		{name: "accept language", target: "/", header: "he-IL,he;q=0.9", fallback: "en", wantCode: "he", wantRTL: true},
		{name: "configured default", target: "/", fallback: "ar", wantCode: "ar", wantRTL: true},
		{name: "built-in default", target: "/", wantCode: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.Localization.DefaultLanguage = tt.fallback

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)

			var got i18n.Language

			handler := app.Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = i18n.FromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAcceptLanguage, tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantRTL, got.IsRTL)
		})
	}
}

func TestTracing_PassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	rec := httptest.NewRecorder()
	app.Tracing(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func rateLimited(t *testing.T, enabled bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enabled
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

	return app.RateLimit()(http.HandlerFunc(okHandler)), mockCache
}

func limitedRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
	req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

	return req
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:test-agent"

	t.Run("disabled", func(t *testing.T) {
		handler, _ := rateLimited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request in window", func(t *testing.T) {
		handler, mockCache := rateLimited(t, true)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("limit exceeded", func(t *testing.T) {
		handler, mockCache := rateLimited(t, true)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*(value.(*int)) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets request through", func(t *testing.T) {
		handler, mockCache := rateLimited(t, true)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("redis down"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limitedRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
