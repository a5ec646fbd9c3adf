package auth_test

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
	"autocare/internal/domains/auth/model/dto"
	serviceMocks "autocare/internal/domains/auth/service/mocks"
	userDto "autocare/internal/domains/user/model/dto"
	handler "autocare/internal/handlers/auth"
	"autocare/shared/constant"
	"autocare/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockAuth) {
	t.Helper()

	mockService := serviceMocks.NewMockAuth(gomock.NewController(t))
	h := handler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", h.Router)

	return router, mockService
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func asUser(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, userID))
}

func TestLogin(t *testing.T) {
	t.Run("returns the token pair", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "omar@example.com", Password: "secret123"}).
			Return(dto.AuthResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				TokenType:    "Bearer",
				ExpiresIn:    900,
				User:         userDto.UserResponse{ID: "u-1", Role: constant.RoleUser},
			}, nil)

		body := `{"email":"omar@example.com","password":"secret123"}`
		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Data dto.AuthResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "access", res.Data.AccessToken)
		assert.Equal(t, "u-1", res.Data.User.ID)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.AuthResponse{}, failure.Unauthorized("invalid email or password"))

		body := `{"email":"omar@example.com","password":"nope"}`
		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"omar","password":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegister_ShortPassword(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"name":"Omar","email":"omar@example.com","password":"short"}`
	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_UsesCaller(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Me(gomock.Any(), "u-1").Return(userDto.UserResponse{ID: "u-1", Name: "Omar"}, nil)

	rec := serve(router, asUser(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "u-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePassword(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().ChangePassword(gomock.Any(), dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}, "u-1").Return(nil)

		body := `{"currentPassword":"old-secret","newPassword":"new-secret"}`
		rec := serve(router, asUser(httptest.NewRequest(http.MethodPatch, "/api/auth/me/password", strings.NewReader(body)), "u-1"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("new password too short", func(t *testing.T) {
		router, _ := newRouter(t)

		body := `{"currentPassword":"old-secret","newPassword":"short"}`
		rec := serve(router, asUser(httptest.NewRequest(http.MethodPatch, "/api/auth/me/password", strings.NewReader(body)), "u-1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
