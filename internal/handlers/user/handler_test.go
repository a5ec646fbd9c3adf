package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autocare/infras/otel/mocks"
	"autocare/internal/domains/user/model/dto"
	serviceMocks "autocare/internal/domains/user/service/mocks"
	handler "autocare/internal/handlers/user"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
)

const (
	userID  = "2f9b6d3e-8a1c-4e57-b2d0-5c6e9a1f3b78"
	adminID = "c3a1e7d9-4b2f-4861-9d5e-8f0b2a6c4e13"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockUser) {
	t.Helper()

	mockService := serviceMocks.NewMockUser(gomock.NewController(t))
	h := handler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api/admin", h.AdminRouter)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestGetUsers(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(gDto.Page[dto.UserResponse]{Data: []dto.UserResponse{{ID: "u-1"}}, Total: 1, Page: 1, Pages: 1}, nil)

	rec := serve(router, http.MethodGet, "/api/admin/users?role=admin", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateUser_Role(t *testing.T) {
	t.Run("promote", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Update(gomock.Any(), gomock.Any(), userID).DoAndReturn(
			func(_ any, req dto.UpdateUserRequest, _ string) (dto.UserResponse, error) {
				assert.Equal(t, "admin", *req.Role)

				return dto.UserResponse{ID: "u-1", Role: "admin"}, nil
			})

		rec := serve(router, http.MethodPatch, "/api/admin/users/"+userID, `{"role":"admin"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPatch, "/api/admin/users/"+userID, `{"role":"mechanic"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteUser_Self(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Delete(gomock.Any(), adminID).Return(failure.BadRequestFromString("you cannot delete your own account"))

	rec := serve(router, http.MethodDelete, "/api/admin/users/"+adminID, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedUserID(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodDelete, "/api/admin/users/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
