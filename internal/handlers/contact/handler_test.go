package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autocare/infras/otel/mocks"
	"autocare/internal/domains/contact/model/dto"
	serviceMocks "autocare/internal/domains/contact/service/mocks"
	handler "autocare/internal/handlers/contact"
	gDto "autocare/shared/dto"
)

const contactID = "7c4e1a9b-2d6f-4b38-9e05-1a8c3d7f6b24"

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockContact) {
	t.Helper()

	mockService := serviceMocks.NewMockContact(gomock.NewController(t))
	h := handler.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.Router(r)
		r.Route("/admin", h.AdminRouter)
	})

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     bool
		wantCode int
	}{
		{
			name:     "valid",
			body:     `{"name":"Omar","email":"omar@example.com","subject":"Brakes","message":"My brakes squeal when cold."}`,
			mock:     true,
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid email",
			body:     `{"name":"Omar","email":"omar","subject":"Brakes","message":"My brakes squeal when cold."}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "message too short",
			body:     `{"name":"Omar","email":"omar@example.com","subject":"Brakes","message":"help"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.mock {
				mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.ContactResponse{ID: contactID, Status: "new"}, nil)
			}

			rec := serve(router, http.MethodPost, "/api/contact", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetContacts_StatusFilter(t *testing.T) {
	t.Run("known status", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), dto.ListFilter{Status: "read", Search: "brakes"}).
			Return(gDto.Page[dto.ContactResponse]{Page: 1, Pages: 1}, nil)

		rec := serve(router, http.MethodGet, "/api/admin/contacts?status=read&search=brakes", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodGet, "/api/admin/contacts?status=archived", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateContactStatus(t *testing.T) {
	t.Run("replied", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().UpdateStatus(gomock.Any(), dto.UpdateStatusRequest{Status: "replied"}, contactID).
			Return(dto.ContactResponse{ID: "c-1", Status: "replied"}, nil)

		rec := serve(router, http.MethodPatch, "/api/admin/contacts/"+contactID+"/status", `{"status":"replied"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("outside lifecycle", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPatch, "/api/admin/contacts/"+contactID+"/status", `{"status":"spam"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMalformedContactID(t *testing.T) {
	router, _ := newRouter(t)

	rec := serve(router, http.MethodPatch, "/api/admin/contacts/not-a-uuid/status", `{"status":"read"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
