package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	"autocare/shared/i18n"
	"autocare/transport/http/response"
)

type service struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	NameAr *string `json:"nameAr,omitempty"`
	Price  float64 `json:"price"`
}

func arabic(s string) *string {
	return &s
}

func requestIn(lang string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)

	return req.WithContext(i18n.WithLanguage(req.Context(), i18n.New(lang)))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON_Localized(t *testing.T) {
	payload := service{ID: "s-1", Name: "Oil change", NameAr: arabic("تغيير الزيت"), Price: 149.5}

	t.Run("rtl", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithJSON(rec, requestIn("ar"), http.StatusOK, payload)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Equal(t, "ar", rec.Header().Get(constant.RequestHeaderContentLanguage))

		body := decode(t, rec)
		assert.Equal(t, constant.ResponseStatusSuccess, body["status"])
		assert.Equal(t, map[string]any{"id": "s-1", "name": "تغيير الزيت", "price": 149.5}, body["data"])
		assert.Equal(t, map[string]any{"code": "ar", "direction": "rtl", "isRTL": true}, body["language"])
	})

	t.Run("ltr", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithJSON(rec, requestIn("en"), http.StatusCreated, payload)

		assert.Equal(t, http.StatusCreated, rec.Code)

		body := decode(t, rec)
		assert.Equal(t, map[string]any{"id": "s-1", "name": "Oil change", "price": 149.5}, body["data"])
		assert.Equal(t, false, body["language"].(map[string]any)["isRTL"])
	})
}

func TestWithJSON_UnhealthyPayloadIsNotSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, requestIn("en"), http.StatusServiceUnavailable, map[string]string{"status": "down"})

	body := decode(t, rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseStatusError, body["status"])
	assert.NotContains(t, body, "language")
}

func TestWithPage(t *testing.T) {
	page := gDto.Page[service]{
		Data:  []service{{ID: "s-1", Name: "Tyres", NameAr: arabic("الإطارات")}},
		Total: 11,
		Page:  2,
		Pages: 2,
	}

	rec := httptest.NewRecorder()
	response.WithPage(rec, requestIn("ar"), page)

	body := decode(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ResponseStatusSuccess, body["status"])
	assert.InDelta(t, 1, body["results"], 0)
	assert.InDelta(t, 11, body["total"], 0)
	assert.InDelta(t, 2, body["page"], 0)
	assert.InDelta(t, 2, body["pages"], 0)
	assert.Equal(t, []any{map[string]any{"id": "s-1", "name": "الإطارات", "price": float64(0)}}, body["data"])
	assert.Equal(t, true, body["language"].(map[string]any)["isRTL"])
}

func TestWithPage_EmptyDataIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithPage(rec, requestIn("en"), gDto.Page[service]{Page: 1, Pages: 1})

	body := decode(t, rec)
	assert.Equal(t, []any{}, body["data"])
	assert.InDelta(t, 0, body["results"], 0)
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantStatus: "fail", wantMessage: "booking not found"},
		{name: "bad request", err: failure.BadRequestFromString("status is invalid"), wantCode: http.StatusBadRequest, wantStatus: "fail", wantMessage: "status is invalid"},
		{name: "conflict", err: failure.Conflict("slug already exists"), wantCode: http.StatusConflict, wantStatus: "fail", wantMessage: "slug already exists"},
		{name: "unknown error is hidden", err: errors.New("pq: connection refused"), wantCode: http.StatusInternalServerError, wantStatus: "error", wantMessage: constant.ResponseErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			body := decode(t, rec)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, map[string]any{"status": tt.wantStatus, "message": tt.wantMessage}, body)
		})
	}
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithMessage(rec, http.StatusOK, "booking deleted")

	assert.Equal(t, map[string]any{"status": "success", "message": "booking deleted"}, decode(t, rec))

	rec = httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, map[string]any{"status": "fail", "message": constant.ResponseErrorRequestLimitExceeded}, decode(t, rec))
}
