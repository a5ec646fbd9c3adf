package shared_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"autocare/shared"
	cacheMocks "autocare/shared/cache/mocks"
	"autocare/shared/constant"
	"autocare/shared/dto"
	"autocare/shared/failure"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "random", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name    string `db:"name"`
		Phone   string `db:"phone"`
		Active  *bool  `db:"active"`
		Skipped string `db:"-"`
		NoTag   string
		Price   float64 `db:"price"`
	}

	inactive := false

	result := shared.TransformFields(update{
		Name:    "Ahmed",
		Active:  &inactive,
		Skipped: "ignored",
		NoTag:   "ignored",
	}, "admin-id")

	assert.Equal(t, "Ahmed", result["name"])
	assert.Equal(t, &inactive, result["active"])
	assert.NotContains(t, result, "phone")
	assert.NotContains(t, result, "price")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "admin-id", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	got := shared.FilterByID("b-1", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}, got)

	where, args := got.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking:get", "42"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	pending := shared.FilterEq("status", "pending", "bookings")
	confirmed := shared.FilterEq("status", "confirmed", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	again := shared.BuildCacheKeyWithQuery("booking:gets", params, pending)
	other := shared.BuildCacheKeyWithQuery("booking:gets", params, confirmed)
	nextPage := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, pending)

	assert.True(t, strings.HasPrefix(first, "booking:gets:"))
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, nextPage)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "service:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "service:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "service:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "service:count")
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ContextGuest, shared.Actor(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-1")
	assert.Equal(t, "u-1", shared.Actor(ctx))
}

func TestPathID(t *testing.T) {
	withID := func(id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(constant.RequestParamID, id)

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("uuid", func(t *testing.T) {
		id, err := shared.PathID(withID("0b6f1f4e-3c1a-4d8e-9a51-6e2f1c7d9b10"), "booking not found")

		assert.NoError(t, err)
		assert.Equal(t, "0b6f1f4e-3c1a-4d8e-9a51-6e2f1c7d9b10", id)
	})

	for _, raw := range []string{"", "abc", "42", "0b6f1f4e-3c1a-4d8e-9a51"} {
		t.Run("malformed "+raw, func(t *testing.T) {
			id, err := shared.PathID(withID(raw), "booking not found")

			assert.Empty(t, id)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
			assert.EqualError(t, err, "booking not found")
		})
	}
}
