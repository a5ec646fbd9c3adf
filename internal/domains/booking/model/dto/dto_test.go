package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/domains/booking/model"
	"autocare/internal/domains/booking/model/dto"
	"autocare/shared/constant"
	"autocare/shared/failure"
	"autocare/shared/timezone"
	"autocare/shared/validator"
)

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ServiceID:     "1f0c7a52-5b0e-4e0a-9d43-2a3c0f2b7e11",
		CustomerName:  "Omar",
		CustomerEmail: "omar@example.com",
		CustomerPhone: "+971500000001",
		CarMake:       "Nissan",
		CarModel:      "Patrol",
		BookingDate:   dto.BookingDate(timezone.Now().Format(constant.DateOnly)),
		BookingTime:   "09:00",
	}
}

func TestBookingDate_Validate(t *testing.T) {
	today := timezone.Now()

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "today", date: today.Format(constant.DateOnly)},
		{name: "next week", date: today.AddDate(0, 0, 7).Format(constant.DateOnly)},
		{name: "yesterday", date: today.AddDate(0, 0, -1).Format(constant.DateOnly), wantErr: true},
		{name: "malformed", date: "15/03/2030", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.BookingDate(tt.date).Validate(nil)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	valid := validRequest()
	require.NoError(t, validator.ValidateStruct(&valid))

	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{name: "service id not uuid", mutate: func(r *dto.CreateBookingRequest) { r.ServiceID = "svc-1" }},
		{name: "bad email", mutate: func(r *dto.CreateBookingRequest) { r.CustomerEmail = "nope" }},
		{name: "past date", mutate: func(r *dto.CreateBookingRequest) { r.BookingDate = "2020-02-02" }},
		{name: "bad time", mutate: func(r *dto.CreateBookingRequest) { r.BookingTime = "25:00" }},
		{name: "car too old", mutate: func(r *dto.CreateBookingRequest) {
			year := 1900
			r.CarYear = &year
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			assert.Error(t, validator.ValidateStruct(&req))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := validRequest()
	userID := "u-1"

	booking, err := req.ToModel(userID, &userID)
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, string(req.BookingDate), booking.BookingDate.Format(constant.DateOnly))
	assert.Equal(t, &userID, booking.UserID)

	req.BookingDate = "2001-01-01"
	_, err = req.ToModel(userID, nil)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUpdateStatusRequest_Validation(t *testing.T) {
	for _, status := range model.Statuses {
		req := dto.UpdateStatusRequest{Status: status}
		assert.NoError(t, validator.ValidateStruct(&req), status)
	}

	req := dto.UpdateStatusRequest{Status: "archived"}
	assert.Error(t, validator.ValidateStruct(&req))
}

func TestListFilter(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?status=confirmed&from=2030-01-01&to=2030-01-31&search=sara", nil)

	var filter dto.ListFilter
	require.NoError(t, filter.FromRequest(request))

	group1 := filter.FilterGroup()
	where, args := group1.GetWhereClause()
	assert.Equal(t,
		"(bookings.status = :status AND bookings.booking_date >= :from AND bookings.booking_date <= :to AND "+
			"(LOWER(bookings.customer_name) LIKE LOWER(:search_name)  OR LOWER(bookings.customer_email) LIKE LOWER(:search_email) ))",
		where)
	assert.Equal(t, "2030-01-01", args["from"])
	assert.Equal(t, "%sara%", args["search_email"])
}

func TestListFilter_Rejects(t *testing.T) {
	for _, query := range []string{"status=archived", "from=yesterday", "to=2030-13-01"} {
		var filter dto.ListFilter

		err := filter.FromRequest(httptest.NewRequest(http.MethodGet, "/api/admin/bookings?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err), query)
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	name := "Tyres"
	nameAr := "الإطارات"
	day := time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC)

	res := dto.ToBookingResponse(model.Booking{
		ID:            "b-1",
		ServiceID:     "svc-1",
		ServiceName:   &name,
		ServiceNameAr: &nameAr,
		BookingDate:   day,
		BookingTime:   "08:15",
		Status:        model.StatusInProgress,
	})

	assert.Equal(t, dto.ServiceSummary{ID: "svc-1", Name: &name, NameAr: &nameAr}, res.Service)
	assert.Equal(t, "2030-03-15", res.BookingDate)
	assert.Equal(t, model.StatusInProgress, res.Status)
}
