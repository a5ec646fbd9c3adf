package dto

import (
	"errors"
	"net/http"
	"time"

	"autocare/config"
	"autocare/internal/domains/booking/model"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	gModel "autocare/shared/model"
	"autocare/shared/timezone"

	"github.com/google/uuid"
)

var (
	ErrPastBookingDate = errors.New("booking date cannot be in the past")
	errInvalidDate     = errors.New("date must use the YYYY-MM-DD format")
)

var SortColumns = []string{
	constant.FieldCreatedAt,
	model.FieldBookingDate,
	model.FieldStatus,
	model.FieldCustomerName,
}

// BookingDate is a calendar day in YYYY-MM-DD form that must not lie in the past.
type BookingDate string

func (d BookingDate) Time() (time.Time, error) {
	day, err := time.Parse(constant.DateOnly, string(d))
	if err != nil {
		return time.Time{}, errInvalidDate
	}

	return day, nil
}

func (d BookingDate) Validate(_ *config.Config) error {
	day, err := d.Time()
	if err != nil {
		return err
	}

	today, _ := time.Parse(constant.DateOnly, timezone.Now().Format(constant.DateOnly))
	if day.Before(today) {
		return ErrPastBookingDate
	}

	return nil
}

type CreateBookingRequest struct {
	ServiceID     string      `json:"serviceId"       validate:"required,uuid"`
	CustomerName  string      `json:"customerName"    validate:"required,min=2,max=100"`
	CustomerEmail string      `json:"customerEmail"   validate:"required,email,max=100"`
	CustomerPhone string      `json:"customerPhone"   validate:"required,max=20"`
	CarMake       string      `json:"carMake"         validate:"required,max=50"`
	CarModel      string      `json:"carModel"        validate:"required,max=50"`
	CarYear       *int        `json:"carYear,omitempty" validate:"omitempty,gte=1950,lte=2100"`
	BookingDate   BookingDate `json:"bookingDate"     validate:"required,self"`
	BookingTime   string      `json:"bookingTime"     validate:"required,datetime=15:04"`
	Notes         *string     `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ToModel builds a pending booking. userID is nil for guest bookings.
func (c *CreateBookingRequest) ToModel(user string, userID *string) (model.Booking, error) {
	if err := c.BookingDate.Validate(nil); err != nil {
		return model.Booking{}, failure.BadRequest(err)
	}

	day, _ := c.BookingDate.Time()

	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		ServiceID:     c.ServiceID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		CarMake:       c.CarMake,
		CarModel:      c.CarModel,
		CarYear:       c.CarYear,
		BookingDate:   day,
		BookingTime:   c.BookingTime,
		Notes:         c.Notes,
		Status:        model.StatusPending,
		Metadata:      gModel.NewMetadata(user),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed in-progress completed cancelled"`
}

type ServiceSummary struct {
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	NameAr *string `json:"nameAr"`
}

type BookingResponse struct {
	ID            string         `json:"id"`
	UserID        *string        `json:"userId"`
	Service       ServiceSummary `json:"service"`
	CustomerName  string         `json:"customerName"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerPhone string         `json:"customerPhone"`
	CarMake       string         `json:"carMake"`
	CarModel      string         `json:"carModel"`
	CarYear       *int           `json:"carYear"`
	BookingDate   string         `json:"bookingDate"`
	BookingTime   string         `json:"bookingTime"`
	Notes         *string        `json:"notes"`
	Status        string         `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.Service = ServiceSummary{
		ID:     booking.ServiceID,
		Name:   booking.ServiceName,
		NameAr: booking.ServiceNameAr,
	}
	r.CustomerName = booking.CustomerName
	r.CustomerEmail = booking.CustomerEmail
	r.CustomerPhone = booking.CustomerPhone
	r.CarMake = booking.CarMake
	r.CarModel = booking.CarModel
	r.CarYear = booking.CarYear
	r.BookingDate = booking.BookingDate.Format(constant.DateOnly)
	r.BookingTime = booking.BookingTime
	r.Notes = booking.Notes
	r.Status = booking.Status
	r.Metadata.FromModel(booking.Metadata)
}

func ToBookingResponse(booking model.Booking) BookingResponse {
	var res BookingResponse
	res.FromModel(booking)

	return res
}

// Event is the payload published on booking lifecycle events.
type Event struct {
	ID             string  `json:"id"`
	ServiceID      string  `json:"serviceId"`
	ServiceName    *string `json:"serviceName,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone"`
	BookingDate    string  `json:"bookingDate"`
	BookingTime    string  `json:"bookingTime"`
	Status         string  `json:"status"`
	PreviousStatus string  `json:"previousStatus,omitempty"`
}

func NewEvent(booking model.Booking, previousStatus string) Event {
	return Event{
		ID:             booking.ID,
		ServiceID:      booking.ServiceID,
		ServiceName:    booking.ServiceName,
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		CustomerPhone:  booking.CustomerPhone,
		BookingDate:    booking.BookingDate.Format(constant.DateOnly),
		BookingTime:    booking.BookingTime,
		Status:         booking.Status,
		PreviousStatus: previousStatus,
	}
}

// ListFilter is the set of filters accepted on booking listings.
type ListFilter struct {
	Status string
	From   string
	To     string
	Search string
	UserID string
}

// FromRequest reads the filters from the query string, rejecting malformed values.
func (f *ListFilter) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	f.Status = query.Get(constant.RequestParamStatus)
	f.From = query.Get(constant.RequestParamFrom)
	f.To = query.Get(constant.RequestParamTo)
	f.Search = query.Get(constant.RequestParamSearch)

	if f.Status != "" && !model.IsValidStatus(f.Status) {
		return failure.BadRequestFromString("status must be one of pending confirmed in-progress completed cancelled")
	}

	for _, value := range []string{f.From, f.To} {
		if value == "" {
			continue
		}

		if _, err := time.Parse(constant.DateOnly, value); err != nil {
			return failure.BadRequestFromString("from and to must use the YYYY-MM-DD format")
		}
	}

	return nil
}

func (f *ListFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.UserID != "" {
		group.Filters = append(group.Filters, filter(model.FieldUserID, "", gDto.FilterOperatorEq, f.UserID))
	}

	if f.Status != "" {
		group.Filters = append(group.Filters, filter(model.FieldStatus, "", gDto.FilterOperatorEq, f.Status))
	}

	if f.From != "" {
		group.Filters = append(group.Filters, filter(model.FieldBookingDate, constant.RequestParamFrom, gDto.FilterOperatorGreaterEq, f.From))
	}

	if f.To != "" {
		group.Filters = append(group.Filters, filter(model.FieldBookingDate, constant.RequestParamTo, gDto.FilterOperatorLessEq, f.To))
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				filter(model.FieldCustomerName, "search_name", gDto.FilterOperatorLike, f.Search),
				filter(model.FieldCustomerEmail, "search_email", gDto.FilterOperatorLike, f.Search),
			},
		})
	}

	return group
}

func filter(field, argName, operator string, value any) gDto.Filter {
	return gDto.Filter{
		ArgName:  argName,
		Field:    field,
		Operator: operator,
		Value:    value,
		Table:    model.TableName,
	}
}
