package model

import (
	"fmt"
	"slices"
	"time"

	serviceModel "autocare/internal/domains/carservice/model"
	"autocare/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldServiceID     = "service_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldCarMake       = "car_make"
	FieldCarModel      = "car_model"
	FieldCarYear       = "car_year"
	FieldBookingDate   = "booking_date"
	FieldBookingTime   = "booking_time"
	FieldNotes         = "notes"
	FieldStatus        = "status"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every booking status in lifecycle order.
var Statuses = []string{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}

func IsValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

type Booking struct {
	ID            string    `db:"id"`
	UserID        *string   `db:"user_id"`
	ServiceID     string    `db:"service_id"`
	ServiceName   *string   `db:"service_name"    table:"services" column:"name"`
	ServiceNameAr *string   `db:"service_name_ar" table:"services" column:"name_ar"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	CarMake       string    `db:"car_make"`
	CarModel      string    `db:"car_model"`
	CarYear       *int      `db:"car_year"`
	BookingDate   time.Time `db:"booking_date"`
	BookingTime   string    `db:"booking_time"`
	Notes         *string   `db:"notes"`
	Status        string    `db:"status"`
	model.Metadata
}

// GetJoinQuery attaches the booked service so listings carry its name.
func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		serviceModel.TableName, serviceModel.TableName, serviceModel.FieldID, TableName, FieldServiceID)
}
