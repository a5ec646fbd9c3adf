package validator_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/config"
	"autocare/shared/failure"
	"autocare/shared/validator"
)

type visitDay string

func (d visitDay) Validate(_ *config.Config) error {
	if d == "sunday" {
		return errors.New("closed on sunday")
	}

	return nil
}

type bookingRequest struct {
	Name     string   `json:"customerName" validate:"required"`
	Email    string   `json:"customerEmail" validate:"required,email"`
	CarYear  int      `json:"carYear" validate:"gte=1950,lte=2100"`
	Status   string   `json:"status" validate:"omitempty,oneof=pending confirmed"`
	Day      visitDay `json:"day" validate:"omitempty,self"`
	Slug     string   `json:"slug" validate:"omitempty,slug"`
	Internal string   `json:"-"`
}

func validBooking() bookingRequest {
	return bookingRequest{
		Name:    "Sara",
		Email:   "sara@example.com",
		CarYear: 2019,
		Status:  "pending",
		Day:     "monday",
		Slug:    "winter-tyres",
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*bookingRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*bookingRequest) {}},
		{name: "missing name", mutate: func(b *bookingRequest) { b.Name = "" }, wantMsg: "customerName is required"},
		{name: "invalid email", mutate: func(b *bookingRequest) { b.Email = "nope" }, wantMsg: "customerEmail must be a valid email address"},
		{name: "year too old", mutate: func(b *bookingRequest) { b.CarYear = 1900 }, wantMsg: "carYear must be greater than or equal to 1950"},
		{name: "status outside enum", mutate: func(b *bookingRequest) { b.Status = "archived" }, wantMsg: "status must be one of pending confirmed"},
		{name: "self validation fails", mutate: func(b *bookingRequest) { b.Day = "sunday" }, wantMsg: "day is invalid"},
		{name: "bad slug", mutate: func(b *bookingRequest) { b.Slug = "Winter Tyres" }, wantMsg: "slug must contain only lowercase letters, digits and hyphens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validBooking()
			tt.mutate(&data)

			err := validator.ValidateStruct(&data)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid oneof", field: "admin", tag: "oneof=user admin"},
		{name: "invalid oneof", field: "guest", tag: "oneof=user admin", expectError: true},
		{name: "valid slug", field: "oil-change-101", tag: "slug"},
		{name: "slug with trailing hyphen", field: "oil-", tag: "slug", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"customerName":"Sara","customerEmail":"sara@example.com","carYear":2020}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"customerName":"Sara","customerEmail":"invalid","carYear":2020}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"customerName":"Sara","customerEmail":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
