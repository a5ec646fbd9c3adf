package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/domains/contact/model"
	"autocare/internal/domains/contact/model/dto"
	"autocare/shared/failure"
	"autocare/shared/validator"
)

func TestCreateContactRequest_Validation(t *testing.T) {
	valid := dto.CreateContactRequest{
		Name:    "Hassan",
		Email:   "hassan@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Friday mornings?",
	}
	require.NoError(t, validator.ValidateStruct(&valid))

	invalid := valid
	invalid.Email = "hassan"
	assert.Error(t, validator.ValidateStruct(&invalid))

	invalid = valid
	invalid.Message = "short"
	assert.Error(t, validator.ValidateStruct(&invalid))

	contact := valid.ToModel("guest")
	assert.Equal(t, model.StatusNew, contact.Status)
	assert.NotEmpty(t, contact.ID)
}

func TestUpdateStatusRequest_Validation(t *testing.T) {
	for _, status := range model.Statuses {
		req := dto.UpdateStatusRequest{Status: status}
		assert.NoError(t, validator.ValidateStruct(&req))
	}

	req := dto.UpdateStatusRequest{Status: "closed"}
	assert.Error(t, validator.ValidateStruct(&req))
}

func TestListFilter(t *testing.T) {
	var filter dto.ListFilter
	require.NoError(t, filter.FromRequest(httptest.NewRequest(http.MethodGet, "/api/admin/contacts?status=replied", nil)))

	group1 := filter.FilterGroup()
	where, args := group1.GetWhereClause()
	assert.Equal(t, "(contacts.status = :status)", where)
	assert.Equal(t, "replied", args["status"])

	err := filter.FromRequest(httptest.NewRequest(http.MethodGet, "/api/admin/contacts?status=closed", nil))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
