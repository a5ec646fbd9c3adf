package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/domains/user/model"
	"autocare/internal/domains/user/model/dto"
	"autocare/shared/constant"
	gModel "autocare/shared/model"
)

func TestListFilter(t *testing.T) {
	var filter dto.ListFilter
	filter.FromRequest(httptest.NewRequest(http.MethodGet, "/api/admin/users?role=admin&active=false&search=ali", nil))

	group1 := filter.FilterGroup()
	where, args := group1.GetWhereClause()
	assert.Equal(t,
		"(users.role = :role AND users.active = :active AND "+
			"(LOWER(users.name) LIKE LOWER(:search_name)  OR LOWER(users.email) LIKE LOWER(:search_email) ))",
		where)
	assert.Equal(t, false, args["active"])
	assert.Equal(t, "%ali%", args["search_name"])

	var empty dto.ListFilter
	group2 := empty.FilterGroup()
	where, _ = group2.GetWhereClause()
	assert.Empty(t, where)
}

func TestToUserResponse(t *testing.T) {
	login := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	res := dto.ToUserResponse(model.User{
		ID:        "u-1",
		Name:      "Ali",
		Email:     "ali@example.com",
		Password:  "$2a$10$hash",
		Role:      constant.RoleUser,
		Active:    true,
		LastLogin: &login,
		Metadata:  gModel.NewMetadata("seed"),
	})

	require.NotNil(t, res.LastLogin)
	assert.Equal(t, "ali@example.com", res.Email)
	assert.Equal(t, constant.RoleUser, res.Role)
}
