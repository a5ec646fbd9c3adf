package dto

import (
	"net/http"

	"autocare/internal/domains/user/model"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/timezone"
)

const (
	QueryRole   = "role"
	QueryActive = "active"
)

var SortColumns = []string{
	constant.FieldCreatedAt,
	model.FieldName,
	model.FieldEmail,
	model.FieldLastLogin,
}

// UpdateUserRequest is an administrator's edit of another account.
type UpdateUserRequest struct {
	Name   *string `db:"name"   json:"name,omitempty"   validate:"omitempty,min=2,max=100"`
	Phone  *string `db:"phone"  json:"phone,omitempty"  validate:"omitempty,max=20"`
	Role   *string `db:"role"   json:"role,omitempty"   validate:"omitempty,oneof=user admin"`
	Active *bool   `db:"active" json:"active,omitempty"`
}

// UpdateProfileRequest is a user's edit of their own account.
type UpdateProfileRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  validate:"omitempty,min=2,max=100"`
	Phone *string `db:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.Phone = user.Phone
	r.Role = user.Role
	r.Active = user.Active
	r.LastLogin = nil

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}

func ToUserResponse(user model.User) UserResponse {
	var res UserResponse
	res.FromModel(user)

	return res
}

// ListFilter narrows the admin user listing.
type ListFilter struct {
	Role   string
	Active *bool
	Search string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Role = query.Get(QueryRole)
	f.Active = shared.ConvertStringToBool(query.Get(QueryActive))
	f.Search = query.Get(constant.RequestParamSearch)
}

func (f *ListFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Role != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldRole, Operator: gDto.FilterOperatorEq, Value: f.Role, Table: model.TableName,
		})
	}

	if f.Active != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: *f.Active, Table: model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_name", Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
			},
		})
	}

	return group
}
