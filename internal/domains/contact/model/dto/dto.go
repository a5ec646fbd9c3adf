package dto

import (
	"net/http"

	"autocare/internal/domains/contact/model"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	gModel "autocare/shared/model"

	"github.com/google/uuid"
)

var SortColumns = []string{
	constant.FieldCreatedAt,
	model.FieldStatus,
	model.FieldName,
}

type CreateContactRequest struct {
	Name    string  `json:"name"            validate:"required,min=2,max=100"`
	Email   string  `json:"email"           validate:"required,email,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Subject string  `json:"subject"         validate:"required,min=2,max=200"`
	Message string  `json:"message"         validate:"required,min=10,max=5000"`
}

func (c *CreateContactRequest) ToModel(user string) model.Contact {
	return model.Contact{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Message:  c.Message,
		Status:   model.StatusNew,
		Metadata: gModel.NewMetadata(user),
	}
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=new read replied"`
}

type ContactResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
	Status  string  `json:"status"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(contact model.Contact) {
	r.ID = contact.ID
	r.Name = contact.Name
	r.Email = contact.Email
	r.Phone = contact.Phone
	r.Subject = contact.Subject
	r.Message = contact.Message
	r.Status = contact.Status
	r.Metadata.FromModel(contact.Metadata)
}

func ToContactResponse(contact model.Contact) ContactResponse {
	var res ContactResponse
	res.FromModel(contact)

	return res
}

// Event is the payload published when a message is submitted.
type Event struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
}

func NewEvent(contact model.Contact) Event {
	return Event{
		ID:      contact.ID,
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Subject: contact.Subject,
	}
}

type ListFilter struct {
	Status string
	Search string
}

func (f *ListFilter) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	f.Status = query.Get(constant.RequestParamStatus)
	f.Search = query.Get(constant.RequestParamSearch)

	if f.Status != "" && !model.IsValidStatus(f.Status) {
		return failure.BadRequestFromString("status must be one of new read replied")
	}

	return nil
}

func (f *ListFilter) FilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    f.Status,
			Table:    model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_name", Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_email", Field: model.FieldEmail, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
				gDto.Filter{ArgName: "search_subject", Field: model.FieldSubject, Operator: gDto.FilterOperatorLike, Value: f.Search, Table: model.TableName},
			},
		})
	}

	return group
}
