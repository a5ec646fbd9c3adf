package dto

import (
	"net/http"

	"autocare/internal/domains/carservice/model"
	"autocare/shared"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	gModel "autocare/shared/model"

	"github.com/google/uuid"
)

const (
	QueryCategory = "category"
	QueryFeatured = "featured"
	QueryActive   = "active"
)

// SortColumns are the columns a listing may be ordered by.
var SortColumns = []string{
	constant.FieldCreatedAt,
	model.FieldName,
	model.FieldPrice,
	model.FieldDuration,
	model.FieldCategory,
}

type CreateServiceRequest struct {
	Name          string   `json:"name"                    validate:"required,min=2,max=100"`
	NameAr        *string  `json:"nameAr,omitempty"        validate:"omitempty,max=100"`
	Description   string   `json:"description"             validate:"required,max=2000"`
	DescriptionAr *string  `json:"descriptionAr,omitempty" validate:"omitempty,max=2000"`
	Category      string   `json:"category"                validate:"required,oneof=maintenance repair inspection detailing tyres electrical"`
	Price         *float64 `json:"price"                   validate:"required,gte=0"`
	Duration      int      `json:"duration"                validate:"required,gt=0,lte=1440"`
	Image         *string  `json:"image,omitempty"         validate:"omitempty,url"`
	Featured      *bool    `json:"featured,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.CarService {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	price := 0.0
	if c.Price != nil {
		price = *c.Price
	}

	return model.CarService{
		ID:            uuid.NewString(),
		Name:          c.Name,
		NameAr:        c.NameAr,
		Description:   c.Description,
		DescriptionAr: c.DescriptionAr,
		Category:      c.Category,
		Price:         price,
		Duration:      c.Duration,
		Image:         c.Image,
		Featured:      featured,
		Active:        active,
		Metadata:      gModel.NewMetadata(user),
	}
}

type UpdateServiceRequest struct {
	Name          *string  `db:"name"           json:"name,omitempty"          validate:"omitempty,min=2,max=100"`
	NameAr        *string  `db:"name_ar"        json:"nameAr,omitempty"        validate:"omitempty,max=100"`
	Description   *string  `db:"description"    json:"description,omitempty"   validate:"omitempty,max=2000"`
	DescriptionAr *string  `db:"description_ar" json:"descriptionAr,omitempty" validate:"omitempty,max=2000"`
	Category      *string  `db:"category"       json:"category,omitempty"      validate:"omitempty,oneof=maintenance repair inspection detailing tyres electrical"`
	Price         *float64 `db:"price"          json:"price,omitempty"         validate:"omitempty,gte=0"`
	Duration      *int     `db:"duration"       json:"duration,omitempty"      validate:"omitempty,gt=0,lte=1440"`
	Image         *string  `db:"image"          json:"image,omitempty"         validate:"omitempty,url"`
	Featured      *bool    `db:"featured"       json:"featured,omitempty"`
	Active        *bool    `db:"active"         json:"active,omitempty"`
}

type ServiceResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameAr        *string `json:"nameAr"`
	Description   string  `json:"description"`
	DescriptionAr *string `json:"descriptionAr"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Duration      int     `json:"duration"`
	Image         *string `json:"image"`
	Featured      bool    `json:"featured"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(service model.CarService) {
	r.ID = service.ID
	r.Name = service.Name
	r.NameAr = service.NameAr
	r.Description = service.Description
	r.DescriptionAr = service.DescriptionAr
	r.Category = service.Category
	r.Price = service.Price
	r.Duration = service.Duration
	r.Image = service.Image
	r.Featured = service.Featured
	r.Active = service.Active
	r.Metadata.FromModel(service.Metadata)
}

func ToServiceResponse(service model.CarService) ServiceResponse {
	var res ServiceResponse
	res.FromModel(service)

	return res
}

// ListFilter is the set of catalogue filters accepted on listings.
type ListFilter struct {
	Category string
	Featured *bool
	Active   *bool
	Search   string
}

func (f *ListFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Category = query.Get(QueryCategory)
	f.Featured = shared.ConvertStringToBool(query.Get(QueryFeatured))
	f.Active = shared.ConvertStringToBool(query.Get(QueryActive))
	f.Search = query.Get(constant.RequestParamSearch)
}

// FilterGroup builds the where clause. Public listings only ever see active services.
func (f *ListFilter) FilterGroup(publicOnly bool) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	active := f.Active
	if publicOnly {
		visible := true
		active = &visible
	}

	if active != nil {
		group.Filters = append(group.Filters, eq(model.FieldActive, *active))
	}

	if f.Category != "" {
		group.Filters = append(group.Filters, eq(model.FieldCategory, f.Category))
	}

	if f.Featured != nil {
		group.Filters = append(group.Filters, eq(model.FieldFeatured, *f.Featured))
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				like(model.FieldName, "search", f.Search),
				like(model.FieldNameAr, "search_ar", f.Search),
			},
		})
	}

	return group
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{
		Field:    field,
		Operator: gDto.FilterOperatorEq,
		Value:    value,
		Table:    model.TableName,
	}
}

func like(field, argName, value string) gDto.Filter {
	return gDto.Filter{
		ArgName:  argName,
		Field:    field,
		Operator: gDto.FilterOperatorLike,
		Value:    value,
		Table:    model.TableName,
	}
}
