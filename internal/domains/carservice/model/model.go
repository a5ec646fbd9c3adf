package model

import "autocare/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID            = "id"
	FieldName          = "name"
	FieldNameAr        = "name_ar"
	FieldDescription   = "description"
	FieldDescriptionAr = "description_ar"
	FieldCategory      = "category"
	FieldPrice         = "price"
	FieldDuration      = "duration"
	FieldImage         = "image"
	FieldFeatured      = "featured"
	FieldActive        = "active"
)

const (
	CategoryMaintenance = "maintenance"
	CategoryRepair      = "repair"
	CategoryInspection  = "inspection"
	CategoryDetailing   = "detailing"
	CategoryTyres       = "tyres"
	CategoryElectrical  = "electrical"
)

// CarService is a bookable workshop service from the catalogue.
type CarService struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	NameAr        *string `db:"name_ar"`
	Description   string  `db:"description"`
	DescriptionAr *string `db:"description_ar"`
	Category      string  `db:"category"`
	Price         float64 `db:"price"`
	Duration      int     `db:"duration"`
	Image         *string `db:"image"`
	Featured      bool    `db:"featured"`
	Active        bool    `db:"active"`
	model.Metadata
}
