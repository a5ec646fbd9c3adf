package model

import (
	"slices"

	"autocare/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)

const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

var Statuses = []string{StatusNew, StatusRead, StatusReplied}

func IsValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// Contact is a message left through the public contact form.
type Contact struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Email   string  `db:"email"`
	Phone   *string `db:"phone"`
	Subject string  `db:"subject"`
	Message string  `db:"message"`
	Status  string  `db:"status"`
	model.Metadata
}
