package model

import "inn/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldActive   = "active"
)

type User struct {
	ID       string  `db:"id"`
	Email    string  `db:"email"`
	Password string  `db:"password"`
	FullName *string `db:"full_name"`
	Active   bool    `db:"active"`
	model.Metadata
}
