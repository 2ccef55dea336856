package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldLocation     = "location"
	FieldAvailability = "availability"
	FieldPhoto        = "photo"
	FieldActive       = "active"
)

type Room struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Location     string `db:"location"`
	Availability int    `db:"availability"`
	Photo        string `db:"photo"`
	Active       bool   `db:"active"`
	model.Metadata
}
