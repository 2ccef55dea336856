package model

import "inn/shared/model"

const (
	TableName  = "room_reviews"
	EntityName = "review"

	FieldID      = "id"
	FieldRoomID  = "room_id"
	FieldEmail   = "email"
	FieldRating  = "rating"
	FieldComment = "comment"
)

type Review struct {
	ID      string `db:"id"`
	RoomID  string `db:"room_id"`
	Email   string `db:"email"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`
	model.Metadata
}
