package model

import (
	"inn/shared/model"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldBookingDate = "booking_date"
	FieldEmail       = "email"
	FieldDetails     = "details"
)

type Booking struct {
	ID          string         `db:"id"`
	RoomID      string         `db:"room_id"`
	BookingDate time.Time      `db:"booking_date"`
	Email       string         `db:"email"`
	Details     types.JSONText `db:"details"`
	model.Metadata
}
