package dto

import (
	"encoding/json"
	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type CreateBookingRequest struct {
	RoomID      string         `json:"room_id"      validate:"required"`
	BookingDate string         `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Email       string         `json:"email"        validate:"required,email,max=100"`
	Details     map[string]any `json:"details"      validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, c.BookingDate)
	if err != nil {
		return model.Booking{}, err
	}

	details := types.JSONText("{}")
	if c.Details != nil {
		raw, err := json.Marshal(c.Details)
		if err != nil {
			return model.Booking{}, err
		}

		details = types.JSONText(raw)
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		BookingDate: bookingDate,
		Email:       c.Email,
		Details:     details,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID      string         `db:"room_id" json:"room_id"      validate:"omitempty"`
	BookingDate string         `json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	Email       string         `db:"email"   json:"email"        validate:"omitempty,email,max=100"`
	Details     map[string]any `json:"details"      validate:"omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.RoomID == "" && u.BookingDate == "" && u.Email == "" && u.Details == nil
}

type BookingResponse struct {
	ID          string         `json:"id"`
	RoomID      string         `json:"room_id"`
	BookingDate string         `json:"booking_date"`
	Email       string         `json:"email"`
	Details     map[string]any `json:"details"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.BookingDate = model.BookingDate.Format(constant.BookingDateFormat)
	r.Email = model.Email

	r.Details = map[string]any{}
	if len(model.Details) > 0 {
		_ = json.Unmarshal(model.Details, &r.Details)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
