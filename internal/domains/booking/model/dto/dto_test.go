package dto_test

import (
	"testing"

	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/shared/timezone"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:      "room-1",
		BookingDate: "2026-09-01",
		Email:       "guest@example.com",
		Details:     map[string]any{"nights": float64(2)},
	}

	booking, err := req.ToModel("guest@example.com")
	assert.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-1", booking.RoomID)
	assert.Equal(t, "2026-09-01", booking.BookingDate.Format("2006-01-02"))
	assert.Equal(t, "guest@example.com", booking.Email)
	assert.JSONEq(t, `{"nights":2}`, string(booking.Details))
	assert.Equal(t, "guest@example.com", booking.CreatedBy)
}

func TestCreateBookingRequest_ToModel_DefaultDetails(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:      "room-1",
		BookingDate: "2026-09-01",
		Email:       "guest@example.com",
	}

	booking, err := req.ToModel("guest@example.com")
	assert.NoError(t, err)
	assert.JSONEq(t, `{}`, string(booking.Details))
}

func TestCreateBookingRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:      "room-1",
		BookingDate: "September 1st",
		Email:       "guest@example.com",
	}

	_, err := req.ToModel("guest@example.com")
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		RoomID:      "room-1",
		BookingDate: timezone.Now(),
		Email:       "guest@example.com",
		Details:     types.JSONText(`{"note":"late checkin"}`),
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, booking.BookingDate.Format("2006-01-02"), res.BookingDate)
	assert.Equal(t, map[string]any{"note": "late checkin"}, res.Details)
}
