package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"inn/shared/failure"
	"inn/shared/validator"
)

type createBooking struct {
	RoomID      string `json:"room_id"      validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Email       string `json:"email"        validate:"required,email"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"room_id":"room-1","booking_date":"2026-09-01","email":"guest@example.com"}`,
			wantErr: false,
		},
		{
			name:    "missing required field",
			body:    `{"booking_date":"2026-09-01","email":"guest@example.com"}`,
			wantErr: true,
		},
		{
			name:    "malformed date",
			body:    `{"room_id":"room-1","booking_date":"01/09/2026","email":"guest@example.com"}`,
			wantErr: true,
		},
		{
			name:    "malformed email",
			body:    `{"room_id":"room-1","booking_date":"2026-09-01","email":"not-an-email"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"room_id":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createBooking{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Error("expected an error, got nil")

					return
				}

				if got := failure.GetCode(err); got != http.StatusBadRequest {
					t.Errorf("expected code %d, got %d", http.StatusBadRequest, got)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("guest@example.com", "email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected an error, got nil")
	}
}
