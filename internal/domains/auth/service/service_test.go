package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	jwtMocks "inn/infras/jwt/mocks"
	"inn/infras/otel/mocks"
	"inn/internal/domains/auth/model/dto"
	"inn/internal/domains/auth/service"
)

func TestAuthService_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.CreateSessionRequest
		setupMock func()
		wantErr   bool
		wantToken string
	}{
		{
			name: "successful session creation",
			req:  dto.CreateSessionRequest{Email: "guest@example.com"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateSessionToken("guest@example.com").
					Return("signed-token", nil)
			},
			wantErr:   false,
			wantToken: "signed-token",
		},
		{
			name: "signing error",
			req:  dto.CreateSessionRequest{Email: "guest@example.com"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateSessionToken("guest@example.com").
					Return("", errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			token, err := svc.CreateSession(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
