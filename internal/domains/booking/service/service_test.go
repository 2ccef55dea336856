package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	kafkaMocks "inn/infras/kafka/mocks"
	"inn/infras/otel/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	"inn/internal/domains/booking/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "inn.bookings"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful reservation",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: "2026-09-01",
				Email:       "guest@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room does not exist",
			req: dto.CreateBookingRequest{
				RoomID:      "missing-room",
				BookingDate: "2026-09-01",
				Email:       "guest@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(repository.ErrRoomNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room has no availability left",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: "2026-09-01",
				Email:       "guest@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(repository.ErrRoomUnavailable)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room already booked for the date",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: "2026-09-01",
				Email:       "guest@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(repository.ErrDateConflict)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "malformed booking date",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: "01-09-2026",
				Email:       "guest@example.com",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: "2026-09-01",
				Email:       "guest@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "guest@example.com")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.RoomID, res.RoomID)
			assert.Equal(t, tt.req.BookingDate, res.BookingDate)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestBookingService_Create_ErrorMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	req := dto.CreateBookingRequest{
		RoomID:      "room-1",
		BookingDate: "2026-09-01",
		Email:       "guest@example.com",
	}

	mockRepo.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(repository.ErrRoomUnavailable)

	_, err := svc.Create(context.Background(), req)
	assert.EqualError(t, err, constant.MessageRoomUnavailable)

	mockRepo.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(repository.ErrDateConflict)

	_, err = svc.Create(context.Background(), req)
	assert.EqualError(t, err, constant.MessageRoomBooked)
}

// Concurrent reservations against one room must never admit more bookings than
// the room has availability, and at most one booking per date.
func TestBookingService_Create_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "inn.bookings"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	availability := 3

	var mu sync.Mutex

	booked := map[string]bool{}

	mockRepo.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			mu.Lock()
			defer mu.Unlock()

			key := booking.RoomID + ":" + booking.BookingDate.Format(constant.BookingDateFormat)
			if booked[key] {
				return repository.ErrDateConflict
			}

			if availability == 0 {
				return repository.ErrRoomUnavailable
			}

			booked[key] = true
			availability--

			return nil
		}).
		AnyTimes()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	dates := []string{
		"2026-09-01", "2026-09-02", "2026-09-03",
		"2026-09-04", "2026-09-05", "2026-09-01",
	}

	var wg sync.WaitGroup

	results := make([]error, len(dates))

	for i, date := range dates {
		wg.Add(1)

		go func(i int, date string) {
			defer wg.Done()

			_, results[i] = svc.Create(context.Background(), dto.CreateBookingRequest{
				RoomID:      "room-1",
				BookingDate: date,
				Email:       "guest@example.com",
			})
		}(i, date)
	}

	wg.Wait()

	time.Sleep(10 * time.Millisecond)

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 0, availability)
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		filter    gDto.FilterGroup
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTotal int
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				bookings := []model.Booking{
					{
						ID:          "booking-1",
						RoomID:      "room-1",
						BookingDate: timezone.Now(),
						Email:       "guest@example.com",
						Metadata: gModel.Metadata{
							CreatedAt: timezone.Now(),
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookings, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:   "repository error",
			params: gDto.QueryParams{},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "rejects unknown sort field",
			params: gDto.QueryParams{
				SortBy: "password",
			},
			filter:    gDto.FilterGroup{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.params, tt.filter)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Bookings, tt.wantTotal)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "booking-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:          "booking-1",
						RoomID:      "room-1",
						BookingDate: timezone.Now(),
						Email:       "guest@example.com",
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-booking",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req: dto.UpdateBookingRequest{
				Email:   "other@example.com",
				Details: map[string]any{"note": "late checkin"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking not found",
			req: dto.UpdateBookingRequest{
				Email: "other@example.com",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
			err := svc.Update(ctx, tt.req, "booking-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Update_MovesBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	t.Run("patch rewrites room and date without touching counters", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		var captured map[string]any

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				captured = fields

				return nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		req := dto.UpdateBookingRequest{
			RoomID:      "room-2",
			BookingDate: "2026-09-09",
		}

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
		err := svc.Update(ctx, req, "booking-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "room-2", captured[model.FieldRoomID])

		bookingDate, ok := captured[model.FieldBookingDate].(time.Time)
		assert.True(t, ok)
		assert.Equal(t, "2026-09-09", bookingDate.Format(constant.BookingDateFormat))
	})

	t.Run("malformed booking date is rejected", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		req := dto.UpdateBookingRequest{
			BookingDate: "09-09-2026",
		}

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "admin@example.com")
		err := svc.Update(ctx, req, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "inn.bookings"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancel",
			id:   "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Release(gomock.Any(), "booking-1").
					Return(model.Booking{
						ID:          "booking-1",
						RoomID:      "room-1",
						BookingDate: timezone.Now(),
						Email:       "guest@example.com",
					}, nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-booking",
			setupMock: func() {
				mockRepo.EXPECT().
					Release(gomock.Any(), "missing-booking").
					Return(model.Booking{}, repository.ErrBookingNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
