package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"siesta/config"
	"siesta/infras/otel/mocks"
	remoteMocks "siesta/infras/remote/mocks"
	bookingMocks "siesta/internal/domains/booking/mocks"
	"siesta/internal/domains/booking/model"
	"siesta/internal/domains/booking/model/dto"
	"siesta/internal/domains/booking/service"
	"siesta/internal/domains/pricing/engine"
	pricingSvcMocks "siesta/internal/domains/pricing/service/mocks"
	syncMocks "siesta/internal/domains/sync/service/mocks"
	"siesta/internal/domains/sync/state"
	netmonMocks "siesta/internal/netmon/mocks"
	cacheMocks "siesta/shared/cache/mocks"
	"siesta/shared/constant"
	gModel "siesta/shared/model"
	"siesta/shared/timezone"
)

type bookingMockSet struct {
	repo    *bookingMocks.MockBooking
	pricing *pricingSvcMocks.MockPricing
	remote  *remoteMocks.MockClient
	monitor *netmonMocks.MockMonitor
	pusher  *syncMocks.MockPusher
	cache   *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, *bookingMockSet) {
	set := &bookingMockSet{
		repo:    bookingMocks.NewMockBooking(ctrl),
		pricing: pricingSvcMocks.NewMockPricing(ctrl),
		remote:  remoteMocks.NewMockClient(ctrl),
		monitor: netmonMocks.NewMockMonitor(ctrl),
		pusher:  syncMocks.NewMockPusher(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.AdminID = "admin-1"
	cfg.App.WorkerID = "worker-1"

	svc := service.New(set.repo, set.pricing, set.remote, set.monitor, set.pusher, cfg, set.cache, mocks.NewOtel())

	// Cache invalidation happens on detached goroutines; expectations here
	// only need to tolerate the calls.
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return svc, set
}

func activeBooking() model.Booking {
	return model.Booking{
		BookingID:      "booking-1",
		GuestName:      "Guest",
		Persons:        2,
		Category:       "regular",
		BookingDate:    "2026-08-30",
		InTime:         "10:00",
		BookedHours:    3,
		PricePerPerson: 300,
		TotalAmount:    600,
		PaidAmount:     300,
		BalanceAmount:  300,
		Status:         model.StatusActive,
		SyncCode:       int(state.Synced),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "worker-1",
			ModifiedBy: "worker-1",
		},
	}
}

func TestBookingService_Save(t *testing.T) {
	saveRequest := dto.SaveBookingRequest{
		GuestName:   "Guest",
		Persons:     2,
		Category:    "regular",
		BookingDate: "2026-08-30",
		InTime:      "10:00",
		BookedHours: 3,
		PaidAmount:  300,
	}

	quote := engine.Quote{
		PricePerPerson: 300,
		BaseAmount:     600,
		TotalAmount:    600,
	}

	tests := []struct {
		name       string
		setupMock  func(set *bookingMockSet)
		wantErr    bool
		wantResult string
	}{
		{
			name: "reachable and remote accepts",
			setupMock: func(set *bookingMockSet) {
				set.pricing.EXPECT().
					Quote(gomock.Any(), "regular", 2, 3, float64(0)).
					Return(quote, nil)

				set.monitor.EXPECT().
					Reachable().
					Return(true)

				set.remote.EXPECT().
					CreateBookings(gomock.Any(), gomock.Len(1)).
					Return(nil)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, int(state.Synced), booking.SyncCode)

						return nil
					})
			},
			wantErr:    false,
			wantResult: dto.ResultAccepted,
		},
		{
			name: "reachable but remote rejects",
			setupMock: func(set *bookingMockSet) {
				set.pricing.EXPECT().
					Quote(gomock.Any(), "regular", 2, 3, float64(0)).
					Return(quote, nil)

				set.monitor.EXPECT().
					Reachable().
					Return(true)

				set.remote.EXPECT().
					CreateBookings(gomock.Any(), gomock.Any()).
					Return(errors.New("remote rejected"))

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, int(state.New), booking.SyncCode)

						return nil
					})
			},
			wantErr:    false,
			wantResult: dto.ResultQueued,
		},
		{
			name: "offline goes straight to the queue",
			setupMock: func(set *bookingMockSet) {
				set.pricing.EXPECT().
					Quote(gomock.Any(), "regular", 2, 3, float64(0)).
					Return(quote, nil)

				set.monitor.EXPECT().
					Reachable().
					Return(false)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:    false,
			wantResult: dto.ResultQueued,
		},
		{
			name: "pricing error",
			setupMock: func(set *bookingMockSet) {
				set.pricing.EXPECT().
					Quote(gomock.Any(), "regular", 2, 3, float64(0)).
					Return(engine.Quote{}, errors.New("rate unavailable"))
			},
			wantErr: true,
		},
		{
			name: "persist error",
			setupMock: func(set *bookingMockSet) {
				set.pricing.EXPECT().
					Quote(gomock.Any(), "regular", 2, 3, float64(0)).
					Return(quote, nil)

				set.monitor.EXPECT().
					Reachable().
					Return(false)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyWorkerID, "worker-1")
			result, err := svc.Save(ctx, saveRequest)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result.Result)
				assert.NotEmpty(t, result.BookingID)
				assert.Equal(t, float64(600), result.TotalAmount)
				assert.Equal(t, float64(300), result.BalanceAmount)
			}
		})
	}
}

func TestBookingService_Complete(t *testing.T) {
	completeRequest := dto.CompleteBookingRequest{
		OutTime:       "13:10",
		PaidAmount:    500,
		PaymentMethod: "cash",
	}

	tests := []struct {
		name       string
		req        dto.CompleteBookingRequest
		setupMock  func(set *bookingMockSet)
		wantErr    bool
		wantResult string
		wantHours  int
		wantTotal  float64
	}{
		{
			name: "completed with overtime, checkout pushed inline",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				// 10:00 to 13:10 rounds up to 4 billable hours, one past booked.
				set.pricing.EXPECT().
					Overtime(gomock.Any(), "regular", 2, 3, 4).
					Return(float64(200), nil)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusCompleted, booking.Status)
						assert.Equal(t, int(state.DirtyUpdate), booking.SyncCode)

						return nil
					})

				set.monitor.EXPECT().
					Reachable().
					Return(true)

				set.remote.EXPECT().
					CheckoutBooking(gomock.Any(), gomock.Any()).
					Return(nil)

				set.repo.EXPECT().
					UpdateSyncCode(gomock.Any(), "booking-1", state.UpdateSynced).
					Return(nil)
			},
			wantErr:    false,
			wantResult: dto.ResultAccepted,
			wantHours:  4,
			wantTotal:  800,
		},
		{
			name: "offline checkout queues the update",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				set.pricing.EXPECT().
					Overtime(gomock.Any(), "regular", 2, 3, 4).
					Return(float64(200), nil)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.monitor.EXPECT().
					Reachable().
					Return(false)

				set.pusher.EXPECT().
					EnqueueUpdate("booking-1")
			},
			wantErr:    false,
			wantResult: dto.ResultQueued,
			wantHours:  4,
			wantTotal:  800,
		},
		{
			name: "remote rejects checkout, update queued",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				set.pricing.EXPECT().
					Overtime(gomock.Any(), "regular", 2, 3, 4).
					Return(float64(200), nil)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil)

				set.monitor.EXPECT().
					Reachable().
					Return(true)

				set.remote.EXPECT().
					CheckoutBooking(gomock.Any(), gomock.Any()).
					Return(errors.New("remote rejected"))

				set.pusher.EXPECT().
					EnqueueUpdate("booking-1")
			},
			wantErr:    false,
			wantResult: dto.ResultQueued,
			wantHours:  4,
			wantTotal:  800,
		},
		{
			name: "record the remote never saw stays with its pending create",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				booking := activeBooking()
				booking.SyncCode = int(state.New)

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				set.pricing.EXPECT().
					Overtime(gomock.Any(), "regular", 2, 3, 4).
					Return(float64(200), nil)

				set.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, int(state.New), booking.SyncCode)

						return nil
					})
			},
			wantErr:    false,
			wantResult: dto.ResultQueued,
			wantHours:  4,
			wantTotal:  800,
		},
		{
			name: "booking not found",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already completed",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				booking := activeBooking()
				booking.Status = model.StatusCompleted
				booking.OutTime = sql.NullString{String: "12:00", Valid: true}

				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid out time",
			req: dto.CompleteBookingRequest{
				OutTime: "not-a-clock",
			},
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)
			},
			wantErr: true,
		},
		{
			name: "overtime pricing error",
			req:  completeRequest,
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)

				set.pricing.EXPECT().
					Overtime(gomock.Any(), "regular", 2, 3, 4).
					Return(float64(0), errors.New("rate unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyWorkerID, "worker-1")
			result, err := svc.Complete(ctx, "booking-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result.Result)
				assert.Equal(t, tt.wantHours, result.ActualHours)
				assert.Equal(t, tt.wantTotal, result.TotalAmount)
				assert.Equal(t, float64(800), result.PaidAmount)
				assert.Equal(t, float64(0), result.BalanceAmount)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set *bookingMockSet)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(set *bookingMockSet) {
				// Overrides the tolerant default with a hit for this call.
			},
			wantErr: false,
			wantID:  "",
		},
		{
			name: "cache miss, found in store",
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBooking(), nil)
			},
			wantErr: false,
			wantID:  "booking-1",
		},
		{
			name: "not found",
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)

			if tt.name == "cache hit" {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			} else {
				set.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			}

			tt.setupMock(set)

			result, err := svc.Get(context.Background(), "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.BookingID)
				}
			}
		})
	}
}

func TestBookingService_PendingCount(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set *bookingMockSet)
		wantErr   bool
		want      int
	}{
		{
			name: "counts new and dirty records",
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					CountBySyncCode(gomock.Any(), state.New, state.DirtyUpdate).
					Return(5, nil)
			},
			wantErr: false,
			want:    5,
		},
		{
			name: "repository error",
			setupMock: func(set *bookingMockSet) {
				set.repo.EXPECT().
					CountBySyncCode(gomock.Any(), state.New, state.DirtyUpdate).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, set := newBookingService(ctrl)
			tt.setupMock(set)

			count, err := svc.PendingCount(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, count)
			}
		})
	}
}
