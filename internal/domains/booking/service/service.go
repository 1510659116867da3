package service

import (
	"context"
	"database/sql"
	"fmt"
	"siesta/config"
	"siesta/infras/otel"
	"siesta/infras/remote"
	"siesta/internal/domains/booking/model"
	"siesta/internal/domains/booking/model/dto"
	"siesta/internal/domains/booking/repository"
	"siesta/internal/domains/pricing/engine"
	pricingSvc "siesta/internal/domains/pricing/service"
	syncSvc "siesta/internal/domains/sync/service"
	"siesta/internal/domains/sync/state"
	"siesta/internal/netmon"
	"siesta/shared"
	"siesta/shared/cache"
	"siesta/shared/constant"
	gDto "siesta/shared/dto"
	"siesta/shared/failure"
	"siesta/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// Booking is the consumer-facing surface of the engine. Saves and
// completions are always durable locally first; the returned result reports
// whether the remote service has already seen the write or will receive it
// from a later drain.
type Booking interface {
	Save(ctx context.Context, req dto.SaveBookingRequest) (dto.SaveBookingResponse, error)
	Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (dto.CompleteBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	PendingCount(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo    repository.Booking
	pricing pricingSvc.Pricing
	remote  remote.Client
	monitor netmon.Monitor
	pusher  syncSvc.Pusher
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	pricing pricingSvc.Pricing,
	remoteClient remote.Client,
	monitor netmon.Monitor,
	pusher syncSvc.Pusher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		pricing: pricing,
		remote:  remoteClient,
		monitor: monitor,
		pusher:  pusher,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Save prices the booking, attempts a direct remote create when the network
// is reachable, and always commits the row locally with the matching sync
// state. A remote failure degrades the result to queued; it never loses the
// booking.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveBookingRequest) (res dto.SaveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyWorkerID).(string)

	quote, err := s.pricing.Quote(ctx, req.Category, req.Persons, req.BookedHours, req.Discount)
	if err != nil {
		log.Error().Err(err).Str("category", req.Category).Msg("failed to price booking")

		return res, err
	}

	booking := req.ToModel(user, quote)
	result := dto.ResultQueued

	if s.monitor.Reachable() {
		if remoteErr := s.remote.CreateBookings(ctx, []remote.Booking{s.toRemoteBooking(booking)}); remoteErr != nil {
			log.Warn().Err(remoteErr).Str("booking_id", booking.BookingID).Msg("direct create failed, booking queued for drain")
		} else {
			booking.SyncCode = int(state.Synced)
			result = dto.ResultAccepted
		}
	}

	if err = s.repo.Upsert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateListCaches(ctx)

	return dto.SaveBookingResponse{
		BookingID:       booking.BookingID,
		Result:          result,
		PricePerPerson:  booking.PricePerPerson,
		TotalAmount:     booking.TotalAmount,
		PaidAmount:      booking.PaidAmount,
		BalanceAmount:   booking.BalanceAmount,
		DiscountClamped: quote.DiscountClamped,
	}, nil
}

// Complete checks the guest out: computes the billable duration and any
// overtime surcharge, settles the amounts, and marks the row for update
// sync. When the remote is reachable the checkout is pushed inline;
// otherwise the record is queued.
func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (res dto.CompleteBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyWorkerID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.Status == model.StatusCompleted {
		return res, failure.Conflict("booking already completed") //nolint:wrapcheck
	}

	actualHours, err := engine.ActualHours(booking.InTime, req.OutTime)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid out time: %v", err)) //nolint:wrapcheck
	}

	extra, err := s.pricing.Overtime(ctx, booking.Category, booking.Persons, booking.BookedHours, actualHours)
	if err != nil {
		log.Error().Err(err).Str("category", booking.Category).Msg("failed to compute overtime surcharge")

		return res, err
	}

	booking.OutTime = sql.NullString{String: req.OutTime, Valid: true}
	booking.Status = model.StatusCompleted
	booking.TotalAmount += extra
	booking.PaidAmount += req.PaidAmount
	booking.BalanceAmount = booking.TotalAmount - booking.PaidAmount
	booking.ClosedBy = sql.NullString{String: user, Valid: user != constant.Empty}
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	if req.PaymentMethod != constant.Empty {
		booking.PaymentMethod = req.PaymentMethod
	}

	if next, moved := state.Next(booking.SyncState(), state.LocalMutation); moved {
		booking.SyncCode = int(next)
	}

	if err = s.repo.Upsert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to persist completed booking")

		return res, fmt.Errorf("failed to persist completed booking: %w", err)
	}

	result := s.pushCompletion(ctx, booking)

	s.invalidateBookingCaches(ctx, booking.BookingID)

	return dto.CompleteBookingResponse{
		BookingID:     booking.BookingID,
		Result:        result,
		ActualHours:   actualHours,
		ExtraAmount:   extra,
		TotalAmount:   booking.TotalAmount,
		PaidAmount:    booking.PaidAmount,
		BalanceAmount: booking.BalanceAmount,
	}, nil
}

// pushCompletion tries to tell the remote about the checkout right away. A
// record the remote has never seen stays with its pending create; everything
// else goes through the inline checkout call, falling back to the update
// queue on failure.
func (s *serviceImpl) pushCompletion(ctx context.Context, booking model.Booking) string {
	if booking.SyncState() == state.New {
		return dto.ResultQueued
	}

	if !s.monitor.Reachable() {
		s.pusher.EnqueueUpdate(booking.BookingID)

		return dto.ResultQueued
	}

	checkout := remote.Checkout{
		BookingID:     booking.BookingID,
		OutTime:       booking.OutTime.String,
		Status:        booking.Status,
		PaymentMethod: booking.PaymentMethod,
		TotalAmount:   booking.TotalAmount,
		PaidAmount:    booking.PaidAmount,
	}

	if err := s.remote.CheckoutBooking(ctx, checkout); err != nil {
		log.Warn().Err(err).Str("booking_id", booking.BookingID).Msg("direct checkout failed, queued for drain")
		s.pusher.EnqueueUpdate(booking.BookingID)

		return dto.ResultQueued
	}

	if next, moved := state.Next(booking.SyncState(), state.UpdateAccepted); moved {
		if err := s.repo.UpdateSyncCode(ctx, booking.BookingID, next); err != nil {
			log.Error().Err(err).Str("booking_id", booking.BookingID).Msg("failed to advance sync code after checkout")

			return dto.ResultQueued
		}
	}

	return dto.ResultAccepted
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldBookingID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookingID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// PendingCount reports how many records still owe the remote an upload. Read
// straight from the store: the count drives an operator indicator and must
// not lag behind a drain.
func (s *serviceImpl) PendingCount(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PendingCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.CountBySyncCode(ctx, state.New, state.DirtyUpdate)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return 0, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) toRemoteBooking(booking model.Booking) remote.Booking {
	return remote.Booking{
		BookingID:      booking.BookingID,
		GuestName:      booking.GuestName,
		Phone:          booking.Phone,
		Persons:        booking.Persons,
		Category:       booking.Category,
		RoomNumber:     booking.RoomNumber,
		BookingDate:    booking.BookingDate,
		InTime:         booking.InTime,
		OutTime:        booking.OutTime.String,
		BookedHours:    booking.BookedHours,
		ProofType:      booking.ProofType,
		ProofValue:     booking.ProofValue,
		PricePerPerson: booking.PricePerPerson,
		TotalAmount:    booking.TotalAmount,
		PaidAmount:     booking.PaidAmount,
		BalanceAmount:  booking.BalanceAmount,
		PaymentMethod:  booking.PaymentMethod,
		Status:         booking.Status,
		AdminID:        s.cfg.App.AdminID,
		WorkerID:       s.cfg.App.WorkerID,
		ClosedBy:       booking.ClosedBy.String,
	}
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
