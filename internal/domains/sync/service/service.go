package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"siesta/config"
	"siesta/infras/otel"
	"siesta/infras/remote"
	archiveService "siesta/internal/domains/archive/service"
	bookingModel "siesta/internal/domains/booking/model"
	bookingRepo "siesta/internal/domains/booking/repository"
	"siesta/internal/domains/sync/state"
	"siesta/internal/netmon"
	"siesta/shared/constant"
	gDto "siesta/shared/dto"
	"siesta/shared/timezone"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// Pusher is the write-path's view of the orchestrator: fire-and-forget
// nudges that never block the caller.
type Pusher interface {
	EnqueueUpdate(bookingID string)
	RequestDrain()
}

// Sync drains locally pending bookings to the remote service. One drain
// cycle runs at a time; a request arriving mid-cycle is dropped and caught
// by the next tick.
type Sync interface {
	Pusher
	DrainCycle(ctx context.Context) error
	Start(ctx context.Context)
	Stop()
}

type serviceImpl struct {
	repo    bookingRepo.Booking
	remote  remote.Client
	monitor netmon.Monitor
	archive archiveService.Archive
	cfg     *config.Config
	otel    otel.Otel

	inFlight      atomic.Bool
	drainRequests chan struct{}
	updates       chan string

	reconcileMu   sync.Mutex
	lastReconcile time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

func New(repo bookingRepo.Booking, remoteClient remote.Client, monitor netmon.Monitor, archive archiveService.Archive, cfg *config.Config, otel otel.Otel) Sync {
	svc := &serviceImpl{
		repo:          repo,
		remote:        remoteClient,
		monitor:       monitor,
		archive:       archive,
		cfg:           cfg,
		otel:          otel,
		drainRequests: make(chan struct{}, 1),
		updates:       make(chan string, constant.DefaultUpdateQueueSize),
		stop:          make(chan struct{}),
	}

	monitor.Subscribe(svc.RequestDrain)

	return svc
}

// RequestDrain nudges the loop to run a cycle soon. Duplicate nudges collapse
// into one.
func (s *serviceImpl) RequestDrain() {
	select {
	case s.drainRequests <- struct{}{}:
	default:
	}
}

// EnqueueUpdate queues a just-mutated booking for a near-term individual
// push. Best effort: a full queue drops the nudge and the regular update
// drain picks the record up instead.
func (s *serviceImpl) EnqueueUpdate(bookingID string) {
	select {
	case s.updates <- bookingID:
	default:
		log.Warn().Str("booking_id", bookingID).Msg("update queue full, deferring to next drain cycle")
	}
}

// Start runs the scheduled drain loop and the immediate-update worker.
func (s *serviceImpl) Start(ctx context.Context) {
	go s.drainLoop(ctx)
	go s.updateLoop(ctx)
}

func (s *serviceImpl) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *serviceImpl) drainLoop(ctx context.Context) {
	interval := s.cfg.Sync.IntervalSeconds
	if interval == 0 {
		interval = constant.DefaultSyncIntervalSeconds
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
		case <-s.drainRequests:
		}

		if err := s.DrainCycle(ctx); err != nil {
			log.Error().Err(err).Msg("drain cycle failed")
		}
	}
}

func (s *serviceImpl) updateLoop(ctx context.Context) {
	delay := s.cfg.Sync.UpdateDelayMS
	if delay == 0 {
		delay = constant.DefaultSyncUpdateDelayMS
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case bookingID := <-s.updates:
			if !s.monitor.Reachable() {
				continue
			}

			if err := s.pushUpdate(ctx, bookingID); err != nil {
				log.Warn().Err(err).Str("booking_id", bookingID).Msg("immediate update push failed, record stays pending")
			}

			time.Sleep(time.Duration(delay) * time.Millisecond)
		}
	}
}

// DrainCycle runs one full synchronization pass: pending creates in batches,
// pending updates one by one, then a throttled reconciliation against the
// remote view. Skipped entirely when another cycle is in flight or the
// network is offline.
func (s *serviceImpl) DrainCycle(ctx context.Context) (err error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Debug().Msg("drain cycle already in flight, skipping")

		return nil
	}
	defer s.inFlight.Store(false)

	ctx, scope := s.otel.NewScope(ctx, constant.OtelSyncScopeName, constant.OtelSyncScopeName+".DrainCycle")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.monitor.Reachable() {
		log.Debug().Msg("network offline, skipping drain cycle")

		return nil
	}

	if err = s.drainCreates(ctx); err != nil {
		return err
	}

	if err = s.drainUpdates(ctx); err != nil {
		return err
	}

	if s.reconcile(ctx) {
		s.archiveIfIdle(ctx)
	}

	return nil
}

// drainCreates pushes New records in creation-ordered batches. A failed batch
// aborts the remaining batches for this cycle; already-accepted batches keep
// their advanced state.
func (s *serviceImpl) drainCreates(ctx context.Context) error {
	batchSize := s.cfg.Sync.BatchSize
	if batchSize == 0 {
		batchSize = constant.DefaultSyncBatchSize
	}

	batchDelay := s.cfg.Sync.BatchDelayMS
	if batchDelay == 0 {
		batchDelay = constant.DefaultSyncBatchDelayMS
	}

	for {
		pending, err := s.repo.ListBySyncCode(ctx, state.New, batchSize)
		if err != nil {
			return fmt.Errorf("failed to list pending creates: %w", err)
		}

		if len(pending) == 0 {
			return nil
		}

		payload := make([]remote.Booking, len(pending))
		for i, booking := range pending {
			payload[i] = s.toRemoteBooking(booking)
		}

		if err = s.remote.CreateBookings(ctx, payload); err != nil {
			log.Warn().Err(err).Int("batch_size", len(pending)).Msg("create batch rejected, aborting remaining batches")

			return nil
		}

		for _, booking := range pending {
			next, moved := state.Next(booking.SyncState(), state.CreateAccepted)
			if !moved {
				continue
			}

			if err = s.repo.UpdateSyncCode(ctx, booking.BookingID, next); err != nil {
				return fmt.Errorf("failed to advance sync code after create: %w", err)
			}
		}

		log.Info().Int("count", len(pending)).Msg("create batch accepted")

		if len(pending) < batchSize {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(batchDelay) * time.Millisecond):
		}
	}
}

// drainUpdates pushes DirtyUpdate records individually. A rejected record is
// skipped, not retried within the cycle, so one poisoned row cannot starve
// the rest.
func (s *serviceImpl) drainUpdates(ctx context.Context) error {
	delay := s.cfg.Sync.UpdateDelayMS
	if delay == 0 {
		delay = constant.DefaultSyncUpdateDelayMS
	}

	pending, err := s.repo.ListBySyncCode(ctx, state.DirtyUpdate, 0)
	if err != nil {
		return fmt.Errorf("failed to list pending updates: %w", err)
	}

	for i, booking := range pending {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Duration(delay) * time.Millisecond):
			}
		}

		if err = s.pushCheckout(ctx, booking); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.BookingID).Msg("update push rejected, record stays pending")

			continue
		}
	}

	return nil
}

func (s *serviceImpl) pushUpdate(ctx context.Context, bookingID string) error {
	booking, err := s.repo.Get(ctx, filterByBookingID(bookingID))
	if err != nil {
		return fmt.Errorf("failed to load booking for update push: %w", err)
	}

	if booking.BookingID == constant.Empty || booking.SyncState() != state.DirtyUpdate {
		return nil
	}

	return s.pushCheckout(ctx, booking)
}

func (s *serviceImpl) pushCheckout(ctx context.Context, booking bookingModel.Booking) error {
	checkout := remote.Checkout{
		BookingID:     booking.BookingID,
		OutTime:       booking.OutTime.String,
		Status:        booking.Status,
		PaymentMethod: booking.PaymentMethod,
		TotalAmount:   booking.TotalAmount,
		PaidAmount:    booking.PaidAmount,
	}

	if err := s.remote.CheckoutBooking(ctx, checkout); err != nil {
		return err //nolint:wrapcheck
	}

	next, moved := state.Next(booking.SyncState(), state.UpdateAccepted)
	if !moved {
		return nil
	}

	if err := s.repo.UpdateSyncCode(ctx, booking.BookingID, next); err != nil {
		return fmt.Errorf("failed to advance sync code after update: %w", err)
	}

	return nil
}

// reconcile pulls the server's completed-today view and force-corrects local
// rows that disagree. Throttled: the remote list changes slowly and this is
// a repair mechanism, not a hot path. Local paid_amount is kept as-is since
// payments taken at the terminal are authoritative here. Reports whether a
// pass actually ran.
func (s *serviceImpl) reconcile(ctx context.Context) bool {
	interval := s.cfg.Sync.ReconcileIntervalSeconds
	if interval == 0 {
		interval = constant.DefaultReconcileIntervalSeconds
	}

	s.reconcileMu.Lock()
	due := timezone.Now().Sub(s.lastReconcile) >= time.Duration(interval)*time.Second
	if due {
		s.lastReconcile = timezone.Now()
	}
	s.reconcileMu.Unlock()

	if !due {
		return false
	}

	completions, err := s.remote.FetchCompleted(ctx, s.cfg.App.AdminID, s.cfg.App.WorkerID)
	if err != nil {
		log.Warn().Err(err).Msg("reconciliation fetch failed, retrying next window")

		return false
	}

	for _, completion := range completions {
		if err := s.applyCompletion(ctx, completion); err != nil {
			log.Error().Err(err).Str("booking_id", completion.BookingID).Msg("failed to apply server completion")
		}
	}

	return true
}

// archiveIfIdle snapshots the day to object storage once a reconciliation
// pass finds nothing left to push. Best effort: a failed upload is retried
// after the next reconciliation window.
func (s *serviceImpl) archiveIfIdle(ctx context.Context) {
	if !s.cfg.Archive.Enable {
		return
	}

	pending, err := s.repo.CountBySyncCode(ctx, state.New, state.DirtyUpdate)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count pending records before archiving")

		return
	}

	if pending > 0 {
		return
	}

	date := timezone.Now().Format(constant.DateOnlyFormat)
	if err := s.archive.ArchiveDay(ctx, date); err != nil {
		log.Warn().Err(err).Str("date", date).Msg("day archive failed, retrying next window")
	}
}

func (s *serviceImpl) applyCompletion(ctx context.Context, completion remote.Completion) error {
	booking, err := s.repo.Get(ctx, filterByBookingID(completion.BookingID))
	if err != nil {
		return fmt.Errorf("failed to load booking for reconciliation: %w", err)
	}

	// Unknown locally: another terminal's booking, nothing to correct.
	if booking.BookingID == constant.Empty {
		return nil
	}

	if booking.Status == bookingModel.StatusCompleted && booking.SyncState() == state.UpdateSynced {
		return nil
	}

	updates := map[string]any{
		bookingModel.FieldStatus:   bookingModel.StatusCompleted,
		bookingModel.FieldOutTime:  sql.NullString{String: completion.OutTime, Valid: true},
		bookingModel.FieldSyncCode: int(state.UpdateSynced),
		"modified_at":              timezone.Now(),
		"modified_by":              s.cfg.App.WorkerID,
	}

	if err := s.repo.Update(ctx, updates, filterByBookingID(completion.BookingID)); err != nil {
		return fmt.Errorf("failed to force-correct booking: %w", err)
	}

	log.Info().Str("booking_id", completion.BookingID).Msg("booking force-corrected from server view")

	return nil
}

func (s *serviceImpl) toRemoteBooking(booking bookingModel.Booking) remote.Booking {
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

func filterByBookingID(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldBookingID,
				Table:    bookingModel.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	}
}
