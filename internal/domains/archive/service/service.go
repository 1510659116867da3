package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"siesta/config"
	"siesta/infras/otel"
	"siesta/infras/s3"
	bookingModel "siesta/internal/domains/booking/model"
	bookingRepo "siesta/internal/domains/booking/repository"
	"siesta/shared/constant"
	gDto "siesta/shared/dto"

	"github.com/rs/zerolog/log"
)

// Archive snapshots a day's bookings to object storage. Off-terminal copies
// are a safety net for the single local database file, nothing more: the
// remote service stays the authority.
type Archive interface {
	ArchiveDay(ctx context.Context, date string) error
}

type serviceImpl struct {
	repo bookingRepo.Booking
	s3   s3.S3
	cfg  *config.Config
	otel otel.Otel
}

func New(repo bookingRepo.Booking, s3Client s3.S3, cfg *config.Config, otel otel.Otel) Archive {
	return &serviceImpl{
		repo: repo,
		s3:   s3Client,
		cfg:  cfg,
		otel: otel,
	}
}

// ArchiveDay uploads all bookings dated on the given day as one JSON object.
func (s *serviceImpl) ArchiveDay(ctx context.Context, date string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".archive.ArchiveDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.cfg.Archive.Enable {
		log.Debug().Msg("archiving disabled, skipping")

		return nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldBookingDate,
				Table:    bookingModel.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.FieldInTime,
		SortDir: "ASC",
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load bookings for archive")

		return fmt.Errorf("failed to load bookings for archive: %w", err)
	}

	if len(bookings) == 0 {
		log.Info().Str("date", date).Msg("no bookings to archive")

		return nil
	}

	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal archive payload: %w", err)
	}

	objectName := fmt.Sprintf("bookings-%s.json", date)

	if err = s.s3.UploadBytes(ctx, s.cfg.Archive.BucketName, s.cfg.Archive.Directory, objectName, constant.ContentTypeJSON, payload); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("failed to upload day archive")

		return fmt.Errorf("failed to upload day archive: %w", err)
	}

	log.Info().Str("object", objectName).Int("count", len(bookings)).Msg("day archive uploaded")

	return nil
}
