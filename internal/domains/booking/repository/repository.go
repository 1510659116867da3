package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"siesta/infras/otel"
	"siesta/infras/sqlite"
	"siesta/internal/domains/booking/model"
	"siesta/internal/domains/sync/state"
	gDto "siesta/shared/dto"
	gRepo "siesta/shared/repository"
)

type Booking interface {
	Upsert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ListBySyncCode(ctx context.Context, code state.Code, limit int) ([]model.Booking, error)
	UpdateSyncCode(ctx context.Context, bookingID string, code state.Code) error
	CountBySyncCode(ctx context.Context, codes ...state.Code) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *sqlite.Connection
	otel otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldBookingID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListBySyncCode returns records in the given sync state, oldest first, so a
// drain pushes bookings in creation order.
func (r *repositoryImpl) ListBySyncCode(ctx context.Context, code state.Code, limit int) ([]model.Booking, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  "created_at",
		SortDir: "ASC",
	}

	bookings, err := r.GetAll(ctx, params, filterBySyncCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings by sync code: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) UpdateSyncCode(ctx context.Context, bookingID string, code state.Code) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Table:    model.TableName,
				ArgName:  "filter_booking_id",
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
			},
		},
	}

	if err := r.Update(ctx, map[string]any{model.FieldSyncCode: int(code)}, filter); err != nil {
		return fmt.Errorf("failed to update sync code: %w", err)
	}

	return nil
}

func (r *repositoryImpl) CountBySyncCode(ctx context.Context, codes ...state.Code) (int, error) {
	values := make([]int, len(codes))
	for i, code := range codes {
		values[i] = int(code)
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSyncCode,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorIn,
				Value:    values,
			},
		},
	}

	count, err := r.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings by sync code: %w", err)
	}

	return count, nil
}

func filterBySyncCode(code state.Code) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSyncCode,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    int(code),
			},
		},
	}
}
