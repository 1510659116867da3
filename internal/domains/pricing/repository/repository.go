package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"siesta/infras/otel"
	"siesta/infras/sqlite"
	"siesta/internal/domains/pricing/model"
	"siesta/shared/constant"
	gDto "siesta/shared/dto"
	gRepo "siesta/shared/repository"
	"siesta/shared/timezone"
	"time"
)

// Pricing stores the settings snapshot and the tier set. A single settings
// row is retained; reads purge it past the TTL so a stale snapshot looks
// absent to callers. Tiers have no TTL and are only replaced wholesale.
type Pricing interface {
	GetSettings(ctx context.Context, ttl time.Duration) (model.Settings, error)
	SaveSettings(ctx context.Context, settings model.Settings) error
	GetTiers(ctx context.Context, adminID string) ([]model.Tier, error)
	ReplaceTiers(ctx context.Context, adminID string, tiers []model.Tier) error
}

type repositoryImpl struct {
	settings gRepo.Repository[model.Settings]
	tiers    gRepo.Repository[model.Tier]
	db       *sqlite.Connection
	otel     otel.Otel
}

func New(db *sqlite.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		settings: gRepo.NewRepository[model.Settings](model.SettingsEntityName, model.SettingsTableName, model.FieldAdminID, db, otel),
		tiers:    gRepo.NewRepository[model.Tier](model.TierEntityName, model.TierTableName, model.FieldTierID, db, otel),
		db:       db,
		otel:     otel,
	}
}

// GetSettings purges any row older than the TTL, then returns the most recent
// remaining row. A zero-value result with an empty admin id means no fresh
// snapshot exists and the caller should re-fetch.
func (r *repositoryImpl) GetSettings(ctx context.Context, ttl time.Duration) (model.Settings, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing.GetSettings")
	defer scope.End()

	cutoff := timezone.Now().Add(-ttl)

	stale := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLastSynced,
				Table:    model.SettingsTableName,
				Operator: gDto.FilterOperatorLessEq,
				Value:    cutoff,
			},
		},
	}

	if err := r.settings.Delete(ctx, stale); err != nil {
		return model.Settings{}, fmt.Errorf("failed to purge stale settings: %w", err)
	}

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldLastSynced,
		SortDir: "DESC",
	}

	rows, err := r.settings.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if len(rows) == 0 {
		return model.Settings{}, nil
	}

	return rows[0], nil
}

// SaveSettings replaces the retained snapshot with the given one.
func (r *repositoryImpl) SaveSettings(ctx context.Context, settings model.Settings) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing.SaveSettings")
	defer scope.End()

	all := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAdminID,
				Table:    model.SettingsTableName,
				Operator: gDto.FilterIsNotNull,
			},
		},
	}

	if err := r.settings.Delete(ctx, all); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}

	if err := r.settings.Insert(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetTiers(ctx context.Context, adminID string) ([]model.Tier, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing.GetTiers")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  model.FieldMinHours,
		SortDir: "ASC",
	}

	tiers, err := r.tiers.GetAll(ctx, params, filterByAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing tiers: %w", err)
	}

	return tiers, nil
}

// ReplaceTiers swaps the operator's full tier set for the given one.
func (r *repositoryImpl) ReplaceTiers(ctx context.Context, adminID string, tiers []model.Tier) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing.ReplaceTiers")
	defer scope.End()

	if err := r.tiers.Delete(ctx, filterByAdmin(adminID)); err != nil {
		return fmt.Errorf("failed to clear pricing tiers: %w", err)
	}

	for _, tier := range tiers {
		if err := r.tiers.Insert(ctx, tier); err != nil {
			return fmt.Errorf("failed to save pricing tier: %w", err)
		}
	}

	return nil
}

func filterByAdmin(adminID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAdminID,
				Table:    model.TierTableName,
				Operator: gDto.FilterOperatorEq,
				Value:    adminID,
			},
		},
	}
}
