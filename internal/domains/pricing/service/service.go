package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"siesta/config"
	"siesta/infras/otel"
	"siesta/infras/remote"
	"siesta/internal/domains/pricing/engine"
	"siesta/internal/domains/pricing/model"
	"siesta/internal/domains/pricing/repository"
	"siesta/shared/constant"
	"siesta/shared/failure"
	gModel "siesta/shared/model"
	"siesta/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// Pricing resolves rates and computes monetary fields. Settings come from the
// local snapshot when fresh and from the remote service on a miss; tiers are
// local-only between explicit refreshes.
type Pricing interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	RefreshSettings(ctx context.Context) (model.Settings, error)
	RefreshTiers(ctx context.Context) error
	Quote(ctx context.Context, category string, persons, hours int, discount float64) (engine.Quote, error)
	Overtime(ctx context.Context, category string, persons, bookedHours, actualHours int) (float64, error)
}

type serviceImpl struct {
	repo   repository.Pricing
	remote remote.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Pricing, remoteClient remote.Client, cfg *config.Config, otel otel.Otel) Pricing {
	return &serviceImpl{
		repo:   repo,
		remote: remoteClient,
		cfg:    cfg,
		otel:   otel,
	}
}

// GetSettings returns the local snapshot when it is younger than the TTL and
// falls back to a remote refresh when it is not.
func (s *serviceImpl) GetSettings(ctx context.Context) (res model.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.repo.GetSettings(ctx, s.settingsTTL())
	if err != nil {
		log.Error().Err(err).Msg("failed to read local settings")

		return res, fmt.Errorf("failed to read local settings: %w", err)
	}

	if settings.AdminID != constant.Empty {
		return settings, nil
	}

	return s.RefreshSettings(ctx)
}

// RefreshSettings fetches the snapshot from the remote service and replaces
// the local row.
func (s *serviceImpl) RefreshSettings(ctx context.Context) (res model.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.RefreshSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	fetched, err := s.remote.FetchSettings(ctx, s.cfg.App.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch settings from remote")

		return res, failure.Unavailable("settings unavailable: no fresh local snapshot and remote fetch failed") //nolint:wrapcheck
	}

	now := timezone.Now()

	settings := model.Settings{
		AdminID:         fetched.AdminID,
		RateOneName:     fetched.RateOneName,
		RateOneAmount:   fetched.RateOneAmount,
		RateTwoName:     fetched.RateTwoName,
		RateTwoAmount:   fetched.RateTwoAmount,
		AdvanceRequired: fetched.AdvanceRequired,
		AdvancePercent:  fetched.AdvancePercent,
		LastSynced:      now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  s.cfg.App.WorkerID,
			ModifiedBy: s.cfg.App.WorkerID,
		},
	}

	if err = s.repo.SaveSettings(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save settings snapshot")

		return res, fmt.Errorf("failed to save settings snapshot: %w", err)
	}

	log.Info().Str("admin_id", settings.AdminID).Msg("settings snapshot refreshed")

	return settings, nil
}

// RefreshTiers replaces the operator's full tier set from the remote service.
func (s *serviceImpl) RefreshTiers(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.RefreshTiers")
	defer scope.End()
	defer scope.TraceIfError(err)

	fetched, err := s.remote.FetchTiers(ctx, s.cfg.App.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch pricing tiers from remote")

		return fmt.Errorf("failed to fetch pricing tiers: %w", err)
	}

	now := timezone.Now()
	tiers := make([]model.Tier, len(fetched))

	for i, tier := range fetched {
		tiers[i] = model.Tier{
			TierID:   tier.TierID,
			AdminID:  tier.AdminID,
			MinHours: tier.MinHours,
			MaxHours: tier.MaxHours,
			Amount:   tier.Amount,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  s.cfg.App.WorkerID,
				ModifiedBy: s.cfg.App.WorkerID,
			},
		}
	}

	if err = s.repo.ReplaceTiers(ctx, s.cfg.App.AdminID, tiers); err != nil {
		log.Error().Err(err).Msg("failed to replace pricing tiers")

		return fmt.Errorf("failed to replace pricing tiers: %w", err)
	}

	log.Info().Int("count", len(tiers)).Msg("pricing tiers replaced")

	return nil
}

// Quote prices a booking. Categories matching a configured flat rate name are
// priced hourly; everything else is priced against the tier set.
func (s *serviceImpl) Quote(ctx context.Context, category string, persons, hours int, discount float64) (res engine.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return res, err
	}

	if rate, ok := settings.RateFor(category); ok {
		res, err = engine.FlatQuote(rate, persons, hours, discount)
		if err != nil {
			return res, s.unresolved(category, err)
		}

		return res, nil
	}

	tiers, err := s.repo.GetTiers(ctx, settings.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to read pricing tiers")

		return res, fmt.Errorf("failed to read pricing tiers: %w", err)
	}

	res, err = engine.TieredQuote(tiers, persons, hours, discount)
	if err != nil {
		return res, s.unresolved(category, err)
	}

	return res, nil
}

// Overtime computes the surcharge for a stay that ran past its booked hours.
func (s *serviceImpl) Overtime(ctx context.Context, category string, persons, bookedHours, actualHours int) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.Overtime")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return 0, err
	}

	if rate, ok := settings.RateFor(category); ok {
		return engine.FlatOvertime(rate, persons, bookedHours, actualHours), nil
	}

	tiers, err := s.repo.GetTiers(ctx, settings.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to read pricing tiers")

		return 0, fmt.Errorf("failed to read pricing tiers: %w", err)
	}

	res, err = engine.TieredOvertime(tiers, persons, bookedHours, actualHours)
	if err != nil {
		return 0, s.unresolved(category, err)
	}

	return res, nil
}

func (s *serviceImpl) settingsTTL() time.Duration {
	hours := s.cfg.Sync.SettingsTTLHours
	if hours == 0 {
		hours = constant.DefaultSettingsTTLHours
	}

	return time.Duration(hours) * time.Hour
}

func (s *serviceImpl) unresolved(category string, err error) error {
	log.Error().Err(err).Str("category", category).Msg("failed to resolve rate for category")

	return failure.Unprocessable(fmt.Sprintf("rate unavailable for category %s: %v", category, err)) //nolint:wrapcheck
}
