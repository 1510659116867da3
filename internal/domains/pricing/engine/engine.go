// Package engine computes monetary fields for bookings. It is pure: no
// storage, no network, no clocks. Callers resolve the applicable rate or
// tier set first and feed it in.
package engine

import (
	"errors"
	"fmt"
	"math"
	"siesta/internal/domains/pricing/model"
	"siesta/shared/constant"
	"sort"
	"time"
)

var (
	// ErrNoRate means no flat rate is configured for the requested category.
	ErrNoRate = errors.New("rate unavailable for category")
	// ErrNoTier means no tier covers the requested duration and no tier
	// exists to extrapolate from.
	ErrNoTier = errors.New("no pricing tier covers duration")
)

// Quote is the priced result of a booking before payment.
//
// PricePerPerson is a per-person total for the whole booked duration, never
// an hourly rate: flat categories precompute rate times hours, tiered
// categories carry the tier amount as-is.
type Quote struct {
	PricePerPerson  float64
	BaseAmount      float64
	Discount        float64
	TotalAmount     float64
	DiscountClamped bool
}

// FlatQuote prices a flat-rate category booking.
func FlatQuote(ratePerHour float64, persons, hours int, discount float64) (Quote, error) {
	if ratePerHour <= 0 {
		return Quote{}, ErrNoRate
	}

	if hours < 1 {
		hours = 1
	}

	quote := Quote{
		PricePerPerson: ratePerHour * float64(hours),
		BaseAmount:     ratePerHour * float64(persons) * float64(hours),
	}

	return applyDiscount(quote, discount), nil
}

// TieredQuote prices a tiered category booking from the tier covering the
// duration.
func TieredQuote(tiers []model.Tier, persons, hours int, discount float64) (Quote, error) {
	tier, ok := ResolveTier(tiers, hours)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %d hours", ErrNoTier, hours)
	}

	quote := Quote{
		PricePerPerson: tier.Amount,
		BaseAmount:     tier.Amount * float64(persons),
	}

	return applyDiscount(quote, discount), nil
}

func applyDiscount(quote Quote, discount float64) Quote {
	if discount < 0 {
		discount = 0
	}

	if discount > quote.BaseAmount {
		discount = quote.BaseAmount
		quote.DiscountClamped = true
	}

	quote.Discount = discount
	quote.TotalAmount = quote.BaseAmount - discount

	return quote
}

// ResolveTier returns the first tier whose range contains the duration.
func ResolveTier(tiers []model.Tier, hours int) (model.Tier, bool) {
	for _, tier := range tiers {
		if tier.Covers(hours) {
			return tier, true
		}
	}

	return model.Tier{}, false
}

// ActualHours converts an in/out wall-clock pair to a billable duration.
// Both times are time-of-day only; a non-positive raw difference means the
// stay rolled past midnight and gets a day added. Minimum billing is one
// hour, partial hours round up.
func ActualHours(inTime, outTime string) (int, error) {
	in, err := time.Parse(constant.ClockFormat, inTime)
	if err != nil {
		return 0, fmt.Errorf("invalid in time %q: %w", inTime, err)
	}

	out, err := time.Parse(constant.ClockFormat, outTime)
	if err != nil {
		return 0, fmt.Errorf("invalid out time %q: %w", outTime, err)
	}

	elapsed := out.Sub(in)
	if elapsed <= 0 {
		elapsed += 24 * time.Hour
	}

	hours := int(math.Ceil(elapsed.Minutes() / 60))
	if hours < 1 {
		hours = 1
	}

	return hours, nil
}

// FlatOvertime returns the surcharge for a flat-rate booking that ran past
// its booked duration. Zero when the stay fit the booking.
func FlatOvertime(ratePerHour float64, persons, bookedHours, actualHours int) float64 {
	if actualHours <= bookedHours {
		return 0
	}

	return float64(actualHours-bookedHours) * ratePerHour * float64(persons)
}

// TieredOvertime reprices the full actual duration against the tier set and
// returns the difference from the booked amount. When no tier covers a
// duration, the highest tier's effective hourly rate is extrapolated.
func TieredOvertime(tiers []model.Tier, persons, bookedHours, actualHours int) (float64, error) {
	if actualHours <= bookedHours {
		return 0, nil
	}

	bookedAmount, err := tierAmount(tiers, bookedHours)
	if err != nil {
		return 0, err
	}

	actualAmount, err := tierAmount(tiers, actualHours)
	if err != nil {
		return 0, err
	}

	extra := (actualAmount - bookedAmount) * float64(persons)
	if extra < 0 {
		extra = 0
	}

	return extra, nil
}

func tierAmount(tiers []model.Tier, hours int) (float64, error) {
	if tier, ok := ResolveTier(tiers, hours); ok {
		return tier.Amount, nil
	}

	highest, ok := highestTier(tiers)
	if !ok {
		return 0, fmt.Errorf("%w: %d hours", ErrNoTier, hours)
	}

	perHour := highest.Amount / float64(highest.MaxHours)

	return perHour * float64(hours), nil
}

func highestTier(tiers []model.Tier) (model.Tier, bool) {
	if len(tiers) == 0 {
		return model.Tier{}, false
	}

	sorted := make([]model.Tier, len(tiers))
	copy(sorted, tiers)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MaxHours > sorted[j].MaxHours
	})

	if sorted[0].MaxHours < 1 {
		return model.Tier{}, false
	}

	return sorted[0], true
}
