package model

import (
	"siesta/shared/model"
	"time"
)

const (
	SettingsTableName  = "settings"
	SettingsEntityName = "settings"

	FieldAdminID         = "admin_id"
	FieldRateOneName     = "rate_one_name"
	FieldRateOneAmount   = "rate_one_amount"
	FieldRateTwoName     = "rate_two_name"
	FieldRateTwoAmount   = "rate_two_amount"
	FieldAdvanceRequired = "advance_required"
	FieldAdvancePercent  = "advance_percent"
	FieldLastSynced      = "last_synced"

	TierTableName  = "pricing_tiers"
	TierEntityName = "pricing_tier"

	FieldTierID   = "tier_id"
	FieldMinHours = "min_hours"
	FieldMaxHours = "max_hours"
	FieldAmount   = "amount"
)

// Settings is the operator configuration snapshot. A single row is retained
// locally; last_synced drives the time-boxed eviction on read.
type Settings struct {
	AdminID         string    `db:"admin_id"`
	RateOneName     string    `db:"rate_one_name"`
	RateOneAmount   float64   `db:"rate_one_amount"`
	RateTwoName     string    `db:"rate_two_name"`
	RateTwoAmount   float64   `db:"rate_two_amount"`
	AdvanceRequired bool      `db:"advance_required"`
	AdvancePercent  float64   `db:"advance_percent"`
	LastSynced      time.Time `db:"last_synced"`
	model.Metadata
}

// RateFor returns the flat hourly rate configured for the category name.
func (s *Settings) RateFor(category string) (float64, bool) {
	switch category {
	case s.RateOneName:
		return s.RateOneAmount, s.RateOneName != ""
	case s.RateTwoName:
		return s.RateTwoAmount, s.RateTwoName != ""
	default:
		return 0, false
	}
}

// Tier maps an inclusive hour range to a whole-range amount per person.
type Tier struct {
	TierID   string  `db:"tier_id"`
	AdminID  string  `db:"admin_id"`
	MinHours int     `db:"min_hours"`
	MaxHours int     `db:"max_hours"`
	Amount   float64 `db:"amount"`
	model.Metadata
}

// Covers reports whether the tier's hour range contains the duration.
func (t *Tier) Covers(hours int) bool {
	return hours >= t.MinHours && hours <= t.MaxHours
}
