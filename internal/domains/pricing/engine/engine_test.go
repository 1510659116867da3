package engine_test

import (
	"siesta/internal/domains/pricing/engine"
	"siesta/internal/domains/pricing/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		rate               float64
		persons            int
		hours              int
		discount           float64
		wantPricePerPerson float64
		wantBase           float64
		wantTotal          float64
		wantClamped        bool
		wantErr            error
	}{
		{
			name:               "two persons three hours at fifty per hour",
			rate:               50,
			persons:            2,
			hours:              3,
			wantPricePerPerson: 150,
			wantBase:           300,
			wantTotal:          300,
		},
		{
			name:               "zero hours bills a minimum of one hour",
			rate:               50,
			persons:            2,
			hours:              0,
			wantPricePerPerson: 50,
			wantBase:           100,
			wantTotal:          100,
		},
		{
			name:               "discount larger than base is clamped to base",
			rate:               50,
			persons:            2,
			hours:              3,
			discount:           500,
			wantPricePerPerson: 150,
			wantBase:           300,
			wantTotal:          0,
			wantClamped:        true,
		},
		{
			name:               "negative discount is ignored",
			rate:               50,
			persons:            1,
			hours:              2,
			discount:           -20,
			wantPricePerPerson: 100,
			wantBase:           100,
			wantTotal:          100,
		},
		{
			name:    "missing rate is an error not a zero price",
			rate:    0,
			persons: 2,
			hours:   3,
			wantErr: engine.ErrNoRate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			quote, err := engine.FlatQuote(test.rate, test.persons, test.hours, test.discount)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantPricePerPerson, quote.PricePerPerson)
			assert.Equal(t, test.wantBase, quote.BaseAmount)
			assert.Equal(t, test.wantTotal, quote.TotalAmount)
			assert.Equal(t, test.wantClamped, quote.DiscountClamped)
		})
	}
}

func TestTieredQuote(t *testing.T) {
	t.Parallel()

	tiers := []model.Tier{
		{TierID: "t1", MinHours: 1, MaxHours: 3, Amount: 400},
		{TierID: "t2", MinHours: 4, MaxHours: 8, Amount: 700},
	}

	t.Run("tier amount is a whole range total per person", func(t *testing.T) {
		t.Parallel()

		quote, err := engine.TieredQuote(tiers, 2, 3, 0)

		require.NoError(t, err)
		assert.Equal(t, float64(400), quote.PricePerPerson)
		assert.Equal(t, float64(800), quote.BaseAmount)
		assert.Equal(t, float64(800), quote.TotalAmount)
	})

	t.Run("duration outside every tier is an error", func(t *testing.T) {
		t.Parallel()

		_, err := engine.TieredQuote(tiers, 2, 12, 0)

		assert.ErrorIs(t, err, engine.ErrNoTier)
	})

	t.Run("empty tier set is an error", func(t *testing.T) {
		t.Parallel()

		_, err := engine.TieredQuote(nil, 2, 3, 0)

		assert.ErrorIs(t, err, engine.ErrNoTier)
	})
}

func TestActualHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		inTime  string
		outTime string
		want    int
		wantErr bool
	}{
		{
			name:    "partial hours round up",
			inTime:  "10:00",
			outTime: "13:10",
			want:    4,
		},
		{
			name:    "exact hours stay exact",
			inTime:  "10:00",
			outTime: "12:00",
			want:    2,
		},
		{
			name:    "stay past midnight adds a day",
			inTime:  "23:00",
			outTime: "01:00",
			want:    2,
		},
		{
			name:    "identical times bill a full day",
			inTime:  "10:00",
			outTime: "10:00",
			want:    24,
		},
		{
			name:    "sub hour stay bills a minimum of one hour",
			inTime:  "10:00",
			outTime: "10:20",
			want:    1,
		},
		{
			name:    "malformed out time",
			inTime:  "10:00",
			outTime: "25:99",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.ActualHours(test.inTime, test.outTime)

			if test.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestFlatOvertime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(200), engine.FlatOvertime(50, 2, 2, 4))
	assert.Equal(t, float64(0), engine.FlatOvertime(50, 2, 4, 4))
	assert.Equal(t, float64(0), engine.FlatOvertime(50, 2, 4, 2))
}

func TestTieredOvertime(t *testing.T) {
	t.Parallel()

	tiers := []model.Tier{
		{TierID: "t1", MinHours: 1, MaxHours: 3, Amount: 400},
		{TierID: "t2", MinHours: 4, MaxHours: 8, Amount: 700},
	}

	t.Run("repriced tier difference times persons", func(t *testing.T) {
		t.Parallel()

		extra, err := engine.TieredOvertime(tiers, 2, 3, 5)

		require.NoError(t, err)
		assert.Equal(t, float64(600), extra)
	})

	t.Run("no overtime when stay fits booking", func(t *testing.T) {
		t.Parallel()

		extra, err := engine.TieredOvertime(tiers, 2, 5, 5)

		require.NoError(t, err)
		assert.Equal(t, float64(0), extra)
	})

	t.Run("uncovered duration extrapolates the highest tier", func(t *testing.T) {
		t.Parallel()

		// Highest tier works out to 87.5 per hour, so 12 hours reprices to
		// 1050 per person against 700 booked.
		extra, err := engine.TieredOvertime(tiers, 2, 5, 12)

		require.NoError(t, err)
		assert.Equal(t, float64(700), extra)
	})

	t.Run("no tiers at all is an error", func(t *testing.T) {
		t.Parallel()

		_, err := engine.TieredOvertime(nil, 2, 2, 4)

		assert.ErrorIs(t, err, engine.ErrNoTier)
	})
}
