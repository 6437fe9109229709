package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techimpact/domain"
	"techimpact/repository"
)

func number(v float64) *domain.Number {
	n := domain.Number(v)
	return &n
}

func TestSLAService_Calculate(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewSLAService(nil, cache, zerolog.Nop())

	req := domain.PenaltyRequest{
		ContractValue:   1_000_000,
		PromisedUptime:  99.95,
		DowntimeMinutes: number(120),
		Period:          "30",
		Currency:        "USD",
	}

	resp, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Tier 2", resp.Result.Tier)
	assert.Equal(t, "$100,000", resp.FormattedPenalty)
	assert.Equal(t, 30.0, resp.PeriodDays)
	assert.InDelta(t, 21.6, resp.AllowedDowntimeMinutes, 1e-9)
	assert.Equal(t, "Exceeded allowance by 98 min", resp.DowntimeStatus)
	assert.Equal(t, "badge-orange", resp.BadgeClass)
	assert.NotEmpty(t, resp.State)
	assert.Equal(t, 1, cache.Len())

	again, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, resp.Result, again.Result)
	assert.Equal(t, 1, cache.Len())
}

func TestSLAService_AchievedUptime(t *testing.T) {
	svc := NewSLAService(nil, nil, zerolog.Nop())

	resp, err := svc.Calculate(context.Background(), domain.PenaltyRequest{
		ContractValue:  10_000,
		PromisedUptime: 99.9,
		AchievedUptime: 99.95,
	})
	require.NoError(t, err)
	assert.Equal(t, NoPenaltyTier, resp.Result.Tier)
	assert.Equal(t, "$0", resp.FormattedPenalty)
	assert.Empty(t, resp.DowntimeStatus)
}

func TestSLAService_CustomDefaultTiers(t *testing.T) {
	rows := []domain.TierRow{{Threshold: "0", Penalty: 50}}
	svc := NewSLAService(rows, nil, zerolog.Nop())

	assert.Equal(t, rows, svc.DefaultTiers())

	resp, err := svc.Calculate(context.Background(), domain.PenaltyRequest{
		ContractValue:  1_000,
		PromisedUptime: 99,
		AchievedUptime: 98,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, resp.Result.TotalPenalty)
}

func TestSLAService_InvalidInput(t *testing.T) {
	svc := NewSLAService(nil, nil, zerolog.Nop())

	_, err := svc.Calculate(context.Background(), domain.PenaltyRequest{
		ContractValue:   0,
		PromisedUptime:  120,
		DowntimeMinutes: number(-5),
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{
		"Contract value must be greater than 0",
		"Promised uptime must be between 0 and 100 percent",
		"Downtime cannot be negative",
	}, verr.Result.Errors)
	assert.False(t, errors.Is(err, ErrInvalidTiers))
}

func TestSLAService_InvalidTiers(t *testing.T) {
	svc := NewSLAService(nil, nil, zerolog.Nop())

	tests := map[string][]domain.TierRow{
		"empty scheme": {},
		"duplicates": {
			{Threshold: "0.1", Penalty: 5},
			{Threshold: "< 0.1%", Penalty: 10},
		},
		"all rows blank": {{Threshold: "", Penalty: 5}},
	}
	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), domain.PenaltyRequest{
				ContractValue:  1_000,
				PromisedUptime: 99.9,
				AchievedUptime: 99,
				Tiers:          rows,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTiers)

			var terr *TierError
			require.True(t, errors.As(err, &terr))
			assert.NotEmpty(t, terr.Result.Errors)
		})
	}
}
