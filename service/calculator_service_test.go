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

func TestDowntimeService_Calculate(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewDowntimeService(cache, zerolog.Nop())

	resp, err := svc.Calculate(context.Background(), domain.DowntimeRequest{
		RevenuePerHour:   10_000,
		OutageHours:      2,
		RefundRate:       10,
		IncidentsPerYear: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 22_000.0, resp.Result.TotalLoss)
	assert.Equal(t, 88_000.0, resp.AnnualLoss)
	assert.Equal(t, "$22,000", resp.Formatted.TotalLoss)
	assert.Equal(t, "$88,000", resp.Formatted.AnnualLoss)
	assert.Equal(t, "2 hours", resp.Formatted.Duration)
	assert.Equal(t, "22.0K", resp.Formatted.TotalLossCompact)
	assert.Len(t, resp.CumulativeLoss, SparklinePoints+1)
	assert.Equal(t, 1, cache.Len())
}

func TestDowntimeService_Invalid(t *testing.T) {
	svc := NewDowntimeService(nil, zerolog.Nop())

	_, err := svc.Calculate(context.Background(), domain.DowntimeRequest{RevenuePerHour: 100})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Duration must be greater than 0 hours"}, verr.Result.Errors)
}

func TestRTOService_Calculate(t *testing.T) {
	svc := NewRTOService(repository.NewMemoryCache(0), zerolog.Nop())

	resp, err := svc.Calculate(context.Background(), domain.RTORequest{
		RTOHours:          4,
		RPOHours:          1,
		IncidentFrequency: 2,
		RevenuePerHour:    10_000,
		Currency:          "EUR",
	})
	require.NoError(t, err)

	assert.Equal(t, 80_000.0, resp.Impact.TotalImpact)
	assert.Equal(t, domain.RiskMedium, resp.Risk.Level)
	assert.Equal(t, 40_000.0, resp.CostPerIncident)
	assert.Equal(t, "€80,000", resp.Formatted.AnnualizedLoss)
	assert.Equal(t, "4h target", resp.Formatted.RTOTarget)
	assert.Equal(t, "1h target", resp.Formatted.RPOTarget)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRTOService_Invalid(t *testing.T) {
	svc := NewRTOService(nil, zerolog.Nop())

	_, err := svc.Calculate(context.Background(), domain.RTORequest{RTOHours: 1, RPOHours: 1})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Result.Errors, 2)
}
