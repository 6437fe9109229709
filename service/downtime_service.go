package service

import (
	"context"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/numfmt"
	"techimpact/repository"
)

type DowntimeService struct {
	cache repository.CacheRepository
	log   zerolog.Logger
}

func NewDowntimeService(cache repository.CacheRepository, log zerolog.Logger) *DowntimeService {
	return &DowntimeService{
		cache: cache,
		log:   log.With().Str("calculator", "downtime").Logger(),
	}
}

// Calculate prices a single outage and its yearly recurrence.
func (s *DowntimeService) Calculate(
	ctx context.Context,
	req domain.DowntimeRequest,
) (domain.DowntimeResponse, error) {
	return cached(ctx, s.cache, s.log, "downtime", req, func() (domain.DowntimeResponse, error) {
		return s.calculate(req)
	})
}

func (s *DowntimeService) calculate(req domain.DowntimeRequest) (domain.DowntimeResponse, error) {
	input := domain.DowntimeInput{
		RevenuePerHour: req.RevenuePerHour.Float(),
		DurationHours: CalculateDuration(
			req.OutageHours.Float(), req.OutageMinutes.Float(), req.StartTime, req.EndTime,
		),
		RefundRate:            req.RefundRate.Float(),
		ConversionDropRate:    req.ConversionDrop.Float(),
		AffectedEmployees:     req.AffectedEmployees.Float(),
		HourlyCostPerEmployee: req.HourlyCostPerEmployee.Float(),
	}

	v := ValidateDowntimeInputs(input)
	if !v.Valid {
		return domain.DowntimeResponse{}, &ValidationError{Result: v}
	}

	result := CalculateDowntimeCost(input)
	annual := CalculateAnnualizedImpact(result.TotalLoss, req.IncidentsPerYear.Float())
	perMinute := CostPerMinute(result.TotalLoss, result.DurationHours)

	currency := req.Currency
	resp := domain.DowntimeResponse{
		Result:         result,
		AnnualLoss:     annual,
		CostPerMinute:  perMinute,
		CumulativeLoss: CumulativeLoss(result.TotalLoss, SparklinePoints),
		Formatted: domain.DowntimeFormatted{
			TotalLoss:            numfmt.Currency(result.TotalLoss, currency),
			RevenueLoss:          numfmt.Currency(result.RevenueLoss, currency),
			RefundCosts:          numfmt.Currency(result.RefundCosts, currency),
			ProductivityLoss:     numfmt.Currency(result.ProductivityLoss, currency),
			ConversionDropImpact: numfmt.Currency(result.ConversionDropImpact, currency),
			AnnualLoss:           numfmt.Currency(annual, currency),
			CostPerMinute:        numfmt.Currency(perMinute, currency),
			Duration:             FormatDowntimeDuration(result.DurationHours),
			TotalLossCompact:     numfmt.LargeNumber(result.TotalLoss),
		},
		Warnings: v.Warnings,
		State:    EncodeState(downtimeState(req)),
	}

	s.log.Debug().
		Float64("duration_hours", result.DurationHours).
		Float64("total_loss", result.TotalLoss).
		Msg("downtime cost calculated")
	return resp, nil
}
