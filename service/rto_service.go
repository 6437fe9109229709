package service

import (
	"context"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/numfmt"
	"techimpact/repository"
)

type RTOService struct {
	cache repository.CacheRepository
	log   zerolog.Logger
}

func NewRTOService(cache repository.CacheRepository, log zerolog.Logger) *RTOService {
	return &RTOService{
		cache: cache,
		log:   log.With().Str("calculator", "rto-rpo").Logger(),
	}
}

// Calculate annualizes recovery-time and data-loss costs and grades the targets.
func (s *RTOService) Calculate(
	ctx context.Context,
	req domain.RTORequest,
) (domain.RTOResponse, error) {
	return cached(ctx, s.cache, s.log, "rto", req, func() (domain.RTOResponse, error) {
		return s.calculate(req)
	})
}

func (s *RTOService) calculate(req domain.RTORequest) (domain.RTOResponse, error) {
	input := domain.RTOInput{
		RTOHours:                  req.RTOHours.Float(),
		RPOHours:                  req.RPOHours.Float(),
		IncidentFrequency:         req.IncidentFrequency.Float(),
		RevenuePerHour:            req.RevenuePerHour.Float(),
		DataRecreationCostPerHour: req.DataRecreationCost.Float(),
	}

	v := ValidateRTOInputs(input)
	if !v.Valid {
		return domain.RTOResponse{}, &ValidationError{Result: v}
	}

	impact := CalculateRTOImpact(input)
	risk := AssessRiskLevel(input.RTOHours, input.RPOHours)
	standards := GetIndustryStandards()
	perIncident := CostPerIncident(impact.TotalImpact, impact.IncidentFrequency)

	currency := req.Currency
	resp := domain.RTOResponse{
		Impact:          impact,
		Risk:            risk,
		Recommendations: GenerateRecommendations(input.RTOHours, input.RPOHours, risk, impact.TotalImpact),
		RTOComparison: CalculateComparison(input.RTOHours,
			standards.Critical.RTO, standards.Important.RTO, standards.Standard.RTO),
		RPOComparison: CalculateComparison(input.RPOHours,
			standards.Critical.RPO, standards.Important.RPO, standards.Standard.RPO),
		CostPerIncident: perIncident,
		Formatted: domain.RTOFormatted{
			AnnualizedLoss:  numfmt.Currency(impact.TotalImpact, currency),
			RTOLoss:         numfmt.Currency(impact.RTOLoss, currency),
			RPOCost:         numfmt.Currency(impact.RPOCost, currency),
			TotalImpact:     numfmt.Currency(impact.TotalImpact, currency),
			RiskLevel:       string(risk.Level),
			RTOTarget:       FormatRecoveryDuration(impact.RTOHours) + " target",
			RPOTarget:       FormatRecoveryDuration(impact.RPOHours) + " target",
			CostPerIncident: numfmt.Currency(perIncident, currency),
		},
		Warnings: v.Warnings,
		State:    EncodeState(rtoState(req)),
	}

	s.log.Debug().
		Str("risk", string(risk.Level)).
		Int("score", risk.Score).
		Float64("total_impact", impact.TotalImpact).
		Msg("rto/rpo impact calculated")
	return resp, nil
}
