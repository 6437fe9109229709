package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/numfmt"
	"techimpact/repository"
)

type SLAService struct {
	defaultRows []domain.TierRow
	cache       repository.CacheRepository
	log         zerolog.Logger
}

// NewSLAService creates an SLAService. Requests without tiers use
// defaultRows, or the built-in scheme when defaultRows is empty.
func NewSLAService(
	defaultRows []domain.TierRow,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *SLAService {
	if len(defaultRows) == 0 {
		defaultRows = DefaultTierRows()
	}
	return &SLAService{
		defaultRows: defaultRows,
		cache:       cache,
		log:         log.With().Str("calculator", "sla").Logger(),
	}
}

func (s *SLAService) DefaultTiers() []domain.TierRow {
	rows := make([]domain.TierRow, len(s.defaultRows))
	copy(rows, s.defaultRows)
	return rows
}

// Calculate computes the penalty for a request. Invalid inputs return a
// *ValidationError; an unusable tier scheme returns a *TierError.
func (s *SLAService) Calculate(
	ctx context.Context,
	req domain.PenaltyRequest,
) (domain.PenaltyResponse, error) {
	if req.Tiers == nil {
		req.Tiers = s.DefaultTiers()
	}
	return cached(ctx, s.cache, s.log, "sla", req, func() (domain.PenaltyResponse, error) {
		return s.calculate(req)
	})
}

func (s *SLAService) calculate(req domain.PenaltyRequest) (domain.PenaltyResponse, error) {
	if v := ValidatePenaltyRequest(req); !v.Valid {
		return domain.PenaltyResponse{}, &ValidationError{Result: v}
	}

	tiers := TiersFromRows(req.Tiers)
	tierCheck := ValidateTiers(tiers)
	if !tierCheck.Valid {
		s.log.Info().Strs("errors", tierCheck.Errors).Msg("rejected tier scheme")
		return domain.PenaltyResponse{}, &TierError{Result: tierCheck}
	}

	periodDays := PeriodDays(req.Period, req.CustomPeriodDays.Float())
	promised := req.PromisedUptime.Float()

	var actual float64
	switch {
	case req.DowntimeMinutes != nil:
		actual = CalculateActualUptimeFromDowntime(req.DowntimeMinutes.Float(), periodDays)
	case req.AchievedUptime > 0:
		actual = req.AchievedUptime.Float()
	}

	result, err := CalculatePenalty(domain.PenaltyInput{
		ContractValue:  req.ContractValue.Float(),
		PromisedUptime: promised,
		ActualUptime:   actual,
		Tiers:          tiers,
	})
	if err != nil {
		return domain.PenaltyResponse{}, &TierError{Result: domain.ValidationResult{Errors: []string{err.Error()}}}
	}

	allowed := CalculateAllowedDowntime(promised, periodDays)
	resp := domain.PenaltyResponse{
		Result:                 result,
		PeriodDays:             periodDays,
		AllowedDowntimeMinutes: allowed,
		FormattedPenalty:       numfmt.Currency(result.TotalPenalty, req.Currency),
		Explanation:            PenaltyExplanationList(result),
		BadgeClass:             TierBadgeClass(result.Tier),
		TierColor:              TierColor(result.Tier),
		MarkerPosition:         MarkerPosition(result),
		Warnings:               tierCheck.Warnings,
		State:                  EncodeState(slaState(req)),
	}
	if req.DowntimeMinutes != nil {
		resp.DowntimeStatus = DowntimeStatus(req.DowntimeMinutes.Float(), allowed)
	}

	s.log.Debug().
		Str("tier", result.Tier).
		Float64("shortfall", result.Shortfall).
		Float64("penalty", result.TotalPenalty).
		Msg("penalty calculated")
	return resp, nil
}

// ValidatePenaltyRequest checks the contract and uptime fields.
func ValidatePenaltyRequest(req domain.PenaltyRequest) domain.ValidationResult {
	var r rules
	r.failIf(req.ContractValue <= 0, "Contract value must be greater than 0")
	r.failIf(req.PromisedUptime <= 0 || req.PromisedUptime > 100,
		"Promised uptime must be between 0 and 100 percent")
	if req.DowntimeMinutes != nil {
		r.failIf(*req.DowntimeMinutes < 0, "Downtime cannot be negative")
	}
	r.failIf(req.AchievedUptime < 0 || req.AchievedUptime > 100,
		"Achieved uptime must be between 0 and 100 percent")
	r.failIf(len(req.Tiers) > MaxTierRows,
		fmt.Sprintf("No more than %d penalty tiers are supported", MaxTierRows))
	return r.result()
}
