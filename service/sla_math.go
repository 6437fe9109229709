package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"techimpact/domain"
	"techimpact/numfmt"
)

// ErrNoTiers is returned when a shortfall needs a tier and none exist.
var ErrNoTiers = errors.New("at least one penalty tier is required")

// CalculateActualUptimeFromDowntime converts downtime over a period into an
// uptime percentage, floored at 0. A non-positive period means 30 days.
func CalculateActualUptimeFromDowntime(downtimeMinutes, periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	periodMinutes := periodDays * MinutesPerDay
	uptimeMinutes := periodMinutes - downtimeMinutes
	return math.Max(0, uptimeMinutes/periodMinutes*100)
}

// CalculateAllowedDowntime returns the minutes of downtime the promise permits.
func CalculateAllowedDowntime(promisedUptime, periodDays float64) float64 {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	return periodDays * MinutesPerDay * (1 - promisedUptime/100)
}

// CalculatePenalty applies the tier containing the uptime shortfall to the
// contract value. Meeting the promise is never penalized, even with no tiers.
func CalculatePenalty(in domain.PenaltyInput) (domain.PenaltyResult, error) {
	if in.ActualUptime >= in.PromisedUptime {
		return domain.PenaltyResult{
			Tier:           NoPenaltyTier,
			ActualUptime:   in.ActualUptime,
			PromisedUptime: in.PromisedUptime,
		}, nil
	}

	shortfall := math.Max(0, in.PromisedUptime-in.ActualUptime)
	tier, ok := FindApplicableTier(shortfall, in.Tiers)
	if !ok {
		return domain.PenaltyResult{}, ErrNoTiers
	}

	return domain.PenaltyResult{
		TotalPenalty:      in.ContractValue * (tier.Percentage / 100),
		Tier:              tier.Name,
		Shortfall:         shortfall,
		AppliedPercentage: tier.Percentage,
		ActualUptime:      in.ActualUptime,
		PromisedUptime:    in.PromisedUptime,
	}, nil
}

// FindApplicableTier returns the tier with the greatest threshold not above
// shortfall. When shortfall is below every threshold the lowest tier applies,
// so any shortfall is penalized once tiers exist.
func FindApplicableTier(shortfall float64, tiers []domain.PenaltyTier) (domain.PenaltyTier, bool) {
	if len(tiers) == 0 {
		return domain.PenaltyTier{}, false
	}
	sorted := sortTiers(tiers)

	applicable := sorted[0]
	for _, tier := range sorted {
		if shortfall < tier.Threshold {
			break
		}
		applicable = tier
	}
	return applicable, true
}

// ParseTierThreshold extracts the numeric lower bound of a threshold label.
// "< 0.1%" and "> 0.5%" both yield their operand; ranges yield the lower bound.
func ParseTierThreshold(label string) float64 {
	cleaned := strings.NewReplacer("%", "", " ", "", "\t", "").Replace(strings.TrimSpace(label))
	if cleaned == "" {
		return 0
	}

	switch {
	case strings.HasPrefix(cleaned, "<"):
		return numfmt.ParseLocaleNumber(cleaned[1:])
	case strings.Contains(cleaned, "-"):
		lower, _, _ := strings.Cut(cleaned, "-")
		return numfmt.ParseLocaleNumber(lower)
	case strings.HasPrefix(cleaned, ">"):
		return numfmt.ParseLocaleNumber(cleaned[1:])
	default:
		return numfmt.ParseLocaleNumber(cleaned)
	}
}

// ValidateTiers rejects empty or duplicate-threshold schemes and warns about
// thresholds that do not strictly increase.
func ValidateTiers(tiers []domain.PenaltyTier) domain.ValidationResult {
	var r rules
	if len(tiers) == 0 {
		r.fail("At least one penalty tier is required")
		return r.result()
	}

	seen := make(map[float64]bool, len(tiers))
	duplicate := false
	for _, tier := range tiers {
		if seen[tier.Threshold] {
			duplicate = true
		}
		seen[tier.Threshold] = true
	}
	r.failIf(duplicate, "Duplicate tier thresholds found")

	sorted := sortTiers(tiers)
	for i := 0; i < len(sorted)-1; i++ {
		current, next := sorted[i].Threshold, sorted[i+1].Threshold
		r.warnIf(current >= next, fmt.Sprintf(
			"Tier %d threshold (%s%%) should be less than tier %d threshold (%s%%)",
			i+1, formatThreshold(current), i+2, formatThreshold(next)))
	}
	return r.result()
}

// TiersFromRows turns editable rows into tiers named by row position.
// Rows without a threshold label or with a non-positive penalty are skipped.
func TiersFromRows(rows []domain.TierRow) []domain.PenaltyTier {
	tiers := make([]domain.PenaltyTier, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.Threshold) == "" || row.Penalty.Float() <= 0 {
			continue
		}
		tiers = append(tiers, domain.PenaltyTier{
			Threshold:  ParseTierThreshold(row.Threshold),
			Name:       fmt.Sprintf("Tier %d", i+1),
			Percentage: row.Penalty.Float(),
		})
	}
	return sortTiers(tiers)
}

// DefaultTierRows is the scheme shown before any editing.
func DefaultTierRows() []domain.TierRow {
	return []domain.TierRow{
		{Threshold: "0%", Penalty: 5},
		{Threshold: "0.1% - 0.5%", Penalty: 10},
		{Threshold: "> 0.5%", Penalty: 25},
	}
}

func sortTiers(tiers []domain.PenaltyTier) []domain.PenaltyTier {
	sorted := make([]domain.PenaltyTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return sorted
}

func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
