package service

import (
	"fmt"
	"math"
	"strings"

	"techimpact/domain"
	"techimpact/numfmt"
)

// PeriodDays resolves the period selector; unknown or empty values mean 30.
func PeriodDays(period string, customDays float64) float64 {
	switch strings.TrimSpace(period) {
	case "custom":
		if customDays > 0 {
			return customDays
		}
		return DefaultPeriodDays
	case "":
		return DefaultPeriodDays
	}
	days := numfmt.ParseLocaleNumber(period)
	if days <= 0 {
		return DefaultPeriodDays
	}
	return math.Trunc(days)
}

// DowntimeStatus compares actual downtime with the allowance, in whole minutes.
func DowntimeStatus(actualDowntime, allowedDowntime float64) string {
	difference := actualDowntime - allowedDowntime
	if difference <= 0 {
		return fmt.Sprintf("Within allowance by %s min", numfmt.Minutes(math.Abs(difference)))
	}
	return fmt.Sprintf("Exceeded allowance by %s min", numfmt.Minutes(difference))
}

func PenaltyExplanation(result domain.PenaltyResult) string {
	if result.Tier == NoPenaltyTier {
		return "Your uptime met or exceeded the SLA. No penalty applies."
	}
	return fmt.Sprintf("Falls into %s (%s%% of contract).",
		result.Tier, formatThreshold(result.AppliedPercentage))
}

func PenaltyExplanationList(result domain.PenaltyResult) []string {
	items := []string{
		"Promised uptime: " + numfmt.Percentage(result.PromisedUptime, 2),
		"Actual uptime: " + numfmt.Percentage(result.ActualUptime, 2),
		"Shortfall: " + numfmt.Percentage(result.Shortfall, 2),
	}
	if result.Tier == NoPenaltyTier {
		return append(items, "Reason: Met or exceeded SLA. No penalty applies.")
	}
	return append(items, "Reason: "+PenaltyExplanation(result))
}

func TierBadgeClass(tierName string) string {
	switch strings.ToLower(tierName) {
	case "no penalty":
		return "badge-success"
	case "tier 1":
		return "badge-warning"
	case "tier 2":
		return "badge-orange"
	case "tier 3":
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// TierColor is the traffic-light colour for a tier.
func TierColor(tierName string) string {
	switch strings.ToLower(tierName) {
	case "no penalty":
		return "#16a34a"
	case "tier 1":
		return "#f59e0b"
	case "tier 2":
		return "#fb923c"
	case "tier 3":
		return "#ef4444"
	default:
		return "#6b7280"
	}
}

// MarkerPosition places the shortfall marker on the tier bar, as a percentage
// of the bar width between 5 and 95.
func MarkerPosition(result domain.PenaltyResult) float64 {
	if result.Tier == NoPenaltyTier || result.Shortfall <= 0 {
		return 5
	}
	return math.Min(result.Shortfall/MaxTrafficLightPercent*100, 95)
}
