package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techimpact/domain"
)

func TestPeriodDays(t *testing.T) {
	assert.Equal(t, 30.0, PeriodDays("30", 0))
	assert.Equal(t, 90.0, PeriodDays("90", 0))
	assert.Equal(t, 365.0, PeriodDays("365", 12))
	assert.Equal(t, 45.0, PeriodDays("custom", 45))
	assert.Equal(t, 30.0, PeriodDays("custom", 0))
	assert.Equal(t, 30.0, PeriodDays("", 0))
	assert.Equal(t, 30.0, PeriodDays("weekly", 0))
}

func TestDowntimeStatus(t *testing.T) {
	assert.Equal(t, "Within allowance by 13 min", DowntimeStatus(30, 43.2))
	assert.Equal(t, "Exceeded allowance by 77 min", DowntimeStatus(120, 43.2))
	assert.Equal(t, "Within allowance by 0 min", DowntimeStatus(43.2, 43.2))
}

func TestPenaltyExplanationList(t *testing.T) {
	items := PenaltyExplanationList(domain.PenaltyResult{
		Tier:              "Tier 2",
		AppliedPercentage: 10,
		PromisedUptime:    99.95,
		ActualUptime:      99.72,
		Shortfall:         0.23,
	})
	assert.Equal(t, []string{
		"Promised uptime: 99.95%",
		"Actual uptime: 99.72%",
		"Shortfall: 0.23%",
		"Reason: Falls into Tier 2 (10% of contract).",
	}, items)

	met := PenaltyExplanationList(domain.PenaltyResult{Tier: NoPenaltyTier, PromisedUptime: 99, ActualUptime: 100})
	assert.Equal(t, "Reason: Met or exceeded SLA. No penalty applies.", met[len(met)-1])
}

func TestTierStyling(t *testing.T) {
	assert.Equal(t, "badge-success", TierBadgeClass(NoPenaltyTier))
	assert.Equal(t, "badge-orange", TierBadgeClass("Tier 2"))
	assert.Equal(t, "badge-secondary", TierBadgeClass("Tier 7"))
	assert.Equal(t, "#ef4444", TierColor("tier 3"))
	assert.Equal(t, "#6b7280", TierColor(""))
}

func TestMarkerPosition(t *testing.T) {
	assert.Equal(t, 5.0, MarkerPosition(domain.PenaltyResult{Tier: NoPenaltyTier}))
	assert.InDelta(t, 25.0, MarkerPosition(domain.PenaltyResult{Tier: "Tier 2", Shortfall: 0.5}), 1e-9)
	assert.Equal(t, 95.0, MarkerPosition(domain.PenaltyResult{Tier: "Tier 3", Shortfall: 4}))
}
