package domain

// PenaltyTier is a penalty band: any shortfall at or above Threshold
// (and below the next tier's threshold) costs Percentage of the contract.
type PenaltyTier struct {
	Threshold  float64 `json:"threshold"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// TierRow is an editable tier as typed by a user: a threshold label such
// as "< 0.1%", "0.1% - 0.5%", "> 0.5%" or "0.25" and a penalty percentage.
type TierRow struct {
	Threshold string `json:"threshold" yaml:"threshold"`
	Penalty   Number `json:"penalty" yaml:"penalty"`
}

type PenaltyInput struct {
	ContractValue  float64
	PromisedUptime float64
	ActualUptime   float64
	Tiers          []PenaltyTier
}

type PenaltyResult struct {
	TotalPenalty      float64 `json:"totalPenalty"`
	Tier              string  `json:"tier"`
	Shortfall         float64 `json:"shortfall"`
	AppliedPercentage float64 `json:"appliedPercentage"`
	ActualUptime      float64 `json:"actualUptime"`
	PromisedUptime    float64 `json:"promisedUptime"`
}

type PenaltyRequest struct {
	ContractValue  Number `json:"contractValue"`
	PromisedUptime Number `json:"promisedUptime"`
	// DowntimeMinutes takes precedence over AchievedUptime when present.
	DowntimeMinutes  *Number   `json:"downtimeMinutes,omitempty"`
	AchievedUptime   Number    `json:"achievedUptime"`
	Period           string    `json:"period"` // "30", "90", "365" or "custom"
	CustomPeriodDays Number    `json:"customPeriodDays"`
	Currency         string    `json:"currency"`
	Tiers            []TierRow `json:"tiers"`
}

type PenaltyResponse struct {
	Result                 PenaltyResult `json:"result"`
	PeriodDays             float64       `json:"periodDays"`
	AllowedDowntimeMinutes float64       `json:"allowedDowntimeMinutes"`
	DowntimeStatus         string        `json:"downtimeStatus,omitempty"`
	FormattedPenalty       string        `json:"formattedPenalty"`
	Explanation            []string      `json:"explanation"`
	BadgeClass             string        `json:"badgeClass"`
	TierColor              string        `json:"tierColor"`
	MarkerPosition         float64       `json:"markerPosition"`
	Warnings               []string      `json:"warnings,omitempty"`
	State                  string        `json:"state"`
}
