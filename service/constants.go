package service

const (
	NoPenaltyTier     = "No penalty"
	DefaultPeriodDays = 30.0
	MinutesPerDay     = 24 * 60

	MaxDurationHours       = 168.0 // a week; longer outages only warn
	MaxIncidentsPerYear    = 365.0 // more than daily only warns
	HighImpactThreshold    = 100_000.0
	MaxTrafficLightPercent = 2.0 // shortfall shown at the far end of the tier bar

	SparklinePoints = 20
	MaxTierRows     = 20
)
