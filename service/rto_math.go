package service

import (
	"math"
	"strconv"

	"techimpact/domain"
)

func CalculateAnnualizedLoss(rtoHours, incidentFrequency, revenuePerHour float64) float64 {
	return rtoHours * incidentFrequency * revenuePerHour
}

// CalculateRPOCost is zero unless a positive data recreation rate is given.
func CalculateRPOCost(rpoHours, incidentFrequency, dataRecreationCostPerHour float64) float64 {
	if dataRecreationCostPerHour <= 0 {
		return 0
	}
	return rpoHours * incidentFrequency * dataRecreationCostPerHour
}

func CalculateRTOImpact(in domain.RTOInput) domain.RTOImpact {
	rtoLoss := CalculateAnnualizedLoss(in.RTOHours, in.IncidentFrequency, in.RevenuePerHour)
	rpoCost := CalculateRPOCost(in.RPOHours, in.IncidentFrequency, in.DataRecreationCostPerHour)
	return domain.RTOImpact{
		RTOLoss:           rtoLoss,
		RPOCost:           rpoCost,
		TotalImpact:       rtoLoss + rpoCost,
		RTOHours:          in.RTOHours,
		RPOHours:          in.RPOHours,
		IncidentFrequency: in.IncidentFrequency,
	}
}

// AssessRiskLevel scores RTO 1-3 (<=1h, <=4h, >4h) and RPO 1-4
// (<=15m, <=1h, <=4h, >4h). A total of 2 is Low, up to 4 Medium, above High.
func AssessRiskLevel(rtoHours, rpoHours float64) domain.RiskAssessment {
	score := 0
	switch {
	case rtoHours <= 1:
		score++
	case rtoHours <= 4:
		score += 2
	default:
		score += 3
	}

	switch {
	case rpoHours <= 0.25:
		score++
	case rpoHours <= 1:
		score += 2
	case rpoHours <= 4:
		score += 3
	default:
		score += 4
	}

	assessment := domain.RiskAssessment{
		Score:   score,
		RTORisk: factorRisk(rtoHours),
		RPORisk: factorRisk(rpoHours),
	}
	switch {
	case score <= 2:
		assessment.Level = domain.RiskLow
		assessment.Description = "Excellent disaster recovery targets. Your business is well-protected."
	case score <= 4:
		assessment.Level = domain.RiskMedium
		assessment.Description = "Good disaster recovery targets with room for improvement."
	default:
		assessment.Level = domain.RiskHigh
		assessment.Description = "Significant risk exposure. Consider improving your disaster recovery targets."
	}
	return assessment
}

func factorRisk(hours float64) domain.RiskLevel {
	switch {
	case hours > 4:
		return domain.RiskHigh
	case hours > 1:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// GenerateRecommendations appends canned advice from every rule whose guard
// holds, in order: RTO, RPO, overall risk, then cost.
func GenerateRecommendations(rtoHours, rpoHours float64, risk domain.RiskAssessment, totalImpact float64) []string {
	var recs []string

	switch {
	case rtoHours > 4:
		recs = append(recs,
			"Consider implementing automated failover systems to reduce RTO to under 4 hours.",
			"Invest in redundant infrastructure and hot standby systems.")
	case rtoHours > 1:
		recs = append(recs,
			"Optimize your recovery procedures to achieve RTO under 1 hour for critical systems.")
	}

	switch {
	case rpoHours > 4:
		recs = append(recs,
			"Implement real-time data replication to reduce RPO to under 4 hours.",
			"Consider continuous backup solutions to minimize data loss.")
	case rpoHours > 1:
		recs = append(recs,
			"Improve backup frequency to achieve RPO under 1 hour.",
			"Implement incremental backups to reduce data loss window.")
	case rpoHours > 0.25:
		recs = append(recs,
			"Consider synchronous replication for critical data to achieve RPO under 15 minutes.")
	}

	switch risk.Level {
	case domain.RiskHigh:
		recs = append(recs,
			"Prioritize disaster recovery improvements to reduce business risk.",
			"Conduct regular disaster recovery testing and training.",
			"Consider engaging disaster recovery specialists for assessment.")
	case domain.RiskMedium:
		recs = append(recs,
			"Regularly review and test your disaster recovery procedures.",
			"Monitor and optimize your current disaster recovery capabilities.")
	default:
		recs = append(recs,
			"Maintain your excellent disaster recovery posture with regular testing.",
			"Consider extending your disaster recovery capabilities to other systems.")
	}

	if totalImpact > HighImpactThreshold {
		recs = append(recs,
			"High financial impact suggests investing in improved disaster recovery is cost-justified.")
	}
	return recs
}

func GetIndustryStandards() domain.IndustryStandards {
	return domain.IndustryStandards{
		Critical:  domain.Benchmark{RTO: 1, RPO: 0.25},
		Important: domain.Benchmark{RTO: 4, RPO: 1},
		Standard:  domain.Benchmark{RTO: 24, RPO: 4},
	}
}

// CalculateComparison expresses target against three benchmark values
// (critical, important, standard), each capped at 100%.
func CalculateComparison(target, critical, important, standard float64) domain.Comparison {
	c := domain.Comparison{
		Critical:  math.Min(target/critical*100, 100),
		Important: math.Min(target/important*100, 100),
		Standard:  math.Min(target/standard*100, 100),
	}
	switch {
	case target <= critical:
		c.RiskLevel = domain.RiskLow
	case target <= important:
		c.RiskLevel = domain.RiskMedium
	default:
		c.RiskLevel = domain.RiskHigh
	}
	return c
}

func CostPerIncident(totalCost, incidentFrequency float64) float64 {
	if incidentFrequency <= 0 {
		return 0
	}
	return totalCost / incidentFrequency
}

func ValidateRTOInputs(in domain.RTOInput) domain.ValidationResult {
	var r rules
	r.failIf(in.RTOHours <= 0, "RTO must be greater than 0 hours")
	r.failIf(in.RPOHours <= 0, "RPO must be greater than 0 hours")
	r.failIf(in.IncidentFrequency <= 0, "Incident frequency must be greater than 0")
	r.failIf(in.RevenuePerHour <= 0, "Revenue per hour must be greater than 0")
	r.warnIf(in.RTOHours > MaxDurationHours,
		"RTO exceeds 1 week - consider if this is realistic for business continuity")
	r.warnIf(in.RPOHours > MaxDurationHours,
		"RPO exceeds 1 week - consider if this is acceptable for data loss")
	r.warnIf(in.IncidentFrequency > MaxIncidentsPerYear,
		"Incident frequency exceeds daily - consider if this is realistic")
	r.failIf(in.DataRecreationCostPerHour < 0, "Data recreation cost cannot be negative")
	return r.result()
}

// FormatRecoveryDuration renders hours compactly: "30m", "2h 30m", "1d 2h".
func FormatRecoveryDuration(hours float64) string {
	if hours < 1 {
		return strconv.FormatFloat(math.Round(hours*60), 'f', 0, 64) + "m"
	}
	if hours < 24 {
		whole := math.Floor(hours)
		minutes := math.Round((hours - whole) * 60)
		if minutes == 0 {
			return strconv.FormatFloat(whole, 'f', 0, 64) + "h"
		}
		return strconv.FormatFloat(whole, 'f', 0, 64) + "h " + strconv.FormatFloat(minutes, 'f', 0, 64) + "m"
	}
	days := math.Floor(hours / 24)
	remaining := math.Mod(hours, 24)
	if remaining == 0 {
		return strconv.FormatFloat(days, 'f', 0, 64) + "d"
	}
	return strconv.FormatFloat(days, 'f', 0, 64) + "d " + strconv.FormatFloat(remaining, 'f', -1, 64) + "h"
}
