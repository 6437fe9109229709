package service

import (
	"fmt"
	"math"
	"time"

	"techimpact/domain"
)

// CalculateDuration returns the outage length in hours. A start/end pair
// wins when both are set and end is not before start; otherwise the
// explicit hours and minutes are used.
func CalculateDuration(hours, minutes float64, start, end *time.Time) float64 {
	if start != nil && end != nil && !start.IsZero() && !end.IsZero() {
		if d := end.Sub(*start); d >= 0 {
			return d.Hours()
		}
	}
	return (hours*60 + minutes) / 60
}

func RevenueLoss(revenuePerHour, durationHours float64) float64 {
	return revenuePerHour * durationHours
}

func RefundCosts(revenueLoss, refundRate float64) float64 {
	return revenueLoss * (refundRate / 100)
}

func ProductivityLoss(affectedEmployees, hourlyCostPerEmployee, durationHours float64) float64 {
	return affectedEmployees * hourlyCostPerEmployee * durationHours
}

func ConversionDropImpact(revenueLoss, conversionDropRate float64) float64 {
	return revenueLoss * (conversionDropRate / 100)
}

// CalculateDowntimeCost breaks one incident's cost into its four parts.
// TotalLoss is always their exact sum.
func CalculateDowntimeCost(in domain.DowntimeInput) domain.DowntimeResult {
	revenueLoss := RevenueLoss(in.RevenuePerHour, in.DurationHours)
	refundCosts := RefundCosts(revenueLoss, in.RefundRate)
	productivityLoss := ProductivityLoss(in.AffectedEmployees, in.HourlyCostPerEmployee, in.DurationHours)
	conversionDrop := ConversionDropImpact(revenueLoss, in.ConversionDropRate)

	return domain.DowntimeResult{
		RevenueLoss:          revenueLoss,
		RefundCosts:          refundCosts,
		ProductivityLoss:     productivityLoss,
		ConversionDropImpact: conversionDrop,
		TotalLoss:            revenueLoss + refundCosts + productivityLoss + conversionDrop,
		DurationHours:        in.DurationHours,
	}
}

func CalculateAnnualizedImpact(singleIncidentCost, incidentsPerYear float64) float64 {
	return singleIncidentCost * incidentsPerYear
}

func CostPerMinute(totalCost, durationHours float64) float64 {
	minutes := durationHours * 60
	if minutes <= 0 {
		return 0
	}
	return totalCost / minutes
}

// CumulativeLoss spreads totalLoss linearly over points+1 samples for the
// loss sparkline.
func CumulativeLoss(totalLoss float64, points int) []float64 {
	if points <= 0 {
		points = SparklinePoints
	}
	data := make([]float64, 0, points+1)
	increment := totalLoss / float64(points)
	for i := 0; i <= points; i++ {
		data = append(data, float64(i)*increment)
	}
	return data
}

func ValidateDowntimeInputs(in domain.DowntimeInput) domain.ValidationResult {
	var r rules
	r.failIf(in.RevenuePerHour <= 0, "Revenue per hour must be greater than 0")
	r.failIf(in.DurationHours <= 0, "Duration must be greater than 0 hours")
	r.warnIf(in.DurationHours > MaxDurationHours, "Duration exceeds 1 week - consider if this is realistic")
	r.failIf(in.RefundRate < 0 || in.RefundRate > 100, "Refund rate must be between 0 and 100 percent")
	r.failIf(in.ConversionDropRate < 0 || in.ConversionDropRate > 100,
		"Conversion drop rate must be between 0 and 100 percent")
	r.failIf(in.AffectedEmployees < 0, "Number of affected employees cannot be negative")
	r.failIf(in.HourlyCostPerEmployee < 0, "Hourly cost per employee cannot be negative")
	return r.result()
}

// FormatDowntimeDuration renders hours as "45 minutes", "2 hours" or "1h 30m".
func FormatDowntimeDuration(hours float64) string {
	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	if minutes == 60 {
		whole++
		minutes = 0
	}

	switch {
	case whole == 0:
		return fmt.Sprintf("%.0f minutes", minutes)
	case minutes == 0:
		if whole == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%.0f hours", whole)
	default:
		return fmt.Sprintf("%.0fh %.0fm", whole, minutes)
	}
}
