package domain

import "time"

type DowntimeInput struct {
	RevenuePerHour        float64
	DurationHours         float64
	RefundRate            float64
	ConversionDropRate    float64
	AffectedEmployees     float64
	HourlyCostPerEmployee float64
}

type DowntimeResult struct {
	RevenueLoss          float64 `json:"revenueLoss"`
	RefundCosts          float64 `json:"refundCosts"`
	ProductivityLoss     float64 `json:"productivityLoss"`
	ConversionDropImpact float64 `json:"conversionDropImpact"`
	TotalLoss            float64 `json:"totalLoss"`
	DurationHours        float64 `json:"durationHours"`
}

type DowntimeRequest struct {
	RevenuePerHour        Number     `json:"revenuePerHour"`
	OutageHours           Number     `json:"outageHours"`
	OutageMinutes         Number     `json:"outageMinutes"`
	StartTime             *time.Time `json:"startTime,omitempty"`
	EndTime               *time.Time `json:"endTime,omitempty"`
	RefundRate            Number     `json:"refundRate"`
	ConversionDrop        Number     `json:"conversionDrop"`
	AffectedEmployees     Number     `json:"affectedEmployees"`
	HourlyCostPerEmployee Number     `json:"hourlyCostPerEmployee"`
	IncidentsPerYear      Number     `json:"incidentsPerYear"`
	Currency              string     `json:"currency"`
}

// DowntimeFormatted holds the rendered amounts that exports are built from.
type DowntimeFormatted struct {
	TotalLoss            string `json:"totalLoss"`
	RevenueLoss          string `json:"revenueLoss"`
	RefundCosts          string `json:"refundCosts"`
	ProductivityLoss     string `json:"productivityLoss"`
	ConversionDropImpact string `json:"conversionDropImpact"`
	AnnualLoss           string `json:"annualLoss"`
	CostPerMinute        string `json:"costPerMinute"`
	Duration             string `json:"duration"`
	// TotalLossCompact labels the sparkline ("22.0K").
	TotalLossCompact string `json:"totalLossCompact"`
}

type DowntimeResponse struct {
	Result         DowntimeResult    `json:"result"`
	AnnualLoss     float64           `json:"annualLoss"`
	CostPerMinute  float64           `json:"costPerMinute"`
	CumulativeLoss []float64         `json:"cumulativeLoss"`
	Formatted      DowntimeFormatted `json:"formatted"`
	Warnings       []string          `json:"warnings,omitempty"`
	State          string            `json:"state"`
}
