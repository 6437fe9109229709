package domain

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type RTOInput struct {
	RTOHours                  float64
	RPOHours                  float64
	IncidentFrequency         float64
	RevenuePerHour            float64
	DataRecreationCostPerHour float64
}

type RTOImpact struct {
	RTOLoss           float64 `json:"rtoLoss"`
	RPOCost           float64 `json:"rpoCost"`
	TotalImpact       float64 `json:"totalImpact"`
	RTOHours          float64 `json:"rtoHours"`
	RPOHours          float64 `json:"rpoHours"`
	IncidentFrequency float64 `json:"incidentFrequency"`
}

type RiskAssessment struct {
	Level       RiskLevel `json:"level"`
	Score       int       `json:"score"`
	Description string    `json:"description"`
	RTORisk     RiskLevel `json:"rtoRisk"`
	RPORisk     RiskLevel `json:"rpoRisk"`
}

// Benchmark is a recovery target pair in hours.
type Benchmark struct {
	RTO float64 `json:"rto"`
	RPO float64 `json:"rpo"`
}

type IndustryStandards struct {
	Critical  Benchmark `json:"critical"`
	Important Benchmark `json:"important"`
	Standard  Benchmark `json:"standard"`
}

// Comparison expresses a target as a share of each benchmark, capped at 100.
type Comparison struct {
	Critical  float64   `json:"critical"`
	Important float64   `json:"important"`
	Standard  float64   `json:"standard"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

type RTORequest struct {
	RTOHours           Number `json:"rtoHours"`
	RPOHours           Number `json:"rpoHours"`
	IncidentFrequency  Number `json:"incidentFrequency"`
	RevenuePerHour     Number `json:"revenuePerHour"`
	DataRecreationCost Number `json:"dataRecreationCost"`
	Currency           string `json:"currency"`
}

type RTOFormatted struct {
	AnnualizedLoss  string `json:"annualizedLoss"`
	RTOLoss         string `json:"rtoLoss"`
	RPOCost         string `json:"rpoCost"`
	TotalImpact     string `json:"totalImpact"`
	RiskLevel       string `json:"riskLevel"`
	RTOTarget       string `json:"rtoTarget"`
	RPOTarget       string `json:"rpoTarget"`
	CostPerIncident string `json:"costPerIncident"`
}

type RTOResponse struct {
	Impact          RTOImpact      `json:"impact"`
	Risk            RiskAssessment `json:"risk"`
	Recommendations []string       `json:"recommendations"`
	RTOComparison   Comparison     `json:"rtoComparison"`
	RPOComparison   Comparison     `json:"rpoComparison"`
	CostPerIncident float64        `json:"costPerIncident"`
	Formatted       RTOFormatted   `json:"formatted"`
	Warnings        []string       `json:"warnings,omitempty"`
	State           string         `json:"state"`
}
