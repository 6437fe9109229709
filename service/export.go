package service

import (
	"fmt"
	"strings"

	"techimpact/domain"
)

// quotedCSV quotes every field, doubling embedded quotes, and joins rows with \n.
func quotedCSV(header [2]string, rows [][2]string) string {
	lines := make([]string, 0, len(rows)+1)
	for _, row := range append([][2]string{header}, rows...) {
		lines = append(lines, quoteField(row[0])+","+quoteField(row[1]))
	}
	return strings.Join(lines, "\n")
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// DowntimeCSV exports the rendered downtime amounts.
func DowntimeCSV(resp domain.DowntimeResponse) string {
	f := resp.Formatted
	return quotedCSV([2]string{"Metric", "Amount"}, [][2]string{
		{"Revenue Loss", f.RevenueLoss},
		{"Refund Costs", f.RefundCosts},
		{"Productivity Loss", f.ProductivityLoss},
		{"Conversion Drop Impact", f.ConversionDropImpact},
		{"Total Loss", f.TotalLoss},
		{"Annual Loss", f.AnnualLoss},
	})
}

func DowntimeSummary(resp domain.DowntimeResponse) string {
	f := resp.Formatted
	return fmt.Sprintf(`Downtime Cost Analysis Summary:

Total Loss: %s
- Revenue Loss: %s
- Refund Costs: %s
- Productivity Loss: %s
- Conversion Drop Impact: %s

Annualized Impact: %s

Generated by TechImpact.online Downtime Cost Calculator`,
		f.TotalLoss, f.RevenueLoss, f.RefundCosts, f.ProductivityLoss, f.ConversionDropImpact, f.AnnualLoss)
}

// RTOCSV exports the rendered RTO/RPO figures.
func RTOCSV(resp domain.RTOResponse) string {
	f := resp.Formatted
	return quotedCSV([2]string{"Metric", "Value"}, [][2]string{
		{"Annualized Loss", f.AnnualizedLoss},
		{"RTO Loss", f.RTOLoss},
		{"RPO Cost", f.RPOCost},
		{"Total Impact", f.TotalImpact},
		{"Risk Level", f.RiskLevel},
		{"RTO Target", f.RTOTarget},
		{"RPO Target", f.RPOTarget},
	})
}

func RTOSummary(resp domain.RTOResponse) string {
	f := resp.Formatted
	return fmt.Sprintf(`RTO/RPO Impact Analysis Summary:

Annualized Loss: %s

Cost Breakdown:
- RTO Loss: %s
- RPO Cost: %s
- Total Impact: %s

Risk Assessment:
Risk Level: %s
RTO Target: %s
RPO Target: %s

Generated by TechImpact.online RTO/RPO Impact Calculator`,
		f.AnnualizedLoss, f.RTOLoss, f.RPOCost, f.TotalImpact, f.RiskLevel, f.RTOTarget, f.RPOTarget)
}

// PenaltySummary is the text block for the SLA calculator.
func PenaltySummary(resp domain.PenaltyResponse) string {
	var b strings.Builder
	b.WriteString("SLA Penalty Summary:\n\n")
	fmt.Fprintf(&b, "Total SLA Penalty: %s\n", resp.FormattedPenalty)
	fmt.Fprintf(&b, "Tier: %s\n", resp.Result.Tier)
	for _, item := range resp.Explanation {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	b.WriteString("\nEstimates only. Check your contract.\n\n")
	b.WriteString("Generated by TechImpact.online SLA Penalty Calculator")
	return b.String()
}
