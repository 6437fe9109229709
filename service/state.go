package service

import (
	"encoding/base64"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"techimpact/domain"
)

// EncodeState packs form values into a shareable token: base64 of a JSON object.
func EncodeState(fields map[string]string) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeState reverses EncodeState. Callers restoring a form ignore errors
// and fall back to defaults; the payload is neither versioned nor validated.
func DecodeState(token string) (map[string]string, error) {
	token = strings.TrimPrefix(strings.TrimSpace(token), "#")
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			return nil, errors.Wrap(err, "decode state token")
		}
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(err, "parse state token")
	}
	fields := make(map[string]string, len(generic))
	for k, v := range generic {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case nil:
			fields[k] = ""
		default:
			b, _ := json.Marshal(val)
			fields[k] = string(b)
		}
	}
	return fields, nil
}

func slaState(req domain.PenaltyRequest) map[string]string {
	fields := map[string]string{
		"contract": req.ContractValue.String(),
		"promised": req.PromisedUptime.String(),
		"uptime":   req.AchievedUptime.String(),
		"period":   req.Period,
		"currency": req.Currency,
	}
	if req.DowntimeMinutes != nil {
		fields["downtime"] = req.DowntimeMinutes.String()
	}
	if req.Period == "custom" {
		fields["customDays"] = req.CustomPeriodDays.String()
	}
	return fields
}

func downtimeState(req domain.DowntimeRequest) map[string]string {
	return map[string]string{
		"revenue":    req.RevenuePerHour.String(),
		"hours":      req.OutageHours.String(),
		"minutes":    req.OutageMinutes.String(),
		"refund":     req.RefundRate.String(),
		"conversion": req.ConversionDrop.String(),
		"employees":  req.AffectedEmployees.String(),
		"hourlyCost": req.HourlyCostPerEmployee.String(),
		"incidents":  req.IncidentsPerYear.String(),
	}
}

func rtoState(req domain.RTORequest) map[string]string {
	return map[string]string{
		"rto":       req.RTOHours.String(),
		"rpo":       req.RPOHours.String(),
		"frequency": req.IncidentFrequency.String(),
		"revenue":   req.RevenuePerHour.String(),
		"dataCost":  req.DataRecreationCost.String(),
	}
}
