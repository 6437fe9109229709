package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/service"
)

type DowntimeHandler struct {
	service *service.DowntimeService
	log     zerolog.Logger
}

func NewDowntimeHandler(service *service.DowntimeService, log zerolog.Logger) *DowntimeHandler {
	return &DowntimeHandler{service: service, log: log}
}

func (h *DowntimeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *DowntimeHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeText(w, "text/csv; charset=utf-8", "downtime-cost.csv", service.DowntimeCSV(resp))
	}
}

func (h *DowntimeHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeText(w, "text/plain; charset=utf-8", "", service.DowntimeSummary(resp))
	}
}

func (h *DowntimeHandler) calculate(w http.ResponseWriter, r *http.Request) (domain.DowntimeResponse, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return domain.DowntimeResponse{}, false
	}

	var req domain.DowntimeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequestBody(w)
		return domain.DowntimeResponse{}, false
	}

	resp, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		writeCalculationError(w, requestLog(r, h.log), err)
		return domain.DowntimeResponse{}, false
	}
	return resp, true
}
