package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/service"
)

type RTOHandler struct {
	service *service.RTOService
	log     zerolog.Logger
}

func NewRTOHandler(service *service.RTOService, log zerolog.Logger) *RTOHandler {
	return &RTOHandler{service: service, log: log}
}

func (h *RTOHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *RTOHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeText(w, "text/csv; charset=utf-8", "rto-rpo-impact.csv", service.RTOCSV(resp))
	}
}

func (h *RTOHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if resp, ok := h.calculate(w, r); ok {
		writeText(w, "text/plain; charset=utf-8", "", service.RTOSummary(resp))
	}
}

func (h *RTOHandler) calculate(w http.ResponseWriter, r *http.Request) (domain.RTOResponse, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return domain.RTOResponse{}, false
	}

	var req domain.RTORequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequestBody(w)
		return domain.RTOResponse{}, false
	}

	resp, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		writeCalculationError(w, requestLog(r, h.log), err)
		return domain.RTOResponse{}, false
	}
	return resp, true
}
