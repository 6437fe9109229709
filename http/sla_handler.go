package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/service"
)

type SLAHandler struct {
	service *service.SLAService
	log     zerolog.Logger
}

func NewSLAHandler(service *service.SLAService, log zerolog.Logger) *SLAHandler {
	return &SLAHandler{service: service, log: log}
}

func (h *SLAHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.calculate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *SLAHandler) Summary(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.calculate(w, r)
	if !ok {
		return
	}
	writeText(w, "text/plain; charset=utf-8", "", service.PenaltySummary(resp))
}

func (h *SLAHandler) DefaultTiers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.TierRow{"tiers": h.service.DefaultTiers()})
}

func (h *SLAHandler) calculate(w http.ResponseWriter, r *http.Request) (domain.PenaltyResponse, bool) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return domain.PenaltyResponse{}, false
	}

	var req domain.PenaltyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequestBody(w)
		return domain.PenaltyResponse{}, false
	}

	resp, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		writeCalculationError(w, requestLog(r, h.log), err)
		return domain.PenaltyResponse{}, false
	}
	return resp, true
}
