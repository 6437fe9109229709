package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"techimpact/domain"
	"techimpact/service"
)

type LeadHandler struct {
	service *service.LeadService
	log     zerolog.Logger
}

func NewLeadHandler(service *service.LeadService, log zerolog.Logger) *LeadHandler {
	return &LeadHandler{service: service, log: log}
}

func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var input domain.LeadInput
	if err := decodeJSON(w, r, &input); err != nil {
		badRequestBody(w)
		return
	}

	lead, err := h.service.Submit(r.Context(), input)
	if err != nil {
		var verr *service.LeadValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string][]service.FieldError{"errors": verr.Fields})
			return
		}
		log := requestLog(r, h.log)
		log.Error().Err(err).Msg("trial request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "There was an error submitting your request. Please try again.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}
