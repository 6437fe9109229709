package http

import (
	"net/http"

	"techimpact/service"
)

// StateHandler restores form values from a share link token.
type StateHandler struct{}

func NewStateHandler() *StateHandler { return &StateHandler{} }

func (h *StateHandler) Decode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	fields, err := service.DecodeState(r.PathValue("token"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid state token"})
		return
	}
	writeJSON(w, http.StatusOK, fields)
}
