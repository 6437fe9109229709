package http

import (
	"net/http"
	"strings"

	"techimpact/service"
)

type PartialHandler struct {
	service *service.PartialService
}

func NewPartialHandler(service *service.PartialService) *PartialHandler {
	return &PartialHandler{service: service}
}

// Get always answers 200; an unreachable partial yields fallback markup.
func (h *PartialHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	name := r.PathValue("name")
	if name == "" || strings.Contains(name, "..") {
		http.Error(w, "invalid partial name", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write([]byte(h.service.Load(r.Context(), name)))
}
