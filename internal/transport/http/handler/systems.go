package handler

import (
	"net/http"

	"github.com/hr-autoflow-api/internal/application/system"
)

// SystemHandler handles system and automation-status endpoints.
type SystemHandler struct {
	svc system.Service
}

func NewSystemHandler(svc system.Service) *SystemHandler {
	return &SystemHandler{svc: svc}
}

func (h *SystemHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *SystemHandler) Catalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Catalog())
}

func (h *SystemHandler) Automations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Automations())
}

func (h *SystemHandler) RunningAutomations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CountEnvelope{Count: h.svc.RunningCount()})
}
