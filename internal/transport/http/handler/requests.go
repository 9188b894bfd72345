package handler

import (
	"net/http"
	"strconv"

	"github.com/hr-autoflow-api/internal/application/request"
)

// RequestHandler handles access-request endpoints.
type RequestHandler struct {
	svc request.Service
}

func NewRequestHandler(svc request.Service) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// List supports ?status= and ?type= selectors.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	requests, err := h.svc.List(q.Get("status"), q.Get("type"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

// Recent supports ?limit= (default 5).
func (h *RequestHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, h.svc.Recent(limit))
}

func (h *RequestHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

func (h *RequestHandler) HRStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.HRStats())
}
