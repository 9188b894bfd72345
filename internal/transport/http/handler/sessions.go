package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hr-autoflow-api/internal/application/session"
	"github.com/hr-autoflow-api/internal/pkg/validate"
)

// SessionHandler handles session endpoints.
type SessionHandler struct {
	svc session.Service
}

func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req session.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, ok := h.svc.Login(r.Context(), req)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Bearer: result.Bearer, User: result.User})
}

func (h *SessionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	u := h.svc.Current()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, SessionEnvelope{User: u})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.svc.Logout()
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}
