package handler

import (
	"net/http"

	"github.com/hr-autoflow-api/internal/application/gamification"
	"github.com/hr-autoflow-api/internal/application/session"
)

// GamificationHandler handles badge, leaderboard and progress endpoints.
type GamificationHandler struct {
	svc     gamification.Service
	session session.Service
}

func NewGamificationHandler(svc gamification.Service, sess session.Service) *GamificationHandler {
	return &GamificationHandler{svc: svc, session: sess}
}

func (h *GamificationHandler) Badges(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Badges())
}

func (h *GamificationHandler) Leaderboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Leaderboard())
}

// Progress reports the current operator's level progress.
func (h *GamificationHandler) Progress(w http.ResponseWriter, _ *http.Request) {
	u := h.session.Current()
	if u == nil {
		writeError(w, http.StatusUnauthorized, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Progress(u))
}
