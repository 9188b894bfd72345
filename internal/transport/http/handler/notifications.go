package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hr-autoflow-api/internal/application/notification"
	"github.com/hr-autoflow-api/internal/domain"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List supports ?filter=all|unread|important (default all).
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.List(r.URL.Query().Get("filter"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CountEnvelope{Count: h.svc.UnreadCount()})
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft domain.NotificationDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.svc.Add(draft)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// MarkRead is a no-op for unknown ids: the caller may race with a removal.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.svc.MarkRead(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "marked as read"})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, _ *http.Request) {
	h.svc.MarkAllRead()
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "all marked as read"})
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.svc.Remove(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "notification removed"})
}
