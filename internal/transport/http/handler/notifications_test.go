package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hr-autoflow-api/internal/application/notification"
	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationHandler() (*NotificationHandler, *memory.NotificationStore) {
	seed := []domain.Notification{
		{NotificationID: "n1", Title: "Falha Detectada", Type: domain.NotifError, Priority: domain.PriorityHigh, ActionRequired: true},
		{NotificationID: "n2", Title: "Sistema Atualizado", Type: domain.NotifInfo, Read: true},
	}
	store := memory.NewNotificationStore(seed, 0, nil)
	return NewNotificationHandler(notification.NewService(store)), store
}

func TestList_FilterImportant(t *testing.T) {
	h, _ := newNotificationHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications?filter=important", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].NotificationID)
}

func TestList_UnknownFilterIsBadRequest(t *testing.T) {
	h, _ := newNotificationHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications?filter=starred", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUnreadCount(t *testing.T) {
	h, _ := newNotificationHandler()

	rr := httptest.NewRecorder()
	h.UnreadCount(rr, httptest.NewRequest(http.MethodGet, "/v1/notifications/unread-count", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var env CountEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, 1, env.Count)
}

func TestCreate_ValidDraft(t *testing.T) {
	h, store := newNotificationHandler()

	body := `{"title":"X","message":"Y","type":"info"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	head := store.List()[0]
	assert.Equal(t, "X", head.Title)
	assert.False(t, head.Read)
}

func TestCreate_InvalidTypeRejected(t *testing.T) {
	h, store := newNotificationHandler()

	body := `{"title":"X","message":"Y","type":"loud"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 2, store.Len())
}
