package notification

import (
	"errors"
	"testing"

	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService() (Service, *memory.NotificationStore) {
	seed := []domain.Notification{
		{NotificationID: "n1", Title: "Falha Detectada", Type: domain.NotifError, Priority: domain.PriorityHigh, ActionRequired: true},
		{NotificationID: "n2", Title: "Sistema Atualizado", Type: domain.NotifInfo, Priority: domain.PriorityLow},
		{NotificationID: "n3", Title: "Onboarding Concluído", Type: domain.NotifSuccess, Read: true},
	}
	store := memory.NewNotificationStore(seed, 0, nil)
	return NewService(store), store
}

func TestList_AllAndEmptyFilterAreEquivalent(t *testing.T) {
	svc, _ := seededService()

	all, err := svc.List("")
	require.NoError(t, err)
	explicit, err := svc.List(FilterAll)
	require.NoError(t, err)

	assert.Equal(t, all, explicit)
	assert.Len(t, all, 3)
}

func TestList_UnreadFilter(t *testing.T) {
	svc, _ := seededService()

	unread, err := svc.List(FilterUnread)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	for _, n := range unread {
		assert.False(t, n.Read)
	}
}

func TestList_ImportantFilter(t *testing.T) {
	svc, _ := seededService()

	important, err := svc.List(FilterImportant)
	require.NoError(t, err)
	require.Len(t, important, 1)
	assert.Equal(t, "n1", important[0].NotificationID)
}

func TestList_UnknownFilterRejected(t *testing.T) {
	svc, _ := seededService()

	_, err := svc.List("starred")
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestAdd_ValidDraftReachesHead(t *testing.T) {
	svc, store := seededService()

	created, err := svc.Add(domain.NotificationDraft{Title: "X", Message: "Y", Type: domain.NotifInfo})
	require.NoError(t, err)
	assert.False(t, created.Read)
	assert.NotEmpty(t, created.NotificationID)

	head := store.List()[0]
	assert.Equal(t, "X", head.Title)
	assert.Equal(t, created.NotificationID, head.NotificationID)
}

func TestAdd_InvalidDraftRejected(t *testing.T) {
	svc, store := seededService()

	_, err := svc.Add(domain.NotificationDraft{Title: "X", Message: "Y", Type: "loud"})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Equal(t, 3, store.Len())

	_, err = svc.Add(domain.NotificationDraft{Message: "no title", Type: domain.NotifInfo})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestReadTransitions_Scenario(t *testing.T) {
	seed := []domain.Notification{
		{NotificationID: "a", Type: domain.NotifInfo},
		{NotificationID: "b", Type: domain.NotifInfo},
		{NotificationID: "c", Type: domain.NotifInfo},
	}
	svc := NewService(memory.NewNotificationStore(seed, 0, nil))

	assert.Equal(t, 3, svc.UnreadCount())
	svc.MarkRead("b")
	assert.Equal(t, 2, svc.UnreadCount())
	svc.MarkAllRead()
	assert.Equal(t, 0, svc.UnreadCount())
}

func TestRemove_ForwardedToStore(t *testing.T) {
	svc, store := seededService()

	svc.Remove("n2")
	assert.Equal(t, 2, store.Len())
	svc.Remove("n2")
	assert.Equal(t, 2, store.Len())
}
