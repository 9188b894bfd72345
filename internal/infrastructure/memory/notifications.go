package memory

import (
	"sync"
	"time"

	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/pkg/id"
)

// Default retention when the caller does not set one. The list never persists
// across restarts, but within a process it must not grow without bound.
const defaultCap = 500

// NotificationStore is the process-lifetime notification list, newest-first.
// One instance is shared by every consumer; all access goes through the
// mutex, so readers always observe a fully applied mutation.
type NotificationStore struct {
	mu    sync.Mutex
	items []domain.Notification
	cap   int
	now   func() time.Time
}

// NewNotificationStore builds a store pre-loaded with seed (assumed
// newest-first). maxItems <= 0 selects the default retention; now may be nil
// to use the wall clock.
func NewNotificationStore(seed []domain.Notification, maxItems int, now func() time.Time) *NotificationStore {
	if maxItems <= 0 {
		maxItems = defaultCap
	}
	if now == nil {
		now = time.Now
	}
	items := make([]domain.Notification, len(seed))
	copy(items, seed)
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return &NotificationStore{items: items, cap: maxItems, now: now}
}

// Add assigns a fresh id, the current timestamp and the unread flag, then
// prepends the record. When the retention cap is exceeded the oldest record
// is dropped.
func (s *NotificationStore) Add(draft domain.NotificationDraft) domain.Notification {
	n := domain.Notification{
		NotificationID: id.New(),
		Title:          draft.Title,
		Message:        draft.Message,
		Type:           draft.Type,
		Priority:       draft.Priority,
		ActionRequired: draft.ActionRequired,
		Read:           false,
		CreatedAt:      s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Notification{n}, s.items...)
	if len(s.items) > s.cap {
		s.items = s.items[:s.cap]
	}
	return n
}

// List returns a copy of the list, newest-first.
func (s *NotificationStore) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// MarkRead flips the matching record to read. Unknown ids are ignored; the
// caller may race with a removal and that is not an error.
func (s *NotificationStore) MarkRead(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].NotificationID == notificationID {
			s.items[i].Read = true
			return
		}
	}
}

// MarkAllRead flips every record to read. Idempotent.
func (s *NotificationStore) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Read = true
	}
}

// Remove deletes the matching record. Unknown ids are ignored.
func (s *NotificationStore) Remove(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].NotificationID == notificationID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UnreadCount recomputes the number of unread records on every call; it is
// derived, never cached.
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			count++
		}
	}
	return count
}

// Len returns the current list length.
func (s *NotificationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
