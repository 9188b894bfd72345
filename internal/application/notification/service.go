package notification

import (
	"fmt"

	"github.com/hr-autoflow-api/internal/domain"
	"github.com/hr-autoflow-api/internal/pkg/validate"
)

// Filter values accepted by List.
const (
	FilterAll       = "all"
	FilterUnread    = "unread"
	FilterImportant = "important"
)

// Store is the minimal interface the service requires from the notification
// collection.
type Store interface {
	Add(draft domain.NotificationDraft) domain.Notification
	List() []domain.Notification
	MarkRead(notificationID string)
	MarkAllRead()
	Remove(notificationID string)
	UnreadCount() int
}

type Service interface {
	List(filter string) ([]domain.Notification, error)
	UnreadCount() int
	Add(draft domain.NotificationDraft) (domain.Notification, error)
	MarkRead(notificationID string)
	MarkAllRead()
	Remove(notificationID string)
}

type service struct {
	store Store
}

func NewService(store Store) Service {
	return &service{store: store}
}

// List returns notifications newest-first, narrowed by filter. An empty
// filter means all.
func (s *service) List(filter string) ([]domain.Notification, error) {
	all := s.store.List()
	switch filter {
	case "", FilterAll:
		return all, nil
	case FilterUnread:
		out := all[:0]
		for _, n := range all {
			if !n.Read {
				out = append(out, n)
			}
		}
		return out, nil
	case FilterImportant:
		out := all[:0]
		for _, n := range all {
			if n.Important() {
				out = append(out, n)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown filter %q: %w", filter, domain.ErrBadRequest)
	}
}

func (s *service) UnreadCount() int {
	return s.store.UnreadCount()
}

func (s *service) Add(draft domain.NotificationDraft) (domain.Notification, error) {
	if err := validate.Struct(draft); err != nil {
		return domain.Notification{}, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	return s.store.Add(draft), nil
}

func (s *service) MarkRead(notificationID string) {
	s.store.MarkRead(notificationID)
}

func (s *service) MarkAllRead() {
	s.store.MarkAllRead()
}

func (s *service) Remove(notificationID string) {
	s.store.Remove(notificationID)
}
