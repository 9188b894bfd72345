package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hr-autoflow-api/internal/domain"
)

// Store persists the current identity as a single JSON document at a fixed
// path, the durable analogue of a browser's saved session record. A missing
// or unreadable document is always reported as absence, never as a crash.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the identity snapshot, replacing any previous one.
func (s *Store) Save(u *domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal session snapshot: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load reads the persisted snapshot. Absent, malformed, or structurally
// invalid snapshots all come back as domain.ErrNotFound so callers fail
// closed to "no identity".
func (s *Store) Load() (*domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("no session snapshot: %w", domain.ErrNotFound)
	}
	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("malformed session snapshot: %w", domain.ErrNotFound)
	}
	if u.UserID == "" || !domain.ValidRole(u.Role) {
		return nil, fmt.Errorf("incomplete session snapshot: %w", domain.ErrNotFound)
	}
	return &u, nil
}

// Clear removes the snapshot. Clearing an absent snapshot is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
