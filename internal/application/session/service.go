package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hr-autoflow-api/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Bearer string
	User   *domain.User
}

// Service is the single source of truth for "who is logged in". Exactly one
// identity is current at a time, or none. Expected failures (bad credentials,
// missing snapshot) are reported as absent results, never as errors.
type Service interface {
	// Login resolves after the simulated network latency. On failure the
	// current identity is left untouched: a failed re-login while already
	// authenticated must not log the operator out.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, bool)
	// Logout clears the current identity and the durable snapshot.
	// Calling it while logged out is a no-op.
	Logout()
	// Restore loads the persisted snapshot, if any. It must complete before
	// the transport starts serving; a malformed snapshot restores to none.
	Restore()
	Current() *domain.User
	// Loading reports whether a login is in flight, so callers can render a
	// pending state.
	Loading() bool
}

type identityDirectory interface {
	Authenticate(email, password string) (*domain.User, error)
}

type snapshotStore interface {
	Save(u *domain.User) error
	Load() (*domain.User, error)
	Clear() error
}

type tokenSigner interface {
	Sign(userID, role string) (string, error)
}

type service struct {
	dir    identityDirectory
	snap   snapshotStore
	signer tokenSigner
	delay  time.Duration

	mu       sync.Mutex
	current  *domain.User
	inFlight int
}

// NewService builds the session store. signer may be nil, in which case login
// results carry no bearer token. delay is the simulated latency per login.
func NewService(dir identityDirectory, snap snapshotStore, signer tokenSigner, delay time.Duration) Service {
	return &service{dir: dir, snap: snap, signer: signer, delay: delay}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, bool) {
	s.beginLogin()
	defer s.endLogin()

	// Simulated network latency. An expired context resolves to failure,
	// leaving any existing session in place.
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, false
		}
	}

	u, err := s.dir.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	if err := s.snap.Save(u); err != nil {
		slog.Warn("failed to persist session snapshot", "user_id", u.UserID, "err", err)
	}

	var bearer string
	if s.signer != nil {
		b, err := s.signer.Sign(u.UserID, u.Role)
		if err != nil {
			slog.Warn("failed to sign session token", "user_id", u.UserID, "err", err)
		} else {
			bearer = b
		}
	}
	return &LoginResult{Bearer: bearer, User: u}, true
}

func (s *service) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.snap.Clear(); err != nil {
		slog.Warn("failed to clear session snapshot", "err", err)
	}
}

func (s *service) Restore() {
	u, err := s.snap.Load()
	if err != nil {
		// Absent or malformed snapshot: fail closed to "no identity".
		return
	}
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
}

func (s *service) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

func (s *service) beginLogin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *service) endLogin() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}
