package directory

import (
	"fmt"

	"github.com/hr-autoflow-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Directory is the fixed identity directory: exactly two demo accounts
// sharing a single secret. This is the entire auth backend, by contract.
// Lookups are case-sensitive exact matches on email.
type Directory struct {
	users      []domain.User
	secretHash []byte
}

// New builds the directory, hashing the shared secret once up front so the
// plaintext is never held past construction.
func New(sharedSecret string) *Directory {
	hash, err := bcrypt.GenerateFromPassword([]byte(sharedSecret), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable with an invalid cost, which DefaultCost is not.
		panic("directory: hash shared secret: " + err.Error())
	}
	return &Directory{users: demoUsers(), secretHash: hash}
}

// Lookup returns the identity registered under email.
func (d *Directory) Lookup(email string) (*domain.User, error) {
	for i := range d.users {
		if d.users[i].Email == email {
			u := d.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("no identity for %s: %w", email, domain.ErrNotFound)
}

// Authenticate verifies email and password against the directory. On any
// failure the returned error wraps a domain sentinel; no identity is leaked.
func (d *Directory) Authenticate(email, password string) (*domain.User, error) {
	u, err := d.Lookup(email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(d.secretHash, []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	return u, nil
}

// Users returns a copy of every registered identity, for ranking views.
func (d *Directory) Users() []domain.User {
	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

func demoUsers() []domain.User {
	return []domain.User{
		{
			UserID:     "1",
			Name:       "Arthur Maciel",
			Email:      "admin@empresa.com",
			Role:       domain.RoleAdmin,
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=32&h=32&fit=crop&crop=face",
			Department: "Tecnologia",
			Level:      7,
			Points:     2847,
			Badges: []domain.Badge{
				{BadgeID: "b1", Name: "Primeiro Onboarding", Description: "Concluiu o primeiro onboarding automatizado", Icon: "🚀", Color: "blue", UnlockedAt: "2024-01-10T09:00:00Z"},
				{BadgeID: "b2", Name: "Automação Master", Description: "Executou 50 automações sem falhas", Icon: "🤖", Color: "purple", UnlockedAt: "2024-02-22T14:30:00Z"},
			},
		},
		{
			UserID:     "2",
			Name:       "Maria Santos",
			Email:      "rh@empresa.com",
			Role:       domain.RoleHR,
			Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=32&h=32&fit=crop&crop=face",
			Department: "Recursos Humanos",
			Level:      3,
			Points:     1240,
			Badges: []domain.Badge{
				{BadgeID: "b1", Name: "Primeiro Onboarding", Description: "Concluiu o primeiro onboarding automatizado", Icon: "🚀", Color: "blue", UnlockedAt: "2024-03-05T11:15:00Z"},
			},
		},
	}
}
