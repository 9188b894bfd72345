package gamification

import (
	"sort"

	"github.com/hr-autoflow-api/internal/domain"
)

// XP needed to advance one level.
const xpPerLevel = 1000

// IdentitySource supplies the operator profiles ranked on the leaderboard.
type IdentitySource interface {
	Users() []domain.User
}

// BadgeSource supplies the badge catalog.
type BadgeSource interface {
	Badges() []domain.Badge
}

type Service interface {
	Badges() []domain.Badge
	// Leaderboard ranks every operator by points, descending, with 1-based
	// positions assigned after the sort.
	Leaderboard() []domain.LeaderboardEntry
	Progress(u *domain.User) domain.LevelProgress
}

type service struct {
	identities IdentitySource
	badges     BadgeSource
}

func NewService(identities IdentitySource, badges BadgeSource) Service {
	return &service{identities: identities, badges: badges}
}

func (s *service) Badges() []domain.Badge {
	return s.badges.Badges()
}

func (s *service) Leaderboard() []domain.LeaderboardEntry {
	users := s.identities.Users()
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Points > users[j].Points
	})
	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, domain.LeaderboardEntry{
			Position:   i + 1,
			UserID:     u.UserID,
			Name:       u.Name,
			Department: u.Department,
			Level:      u.Level,
			Points:     u.Points,
		})
	}
	return entries
}

func (s *service) Progress(u *domain.User) domain.LevelProgress {
	levelXP := u.Points % xpPerLevel
	return domain.LevelProgress{
		Level:       u.Level,
		Points:      u.Points,
		LevelXP:     levelXP,
		NextLevelXP: xpPerLevel,
		RemainingXP: xpPerLevel - levelXP,
	}
}
