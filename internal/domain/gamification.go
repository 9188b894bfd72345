package domain

// Badge is an unlockable recognition attached to an operator profile.
type Badge struct {
	BadgeID     string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

// LeaderboardEntry is one row of the points ranking.
type LeaderboardEntry struct {
	Position   int    `json:"position"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Level      int    `json:"level"`
	Points     int    `json:"points"`
}

// LevelProgress describes how far an operator is into the current level.
type LevelProgress struct {
	Level       int `json:"level"`
	Points      int `json:"points"`
	LevelXP     int `json:"level_xp"`
	NextLevelXP int `json:"next_level_xp"`
	RemainingXP int `json:"remaining_xp"`
}
