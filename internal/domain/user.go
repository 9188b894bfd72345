package domain

// Roles form a closed set. The demo directory only ever issues these two;
// anything else in a restored snapshot means the snapshot is corrupt.
const (
	RoleAdmin = "admin"
	RoleHR    = "hr"
)

// ValidRole reports whether role is one of the known operator roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleHR
}

// User is a logged-in operator identity.
type User struct {
	UserID     string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Avatar     string  `json:"avatar,omitempty"`
	Department string  `json:"department,omitempty"`
	Level      int     `json:"level"`
	Points     int     `json:"points"`
	Badges     []Badge `json:"badges,omitempty"`
}
