package model

// Roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is a login account. Only the bcrypt hash of the password is kept.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// IsAdmin reports whether the user holds the ADMIN role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// Session is the single logged-in user of an interactive run
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the session belongs to an admin
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
