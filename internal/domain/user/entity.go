package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may perform administrative actions.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
