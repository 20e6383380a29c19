package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Back-office staff - full access
	RoleManager Role = "manager" // Can approve locations and timesheets
	RoleCleaner Role = "cleaner" // Field employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is back-office admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if user can approve work locations and timesheets
func (u *User) CanApprove() bool {
	return u.IsManager()
}
