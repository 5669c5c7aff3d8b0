package userservice

// Role access level of a user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User as returned by UserService
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user may use the admin API
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse error body of UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
