package entity

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) Valid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

type User struct {
	Id           int64
	Username     string
	PasswordHash string
	Nome         string
	Role         UserRole
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
