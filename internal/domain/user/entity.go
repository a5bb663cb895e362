package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePWD      Role = "pwd"
	RoleEmployer Role = "employer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePWD:
		return RolePWD, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Account is what registration persists: the user row plus the role-specific
// record created alongside it.
type Account struct {
	User        User
	CompanyName string
}
