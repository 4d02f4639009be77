package model

import (
	"fmt"
	"time"
)

// Permission is an account's role. Guards check for a specific permission
// value, not "at least": an Editor page is for editors, not admins.
type Permission string

const (
	PermAdmin  Permission = "admin"
	PermEditor Permission = "editor"
	PermUser   Permission = "user"
)

// Permissions lists all roles in display order (most privileged first).
var Permissions = []Permission{PermAdmin, PermEditor, PermUser}

// ParsePermission converts a string to a Permission.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case PermAdmin, PermEditor, PermUser:
		return Permission(s), nil
	}
	return "", fmt.Errorf("unknown permission %q", s)
}

// Display returns the capitalized form used on rendered pages.
func (p Permission) Display() string {
	switch p {
	case PermAdmin:
		return "Admin"
	case PermEditor:
		return "Editor"
	default:
		return "User"
	}
}

type Account struct {
	Username     string     `json:"username"`
	Permission   Permission `json:"permission"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	CreatedAt    time.Time  `json:"created_at"`
}
