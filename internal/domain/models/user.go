package models

import (
	"strings"
	"time"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserCreate carries the fields accepted when a user is created.
type UserCreate struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string
	IsActive    *bool
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Role        *string
}

type UserStats struct {
	Total    int64
	Active   int64
	Inactive int64
}

type Availability struct {
	Username       string
	UsernameExists bool
	Email          string
	EmailExists    bool
}

// UserSortFields lists the user attributes a page may be ordered by.
var UserSortFields = []string{"id", "username", "email", "first_name", "last_name", "created_at"}
