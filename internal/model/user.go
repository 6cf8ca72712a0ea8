// Package model contain gorm model for recording data to database
package model

import "time"

var (
	// RoleAdmin can see and manage every application regardless of ownership
	RoleAdmin = "admin"
	// RoleHR owns job posts and reviews the applications submitted to them
	RoleHR = "hr"
	// RolePelamar is the applicant role that submits and tracks applications
	RolePelamar = "pelamar"
	// RoleUser is a legacy alias of RolePelamar kept for old tokens
	RoleUser = "user"
)

// User is the account identity shared by admin, HR and applicant roles.
type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string  `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password string  `gorm:"type:text" json:"-"`
	FullName string  `gorm:"type:text" json:"full_name"`
	Email    *string `gorm:"type:text;uniqueIndex" json:"email"`
	Phone    *string `gorm:"type:text" json:"phone"`
	Address  string  `gorm:"type:text" json:"address"`
	Role     string  `gorm:"type:text;not null;index" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsApplicant reports whether the user holds the applicant role,
// accepting the legacy "user" alias.
func (u User) IsApplicant() bool {
	return u.Role == RolePelamar || u.Role == RoleUser
}
