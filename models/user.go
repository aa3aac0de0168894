package models

import "time"

// User represents an account entity used for authentication and authorization.
// Email is the login identifier; it is stored lower-cased and unique.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used as the owner key of every
	// tag, ingredient and recipe.
	ID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Username is the display name of the user. May be empty.
	Username string `json:"username"`

	// Password carries the plaintext password on its way in (signup,
	// profile update). It is never persisted and never rendered back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// IsActive disables authentication for the account when false.
	IsActive bool `json:"-"`

	// IsStaff and IsSuperuser are administrative flags set by
	// superuser provisioning.
	IsStaff     bool `json:"-"`
	IsSuperuser bool `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of the user.
func (u User) Profile() UserProfile {
	return UserProfile{Email: u.Email, Username: u.Username}
}

// UserProfile is the public view of an account returned by signup and
// the self-service profile endpoint.
type UserProfile struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserUpdate describes a profile change. Nil fields are left untouched,
// which lets the same type serve full and partial updates.
type UserUpdate struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Credentials is the body of a token request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
