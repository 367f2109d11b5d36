package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is generated by the store on insert and never changes afterwards.
	ID string `json:"id" validate:"required,uuid"`

	// Name is the display name of the user.
	Name string `json:"name" validate:"required"`

	// Email is the unique login identifier.
	Email string `json:"email" validate:"required,email"`

	// Password stores the Argon2id PHC string, never plaintext.
	// It is never serialized.
	Password string `json:"-"`

	// Role defines which manager-only operations the user may perform.
	Role Role `json:"role" validate:"required,oneof=student manager"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
