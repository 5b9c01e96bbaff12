package models

import "time"

// User represents an analyst account used for authentication and for scoping
// dossier ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the analyst.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique analyst login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the analyst.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests only.
	// It is never persisted: the store keeps a bcrypt hash instead.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the analyst's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
