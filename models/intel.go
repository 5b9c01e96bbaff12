package models

import "time"

// Intelligence sub-records. Each record belongs to exactly one target and is
// created, edited, and deleted by analysts through the per-entity endpoints.
// The pattern and timeline services only ever read them.
//
// Date-bearing fields are pointers: a nil value means "not observed" and is
// silently skipped by the timeline builder.

// SocialMediaAccount is a social network presence attributed to a target.
type SocialMediaAccount struct {
	ID       int64  `json:"id"`
	TargetID int64  `json:"target_id"`
	Platform string `json:"platform"`
	Username string `json:"username"`

	// ProfileURL is the canonical link to the profile, when known.
	ProfileURL string `json:"profile_url,omitempty"`

	// LastActivity is the most recent activity observed on the account.
	LastActivity *time.Time `json:"last_activity,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s SocialMediaAccount) TableName() string { return "social_media" }

// Credential is a leaked credential pair attributed to a target.
// PasswordHash is always a pre-hashed value; plaintext passwords are never
// accepted or stored.
type Credential struct {
	ID           int64  `json:"id"`
	TargetID     int64  `json:"target_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`

	// Source names the breach corpus or dump the credential came from.
	Source string `json:"source,omitempty"`

	// BreachDate is the date of the breach the credential was exposed in.
	BreachDate *time.Time `json:"breach_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c Credential) TableName() string { return "credentials" }

// NetworkData is a network observation (IP address, hostname) attributed to
// a target.
type NetworkData struct {
	ID        int64  `json:"id"`
	TargetID  int64  `json:"target_id"`
	IPAddress string `json:"ip_address"`
	Hostname  string `json:"hostname,omitempty"`
	ISP       string `json:"isp,omitempty"`

	FirstSeen *time.Time `json:"first_seen,omitempty"`
	LastSeen  *time.Time `json:"last_seen,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (n NetworkData) TableName() string { return "network_data" }

// Address is a physical location attributed to a target.
type Address struct {
	ID       int64  `json:"id"`
	TargetID int64  `json:"target_id"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city"`
	Country  string `json:"country,omitempty"`

	// Verified reports whether the address was confirmed by a second source.
	Verified bool `json:"verified"`

	LastSeen *time.Time `json:"last_seen,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (a Address) TableName() string { return "addresses" }

// Employment is a position a target holds or held at an organization.
type Employment struct {
	ID       int64  `json:"id"`
	TargetID int64  `json:"target_id"`
	Company  string `json:"company"`
	Position string `json:"position,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// IsCurrent reports whether the target still holds the position.
	// When true the end date is ignored by the timeline builder.
	IsCurrent bool `json:"is_current"`

	// Verified reports whether the employment was confirmed by a second source.
	Verified bool `json:"verified"`

	CreatedAt time.Time `json:"created_at"`
}

func (e Employment) TableName() string { return "employment" }

// MediaFile is a captured photo, video, or document attributed to a target.
type MediaFile struct {
	ID        int64  `json:"id"`
	TargetID  int64  `json:"target_id"`
	FileName  string `json:"file_name"`
	MediaType string `json:"media_type,omitempty"`

	CapturedDate *time.Time `json:"captured_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (m MediaFile) TableName() string { return "media_files" }

// PhoneNumber is a phone number attributed to a target.
type PhoneNumber struct {
	ID       int64  `json:"id"`
	TargetID int64  `json:"target_id"`
	Number   string `json:"number"`
	Carrier  string `json:"carrier,omitempty"`

	// Verified reports whether the number was confirmed active.
	Verified bool `json:"verified"`

	LastSeen *time.Time `json:"last_seen,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (p PhoneNumber) TableName() string { return "phone_numbers" }
