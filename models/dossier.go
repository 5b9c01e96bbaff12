package models

import "time"

// Dossier is a case folder owned by a single analyst. All targets and their
// intelligence records hang off a dossier, and every read performed by the
// analysis services is scoped to dossiers owned by the calling analyst.
type Dossier struct {
	// DossierID is the internal unique identifier of the dossier.
	DossierID int64 `json:"dossier_id"`

	// UserID references the analyst who owns this dossier.
	UserID int64 `json:"-"`

	// Name is the case name shown in listings.
	Name string `json:"name"`

	// Description is an optional free-form summary of the case.
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Dossier model.
func (d Dossier) TableName() string {
	return "dossiers"
}

// NameNotDetermined is the placeholder stored in place of a first or last
// name that has not been established yet.
const NameNotDetermined = "ND"

// Target is a person of interest under investigation within a dossier.
// It owns all per-target intelligence sub-records; deleting a target
// cascades to them at the database level.
type Target struct {
	// TargetID is the internal unique identifier of the target.
	TargetID int64 `json:"target_id"`

	// DossierID references the owning dossier.
	DossierID int64 `json:"dossier_id"`

	// CodeName is the analyst-assigned working name for the target.
	CodeName string `json:"code_name"`

	// FirstName and LastName hold the established identity of the target.
	// The placeholder [NameNotDetermined] means the name is unknown.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Aliases is the list of alternative names the target is known under.
	Aliases []string `json:"aliases,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Target model.
func (t Target) TableName() string {
	return "targets"
}
