package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ReportID identifies one evaluation of a p-value family
type ReportID ID

// FamilyName names a group of p-values corrected together
type FamilyName string

func (id ReportID) String() string   { return string(id) }
func (f FamilyName) String() string { return string(f) }

// NewReportID creates a fresh report identifier
func NewReportID() ReportID {
	return ReportID(NewID())
}
