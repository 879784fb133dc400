package shared

import "github.com/google/uuid"

// Role is the caller's role as carried in the access token
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSupplyOfficer Role = "supply-officer"
	RoleEndUser       Role = "end-user"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupplyOfficer, RoleEndUser:
		return true
	}
	return false
}

// Actor identifies who performs an operation and from which office
type Actor struct {
	UserID   uuid.UUID
	OfficeID uuid.UUID
	Role     Role
}

// CanManageStock reports whether the actor may approve and complete stock movements
func (a Actor) CanManageStock() bool {
	return a.Role == RoleAdmin || a.Role == RoleSupplyOfficer
}

// CanSeeCost reports whether monetary asset fields are visible to the actor
func (a Actor) CanSeeCost() bool {
	return a.Role != RoleEndUser
}

// UserRef returns a pointer to the actor's user id, or nil when unknown
func (a Actor) UserRef() *uuid.UUID {
	if a.UserID == uuid.Nil {
		return nil
	}
	id := a.UserID
	return &id
}
