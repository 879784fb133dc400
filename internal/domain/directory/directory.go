package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Office is an organisational unit that can hold stock
type Office struct {
	ID       uuid.UUID
	Name     string
	Code     string
	Division string
}

// DisplayName returns the office name in title case
func (o *Office) DisplayName() string {
	return titleCase(o.Name)
}

// User is a person who can receive, request or approve stock
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Position  string
	OfficeID  *uuid.UUID
}

// FullName returns "First Last" in title case
func (u *User) FullName() string {
	return titleCase(strings.TrimSpace(u.FirstName + " " + u.LastName))
}

// Directory resolves offices and personnel. A missing record is shared.ErrNotFound;
// any other error is a collaborator failure.
type Directory interface {
	GetOfficeByID(ctx context.Context, id uuid.UUID) (*Office, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.Join(strings.Fields(s), " ")))
}
