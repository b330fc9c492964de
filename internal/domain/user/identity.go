package user

import "github.com/google/uuid"

// Identity is the authenticated principal resolved from a session credential.
// A nil *Identity means the request is anonymous.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// HasRole is nil-safe so gate predicates can call it on anonymous requests.
func (i *Identity) HasRole(r Role) bool {
	return i != nil && i.Role == r
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// role names are case-sensitive, matching the users.role column
var knownRoles = map[Role]struct{}{
	RoleUser:  {},
	RoleAdmin: {},
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	_, ok := knownRoles[r]
	return ok
}

func NewRole(s string) (Role, error) {
	if r := Role(s); r.IsValid() {
		return r, nil
	}
	return "", ErrInvalidRole
}
