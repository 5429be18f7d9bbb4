package valueobjects

import "fmt"

// Role is the tracker-wide access tier of a user. Roles are ordered:
// every Owner capability includes Manager's, and Manager's includes
// Member's.
type Role int

const (
	RoleMember  Role = 1
	RoleManager Role = 2
	RoleOwner   Role = 3
)

var roleNames = map[Role]string{
	RoleMember:  "member",
	RoleManager: "manager",
	RoleOwner:   "owner",
}

// NewRole validates an integer role value.
func NewRole(v int) (Role, error) {
	r := Role(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("invalid role: %d", v)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) Int() int {
	return int(r)
}

// AtLeast reports whether r grants at least the capabilities of other.
func (r Role) AtLeast(other Role) bool {
	return r >= other
}

func (r Role) IsMember() bool {
	return r == RoleMember
}

func (r Role) IsManager() bool {
	return r == RoleManager
}

func (r Role) IsOwner() bool {
	return r == RoleOwner
}
