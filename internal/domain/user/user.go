package user

import (
	"fmt"
	"strings"
	"time"

	vo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/shared/id"
)

// User is a tracker account. Accounts are provisioned on first login from
// a verified identity token; the subject claim ties the account to the
// identity provider.
type User struct {
	id        string
	subject   string
	name      string
	email     string
	picture   string
	role      vo.Role
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a user for a first-time login. New accounts start as
// Member; role upgrades happen out of band.
func NewUser(subject, name, email, picture string) (*User, error) {
	subject = strings.TrimSpace(subject)
	email = strings.TrimSpace(email)
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if name = strings.TrimSpace(name); name == "" {
		name = email
	}

	now := time.Now()
	return &User{
		subject:   subject,
		name:      name,
		email:     email,
		picture:   picture,
		role:      vo.RoleMember,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persisted state.
func ReconstructUser(
	userID string,
	subject string,
	name string,
	email string,
	picture string,
	role vo.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if !id.ValidFormat(userID) {
		return nil, fmt.Errorf("invalid user ID: %s", userID)
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %d", role)
	}

	return &User{
		id:        userID,
		subject:   subject,
		name:      name,
		email:     email,
		picture:   picture,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) Subject() string {
	return u.subject
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Picture() string {
	return u.picture
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID assigns the allocated identifier to a newly created user.
func (u *User) SetID(userID string) error {
	if u.id != "" {
		return fmt.Errorf("user ID is already set")
	}
	if !id.ValidFormat(userID) {
		return fmt.Errorf("invalid user ID: %s", userID)
	}
	u.id = userID
	return nil
}

// UpdateProfile refreshes the mutable profile fields from the identity
// token on a returning login.
func (u *User) UpdateProfile(name, email, picture string) {
	if name = strings.TrimSpace(name); name != "" {
		u.name = name
	}
	if email = strings.TrimSpace(email); email != "" {
		u.email = email
	}
	u.picture = picture
	u.updatedAt = time.Now()
}

// ChangeRole moves the user to a different access tier.
func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %d", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}
