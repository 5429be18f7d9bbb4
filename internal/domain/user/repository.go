package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by entity ID
	GetByID(ctx context.Context, id string) (*User, error)

	// GetBySubject retrieves a user by identity-provider subject
	GetBySubject(ctx context.Context, subject string) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Exists checks if a user exists by entity ID
	Exists(ctx context.Context, id string) (bool, error)
}
