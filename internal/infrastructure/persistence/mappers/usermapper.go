package mappers

import (
	"fmt"
	"time"

	"trackd/internal/domain/user"
	vo "trackd/internal/domain/user/valueobjects"
	"trackd/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a user domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Subject:   u.Subject(),
		Name:      u.Name(),
		Email:     u.Email(),
		Picture:   u.Picture(),
		Role:      u.Role().Int(),
		CreatedAt: u.CreatedAt().UnixMilli(),
		UpdatedAt: u.UpdatedAt().UnixMilli(),
	}
}

// ToDomain converts a user persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid role for user %s: %w", model.ID, err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Subject,
		model.Name,
		model.Email,
		model.Picture,
		role,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
