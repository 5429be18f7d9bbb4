package models

import "trackd/internal/shared/constants"

// UserModel represents the database model for users
// Note: No foreign key constraints are defined at the database level.
// All relationships are managed through application logic.
type UserModel struct {
	ID        string `gorm:"primaryKey;size:15"`
	Subject   string `gorm:"uniqueIndex;size:255;not null"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Picture   string `gorm:"size:512"`
	Role      int    `gorm:"not null;default:1"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return constants.TableUsers
}
