package models

import "trackd/internal/shared/constants"

// ProjectModel represents the database model for projects
type ProjectModel struct {
	ID          string `gorm:"primaryKey;size:15"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	CreatedBy   string `gorm:"index;size:15;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli"`
}

// TableName specifies the table name for ProjectModel
func (ProjectModel) TableName() string {
	return constants.TableProjects
}
