package migration

import (
	"trackd/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AssignmentModel{},
		&models.ModificationModel{},
		&models.ProjectModel{},
	}
}
