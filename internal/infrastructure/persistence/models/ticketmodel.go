package models

import "trackd/internal/shared/constants"

// TicketModel represents the database model for tickets
// Note: No foreign key constraints are defined at the database level.
// All relationships are managed through application logic.
type TicketModel struct {
	ID          string `gorm:"primaryKey;size:15"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	OwnerID     string `gorm:"index;size:15;not null"`
	Status      int    `gorm:"not null;default:1"`
	Priority    int    `gorm:"not null;default:1"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli"`
}

// TableName specifies the table name for TicketModel
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// CommentModel represents the database model for ticket comments
type CommentModel struct {
	ID        string `gorm:"primaryKey;size:15"`
	TicketID  string `gorm:"index;size:15;not null"`
	AuthorID  string `gorm:"index;size:15;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
}

// TableName specifies the table name for CommentModel
func (CommentModel) TableName() string {
	return constants.TableComments
}

// AssignmentModel represents the database model for ticket assignments.
// The composite unique index rejects duplicate (ticket, user) pairs at
// the database level so racing assigns cannot both succeed.
type AssignmentModel struct {
	ID         string `gorm:"primaryKey;size:15"`
	TicketID   string `gorm:"uniqueIndex:idx_ticket_user;size:15;not null"`
	UserID     string `gorm:"uniqueIndex:idx_ticket_user;size:15;not null"`
	AssignedBy string `gorm:"size:15;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli"`
}

// TableName specifies the table name for AssignmentModel
func (AssignmentModel) TableName() string {
	return constants.TableUserAssignments
}

// ModificationModel represents the database model for the ticket audit
// trail. Rows are append only and are never updated or deleted, so the
// history survives even after the ticket itself is removed.
type ModificationModel struct {
	ID             string  `gorm:"primaryKey;size:15"`
	TicketID       string  `gorm:"index;size:15;not null"`
	EditorID       string  `gorm:"size:15;not null"`
	OldTitle       *string `gorm:"size:255"`
	NewTitle       *string `gorm:"size:255"`
	OldDescription *string `gorm:"type:text"`
	NewDescription *string `gorm:"type:text"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli"`
}

// TableName specifies the table name for ModificationModel
func (ModificationModel) TableName() string {
	return constants.TableTicketModifications
}
