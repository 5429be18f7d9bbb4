package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/domain/ticket"
	"trackd/internal/infrastructure/persistence/mappers"
	"trackd/internal/infrastructure/persistence/models"
	db "trackd/internal/shared/db"
)

type AssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AssignmentRepository) Save(ctx context.Context, a *ticket.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	return nil
}

func (r *AssignmentRepository) Exists(ctx context.Context, ticketID, userID string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AssignmentModel{}).
		Where("ticket_id = ? AND user_id = ?", ticketID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check assignment existence: %w", err)
	}

	return count > 0, nil
}

func (r *AssignmentRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*ticket.Assignment, error) {
	var rows []models.AssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*ticket.Assignment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AssignmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *AssignmentRepository) TicketIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AssignmentModel{}).
		Where("user_id = ?", userID).
		Pluck("ticket_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list assigned ticket ids: %w", err)
	}

	return ids, nil
}

func (r *AssignmentRepository) DeleteByTicketID(ctx context.Context, ticketID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.AssignmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignments for ticket: %w", err)
	}

	return nil
}
