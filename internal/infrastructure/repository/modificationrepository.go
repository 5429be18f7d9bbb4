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

// ModificationRepository persists the ticket audit trail. Rows are only
// ever inserted, matching the append-only domain contract.
type ModificationRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewModificationRepository(db *gorm.DB) *ModificationRepository {
	return &ModificationRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ModificationRepository) Save(ctx context.Context, m *ticket.Modification) error {
	model := r.mapper.ModificationToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save modification: %w", err)
	}

	return nil
}

func (r *ModificationRepository) GetByTicketID(ctx context.Context, ticketID string) ([]*ticket.Modification, error) {
	var rows []models.ModificationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list modifications: %w", err)
	}

	modifications := make([]*ticket.Modification, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ModificationToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		modifications = append(modifications, m)
	}

	return modifications, nil
}
