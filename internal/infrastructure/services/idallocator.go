package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trackd/internal/shared/errors"
	"trackd/internal/shared/id"
)

// maxAllocateAttempts bounds the retry loop when generated identifiers
// keep colliding with existing rows.
const maxAllocateAttempts = 1000

// GormIDAllocator allocates collision-free entity identifiers by
// generating random candidates and checking them against the target
// table. Uniqueness is ultimately guaranteed by the primary key
// constraint; the pre-check only keeps insert failures rare.
type GormIDAllocator struct {
	db *gorm.DB
}

func NewGormIDAllocator(db *gorm.DB) *GormIDAllocator {
	return &GormIDAllocator{db: db}
}

func (a *GormIDAllocator) Allocate(ctx context.Context, table string) (string, error) {
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		candidate, err := id.Generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate identifier: %w", err)
		}

		var count int64
		if err := a.db.WithContext(ctx).
			Table(table).
			Where("id = ?", candidate).
			Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to check identifier uniqueness: %w", err)
		}

		if count == 0 {
			return candidate, nil
		}
	}

	return "", errors.NewConflictError(fmt.Sprintf("identifier space exhausted for table %s", table))
}
