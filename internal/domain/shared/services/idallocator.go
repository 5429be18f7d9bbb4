// Package services holds domain service interfaces implemented by the
// infrastructure layer.
package services

import "context"

// IDAllocator hands out entity identifiers that are unique within one
// storage table. Implementations check candidates against existing rows
// and retry on collision; the table's unique index remains the final
// authority under concurrent allocation.
type IDAllocator interface {
	// Allocate returns an unused 15-digit identifier for table.
	Allocate(ctx context.Context, table string) (string, error)
}
