package repository

import (
	"context"

	"github.com/annotation-microservice/internal/domain"
)

// SubstationRepository is the whole-collection document store for
// substations. There is no record-level access: callers read the full array,
// transform it, and write the full array back.
type SubstationRepository interface {
	// List returns every record in storage order plus the collection
	// version. An absent backing file yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Substation, string, error)

	// ReplaceAll atomically replaces the persisted collection. When
	// expectedVersion is non-empty the write is rejected with
	// COLLECTION_CONFLICT unless it matches the stored version. Returns the
	// new collection version.
	ReplaceAll(ctx context.Context, records []domain.Substation, expectedVersion string) (string, error)
}
