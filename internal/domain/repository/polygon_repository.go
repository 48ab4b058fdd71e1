package repository

import (
	"context"

	"github.com/annotation-microservice/internal/domain"
)

// PolygonRepository is the whole-collection document store for component
// polygons. Same contract as SubstationRepository.
type PolygonRepository interface {
	List(ctx context.Context) ([]domain.ComponentPolygon, string, error)
	ReplaceAll(ctx context.Context, records []domain.ComponentPolygon, expectedVersion string) (string, error)
}
