package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/pkg/validator"
)

type PolygonUseCase struct {
	repo       repository.PolygonRepository
	streamRepo repository.StreamRepository // nil when no change feed is configured
	logger     *zap.Logger
}

func NewPolygonUseCase(
	repo repository.PolygonRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *PolygonUseCase {
	return &PolygonUseCase{
		repo:       repo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

func (uc *PolygonUseCase) List(ctx context.Context) ([]domain.ComponentPolygon, string, error) {
	return uc.repo.List(ctx)
}

// Labels returns the controlled component vocabulary shown by the
// annotation UI.
func (uc *PolygonUseCase) Labels() []string {
	labels := make([]string, len(domain.ComponentLabels))
	copy(labels, domain.ComponentLabels)
	return labels
}

// ReplaceAll validates the full desired collection and persists it. Client
// placeholder ids are replaced with durable UUIDs, and records sourced from
// the reference dataset (from_osm) must survive the replace untouched. On
// any violation nothing is written.
func (uc *PolygonUseCase) ReplaceAll(ctx context.Context, records []domain.ComponentPolygon, expectedVersion, actor string) (string, error) {
	current, _, err := uc.repo.List(ctx)
	if err != nil {
		return "", err
	}

	seen := make(map[string]struct{}, len(records))
	now := time.Now().UTC()

	for i := range records {
		rec := &records[i]

		if rec.HasTempID() {
			rec.ID = uuid.NewString()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}

		if _, dup := seen[rec.ID]; dup {
			return "", apperrors.ErrValidation.WithDetails(map[string]interface{}{
				"id":   rec.ID,
				"rule": "id must be unique within the collection",
			})
		}
		seen[rec.ID] = struct{}{}

		if err := validator.Validate(rec); err != nil {
			return "", apperrors.ErrValidation.WithDetails(map[string]interface{}{
				"id":    rec.ID,
				"cause": err.Error(),
			})
		}
		if err := rec.Validate(); err != nil {
			return "", err
		}
	}

	if err := checkReferenceRecords(current, records); err != nil {
		return "", err
	}

	version, err := uc.repo.ReplaceAll(ctx, records, expectedVersion)
	if err != nil {
		return "", err
	}

	uc.publishChange(ctx, len(records), version, actor)

	return version, nil
}

// checkReferenceRecords enforces from_osm immutability: every stored
// reference record must reappear unchanged in the incoming collection.
// Adding new reference records is allowed (bulk import path).
func checkReferenceRecords(current, incoming []domain.ComponentPolygon) error {
	incomingByID := make(map[string]*domain.ComponentPolygon, len(incoming))
	for i := range incoming {
		incomingByID[incoming[i].ID] = &incoming[i]
	}

	for i := range current {
		stored := &current[i]
		if !stored.FromOSM {
			continue
		}

		replacement, ok := incomingByID[stored.ID]
		if !ok {
			return apperrors.ErrValidation.WithDetails(map[string]interface{}{
				"id":   stored.ID,
				"rule": "reference records (from_osm) may not be deleted",
			})
		}
		if !recordsEqual(stored, replacement) {
			return apperrors.ErrValidation.WithDetails(map[string]interface{}{
				"id":   stored.ID,
				"rule": "reference records (from_osm) may not be mutated",
			})
		}
	}

	return nil
}

// recordsEqual compares two records by canonical JSON form, so semantically
// identical payloads with different field ordering still match.
func recordsEqual(a, b *domain.ComponentPolygon) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(aj, bj)
}

func (uc *PolygonUseCase) publishChange(ctx context.Context, count int, version, actor string) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.ChangeEvent{
		Collection: "polygons",
		Records:    count,
		Version:    version,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.AnnotationEventStream, event); err != nil {
		uc.logger.Warn("Failed to publish change event", zap.Error(err))
	}
}
