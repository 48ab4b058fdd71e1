package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
	"github.com/annotation-microservice/internal/pkg/validator"
)

type SubstationUseCase struct {
	repo       repository.SubstationRepository
	streamRepo repository.StreamRepository // nil when no change feed is configured
	logger     *zap.Logger
}

func NewSubstationUseCase(
	repo repository.SubstationRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *SubstationUseCase {
	return &SubstationUseCase{
		repo:       repo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

func (uc *SubstationUseCase) List(ctx context.Context) ([]domain.Substation, string, error) {
	return uc.repo.List(ctx)
}

// ReplaceAll validates and persists the full desired collection. Validation
// failures reject the whole payload before anything reaches disk. When
// expectedVersion is non-empty the write is conditional on it.
func (uc *SubstationUseCase) ReplaceAll(ctx context.Context, records []domain.Substation, expectedVersion, actor string) (string, error) {
	seen := make(map[string]struct{}, len(records))
	now := time.Now().UTC()

	for i := range records {
		rec := &records[i]

		// New records may arrive without identity; mint it here so ids are
		// durable and never reused.
		if rec.ID == "" {
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

	version, err := uc.repo.ReplaceAll(ctx, records, expectedVersion)
	if err != nil {
		return "", err
	}

	uc.publishChange(ctx, len(records), version, actor)

	return version, nil
}

func (uc *SubstationUseCase) publishChange(ctx context.Context, count int, version, actor string) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.ChangeEvent{
		Collection: "substations",
		Records:    count,
		Version:    version,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.AnnotationEventStream, event); err != nil {
		// Best effort: the write already succeeded.
		uc.logger.Warn("Failed to publish change event", zap.Error(err))
	}
}
