package file

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

// SubstationsFile is the on-disk document name inside the data directory.
const SubstationsFile = "substations.json"

type substationRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewSubstationRepository(store *Store, logger *zap.Logger) repository.SubstationRepository {
	return &substationRepository{
		store:  store,
		logger: logger,
	}
}

func (r *substationRepository) List(ctx context.Context) ([]domain.Substation, string, error) {
	data, version, err := r.store.Read(SubstationsFile)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return []domain.Substation{}, version, nil
	}

	var records []domain.Substation
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Error("Substation document is not a valid record array", zap.Error(err))
		return nil, "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": SubstationsFile,
			"cause":      err.Error(),
		})
	}
	if records == nil {
		records = []domain.Substation{}
	}

	return records, version, nil
}

func (r *substationRepository) ReplaceAll(ctx context.Context, records []domain.Substation, expectedVersion string) (string, error) {
	if records == nil {
		records = []domain.Substation{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": SubstationsFile,
			"cause":      err.Error(),
		})
	}

	return r.store.Write(SubstationsFile, data, expectedVersion)
}
