package file

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/annotation-microservice/internal/domain"
	"github.com/annotation-microservice/internal/domain/repository"
	apperrors "github.com/annotation-microservice/internal/pkg/errors"
)

// PolygonsFile is the on-disk document name inside the data directory.
const PolygonsFile = "component_polygons.json"

type polygonRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewPolygonRepository(store *Store, logger *zap.Logger) repository.PolygonRepository {
	return &polygonRepository{
		store:  store,
		logger: logger,
	}
}

func (r *polygonRepository) List(ctx context.Context) ([]domain.ComponentPolygon, string, error) {
	data, version, err := r.store.Read(PolygonsFile)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		return []domain.ComponentPolygon{}, version, nil
	}

	var records []domain.ComponentPolygon
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.Error("Polygon document is not a valid record array", zap.Error(err))
		return nil, "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": PolygonsFile,
			"cause":      err.Error(),
		})
	}
	if records == nil {
		records = []domain.ComponentPolygon{}
	}

	for i := range records {
		normalizeLegacyLabel(&records[i])
	}

	return records, version, nil
}

func (r *polygonRepository) ReplaceAll(ctx context.Context, records []domain.ComponentPolygon, expectedVersion string) (string, error) {
	if records == nil {
		records = []domain.ComponentPolygon{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", apperrors.ErrStorage.WithDetails(map[string]interface{}{
			"collection": PolygonsFile,
			"cause":      err.Error(),
		})
	}

	return r.store.Write(PolygonsFile, data, expectedVersion)
}

// normalizeLegacyLabel repacks the historical "Other: <detail>" label format
// into label "Other" plus additional_info. One deterministic pass at load
// time; the normalized form only reaches disk on the next full write, so a
// pure read never mutates storage.
func normalizeLegacyLabel(p *domain.ComponentPolygon) {
	trimmed := strings.TrimSpace(p.Label)

	if strings.EqualFold(trimmed, domain.LabelOther) {
		p.Label = domain.LabelOther
		return
	}

	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "other:") {
		return
	}

	detail := strings.TrimSpace(trimmed[len("other:"):])
	p.Label = domain.LabelOther
	if detail != "" && (p.AdditionalInfo == nil || strings.TrimSpace(*p.AdditionalInfo) == "") {
		p.AdditionalInfo = &detail
	}
}
